package fishing

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/fishing-api/internal/errors"
)

// eventState is the process-wide luck event. Every luck computation
// reads it; only the admin action writes it.
type eventState struct {
	mu         sync.Mutex
	multiplier float64
	active     bool
}

// Multiplier returns the live multiplier, 1 while the event is inactive.
func (e *eventState) Multiplier() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.active {
		return 1
	}
	return e.multiplier
}

func (e *eventState) set(multiplier float64, active bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.multiplier = multiplier
	e.active = active
}

// SetGlobalEvent updates the process-wide luck event
func (o *orchestrator) SetGlobalEvent(_ context.Context, input *SetGlobalEventInput) (*SetGlobalEventOutput, error) {
	if input.Active && input.Multiplier <= 0 {
		return nil, errors.InvalidArgument("event multiplier must be positive")
	}

	o.event.set(input.Multiplier, input.Active)

	slog.Info("global luck event updated",
		"multiplier", input.Multiplier,
		"active", input.Active)

	return &SetGlobalEventOutput{
		Multiplier: input.Multiplier,
		Active:     input.Active,
	}, nil
}
