// Package fishing implements the reward resolution engine: catch
// resolution, luck modifiers, travel gating, shop actions, and quest
// progress tracking.
package fishing

//go:generate mockgen -destination=mock/mock_service.go -package=fishingmock github.com/KirkDiggler/fishing-api/internal/orchestrators/fishing Service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/fishing-api/internal/catalog"
	"github.com/KirkDiggler/fishing-api/internal/entities/fishing"
	"github.com/KirkDiggler/fishing-api/internal/errors"
	"github.com/KirkDiggler/fishing-api/internal/pkg/clock"
	"github.com/KirkDiggler/fishing-api/internal/pkg/idgen"
	playerrepo "github.com/KirkDiggler/fishing-api/internal/repositories/player"
)

const (
	// DefaultCatchCooldown is the minimum interval between catches.
	DefaultCatchCooldown = 30 * time.Second

	// dailyQuestWindow is how long a daily quest set stays live before
	// the next player access regenerates it.
	dailyQuestWindow = 24 * time.Hour

	// dailyQuestCount is the number of concurrently active daily quests.
	dailyQuestCount = 3
)

// Config holds the dependencies for the fishing orchestrator
type Config struct {
	PlayerRepo  playerrepo.Repository
	Catalog     *catalog.Store
	Clock       clock.Clock
	IDGenerator idgen.Generator

	// CatchCooldown overrides DefaultCatchCooldown when positive.
	CatchCooldown time.Duration

	// Rand is the randomness source for sampling; seeded from the wall
	// clock when nil. Tests inject a fixed seed.
	Rand *rand.Rand
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.CatchCooldown < 0 {
		vb.InvalidField("CatchCooldown", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo playerrepo.Repository
	catalog    *catalog.Store
	clock      clock.Clock
	idGen      idgen.Generator
	cooldown   time.Duration

	rngMu sync.Mutex
	rng   *rand.Rand

	event eventState

	// locksMu guards locks; each player's mutex serializes every
	// mutation of that player's record.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewOrchestrator creates a new fishing orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	cooldown := cfg.CatchCooldown
	if cooldown == 0 {
		cooldown = DefaultCatchCooldown
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 // game sampling, not crypto
	}

	return &orchestrator{
		playerRepo: cfg.PlayerRepo,
		catalog:    cfg.Catalog,
		clock:      cfg.Clock,
		idGen:      cfg.IDGenerator,
		cooldown:   cooldown,
		rng:        rng,
		event:      eventState{multiplier: 1},
		locks:      make(map[string]*sync.Mutex),
	}, nil
}

// lockPlayer acquires the per-player mutex and returns its unlock func.
func (o *orchestrator) lockPlayer(playerID string) func() {
	o.locksMu.Lock()
	mu, ok := o.locks[playerID]
	if !ok {
		mu = &sync.Mutex{}
		o.locks[playerID] = mu
	}
	o.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// loadPlayer fetches the record, creating it with defaults on first
// reference and applying the lazy daily quest rollover. Callers must
// hold the player lock.
func (o *orchestrator) loadPlayer(ctx context.Context, playerID string) (*fishing.PlayerRecord, error) {
	now := o.clock.Now()

	getOut, err := o.playerRepo.Get(ctx, &playerrepo.GetInput{PlayerID: playerID})
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, errors.Wrap(err, "failed to get player")
		}

		record := fishing.NewDefaultRecord(playerID, now, o.drawDailyQuests())
		createOut, err := o.playerRepo.Create(ctx, &playerrepo.CreateInput{Record: record})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create player")
		}
		return createOut.Record, nil
	}

	record := getOut.Record
	if o.rolloverDailyQuests(record, now) {
		if err := o.savePlayer(ctx, record); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// savePlayer persists the mutated record. Callers must hold the player
// lock.
func (o *orchestrator) savePlayer(ctx context.Context, record *fishing.PlayerRecord) error {
	if _, err := o.playerRepo.Update(ctx, &playerrepo.UpdateInput{Record: record}); err != nil {
		return errors.Wrap(err, "failed to save player")
	}
	return nil
}

// randFloat64 draws from the shared rng under its lock.
func (o *orchestrator) randFloat64() float64 {
	o.rngMu.Lock()
	defer o.rngMu.Unlock()
	return o.rng.Float64()
}

// randIntn draws from the shared rng under its lock.
func (o *orchestrator) randIntn(n int) int {
	o.rngMu.Lock()
	defer o.rngMu.Unlock()
	return o.rng.Intn(n)
}

// GetOrCreatePlayer returns the player record, creating it with
// defaults on first reference
func (o *orchestrator) GetOrCreatePlayer(ctx context.Context, input *GetOrCreatePlayerInput) (*GetOrCreatePlayerOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	record, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetOrCreatePlayerOutput{Record: record}, nil
}
