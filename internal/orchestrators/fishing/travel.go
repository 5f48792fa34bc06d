package fishing

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/fishing-api/internal/errors"
)

// Travel unlocks the next location in the sequence, deducting its price.
// Locations unlock strictly in rank order; already-unlocked and
// out-of-sequence targets are rejected without mutation.
func (o *orchestrator) Travel(ctx context.Context, input *TravelInput) (*TravelOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.Location == "" {
		return nil, errors.InvalidArgument("location is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	record, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	location, ok := o.catalog.Location(input.Location)
	if !ok {
		return nil, errors.NotFoundf("location %s not found", input.Location)
	}

	if record.HasUnlocked(location.Name) {
		return nil, errors.AlreadyExists("location already unlocked").
			WithMeta("location", location.Name)
	}

	next, ok := o.catalog.NextLocked(record.UnlockedLocations)
	if !ok {
		return nil, errors.FailedPrecondition("all locations already unlocked")
	}
	if next.Name != location.Name {
		return nil, errors.FailedPrecondition("location is not next in the unlock sequence").
			WithMeta("location", location.Name).
			WithMeta("next", next.Name)
	}

	if record.Balance < location.Price {
		return nil, errors.FailedPrecondition("insufficient funds").
			WithMeta("price", location.Price).
			WithMeta("balance", record.Balance)
	}

	record.Balance -= location.Price
	record.UnlockedLocations = append(record.UnlockedLocations, location.Name)
	record.Location = location.Name

	if err := o.savePlayer(ctx, record); err != nil {
		return nil, err
	}

	slog.Info("location unlocked",
		"player_id", record.ID,
		"location", location.Name,
		"price", location.Price)

	return &TravelOutput{
		Location: location,
		Balance:  record.Balance,
	}, nil
}

// SetLocation moves the player to a location they already unlocked.
func (o *orchestrator) SetLocation(ctx context.Context, input *SetLocationInput) (*SetLocationOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if input.Location == "" {
		return nil, errors.InvalidArgument("location is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	record, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	location, ok := o.catalog.Location(input.Location)
	if !ok {
		return nil, errors.NotFoundf("location %s not found", input.Location)
	}
	if !record.HasUnlocked(location.Name) {
		return nil, errors.FailedPrecondition("location not unlocked").
			WithMeta("location", location.Name)
	}

	record.Location = location.Name

	if err := o.savePlayer(ctx, record); err != nil {
		return nil, err
	}

	return &SetLocationOutput{Location: location.Name}, nil
}
