package fishing

import (
	"context"
	"math"

	"github.com/KirkDiggler/fishing-api/internal/entities/fishing"
	"github.com/KirkDiggler/fishing-api/internal/errors"
)

// effectiveLuck aggregates rod, bait, and enchantment bonuses, then
// scales by the global event multiplier and floors to an integer.
func (o *orchestrator) effectiveLuck(record *fishing.PlayerRecord) int32 {
	var rodLuck, baitLuck int32
	if rod, ok := o.catalog.Rod(record.EquippedRod); ok {
		rodLuck = rod.LuckBonus
	}
	if bait, ok := o.catalog.Bait(record.EquippedBait); ok {
		baitLuck = bait.LuckBonus
	}

	enchant := record.EnchantLevel(record.EquippedRod)

	base := float64(rodLuck + baitLuck + enchant*10)
	return int32(math.Floor(base * o.event.Multiplier()))
}

// EffectiveLuck computes the player's current luck modifier
func (o *orchestrator) EffectiveLuck(ctx context.Context, input *EffectiveLuckInput) (*EffectiveLuckOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	record, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &EffectiveLuckOutput{Luck: o.effectiveLuck(record)}, nil
}
