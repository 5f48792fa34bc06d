package fishing

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/fishing-api/internal/entities/fishing"
	"github.com/KirkDiggler/fishing-api/internal/errors"
)

// ResolveCatch performs one catch action: cooldown gate, weighted item
// draw biased by luck, magnitude roll against rod capacity, reward
// payout, and quest progress.
func (o *orchestrator) ResolveCatch(ctx context.Context, input *ResolveCatchInput) (*ResolveCatchOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := o.lockPlayer(input.PlayerID)
	defer unlock()

	record, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now()
	if elapsed := now.Sub(record.LastCatch); elapsed < o.cooldown {
		remaining := o.cooldown - elapsed
		return nil, errors.ResourceExhausted("catch cooldown active").
			WithMeta("remaining_seconds", remaining.Seconds())
	}

	luck := o.effectiveLuck(record)
	outcome := o.resolveOutcome(record, luck)

	// Cooldown resets on failures too.
	record.LastCatch = now

	if outcome.Item != nil {
		o.applyCatchProgress(record, outcome.Rarity)
	}
	if outcome.Status == OutcomeSuccess {
		record.Balance += outcome.Reward
		if record.Inventory == nil {
			record.Inventory = map[string]int32{}
		}
		record.Inventory[outcome.Item.Name]++
	}

	if err := o.savePlayer(ctx, record); err != nil {
		return nil, err
	}

	slog.Info("catch resolved",
		"player_id", record.ID,
		"location", record.Location,
		"status", outcome.Status,
		"rarity", outcome.Rarity,
		"reward", outcome.Reward,
		"luck", luck)

	return &ResolveCatchOutput{
		Outcome: outcome,
		Balance: record.Balance,
	}, nil
}

// resolveOutcome looks up the pool and rod capacity for the record and
// delegates to the pure draw. It never mutates the record; the caller
// applies the side effects.
func (o *orchestrator) resolveOutcome(record *fishing.PlayerRecord, luck int32) *Outcome {
	pool := o.catalog.Pool(record.Location)

	var capacity float64
	if rod, ok := o.catalog.Rod(record.EquippedRod); ok {
		capacity = rod.Capacity
	}

	return resolveDraw(pool, capacity, luck, o.randFloat64, slog.Default())
}

// resolveDraw performs one weighted draw and the magnitude/capacity
// check. Randomness comes in through roll so the draw is deterministic
// under test.
func resolveDraw(pool []fishing.Item, capacity float64, luck int32, roll func() float64, log *slog.Logger) *Outcome {
	if len(pool) == 0 {
		// Every catalog location ships a non-empty pool; this only
		// happens when the record points at a retired location.
		log.Warn("empty item pool")
		return &Outcome{Status: OutcomeFailure, Rarity: fishing.RarityFailed}
	}

	idx := pickWeighted(catchWeights(pool, luck), roll())
	item := pool[idx]

	magnitude := item.MagnitudeMin + roll()*(item.MagnitudeMax-item.MagnitudeMin)

	if magnitude > capacity {
		return &Outcome{
			Status:    OutcomeFailure,
			Item:      &item,
			Rarity:    item.Rarity,
			Magnitude: magnitude,
		}
	}

	weightRatio := magnitude / item.MagnitudeMin
	if weightRatio < 1 {
		weightRatio = 1
	}

	return &Outcome{
		Status:    OutcomeSuccess,
		Item:      &item,
		Rarity:    item.Rarity,
		Magnitude: magnitude,
		Reward:    item.BaseReward * weightRatio,
	}
}

// catchWeights computes the sampling weight for every pool entry. The
// luck term is a common factor over the inverted score, so a fixed luck
// increment boosts low-score entries by a larger relative margin.
func catchWeights(pool []fishing.Item, luck int32) []float64 {
	weights := make([]float64, len(pool))
	for i, item := range pool {
		weights[i] = (1 / item.Score) * (1 + float64(luck)/100)
	}
	return weights
}

// pickWeighted maps a uniform roll in [0, 1) onto the cumulative weight
// line and returns the index it lands on.
func pickWeighted(weights []float64, roll float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}

	target := roll * total
	var cum float64
	for i, w := range weights {
		cum += w
		if target < cum {
			return i
		}
	}
	return len(weights) - 1
}
