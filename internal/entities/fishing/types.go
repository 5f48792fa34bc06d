package fishing

// Location represents a fishing island with its unlock gating.
// Rank is the position in the unlock sequence; islands unlock strictly
// in rank order.
type Location struct {
	Name        string
	Price       float64
	UnlockLevel int32
	Rank        int32
}

// Item represents one catchable entry in a location's pool.
// NOTE: This is a data-only struct populated once at ingestion. BaseReward
// is derived from Score and Rarity at parse time and never recomputed.
type Item struct {
	Name   string
	Rarity Rarity

	// Occurrence score; smaller = rarer. Sampling weight is 1/Score
	// scaled by luck, so Score must be positive.
	Score float64

	// Magnitude range the catch roll draws from, in kg.
	MagnitudeMin float64
	MagnitudeMax float64

	// True when the magnitude range came from the secret override table
	// rather than the default range.
	SecretMagnitude bool

	BaseReward float64
}

// Rod is the equippable gear that resolves catches. Capacity is the
// maximum magnitude the rod can land; heavier catches are lost.
type Rod struct {
	Name            string
	Rarity          Rarity
	LuckBonus       int32
	SpeedBonus      int32
	Capacity        float64
	Price           float64
	MaxEnchantLevel int32
}

// Bait is the equippable consumable. Baits contribute luck only and
// have no capacity limit.
type Bait struct {
	Name      string
	LuckBonus int32
	Price     float64
}
