// Package fishing implements the fishing game entities
package fishing

// Rarity is the ordered rarity tier of a catchable item.
type Rarity int

// Rarity tiers, ordered from most to least common. RarityFailed is a
// sentinel used only for failed catch outcomes and never appears in a
// catalog pool.
const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
	RarityMythic
	RaritySecret
	RarityFailed
)

var rarityNames = map[Rarity]string{
	RarityCommon:    "Common",
	RarityUncommon:  "Uncommon",
	RarityRare:      "Rare",
	RarityEpic:      "Epic",
	RarityLegendary: "Legendary",
	RarityMythic:    "Mythic",
	RaritySecret:    "Secret",
	RarityFailed:    "Failed",
}

// String returns the display name of the rarity
func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return "Common"
}

// MarshalText implements encoding.TextMarshaler so player records
// serialize rarities by name rather than ordinal.
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, ok := ParseRarity(string(text))
	if !ok {
		parsed = RarityCommon
	}
	*r = parsed
	return nil
}

// ParseRarity maps a catalog rarity name to its tier. The second return
// is false for names not in the tier enum.
func ParseRarity(name string) (Rarity, bool) {
	for tier, n := range rarityNames {
		if n == name {
			return tier, true
		}
	}
	return RarityCommon, false
}

// RewardMultiplier returns the rarity-dependent multiplier used when
// deriving an item's base reward from its occurrence score.
func (r Rarity) RewardMultiplier() float64 {
	switch r {
	case RaritySecret:
		return 10
	case RarityMythic:
		return 5
	case RarityLegendary:
		return 2
	default:
		return 1
	}
}
