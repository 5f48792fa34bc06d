package fishing

import "time"

// Default loadout for freshly created players.
const (
	StarterRod      = "Starter Rod"
	StarterBait     = "Starter Bait"
	StartingBalance = 500.0
	HomeLocation    = "Fisherman Island"
)

// PlayerRecord is the per-user mutable state. It is mutated only by the
// fishing orchestrator while holding that player's lock; repositories
// treat it as an opaque document.
type PlayerRecord struct {
	ID      string
	Balance float64

	// Location must always be a member of UnlockedLocations.
	Location          string
	UnlockedLocations []string

	OwnedRods    []string
	OwnedBaits   []string
	EquippedRod  string
	EquippedBait string

	// Enchantment level per owned rod name.
	Enchantments map[string]int32

	// Item name -> count. Counts only grow via catches and shrink via sells.
	Inventory map[string]int32

	// Milestone quest ID -> progress counter, capped at the quest goal.
	QuestProgress map[string]int32

	// Milestone quest IDs already claimed.
	ClaimedQuests map[string]bool

	// Exactly three live daily quest instances.
	DailyQuests []DailyQuest

	LastDailyReset time.Time
	LastCatch      time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDefaultRecord returns a fully-populated record for a first-time
// player. The daily quest set is drawn by the caller so that record
// construction stays deterministic.
func NewDefaultRecord(playerID string, now time.Time, dailies []DailyQuest) *PlayerRecord {
	return &PlayerRecord{
		ID:                playerID,
		Balance:           StartingBalance,
		Location:          HomeLocation,
		UnlockedLocations: []string{HomeLocation},
		OwnedRods:         []string{StarterRod},
		OwnedBaits:        []string{StarterBait},
		EquippedRod:       StarterRod,
		EquippedBait:      StarterBait,
		Enchantments:      map[string]int32{StarterRod: 0},
		Inventory:         map[string]int32{},
		QuestProgress:     map[string]int32{},
		ClaimedQuests:     map[string]bool{},
		DailyQuests:       dailies,
		LastDailyReset:    now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// OwnsRod reports whether the player owns the named rod
func (p *PlayerRecord) OwnsRod(name string) bool {
	return contains(p.OwnedRods, name)
}

// OwnsBait reports whether the player owns the named bait
func (p *PlayerRecord) OwnsBait(name string) bool {
	return contains(p.OwnedBaits, name)
}

// HasUnlocked reports whether the named location is in the unlocked set
func (p *PlayerRecord) HasUnlocked(location string) bool {
	return contains(p.UnlockedLocations, location)
}

// EnchantLevel returns the enchantment level of the named rod, zero if
// never enchanted.
func (p *PlayerRecord) EnchantLevel(rod string) int32 {
	if p.Enchantments == nil {
		return 0
	}
	return p.Enchantments[rod]
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
