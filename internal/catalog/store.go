package catalog

import (
	_ "embed"

	"github.com/KirkDiggler/fishing-api/internal/entities/fishing"
	"github.com/KirkDiggler/fishing-api/internal/errors"
)

//go:embed data/fish_table.txt
var rawFishTable string

// Store holds the static game tables. It is populated once by Load and
// read-only afterwards, so it can be shared across goroutines without
// locking.
type Store struct {
	locations  []fishing.Location
	byName     map[string]fishing.Location
	pools      map[string][]fishing.Item
	rods       map[string]fishing.Rod
	baits      map[string]fishing.Bait
	milestones []fishing.MilestoneQuest
	dailyPool  []fishing.DailyQuestTemplate
}

// Load parses the embedded tables and builds the Store. Any
// configuration error aborts startup.
func Load() (*Store, error) {
	byName := make(map[string]fishing.Location, len(locationTable))
	for _, loc := range locationTable {
		byName[loc.Name] = loc
	}

	pools, err := parseFishTable(rawFishTable, byName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse fish table")
	}

	for _, loc := range locationTable {
		if len(pools[loc.Name]) == 0 {
			return nil, errors.InvalidArgumentf("location %q has an empty fish pool", loc.Name)
		}
	}

	rods := make(map[string]fishing.Rod, len(rodTable))
	for _, rod := range rodTable {
		rods[rod.Name] = rod
	}

	baits := make(map[string]fishing.Bait, len(baitTable))
	for _, bait := range baitTable {
		baits[bait.Name] = bait
	}

	return &Store{
		locations:  locationTable,
		byName:     byName,
		pools:      pools,
		rods:       rods,
		baits:      baits,
		milestones: milestoneQuestTable,
		dailyPool:  dailyQuestTemplateTable,
	}, nil
}

// Locations returns all locations in unlock-rank order.
func (s *Store) Locations() []fishing.Location {
	return s.locations
}

// Location looks up a location by name
func (s *Store) Location(name string) (fishing.Location, bool) {
	loc, ok := s.byName[name]
	return loc, ok
}

// Pool returns the item pool for a location, nil if the location is
// unknown. Callers must not mutate the returned slice.
func (s *Store) Pool(location string) []fishing.Item {
	return s.pools[location]
}

// Item finds an item by name, searching pools in location rank order.
// Items that appear in several pools share their stats, so the first
// match is authoritative.
func (s *Store) Item(name string) (fishing.Item, bool) {
	for _, loc := range s.locations {
		for _, item := range s.pools[loc.Name] {
			if item.Name == name {
				return item, true
			}
		}
	}
	return fishing.Item{}, false
}

// Rod looks up a rod by name
func (s *Store) Rod(name string) (fishing.Rod, bool) {
	rod, ok := s.rods[name]
	return rod, ok
}

// Bait looks up a bait by name
func (s *Store) Bait(name string) (fishing.Bait, bool) {
	bait, ok := s.baits[name]
	return bait, ok
}

// Rods returns all rods in shop order.
func (s *Store) Rods() []fishing.Rod {
	return rodTable
}

// Baits returns all baits in shop order.
func (s *Store) Baits() []fishing.Bait {
	return baitTable
}

// Milestones returns the permanent quest definitions.
func (s *Store) Milestones() []fishing.MilestoneQuest {
	return s.milestones
}

// Milestone looks up a permanent quest by ID
func (s *Store) Milestone(id string) (fishing.MilestoneQuest, bool) {
	for _, q := range s.milestones {
		if q.ID == id {
			return q, true
		}
	}
	return fishing.MilestoneQuest{}, false
}

// DailyTemplates returns the pool daily quests are drawn from.
func (s *Store) DailyTemplates() []fishing.DailyQuestTemplate {
	return s.dailyPool
}

// NextLocked returns the lowest-ranked location the player has not
// unlocked yet, false when everything is unlocked.
func (s *Store) NextLocked(unlocked []string) (fishing.Location, bool) {
	owned := make(map[string]bool, len(unlocked))
	for _, name := range unlocked {
		owned[name] = true
	}
	for _, loc := range s.locations {
		if !owned[loc.Name] {
			return loc, true
		}
	}
	return fishing.Location{}, false
}
