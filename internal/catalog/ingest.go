// Package catalog ingests the static game tables into an immutable Store.
//
// The fish table is a semi-structured CSV: a row either opens a new
// location ("3. Kohana Island,<first fish row>") or continues the current
// one (leading empty field). Occurrence scores arrive formatted for
// display, with dot thousand-separators and M/K magnitude suffixes
// ("1.500.000", "2.5M"), and are normalized at parse time.
package catalog

import (
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/fishing-api/internal/entities/fishing"
	"github.com/KirkDiggler/fishing-api/internal/errors"
)

const (
	defaultMagnitudeMin = 1.0
	defaultMagnitudeMax = 10.0
)

var (
	locationMarkerRegex = regexp.MustCompile(`^(\d+)\.\s*(.+)$`)
	parentheticalRegex  = regexp.MustCompile(`\s*\([^)]*\)`)
)

// parseFishTable parses the raw fish table into per-location item pools.
// Malformed rows and unknown rarities are skipped and logged; a
// non-positive occurrence score or an unknown location marker is a fatal
// configuration error.
func parseFishTable(raw string, locations map[string]fishing.Location) (map[string][]fishing.Item, error) {
	pools := make(map[string][]fishing.Item)
	seen := make(map[string]map[string]bool)

	currentLocation := ""
	for lineNo, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")

		if m := locationMarkerRegex.FindStringSubmatch(parts[0]); m != nil {
			name := strings.TrimSpace(m[2])
			if _, ok := locations[name]; !ok {
				return nil, errors.InvalidArgumentf("fish table line %d: unknown location %q", lineNo+1, name)
			}
			currentLocation = name
			parts = parts[1:]
		} else if parts[0] == "" {
			parts = parts[1:]
		}

		if len(parts) == 0 {
			continue
		}
		if currentLocation == "" {
			return nil, errors.InvalidArgumentf("fish table line %d: item row before any location marker", lineNo+1)
		}
		if len(parts) < 3 {
			slog.Warn("Skipping malformed fish row", "line", lineNo+1, "row", line)
			continue
		}

		name := strings.TrimSpace(parts[0])
		rarityName := strings.TrimSpace(parts[1])
		scoreStr := strings.TrimSpace(parts[2])

		rarity, ok := fishing.ParseRarity(rarityName)
		if !ok || rarity == fishing.RarityFailed {
			slog.Warn("Skipping fish row with unknown rarity", "line", lineNo+1, "name", name, "rarity", rarityName)
			continue
		}

		score, err := parseScore(scoreStr)
		if err != nil {
			slog.Warn("Skipping fish row with unparseable score", "line", lineNo+1, "name", name, "score", scoreStr)
			continue
		}
		if score <= 0 {
			return nil, errors.InvalidArgumentf("fish table line %d: non-positive occurrence score for %q", lineNo+1, name)
		}

		// First occurrence wins within a location.
		if seen[currentLocation] == nil {
			seen[currentLocation] = make(map[string]bool)
		}
		if seen[currentLocation][name] {
			continue
		}
		seen[currentLocation][name] = true

		pools[currentLocation] = append(pools[currentLocation], buildItem(name, rarity, score))
	}

	return pools, nil
}

// buildItem derives the canonical Item from a parsed row. The base
// reward is a pure function of score and rarity, fixed at ingestion.
func buildItem(name string, rarity fishing.Rarity, score float64) fishing.Item {
	item := fishing.Item{
		Name:         name,
		Rarity:       rarity,
		Score:        score,
		MagnitudeMin: defaultMagnitudeMin,
		MagnitudeMax: defaultMagnitudeMax,
		BaseReward:   baseReward(score, rarity),
	}

	if rarity == fishing.RaritySecret {
		if r, ok := lookupSecretMagnitude(name); ok {
			item.MagnitudeMin = r.Min
			item.MagnitudeMax = r.Max
			item.SecretMagnitude = true
		}
	}

	return item
}

// baseReward computes the derived reward value:
// (score/10000)*1.5 + (score/1000)*rarityMultiplier.
func baseReward(score float64, rarity fishing.Rarity) float64 {
	return (score/10000)*1.5 + (score/1000)*rarity.RewardMultiplier()
}

// lookupSecretMagnitude resolves the override range for a secret-tier
// item, trying the clean name (parenthetical qualifiers stripped) before
// the raw name.
func lookupSecretMagnitude(name string) (magnitudeRange, bool) {
	clean := strings.TrimSpace(parentheticalRegex.ReplaceAllString(name, ""))
	if r, ok := secretMagnitudes[clean]; ok {
		return r, true
	}
	r, ok := secretMagnitudes[name]
	return r, ok
}

// parseScore normalizes a display-formatted occurrence score. Dots are
// thousand separators, not decimal points: "1.500.000" is 1.5 million.
func parseScore(s string) (float64, error) {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "M", "000000")
	s = strings.ReplaceAll(s, "K", "000")
	s = strings.TrimSpace(s)

	score, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, strconv.ErrSyntax
	}
	return score, nil
}
