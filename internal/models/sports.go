package models

import (
	"sort"
	"strings"
)

// SportCatalog describes how one sport's stat names map onto record field
// keys, and whether the sport's picks are computed against a target value.
// Resolution happens once at the API/CLI boundary; the engine only ever sees
// resolved field keys.
type SportCatalog struct {
	// StatKeys maps display stat names (what callers send) to record field
	// keys (what the feed stores).
	StatKeys map[string]string
	// UsesTarget is false for sports whose picks are rank-only (no target
	// math), currently just MLB.
	UsesTarget bool
}

var sportCatalogs = map[string]SportCatalog{
	"nba": {
		StatKeys:   map[string]string{"PPG": "PTS", "APG": "AST", "RPG": "REB", "3PM": "FG3M"},
		UsesTarget: true,
	},
	"wnba": {
		StatKeys:   map[string]string{"PPG": "PTS", "APG": "AST", "RPG": "REB", "3PM": "FG3M"},
		UsesTarget: true,
	},
	"cbb": {
		StatKeys:   map[string]string{"PPG": "PPG", "APG": "APG", "RPG": "RPG", "3PM": "3PM"},
		UsesTarget: true,
	},
	"nhl": {
		StatKeys:   map[string]string{"GOALS": "G", "ASSISTS": "A", "POINTS": "PTS", "SOG": "shotsPerGame"},
		UsesTarget: true,
	},
	"mlb": {
		StatKeys: map[string]string{
			"RBI": "RBI", "HR": "HR", "G": "G", "AB": "AB",
			"R": "R", "H": "H", "AVG": "AVG", "OBP": "OBP", "OPS": "OPS",
		},
		UsesTarget: false,
	},
}

// Catalog returns the catalog for a sport, matching case-insensitively.
func Catalog(sport string) (SportCatalog, bool) {
	c, ok := sportCatalogs[strings.ToLower(strings.TrimSpace(sport))]
	return c, ok
}

// ResolveStatKey maps a display stat name to the record field key for a
// sport.
func ResolveStatKey(sport, stat string) (string, bool) {
	c, ok := Catalog(sport)
	if !ok {
		return "", false
	}
	key, ok := c.StatKeys[strings.ToUpper(strings.TrimSpace(stat))]
	return key, ok
}

// SupportedSports lists the configured sports in stable order.
func SupportedSports() []string {
	sports := make([]string, 0, len(sportCatalogs))
	for s := range sportCatalogs {
		sports = append(sports, s)
	}
	sort.Strings(sports)
	return sports
}

// StatNames lists the display stat names a sport accepts, in stable order.
func StatNames(sport string) []string {
	c, ok := Catalog(sport)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(c.StatKeys))
	for n := range c.StatKeys {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
