package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStatKey(t *testing.T) {
	tests := []struct {
		sport, stat, want string
		ok                bool
	}{
		{"nba", "PPG", "PTS", true},
		{"NBA", "ppg", "PTS", true},
		{"nba", "3PM", "FG3M", true},
		{"cbb", "RPG", "RPG", true},
		{"nhl", "goals", "G", true},
		{"mlb", "RBI", "RBI", true},
		{"nba", "SAVES", "", false},
		{"curling", "PPG", "", false},
	}
	for _, tt := range tests {
		key, ok := ResolveStatKey(tt.sport, tt.stat)
		assert.Equal(t, tt.ok, ok, "%s/%s", tt.sport, tt.stat)
		assert.Equal(t, tt.want, key, "%s/%s", tt.sport, tt.stat)
	}
}

func TestCatalogTargetMode(t *testing.T) {
	mlb, ok := Catalog("mlb")
	require.True(t, ok)
	assert.False(t, mlb.UsesTarget)

	nba, ok := Catalog("nba")
	require.True(t, ok)
	assert.True(t, nba.UsesTarget)
}

func TestSupportedSports(t *testing.T) {
	sports := SupportedSports()
	assert.Equal(t, []string{"cbb", "mlb", "nba", "nhl", "wnba"}, sports)
}

func TestPlayerStatRecord(t *testing.T) {
	stat := PlayerStat{
		Name:  "John Smith",
		Team:  "AAA",
		Sport: "nba",
		Stats: map[string]interface{}{
			"PTS":  25.4,
			"AST":  "6",
			"REB":  "1,234",
			"FG3M": "n/a",
			"MIN":  nil,
		},
	}

	rec := stat.Record()
	assert.Equal(t, "John Smith", rec.Name)
	assert.Equal(t, 25.4, rec.Stats["PTS"])
	assert.Equal(t, 6.0, rec.Stats["AST"])
	assert.Equal(t, 1234.0, rec.Stats["REB"])
	_, ok := rec.Stats["FG3M"]
	assert.False(t, ok, "unparseable value should be missing")
	_, ok = rec.Stats["MIN"]
	assert.False(t, ok)
}
