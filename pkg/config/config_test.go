package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierPolicyFromConfig(t *testing.T) {
	cfg := &Config{TierHi: 120, TierLo: 90, PickQuota: 3, RedSortAscending: true}

	policy := cfg.TierPolicy()
	assert.Equal(t, 120.0, policy.Hi)
	assert.Equal(t, 90.0, policy.Lo)
	assert.Equal(t, 3, policy.Quota)
	assert.True(t, policy.RedAscending)
	assert.NoError(t, policy.Validate())
}

func TestBanListParsing(t *testing.T) {
	cfg := &Config{
		BannedPlayers:     []string{"First Guy", "Second Guy"},
		StatBannedPlayers: "AST=Third Guy|Fourth Guy; 3PM=Fifth Guy",
	}

	bans := cfg.BanList()
	assert.True(t, bans.Banned("First Guy", "PTS"))
	assert.True(t, bans.Banned("second guy", "AST"))
	assert.True(t, bans.Banned("Third Guy", "AST"))
	assert.False(t, bans.Banned("Third Guy", "PTS"))
	assert.True(t, bans.Banned("Fifth Guy", "3PM"))
	assert.False(t, bans.Banned("Sixth Guy", "AST"))
}

func TestBanListParsingMalformedEntries(t *testing.T) {
	cfg := &Config{StatBannedPlayers: "no-equals-here;=orphan names;AST="}

	bans := cfg.BanList()
	assert.False(t, bans.Banned("no-equals-here", "AST"))
	assert.False(t, bans.Banned("orphan names", "AST"))
}
