package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultText(t *testing.T) {
	result := &Result{Picks: []TierPicks{
		{Tier: TierGreen, Players: []string{"Alpha One", "Bravo Two"}},
		{Tier: TierYellow, Players: []string{}},
		{Tier: TierRed, Players: []string{"Echo Five"}},
	}}

	want := "🟢 Alpha One, Bravo Two\n🟡 No Yellow Plays\n🔴 Echo Five"
	assert.Equal(t, want, result.Text())
}

func TestResultTextFourTiers(t *testing.T) {
	result := &Result{Picks: []TierPicks{
		{Tier: TierGreen, Players: []string{"A"}},
		{Tier: TierYellow, Players: []string{"B"}},
		{Tier: TierRed, Players: []string{"C"}},
		{Tier: TierPurple, Players: []string{}},
	}}

	want := "🟢 A\n🟡 B\n🔴 C\n🟣 No Purple Plays"
	assert.Equal(t, want, result.Text())
}

func TestTierJSON(t *testing.T) {
	data, err := json.Marshal(TierPicks{Tier: TierGreen, Players: []string{"A"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tier":"green","players":["A"]}`, string(data))
}

func TestTierLabels(t *testing.T) {
	assert.Equal(t, "Best Bet", TierGreen.Label())
	assert.Equal(t, "Favorite", TierYellow.Label())
	assert.Equal(t, "Underdog", TierRed.Label())
}

func TestPolicyValidate(t *testing.T) {
	assert.NoError(t, DefaultPolicy().Validate())

	bad := DefaultPolicy()
	bad.Quota = 0
	assert.Error(t, bad.Validate())

	bad = DefaultPolicy()
	bad.Hi, bad.Lo = 85, 110
	assert.Error(t, bad.Validate())

	bad = DefaultPolicy()
	bad.RankTiers = 5
	assert.Error(t, bad.Validate())
}
