package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(name, team string, stats map[string]float64) PlayerRecord {
	return PlayerRecord{Name: name, Team: team, Stats: stats}
}

func pts(v float64) map[string]float64 {
	return map[string]float64{"PTS": v}
}

func tierPlayers(t *testing.T, r *Result, tier Tier) []string {
	t.Helper()
	for _, tp := range r.Picks {
		if tp.Tier == tier {
			return tp.Players
		}
	}
	t.Fatalf("tier %s not present in result", tier)
	return nil
}

func TestAnalyzeTargetRelativeBackfill(t *testing.T) {
	records := []PlayerRecord{
		record("Alpha One", "AAA", pts(30)),
		record("Bravo Two", "AAA", pts(25)),
		record("Charlie Three", "BBB", pts(20)),
		record("Delta Four", "BBB", pts(15)),
		record("Echo Five", "BBB", pts(10)),
	}
	req := Request{Statistic: "PTS", Target: 20, Mode: ModeTargetRelative}

	result, err := Analyze(records, req, DefaultPolicy())
	require.NoError(t, err)

	// Scores 150, 125, 100, 75, 50 against hi=110/lo=85: the two Favorites
	// backfill the 100 into Yellow, leaving Green empty.
	assert.Equal(t, []string{"Alpha One", "Bravo Two", "Charlie Three"}, tierPlayers(t, result, TierYellow))
	assert.Empty(t, tierPlayers(t, result, TierGreen))
	assert.Equal(t, []string{"Delta Four", "Echo Five"}, tierPlayers(t, result, TierRed))
}

func TestAnalyzeTierOrderAndOrdering(t *testing.T) {
	records := []PlayerRecord{
		record("High Yellow", "AAA", pts(30)),
		record("Low Yellow", "AAA", pts(23)),
		record("Mid Yellow", "AAA", pts(26)),
		record("Top Green", "BBB", pts(21)),
		record("Low Green", "BBB", pts(18)),
		record("Near Red", "BBB", pts(16)),
		record("Far Red", "CCC", pts(5)),
	}
	req := Request{Statistic: "PTS", Target: 20, Mode: ModeTargetRelative}

	result, err := Analyze(records, req, DefaultPolicy())
	require.NoError(t, err)

	require.Len(t, result.Picks, 3)
	assert.Equal(t, TierGreen, result.Picks[0].Tier)
	assert.Equal(t, TierYellow, result.Picks[1].Tier)
	assert.Equal(t, TierRed, result.Picks[2].Tier)

	assert.Equal(t, []string{"Top Green", "Low Green"}, tierPlayers(t, result, TierGreen))
	assert.Equal(t, []string{"High Yellow", "Mid Yellow", "Low Yellow"}, tierPlayers(t, result, TierYellow))
	// Red renders descending by default: closest to the boundary first.
	assert.Equal(t, []string{"Near Red", "Far Red"}, tierPlayers(t, result, TierRed))
}

func TestAnalyzeRedAscendingPolicy(t *testing.T) {
	records := []PlayerRecord{
		record("Near Red", "BBB", pts(16)),
		record("Far Red", "CCC", pts(5)),
	}
	policy := DefaultPolicy()
	policy.RedAscending = true
	req := Request{Statistic: "PTS", Target: 20, Mode: ModeTargetRelative}

	result, err := Analyze(records, req, policy)
	require.NoError(t, err)
	assert.Equal(t, []string{"Far Red", "Near Red"}, tierPlayers(t, result, TierRed))
}

func TestAnalyzeNoMatchingTeams(t *testing.T) {
	records := []PlayerRecord{record("Alpha One", "BBB", pts(10))}
	req := Request{Statistic: "PTS", Target: 20, Mode: ModeTargetRelative, TeamFilter: []string{"AAA"}}

	_, err := Analyze(records, req, DefaultPolicy())
	var noTeams *NoMatchingTeamsError
	require.ErrorAs(t, err, &noTeams)
	assert.Equal(t, []string{"AAA"}, noTeams.Teams)
}

func TestAnalyzeInvalidTarget(t *testing.T) {
	records := []PlayerRecord{record("Alpha One", "AAA", pts(10))}

	for _, target := range []float64{0, -5} {
		req := Request{Statistic: "PTS", Target: target, Mode: ModeTargetRelative}
		_, err := Analyze(records, req, DefaultPolicy())
		var invalid *InvalidTargetError
		require.ErrorAs(t, err, &invalid, "target %g", target)
	}

	// Rank-only mode tolerates an absent target.
	req := Request{Statistic: "PTS", Mode: ModeRankOnly}
	_, err := Analyze(records, req, DefaultPolicy())
	assert.NoError(t, err)
}

func TestAnalyzeInvalidStatistic(t *testing.T) {
	records := []PlayerRecord{record("Alpha One", "AAA", pts(10))}
	req := Request{Statistic: "REB", Target: 5, Mode: ModeTargetRelative}

	_, err := Analyze(records, req, DefaultPolicy())
	var invalid *InvalidStatisticError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "REB", invalid.Statistic)
}

func TestAnalyzeRankOnlyTopTwelve(t *testing.T) {
	records := make([]PlayerRecord, 0, 14)
	names := []string{
		"P One", "P Two", "P Three", "P Four", "P Five", "P Six", "P Seven",
		"P Eight", "P Nine", "P Ten", "P Eleven", "P Twelve", "P Thirteen", "P Fourteen",
	}
	for i, name := range names {
		records = append(records, record(name, "AAA", pts(float64(100-i))))
	}

	policy := DefaultPolicy()
	policy.RankTiers = 4
	req := Request{Statistic: "PTS", Mode: ModeRankOnly}

	result, err := Analyze(records, req, policy)
	require.NoError(t, err)

	require.Len(t, result.Picks, 4)
	assert.Equal(t, []string{"P One", "P Two", "P Three"}, tierPlayers(t, result, TierGreen))
	assert.Equal(t, []string{"P Four", "P Five", "P Six"}, tierPlayers(t, result, TierYellow))
	assert.Equal(t, []string{"P Seven", "P Eight", "P Nine"}, tierPlayers(t, result, TierRed))
	assert.Equal(t, []string{"P Ten", "P Eleven", "P Twelve"}, tierPlayers(t, result, TierPurple))
}

func TestAnalyzeRankOnlyShortInput(t *testing.T) {
	records := []PlayerRecord{
		record("P One", "AAA", pts(50)),
		record("P Two", "AAA", pts(40)),
		record("P Three", "AAA", pts(30)),
		record("P Four", "AAA", pts(20)),
	}
	req := Request{Statistic: "PTS", Mode: ModeRankOnly}

	result, err := Analyze(records, req, DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, []string{"P One", "P Two", "P Three"}, tierPlayers(t, result, TierGreen))
	assert.Equal(t, []string{"P Four"}, tierPlayers(t, result, TierYellow))
	assert.Empty(t, tierPlayers(t, result, TierRed))
}

func TestAnalyzeDuplicateIdentityCollapsed(t *testing.T) {
	records := []PlayerRecord{
		record("John Smith", "AAA", pts(12)),
		record("john  smith", "aaa", pts(28)),
		record("Other Guy", "AAA", pts(20)),
	}
	req := Request{Statistic: "PTS", Target: 20, Mode: ModeTargetRelative}

	result, err := Analyze(records, req, DefaultPolicy())
	require.NoError(t, err)

	// Higher-value duplicate wins; only one John Smith anywhere in the output.
	seen := 0
	for _, tp := range result.Picks {
		for _, p := range tp.Players {
			if normalizeName(p) == "john smith" {
				seen++
			}
		}
	}
	assert.Equal(t, 1, seen)
	assert.Contains(t, tierPlayers(t, result, TierYellow), "john smith")
}

func TestAnalyzeBannedPlayerExcluded(t *testing.T) {
	records := []PlayerRecord{
		record("Star Player", "AAA", pts(40)),
		record("Backup Player", "AAA", pts(30)),
		record("Role Player", "AAA", pts(22)),
	}
	req := Request{
		Statistic: "PTS",
		Target:    20,
		Mode:      ModeTargetRelative,
		Bans:      NewBanList([]string{"Star Player"}, nil),
	}

	result, err := Analyze(records, req, DefaultPolicy())
	require.NoError(t, err)

	for _, tp := range result.Picks {
		assert.NotContains(t, tp.Players, "Star Player")
	}
	// Next-best eligible players fill the tier.
	assert.Equal(t, []string{"Backup Player", "Role Player"}, tierPlayers(t, result, TierYellow))
}

func TestAnalyzeEmptyInput(t *testing.T) {
	req := Request{Statistic: "PTS", Target: 20, Mode: ModeTargetRelative}

	result, err := Analyze(nil, req, DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, result.Picks, 3)
	assert.True(t, result.Empty())
	assert.Equal(t, "🟢 No Green Plays\n🟡 No Yellow Plays\n🔴 No Red Plays", result.Text())
}

func TestAnalyzeDeterminism(t *testing.T) {
	records := []PlayerRecord{
		record("Alpha One", "AAA", pts(22)),
		record("Bravo Two", "AAA", pts(22)),
		record("Charlie Three", "BBB", pts(22)),
		record("Delta Four", "BBB", pts(18)),
		record("Echo Five", "BBB", pts(14)),
	}
	req := Request{Statistic: "PTS", Target: 20, Mode: ModeTargetRelative}

	first, err := Analyze(records, req, DefaultPolicy())
	require.NoError(t, err)

	// Same players, different input order.
	reordered := []PlayerRecord{records[4], records[2], records[0], records[3], records[1]}
	for i := 0; i < 5; i++ {
		again, err := Analyze(reordered, req, DefaultPolicy())
		require.NoError(t, err)
		assert.Equal(t, first.Text(), again.Text())
		assert.Equal(t, first.Picks, again.Picks)
	}
}

func TestAnalyzeProperties(t *testing.T) {
	records := []PlayerRecord{
		record("A Player", "AAA", pts(31)),
		record("B Player", "AAA", pts(27)),
		record("C Player", "AAA", pts(24)),
		record("D Player", "BBB", pts(23)),
		record("E Player", "BBB", pts(21)),
		record("F Player", "BBB", pts(19)),
		record("G Player", "CCC", pts(17)),
		record("H Player", "CCC", pts(12)),
		record("I Player", "CCC", pts(8)),
		record("J Player", "DDD", pts(3)),
	}
	req := Request{Statistic: "PTS", Target: 20, Mode: ModeTargetRelative}
	policy := DefaultPolicy()

	result, err := Analyze(records, req, policy)
	require.NoError(t, err)

	inputNames := make(map[string]bool, len(records))
	for _, rec := range records {
		inputNames[rec.Name] = true
	}

	seen := make(map[string]bool)
	for _, tp := range result.Picks {
		// Quota bound.
		assert.LessOrEqual(t, len(tp.Players), policy.Quota)
		for _, p := range tp.Players {
			// Subset of input.
			assert.True(t, inputNames[p], "player %s not in input", p)
			// Disjointness across tiers.
			assert.False(t, seen[p], "player %s appears in two tiers", p)
			seen[p] = true
		}
	}
}
