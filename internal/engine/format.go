package engine

import "strings"

// TierPicks is one emitted tier: its label and the ordered player names.
type TierPicks struct {
	Tier    Tier     `json:"tier"`
	Players []string `json:"players"`
}

// Result is the ordered selection, tiers in fixed desirability order. It is
// the stable structure downstream publishers consume; Text renders the
// plain-text block those publishers display verbatim.
type Result struct {
	Picks []TierPicks `json:"picks"`
}

// Text renders the result as the emoji block contract:
//
//	🟢 <green players or "No Green Plays">
//	🟡 <yellow players or "No Yellow Plays">
//	🔴 <red players or "No Red Plays">
//
// with a fourth 🟣 line when a Purple tier is present.
func (r *Result) Text() string {
	lines := make([]string, 0, len(r.Picks))
	for _, tp := range r.Picks {
		if len(tp.Players) == 0 {
			lines = append(lines, tp.Tier.Emoji()+" "+tp.Tier.EmptyText())
			continue
		}
		lines = append(lines, tp.Tier.Emoji()+" "+strings.Join(tp.Players, ", "))
	}
	return strings.Join(lines, "\n")
}

// Empty reports whether no tier has any players.
func (r *Result) Empty() bool {
	for _, tp := range r.Picks {
		if len(tp.Players) > 0 {
			return false
		}
	}
	return true
}

// formatResult orders tiers Green, Yellow, Red[, Purple] and the players
// within each tier by the tier's sort policy: score descending everywhere,
// except the Red tier flips to ascending when the policy asks for
// closest-to-threshold-last display.
func formatResult(picks map[Tier][]scoredRecord, tiers []Tier, policy TierPolicy) *Result {
	result := &Result{Picks: make([]TierPicks, 0, len(tiers))}
	for _, tier := range tiers {
		members := append([]scoredRecord(nil), picks[tier]...)
		sortByScoreDesc(members)
		if tier == TierRed && policy.RedAscending {
			for i, j := 0, len(members)-1; i < j; i, j = i+1, j-1 {
				members[i], members[j] = members[j], members[i]
			}
		}
		names := make([]string, 0, len(members))
		for _, m := range members {
			names = append(names, cleanDisplayName(m.record.Name))
		}
		result.Picks = append(result.Picks, TierPicks{Tier: tier, Players: names})
	}
	return result
}

// emptyResult emits every tier with no players, used when the input set is or
// becomes empty.
func emptyResult(tiers []Tier) *Result {
	result := &Result{Picks: make([]TierPicks, 0, len(tiers))}
	for _, tier := range tiers {
		result.Picks = append(result.Picks, TierPicks{Tier: tier, Players: []string{}})
	}
	return result
}

// thresholdTiers is the fixed output order in target-relative mode.
var thresholdTiers = []Tier{TierGreen, TierYellow, TierRed}
