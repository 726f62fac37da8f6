package engine

import (
	"encoding/json"
	"fmt"
)

// Tier is one of the ordered desirability bands players are classified into.
// The ordering is fixed: Green > Yellow > Red > Purple. Purple only exists in
// rank-only top-12 output.
type Tier int

const (
	TierGreen Tier = iota
	TierYellow
	TierRed
	TierPurple
)

func (t Tier) String() string {
	switch t {
	case TierGreen:
		return "green"
	case TierYellow:
		return "yellow"
	case TierRed:
		return "red"
	case TierPurple:
		return "purple"
	}
	return "unknown"
}

// Label returns the display label used alongside the color.
func (t Tier) Label() string {
	switch t {
	case TierGreen:
		return "Best Bet"
	case TierYellow:
		return "Favorite"
	case TierRed:
		return "Underdog"
	case TierPurple:
		return "Sleeper"
	}
	return ""
}

func (t Tier) Emoji() string {
	switch t {
	case TierGreen:
		return "🟢"
	case TierYellow:
		return "🟡"
	case TierRed:
		return "🔴"
	case TierPurple:
		return "🟣"
	}
	return ""
}

// EmptyText is the placeholder rendered when a tier has no players.
func (t Tier) EmptyText() string {
	switch t {
	case TierGreen:
		return "No Green Plays"
	case TierYellow:
		return "No Yellow Plays"
	case TierRed:
		return "No Red Plays"
	case TierPurple:
		return "No Purple Plays"
	}
	return "No Plays"
}

// MarshalJSON renders a tier as its color name so API consumers see
// {"tier": "green", ...}.
func (t Tier) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

// UnmarshalJSON parses the color-name form written by MarshalJSON.
func (t *Tier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "green":
		*t = TierGreen
	case "yellow":
		*t = TierYellow
	case "red":
		*t = TierRed
	case "purple":
		*t = TierPurple
	default:
		return fmt.Errorf("unknown tier %q", s)
	}
	return nil
}

// TierPolicy holds every knob the classifier and selector need. The upstream
// data sets disagree on boundary values and on Red-tier display order, so none
// of these are hard-coded; callers pass an explicit policy.
type TierPolicy struct {
	// Hi and Lo are the success-rate boundaries for target-relative
	// classification: score >= Hi is Yellow, Lo <= score < Hi is Green,
	// score < Lo is Red.
	Hi float64 `json:"hi"`
	Lo float64 `json:"lo"`

	// Quota is the maximum number of players emitted per tier.
	Quota int `json:"quota"`

	// RedAscending orders the Red tier lowest-score-first (closest to the
	// Green boundary last) in the output. Green and Yellow always render
	// descending.
	RedAscending bool `json:"red_ascending"`

	// RankTiers is the number of tiers produced in rank-only mode: 3 for the
	// classic 9-player block, 4 to add the Purple slice (top-12 mode).
	RankTiers int `json:"rank_tiers"`
}

// DefaultPolicy returns the canonical policy: boundaries 110/85, three players
// per tier, Red rendered descending, three rank-only tiers.
func DefaultPolicy() TierPolicy {
	return TierPolicy{Hi: 110, Lo: 85, Quota: 3, RankTiers: 3}
}

// Validate reports a usable policy. Zero values slip in easily when a policy
// is built from config, so the engine checks before classifying.
func (p TierPolicy) Validate() error {
	if p.Quota <= 0 {
		return fmt.Errorf("tier policy: quota must be positive, got %d", p.Quota)
	}
	if p.Hi <= p.Lo {
		return fmt.Errorf("tier policy: hi boundary %.1f must exceed lo boundary %.1f", p.Hi, p.Lo)
	}
	if p.RankTiers != 3 && p.RankTiers != 4 {
		return fmt.Errorf("tier policy: rank tiers must be 3 or 4, got %d", p.RankTiers)
	}
	return nil
}

// rankOrder returns the tiers emitted in rank-only mode, in desirability order.
func (p TierPolicy) rankOrder() []Tier {
	if p.RankTiers == 4 {
		return []Tier{TierGreen, TierYellow, TierRed, TierPurple}
	}
	return []Tier{TierGreen, TierYellow, TierRed}
}
