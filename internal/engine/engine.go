// Package engine ranks player statistic records against an optional target
// value and allocates a fixed quota of players into ordered tiers. It is a
// pure computation: no I/O, no retained state, safe for concurrent use.
package engine

// PlayerRecord is one player's statistics snapshot. Stats maps statistic
// field keys to numeric values; a statistic that was missing or unparseable
// upstream is simply absent from the map.
type PlayerRecord struct {
	Name  string             `json:"name"`
	Team  string             `json:"team"`
	Stats map[string]float64 `json:"stats"`
}

// ScoreMode selects how records are scored and grouped.
type ScoreMode int

const (
	// ModeTargetRelative scores each record as a percentage of the request
	// target and classifies by threshold bands.
	ModeTargetRelative ScoreMode = iota
	// ModeRankOnly ignores the target and slices a descending sort of the raw
	// statistic into tiers.
	ModeRankOnly
)

// Request describes one selection. Target is only consulted in
// target-relative mode, where it must be positive.
type Request struct {
	Statistic  string
	Target     float64
	Mode       ScoreMode
	TeamFilter []string
	Bans       BanList
}

// Analyze runs the full pipeline: team/ban filtering, identity dedup,
// scoring, tier classification, quota selection with backfill, and output
// ordering. The records slice is not modified.
//
// Failures surface as typed errors (InvalidStatisticError,
// InvalidTargetError, NoMatchingTeamsError). An input that is empty, or that
// empties out through bans, dedup, or missing values, is not an error: the
// result carries every tier with no players.
func Analyze(records []PlayerRecord, req Request, policy TierPolicy) (*Result, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	outputTiers := thresholdTiers
	if req.Mode == ModeRankOnly {
		outputTiers = policy.rankOrder()
	}

	if len(records) == 0 {
		return emptyResult(outputTiers), nil
	}

	if !statisticPresent(records, req.Statistic) {
		return nil, &InvalidStatisticError{Statistic: req.Statistic}
	}

	filtered, err := filterRecords(records, req)
	if err != nil {
		return nil, err
	}

	scored, err := scoreRecords(filtered, req)
	if err != nil {
		return nil, err
	}
	if len(scored) == 0 {
		return emptyResult(outputTiers), nil
	}

	var picks map[Tier][]scoredRecord
	if req.Mode == ModeRankOnly {
		picks = selectByRank(scored, policy)
	} else {
		picks = selectByThreshold(scored, policy)
	}

	return formatResult(picks, outputTiers, policy), nil
}

// statisticPresent reports whether at least one record resolves the
// requested statistic.
func statisticPresent(records []PlayerRecord, statistic string) bool {
	for _, rec := range records {
		if _, ok := rec.Stats[statistic]; ok {
			return true
		}
	}
	return false
}
