package engine

import (
	"math"
	"sort"
)

// scoredRecord pairs a surviving record with its computed score.
type scoredRecord struct {
	record PlayerRecord
	value  float64
	score  float64
}

// successRate expresses value as a percentage of target, rounded to one
// decimal place.
func successRate(value, target float64) float64 {
	return math.Round(value/target*1000) / 10
}

// scoreRecords resolves the requested statistic on each record and computes
// scores. Records missing the statistic are dropped silently; that is a
// per-record condition, not a request failure. In target-relative mode a
// missing or non-positive target fails the request.
func scoreRecords(records []PlayerRecord, req Request) ([]scoredRecord, error) {
	if req.Mode == ModeTargetRelative {
		if req.Target <= 0 || math.IsNaN(req.Target) || math.IsInf(req.Target, 0) {
			return nil, &InvalidTargetError{Target: req.Target}
		}
	}

	scored := make([]scoredRecord, 0, len(records))
	for _, rec := range records {
		value, ok := rec.Stats[req.Statistic]
		if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		s := scoredRecord{record: rec, value: value, score: value}
		if req.Mode == ModeTargetRelative {
			s.score = successRate(value, req.Target)
		}
		scored = append(scored, s)
	}

	sortByScoreDesc(scored)
	return scored, nil
}

// sortByScoreDesc orders candidates by score descending with a deterministic
// tie-break on normalized name then team, so identical inputs always produce
// identical output regardless of input ordering.
func sortByScoreDesc(records []scoredRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].score != records[j].score {
			return records[i].score > records[j].score
		}
		ni, nj := normalizeName(records[i].record.Name), normalizeName(records[j].record.Name)
		if ni != nj {
			return ni < nj
		}
		return normalizeTeam(records[i].record.Team) < normalizeTeam(records[j].record.Team)
	})
}
