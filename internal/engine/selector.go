package engine

// band is a half-open score interval [min, max). An open flag removes the
// corresponding bound.
type band struct {
	min, max float64
	openMin  bool
	openMax  bool
}

func (b band) contains(score float64) bool {
	if !b.openMin && score < b.min {
		return false
	}
	if !b.openMax && score >= b.max {
		return false
	}
	return true
}

// tierBands describes a tier's strict classification band and the wider band
// used for backfill when the strict pool is short of quota.
type tierBands struct {
	tier     Tier
	strict   band
	backfill band
}

// bandsFor derives the per-tier score bands from the policy boundaries.
// Claim order runs from the highest band down (Yellow, Green, Red): once a
// tier takes a player, no other tier may. Backfill relaxes each tier's band
// toward the remaining pool: Yellow falls back to the next-highest scores
// overall, Green to anything at or above the Best Bet boundary, Red to
// anything below the Favorite boundary.
func bandsFor(p TierPolicy) []tierBands {
	return []tierBands{
		{
			tier:     TierYellow,
			strict:   band{min: p.Hi, openMax: true},
			backfill: band{openMin: true, openMax: true},
		},
		{
			tier:     TierGreen,
			strict:   band{min: p.Lo, max: p.Hi},
			backfill: band{min: p.Lo, openMax: true},
		},
		{
			tier:     TierRed,
			strict:   band{max: p.Lo, openMin: true},
			backfill: band{max: p.Hi, openMin: true},
		},
	}
}

// selectByThreshold classifies scored candidates into Green/Yellow/Red and
// fills each tier up to quota. Candidates must already be sorted by score
// descending. Strict-band members are always taken before backfilled ones,
// and a player claimed by one tier is unavailable to every other.
func selectByThreshold(candidates []scoredRecord, policy TierPolicy) map[Tier][]scoredRecord {
	taken := make(map[int]bool, len(candidates))
	picks := make(map[Tier][]scoredRecord, 3)

	for _, tb := range bandsFor(policy) {
		members := make([]scoredRecord, 0, policy.Quota)

		for i, c := range candidates {
			if len(members) == policy.Quota {
				break
			}
			if taken[i] || !tb.strict.contains(c.score) {
				continue
			}
			taken[i] = true
			members = append(members, c)
		}

		for i, c := range candidates {
			if len(members) == policy.Quota {
				break
			}
			if taken[i] || !tb.backfill.contains(c.score) {
				continue
			}
			taken[i] = true
			members = append(members, c)
		}

		picks[tb.tier] = members
	}

	return picks
}

// selectByRank slices the descending candidate list into contiguous
// quota-sized groups mapped straight onto tiers in desirability order. No
// threshold math is involved.
func selectByRank(candidates []scoredRecord, policy TierPolicy) map[Tier][]scoredRecord {
	picks := make(map[Tier][]scoredRecord, policy.RankTiers)
	offset := 0
	for _, tier := range policy.rankOrder() {
		end := offset + policy.Quota
		if end > len(candidates) {
			end = len(candidates)
		}
		if offset >= end {
			picks[tier] = nil
			continue
		}
		picks[tier] = candidates[offset:end]
		offset = end
	}
	return picks
}
