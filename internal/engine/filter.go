package engine

import (
	"strings"
	"unicode"
)

// normalizeName folds case, strips punctuation, and collapses whitespace so
// that "J.R. Smith " and "jr smith" compare equal for ban and dedup purposes.
func normalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// normalizeTeam uppercases and trims a team code.
func normalizeTeam(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// identityKey is the dedup key: two records with the same key are the same
// player for selection purposes.
func identityKey(name, team string) string {
	return normalizeName(name) + "|" + normalizeTeam(team)
}

// cleanDisplayName trims and collapses interior whitespace without touching
// case or punctuation; it is what ends up in the rendered output.
func cleanDisplayName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// BanList excludes players unconditionally or for one statistic only. Names
// are matched on their normalized form.
type BanList struct {
	global map[string]struct{}
	byStat map[string]map[string]struct{}
}

// NewBanList builds a ban list from raw player names. Statistic keys in byStat
// are matched case-insensitively against the requested statistic.
func NewBanList(global []string, byStat map[string][]string) BanList {
	b := BanList{
		global: make(map[string]struct{}, len(global)),
		byStat: make(map[string]map[string]struct{}, len(byStat)),
	}
	for _, name := range global {
		if key := normalizeName(name); key != "" {
			b.global[key] = struct{}{}
		}
	}
	for stat, names := range byStat {
		set := make(map[string]struct{}, len(names))
		for _, name := range names {
			if key := normalizeName(name); key != "" {
				set[key] = struct{}{}
			}
		}
		if len(set) > 0 {
			b.byStat[strings.ToUpper(strings.TrimSpace(stat))] = set
		}
	}
	return b
}

// Banned reports whether the named player is excluded, either globally or for
// the given statistic.
func (b BanList) Banned(name, statistic string) bool {
	key := normalizeName(name)
	if key == "" {
		return false
	}
	if _, ok := b.global[key]; ok {
		return true
	}
	if set, ok := b.byStat[strings.ToUpper(strings.TrimSpace(statistic))]; ok {
		if _, banned := set[key]; banned {
			return true
		}
	}
	return false
}

// filterRecords applies the team filter, the ban list, and identity dedup, in
// that order. The dedup policy is fixed: when two records normalize to the
// same identity, the one with the higher value for the requested statistic
// wins; a record that has the statistic beats one that is missing it. The
// policy is value-based rather than first-seen so results do not depend on
// input ordering.
func filterRecords(records []PlayerRecord, req Request) ([]PlayerRecord, error) {
	if len(req.TeamFilter) > 0 {
		allowed := make(map[string]struct{}, len(req.TeamFilter))
		for _, t := range req.TeamFilter {
			allowed[normalizeTeam(t)] = struct{}{}
		}
		kept := make([]PlayerRecord, 0, len(records))
		for _, rec := range records {
			if _, ok := allowed[normalizeTeam(rec.Team)]; ok {
				kept = append(kept, rec)
			}
		}
		if len(kept) == 0 {
			return nil, &NoMatchingTeamsError{Teams: req.TeamFilter}
		}
		records = kept
	}

	byIdentity := make(map[string]PlayerRecord, len(records))
	order := make([]string, 0, len(records))
	for _, rec := range records {
		if req.Bans.Banned(rec.Name, req.Statistic) {
			continue
		}
		key := identityKey(rec.Name, rec.Team)
		existing, seen := byIdentity[key]
		if !seen {
			byIdentity[key] = rec
			order = append(order, key)
			continue
		}
		if preferRecord(rec, existing, req.Statistic) {
			byIdentity[key] = rec
		}
	}

	deduped := make([]PlayerRecord, 0, len(order))
	for _, key := range order {
		deduped = append(deduped, byIdentity[key])
	}
	return deduped, nil
}

// preferRecord decides whether candidate replaces current under the dedup
// policy.
func preferRecord(candidate, current PlayerRecord, statistic string) bool {
	cv, cok := candidate.Stats[statistic]
	ev, eok := current.Stats[statistic]
	if cok != eok {
		return cok
	}
	return cok && cv > ev
}
