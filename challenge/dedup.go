package challenge

import (
	"sort"

	"github.com/zeebo/xxh3"
)

// dedupKey hashes the (normalized callsign, normalized band) identity.
// Different bands for the same callsign never share a key.
func dedupKey(u *ScoringUnit) uint64 {
	return xxh3.HashString(u.CallNorm + "|" + u.BandNorm)
}

// Deduplicate collapses scored units sharing the same callsign and band to
// the single highest-scoring instance. Ties on TotalPoints go to the
// earliest contact date, and a full tie keeps the first-encountered unit,
// so the outcome never depends on incidental map ordering. Survivors come
// back in original log order.
func Deduplicate(units []*ScoringUnit) []*ScoringUnit {
	best := make(map[uint64]*ScoringUnit, len(units))
	for _, u := range units {
		key := dedupKey(u)
		incumbent, ok := best[key]
		if !ok || beats(u, incumbent) {
			best[key] = u
		}
	}

	survivors := make([]*ScoringUnit, 0, len(best))
	for _, u := range best {
		survivors = append(survivors, u)
	}
	sort.Slice(survivors, func(i, j int) bool {
		return survivors[i].Seq < survivors[j].Seq
	})
	return survivors
}

// beats reports whether the challenger replaces the incumbent:
// higher total, then earlier date, then first-encountered (incumbent wins).
func beats(challenger, incumbent *ScoringUnit) bool {
	if challenger.TotalPoints != incumbent.TotalPoints {
		return challenger.TotalPoints > incumbent.TotalPoints
	}
	return challenger.Date.Before(incumbent.Date)
}
