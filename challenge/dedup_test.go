package challenge

import (
	"testing"
	"time"
)

func unitFor(call, band string, date time.Time, total, seq int) *ScoringUnit {
	u := &ScoringUnit{
		Seq:      seq,
		Call:     call,
		CallNorm: call,
		Band:     band,
		BandNorm: NormalizeBand(band),
		Date:     date,
	}
	u.TotalPoints = total
	return u
}

func TestDeduplicateKeepsHighestScore(t *testing.T) {
	day := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)
	units := []*ScoringUnit{
		unitFor("K1ABC", "20m", day, 1, 0),
		unitFor("K1ABC", "20m", day.AddDate(0, 0, 5), 5, 1),
		unitFor("K1ABC", "20m", day.AddDate(0, 0, 9), 2, 2),
	}
	got := Deduplicate(units)
	if len(got) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(got))
	}
	if got[0].TotalPoints != 5 || got[0].Seq != 1 {
		t.Fatalf("expected the 5-point unit to survive, got %+v", got[0])
	}
}

func TestDeduplicateTieBreakEarliestDateThenFirstSeen(t *testing.T) {
	day := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)

	// Same points: the earlier contact wins even when seen later.
	units := []*ScoringUnit{
		unitFor("K1ABC", "20m", day.AddDate(0, 0, 3), 4, 0),
		unitFor("K1ABC", "20m", day, 4, 1),
	}
	got := Deduplicate(units)
	if len(got) != 1 || got[0].Seq != 1 {
		t.Fatalf("expected earliest-dated unit to win, got %+v", got[0])
	}

	// Same points and same date: first-encountered wins.
	units = []*ScoringUnit{
		unitFor("K1ABC", "20m", day, 4, 0),
		unitFor("K1ABC", "20m", day, 4, 1),
	}
	got = Deduplicate(units)
	if len(got) != 1 || got[0].Seq != 0 {
		t.Fatalf("expected first-encountered unit to win, got %+v", got[0])
	}
}

func TestDeduplicateBandsNeverMerge(t *testing.T) {
	day := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)
	units := []*ScoringUnit{
		unitFor("K1ABC", "20m", day, 1, 0),
		unitFor("K1ABC", "40m", day, 1, 1),
		unitFor("K1ABC", "15m", day, 1, 2),
	}
	if got := Deduplicate(units); len(got) != 3 {
		t.Fatalf("expected all bands to survive, got %d", len(got))
	}
}

func TestDeduplicateNormalizedBandSpellingsMerge(t *testing.T) {
	day := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)
	units := []*ScoringUnit{
		unitFor("K1ABC", "20m", day, 1, 0),
		unitFor("K1ABC", "20M", day, 3, 1),
		unitFor("K1ABC", "20 meters", day, 2, 2),
	}
	got := Deduplicate(units)
	if len(got) != 1 || got[0].TotalPoints != 3 {
		t.Fatalf("expected band spellings to merge to the 3-point unit, got %+v", got)
	}
}

func TestDeduplicateInvariantAndOrder(t *testing.T) {
	day := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	units := []*ScoringUnit{
		unitFor("W2XYZ", "40m", day, 2, 0),
		unitFor("K1ABC", "20m", day, 1, 1),
		unitFor("W2XYZ", "40m", day, 7, 2),
		unitFor("G4AAA", "20m", day, 3, 3),
		unitFor("K1ABC", "20m", day, 1, 4),
	}
	got := Deduplicate(units)

	seen := make(map[string]bool)
	for _, u := range got {
		key := u.CallNorm + "|" + u.BandNorm
		if seen[key] {
			t.Fatalf("two survivors share identity %s", key)
		}
		seen[key] = true
	}

	// Survivors retain original log order.
	for i := 1; i < len(got); i++ {
		if got[i-1].Seq >= got[i].Seq {
			t.Fatalf("survivors out of log order: %d before %d", got[i-1].Seq, got[i].Seq)
		}
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 survivors, got %d", len(got))
	}
}
