package challenge

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Quarter identifies one calendar quarter of a year: Q1 Jan-Mar, Q2 Apr-Jun,
// Q3 Jul-Sep, Q4 Oct-Dec.
type Quarter struct {
	Year int `json:"year"`
	Q    int `json:"quarter"` // 1..4
}

// QuarterOf returns the calendar quarter containing the given instant.
func QuarterOf(t time.Time) Quarter {
	t = t.UTC()
	return Quarter{Year: t.Year(), Q: (int(t.Month())-1)/3 + 1}
}

// ParseQuarter parses a quarter selector. Accepted forms:
//
//	""           no filter (score the whole log); returns (nil, nil)
//	"current"    the quarter containing now
//	"3/2025"     explicit quarter and 4-digit year
//	"3/25"       explicit quarter and 2-digit year (2000-based)
//	"Q3/2025"    leading Q or q tolerated
//
// Anything else is a configuration error: the run must abort before any
// record is processed.
func ParseQuarter(selector string, now time.Time) (*Quarter, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil, nil
	}
	if strings.EqualFold(selector, "current") {
		q := QuarterOf(now)
		return &q, nil
	}

	parts := strings.Split(selector, "/")
	if len(parts) != 2 {
		return nil, fmt.Errorf("bad quarter selector %q: want QUARTER/YEAR or \"current\"", selector)
	}

	qPart := strings.TrimSpace(parts[0])
	if len(qPart) > 1 && (qPart[0] == 'Q' || qPart[0] == 'q') {
		qPart = qPart[1:]
	}
	q, err := strconv.Atoi(qPart)
	if err != nil || q < 1 || q > 4 {
		return nil, fmt.Errorf("bad quarter number %q in selector %q: want 1-4", parts[0], selector)
	}

	yPart := strings.TrimSpace(parts[1])
	year, err := strconv.Atoi(yPart)
	if err != nil || year < 0 {
		return nil, fmt.Errorf("bad year %q in selector %q", parts[1], selector)
	}
	switch len(yPart) {
	case 2:
		year += 2000
	case 4:
		// As given.
	default:
		return nil, fmt.Errorf("bad year %q in selector %q: want 2 or 4 digits", parts[1], selector)
	}

	return &Quarter{Year: year, Q: q}, nil
}

// Start returns the first day of the quarter at UTC midnight.
func (q Quarter) Start() time.Time {
	return time.Date(q.Year, time.Month((q.Q-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the quarter at UTC midnight. The window is
// inclusive on both ends.
func (q Quarter) End() time.Time {
	return q.Start().AddDate(0, 3, 0).AddDate(0, 0, -1)
}

// Contains reports whether the given date falls inside the quarter window,
// boundary days included.
func (q Quarter) Contains(date time.Time) bool {
	date = date.UTC()
	return !date.Before(q.Start()) && date.Before(q.Start().AddDate(0, 3, 0))
}

func (q Quarter) String() string {
	return fmt.Sprintf("Q%d %d", q.Q, q.Year)
}

// FilterQuarter restricts units to those dated inside the quarter. A nil
// quarter is the identity pass-through: the whole log is scored.
func FilterQuarter(units []*ScoringUnit, q *Quarter) []*ScoringUnit {
	if q == nil {
		return units
	}
	kept := make([]*ScoringUnit, 0, len(units))
	for _, u := range units {
		if q.Contains(u.Date) {
			kept = append(kept, u)
		}
	}
	return kept
}
