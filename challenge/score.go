package challenge

import (
	"fmt"
	"sort"
	"strings"

	"licwchallenge/marker"
)

// internationalSPCLen classifies an SPC: 2 letters is a state or province,
// 3 letters is a country. The length alone drives the geographic bonus; no
// code-validity lookup is involved.
const internationalSPCLen = 3

// geoBonusPoints is awarded for working a station outside the home country.
const geoBonusPoints = 2

// Rules holds the injectable point tables of the award. The tables are
// governed by the club and grow over time, so they are data, not code:
// config merges operator-supplied entries over these defaults.
type Rules struct {
	// BonusLetters maps a whole bonus-letter code to its points. Codes are
	// looked up by exact string, never decomposed per letter: "is" has its
	// own value independent of "i" and "s".
	BonusLetters map[string]int
	// ConditionPoints maps each named condition to its points.
	ConditionPoints map[marker.Condition]int
}

// DefaultRules returns the point tables as published in the club rules.
func DefaultRules() *Rules {
	return &Rules{
		BonusLetters: map[string]int{
			"i":  0,
			"a":  0,
			"is": 3,
		},
		ConditionPoints: map[marker.Condition]int{
			marker.CondFirst: 10,
			marker.CondF2F:   5,
			marker.Cond2xF2F: 10,
		},
	}
}

// Merge overlays operator-supplied table entries on the rules. Letter codes
// are keyed case-insensitively; condition names must match one of the
// grammar's conditions and unmatched names are returned so the caller can
// warn about them.
func (r *Rules) Merge(letters map[string]int, conditions map[string]int) []string {
	if r.BonusLetters == nil {
		r.BonusLetters = make(map[string]int)
	}
	for code, points := range letters {
		r.BonusLetters[strings.ToLower(strings.TrimSpace(code))] = points
	}
	var unknown []string
	for name, points := range conditions {
		matched := false
		for _, cond := range marker.Conditions {
			if strings.EqualFold(name, string(cond)) {
				if r.ConditionPoints == nil {
					r.ConditionPoints = make(map[marker.Condition]int)
				}
				r.ConditionPoints[cond] = points
				matched = true
				break
			}
		}
		if !matched {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// Score computes the point breakdown for a marker. It is a pure function:
// the same marker always yields the same breakdown. Unknown bonus-letter
// codes and conditions missing from the tables score zero and are returned
// as warnings for the caller to log; the tables are expected to be
// incomplete as the rules evolve.
func (r *Rules) Score(m marker.Marker) (Breakdown, []string) {
	var warnings []string
	var b Breakdown

	// A present bonus-letter code is itself worth one extra base point.
	b.BasePoints = 1
	if m.BonusLetters != "" {
		b.BasePoints = 2
	}

	if len(m.SPC) == internationalSPCLen {
		b.GeoBonus = geoBonusPoints
	}

	if m.BonusLetters != "" {
		points, ok := r.BonusLetters[strings.ToLower(m.BonusLetters)]
		if !ok {
			warnings = append(warnings,
				fmt.Sprintf("bonus letter code %q not in table, scoring 0", m.BonusLetters))
		}
		b.LetterBonus = points
	}

	for _, cond := range m.Conditions {
		points, ok := r.ConditionPoints[cond]
		if !ok {
			warnings = append(warnings,
				fmt.Sprintf("condition %q has no configured value, scoring 0", cond))
			continue
		}
		b.ExtraBonus += points
	}

	b.BonusPoints = b.GeoBonus + b.LetterBonus + b.ExtraBonus
	b.TotalPoints = b.BasePoints + b.BonusPoints
	return b, warnings
}
