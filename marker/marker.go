// Package marker locates and parses the embedded LICW[...] challenge marker
// inside a free-text log comment. The marker carries the data needed to score
// a contact: the SPC code, the member number, optional bonus letters, and
// optional named conditions:
//
//	LICW[SPC:1234is]
//	LICW[ENG:004:F2F,FIRST]
//
// Matching is case-insensitive and position-independent; surrounding
// operator notes are ignored. "No marker present" and "marker present but
// broken" are distinct outcomes, so a plain contact is never confused with a
// defective one.
package marker

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"licwchallenge/strutil"
)

// Condition is a named bonus condition carried in the marker's third section.
type Condition string

const (
	CondFirst Condition = "FIRST"
	CondF2F   Condition = "F2F"
	Cond2xF2F Condition = "2xF2F"
)

// Conditions lists every condition the grammar accepts, in canonical form.
var Conditions = []Condition{CondFirst, CondF2F, Cond2xF2F}

// Marker is the parsed payload of one well-formed LICW[...] substring.
type Marker struct {
	SPC          string      `json:"spc"`                     // upper-cased; 2 letters = state/province, 3 = country
	MemberNumber int         `json:"member"`                  // leading zeros are not significant: "004" parses as 4
	BonusLetters string      `json:"bonus_letters,omitempty"` // lower-cased letter code, compared as a whole string
	Conditions   []Condition `json:"conditions,omitempty"`    // ordered, duplicates removed
}

// String renders the marker back to its canonical compact text form.
func (m Marker) String() string {
	var b strings.Builder
	b.WriteString("LICW[")
	b.WriteString(m.SPC)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(m.MemberNumber))
	b.WriteString(m.BonusLetters)
	if len(m.Conditions) > 0 {
		b.WriteByte(':')
		for i, c := range m.Conditions {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(string(c))
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Outcome tags the three results of scanning a comment for a marker.
type Outcome int

const (
	// Absent means no LICW[ opening was found. Not an error: the contact is
	// simply not a challenge contact.
	Absent Outcome = iota
	// Valid means a well-formed marker was parsed.
	Valid
	// Malformed means an LICW[ opening was found but no occurrence in the
	// text parses. The contact is skippable and reportable.
	Malformed
)

// ScanResult is the tagged outcome of scanning one comment.
type ScanResult struct {
	Outcome Outcome
	Marker  Marker // meaningful only when Outcome == Valid
	Reason  string // meaningful only when Outcome == Malformed
}

// openPattern locates the marker opening case-insensitively. Matching on
// the original text keeps byte offsets valid even around characters whose
// width changes under case conversion.
var openPattern = regexp.MustCompile(`(?i)LICW\[`)

// memberPattern splits the second marker section into digits and the bonus
// letters that must follow the digits with no intervening delimiter.
var memberPattern = regexp.MustCompile(`^([0-9]+)([A-Za-z]*)$`)

// spcPattern matches a 2 or 3 letter SPC code.
var spcPattern = regexp.MustCompile(`^[A-Za-z]{2,3}$`)

// Scan searches text for a challenge marker. The first well-formed marker
// wins; later occurrences are ignored. When every occurrence is broken, the
// result is Malformed and carries the reason from the first broken one.
func Scan(text string) ScanResult {
	firstReason := ""
	found := false

	for from := 0; from < len(text); {
		loc := openPattern.FindStringIndex(text[from:])
		if loc == nil {
			break
		}
		found = true
		start := from + loc[1]

		end := strings.IndexByte(text[start:], ']')
		if end < 0 {
			if firstReason == "" {
				firstReason = "unterminated marker: missing ]"
			}
			break
		}
		m, err := parseBody(text[start : start+end])
		if err == nil {
			return ScanResult{Outcome: Valid, Marker: m}
		}
		if firstReason == "" {
			firstReason = err.Error()
		}
		// Resume just past this opening so a well-formed marker inside the
		// failed span is still found.
		from = start
	}

	if !found {
		return ScanResult{Outcome: Absent}
	}
	return ScanResult{Outcome: Malformed, Reason: firstReason}
}

// parseBody parses the bracket interior: SPC : DIGITS LETTERS? [: COND,...].
func parseBody(body string) (Marker, error) {
	parts := strings.Split(body, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Marker{}, fmt.Errorf("expected SPC:NUMBER or SPC:NUMBER:CONDITIONS, got %q", body)
	}

	spc := strings.TrimSpace(parts[0])
	if !spcPattern.MatchString(spc) {
		return Marker{}, fmt.Errorf("bad SPC %q: want 2 or 3 letters", spc)
	}

	member := memberPattern.FindStringSubmatch(strings.TrimSpace(parts[1]))
	if member == nil {
		return Marker{}, fmt.Errorf("bad member number %q: want digits with optional trailing letters", strings.TrimSpace(parts[1]))
	}
	number, err := strconv.Atoi(member[1])
	if err != nil {
		return Marker{}, fmt.Errorf("member number %q out of range", member[1])
	}

	m := Marker{
		SPC:          strutil.NormalizeUpper(spc),
		MemberNumber: number,
		BonusLetters: strings.ToLower(member[2]),
	}

	if len(parts) == 3 {
		conds, err := parseConditions(parts[2])
		if err != nil {
			return Marker{}, err
		}
		m.Conditions = conds
	}
	return m, nil
}

// parseConditions parses the comma-separated condition list, canonicalizing
// case and dropping duplicates while keeping first-seen order.
func parseConditions(section string) ([]Condition, error) {
	var conds []Condition
	seen := make(map[Condition]bool)
	for _, token := range strings.Split(section, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, fmt.Errorf("empty condition in %q", section)
		}
		cond, ok := matchCondition(token)
		if !ok {
			msg := fmt.Sprintf("unknown condition %q", token)
			if hint := SuggestCondition(token); hint != "" {
				msg += fmt.Sprintf(" (closest valid: %q)", hint)
			}
			return nil, fmt.Errorf("%s", msg)
		}
		if !seen[cond] {
			seen[cond] = true
			conds = append(conds, cond)
		}
	}
	return conds, nil
}

// matchCondition resolves a raw token to its canonical condition.
func matchCondition(token string) (Condition, bool) {
	for _, c := range Conditions {
		if strings.EqualFold(token, string(c)) {
			return c, true
		}
	}
	return "", false
}
