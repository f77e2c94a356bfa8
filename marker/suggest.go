package marker

import (
	"strings"

	lev "github.com/agnivade/levenshtein"
)

// suggestMaxDistance bounds how far a typo may be from a valid condition
// name before we stop guessing what the operator meant.
const suggestMaxDistance = 2

// SuggestCondition returns the valid condition name closest to the given
// token, or "" when nothing is plausibly close. Used to enrich malformed
// marker defects with a correction hint.
func SuggestCondition(token string) string {
	token = strings.ToUpper(strings.TrimSpace(token))
	if token == "" {
		return ""
	}
	best := ""
	bestDist := suggestMaxDistance + 1
	for _, c := range Conditions {
		d := lev.ComputeDistance(token, strings.ToUpper(string(c)))
		if d < bestDist {
			bestDist = d
			best = string(c)
		}
	}
	return best
}
