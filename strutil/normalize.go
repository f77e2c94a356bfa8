// Package strutil has small string normalization helpers shared by the
// ADIF reader and the scoring pipeline.
package strutil

import "strings"

// NormalizeUpper trims surrounding whitespace and converts to upper case.
// Use for callsigns, SPC codes, and other tokens where case is not significant.
func NormalizeUpper(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// NormalizeLower trims surrounding whitespace and converts to lower case.
// Use for ADIF field names and bonus letter codes.
func NormalizeLower(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
