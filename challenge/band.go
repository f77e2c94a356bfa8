package challenge

import "strings"

// bandWordReplacer rewrites spelled-out units so "20 meters" and "70
// centimetres" collapse to their short forms before comparison.
var bandWordReplacer = strings.NewReplacer(
	"meters", "m",
	"metres", "m",
	"meter", "m",
	"metre", "m",
	"centimeters", "cm",
	"centimetres", "cm",
	"centimeter", "cm",
	"centimetre", "cm",
)

// NormalizeBand returns the canonical lowercase band identifier for the
// given label: "20M", "20 meters", and "20" all collapse to "20m". The
// result is the band half of the dedup identity; an empty result means the
// label carried nothing usable.
func NormalizeBand(label string) string {
	cleaned := strings.ToLower(strings.TrimSpace(label))
	if cleaned == "" {
		return ""
	}
	cleaned = bandWordReplacer.Replace(cleaned)
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return ""
	}
	// A bare number like "20" is shorthand for the meter band.
	if last := cleaned[len(cleaned)-1]; last >= '0' && last <= '9' {
		cleaned += "m"
	}
	return cleaned
}
