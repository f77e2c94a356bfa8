// Package challenge implements the LICW challenge scoring pipeline: it
// merges ADIF contact records with their parsed markers into scoring units,
// applies the award point policy, restricts to a calendar quarter, collapses
// duplicate contacts, and aggregates the final score report.
package challenge

import (
	"fmt"
	"time"

	"licwchallenge/marker"
)

// ScoringUnit is one scoreable contact: log metadata merged with its parsed
// marker and, once the policy has run, the point breakdown. Units are not
// modified after scoring; dedup and filtering select among them.
type ScoringUnit struct {
	Seq      int    `json:"-"`    // position in the original log order, across files
	File     string `json:"file"` // source log file
	Call     string `json:"call"` // callsign as logged
	CallNorm string `json:"-"`    // upper-cased identity used by dedup
	Band     string `json:"band"` // band as logged
	BandNorm string `json:"-"`    // canonical band identity used by dedup

	Date   time.Time     `json:"date"`
	Marker marker.Marker `json:"marker"`

	Breakdown
}

// Breakdown is the point composition of a scored unit, exposed so a renderer
// can show which sub-bonuses contributed without recomputing policy.
type Breakdown struct {
	BasePoints  int `json:"base"`
	GeoBonus    int `json:"geo_bonus"`
	LetterBonus int `json:"letter_bonus"`
	ExtraBonus  int `json:"extra_bonus"`
	BonusPoints int `json:"bonus"`
	TotalPoints int `json:"total"`
}

// Defect records a contact that could not be scored: a malformed marker or
// a record missing the metadata scoring needs. Defects never abort a run.
type Defect struct {
	File   string `json:"file"`
	Record int    `json:"record"` // 1-based record number within File
	Call   string `json:"call,omitempty"`
	Reason string `json:"reason"`
}

func (d Defect) String() string {
	if d.Call != "" {
		return fmt.Sprintf("%s #%d (%s): %s", d.File, d.Record, d.Call, d.Reason)
	}
	return fmt.Sprintf("%s #%d: %s", d.File, d.Record, d.Reason)
}
