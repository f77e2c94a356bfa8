package challenge

import (
	"log"

	"licwchallenge/adif"
)

// Challenge runs the full scoring pipeline over a batch of ADIF records.
// Each stage is a pure transformation over immutable values; the only side
// effect is warning output for incomplete rule tables.
type Challenge struct {
	Rules  *Rules
	Window *Quarter                         // nil scores the whole log
	Warnf  func(format string, args ...any) // defaults to log.Printf
}

// New builds a pipeline with the given rules and optional quarter window.
func New(rules *Rules, window *Quarter) *Challenge {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Challenge{Rules: rules, Window: window, Warnf: log.Printf}
}

// Run scores the records and produces the final report. Contacts without a
// marker are dropped, malformed ones are collected as defects, and the rest
// flow through quarter filtering, scoring, dedup, and aggregation.
func (c *Challenge) Run(records []adif.Record) *ScoreReport {
	warnf := c.Warnf
	if warnf == nil {
		warnf = log.Printf
	}

	var units []*ScoringUnit
	var defects []Defect
	for seq, rec := range records {
		unit, defect := Normalize(rec, seq)
		if defect != nil {
			warnf("Challenge: skipping %s", defect)
			defects = append(defects, *defect)
			continue
		}
		if unit != nil {
			units = append(units, unit)
		}
	}

	units = FilterQuarter(units, c.Window)

	for _, u := range units {
		breakdown, warnings := c.Rules.Score(u.Marker)
		u.Breakdown = breakdown
		for _, w := range warnings {
			warnf("Challenge: %s (%s on %s): %s", u.CallNorm, u.Marker.SPC, u.BandNorm, w)
		}
	}

	return Aggregate(Deduplicate(units), defects, c.Window)
}
