package challenge

// ScoreReport is the final output of a run: the surviving units in original
// log order with their point breakdowns, the defect list, and the totals a
// renderer needs. The report performs no I/O and holds no live references
// into the pipeline.
type ScoreReport struct {
	Quarter        *Quarter       `json:"quarter,omitempty"` // nil when the whole log was scored
	Units          []*ScoringUnit `json:"contacts"`
	Defects        []Defect       `json:"defects,omitempty"`
	UniqueSPCCount int            `json:"unique_spc_count"`
	TotalScore     int            `json:"total_score"`
}

// Aggregate folds the deduplicated, quarter-filtered units into a report:
// summed total points and the count of distinct SPC codes among survivors.
func Aggregate(units []*ScoringUnit, defects []Defect, window *Quarter) *ScoreReport {
	spcs := make(map[string]bool)
	total := 0
	for _, u := range units {
		total += u.TotalPoints
		spcs[u.Marker.SPC] = true
	}
	return &ScoreReport{
		Quarter:        window,
		Units:          units,
		Defects:        defects,
		UniqueSPCCount: len(spcs),
		TotalScore:     total,
	}
}
