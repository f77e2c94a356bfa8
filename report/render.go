// Package report renders a ScoreReport for people (aligned text) and for
// machines (JSON). Renderers only read the breakdown fields the policy
// computed; they never recompute points.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"

	"licwchallenge/challenge"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const dateLayout = "2006-01-02"

// WriteText writes the human-readable report: one line per surviving
// contact with its point breakdown, the skipped-contact list, and the
// totals line.
func WriteText(w io.Writer, r *challenge.ScoreReport) error {
	scope := "entire log"
	if r.Quarter != nil {
		scope = r.Quarter.String()
	}
	if _, err := fmt.Fprintf(w, "LICW challenge score (%s)\n\n", scope); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tCALL\tBAND\tSPC\tMEMBER\tPOINTS\t")
	for _, u := range r.Units {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d (%s)\t\n",
			u.Date.Format(dateLayout), u.Call, u.BandNorm, u.Marker.SPC,
			u.Marker.MemberNumber, u.TotalPoints, describeBreakdown(u.Breakdown))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Defects) > 0 {
		fmt.Fprintf(w, "\nSkipped %d contact(s):\n", len(r.Defects))
		for _, d := range r.Defects {
			fmt.Fprintf(w, "  %s\n", d)
		}
	}

	_, err := fmt.Fprintf(w, "\nContacts: %d   Unique SPCs: %d   Total score: %s\n",
		len(r.Units), r.UniqueSPCCount, humanize.Comma(int64(r.TotalScore)))
	return err
}

// describeBreakdown renders "1 base" or "2 base + 5 bonus: geo 2, letters 3"
// so the reader can see which sub-bonuses contributed.
func describeBreakdown(b challenge.Breakdown) string {
	if b.BonusPoints == 0 {
		return fmt.Sprintf("%d base", b.BasePoints)
	}
	var parts []string
	if b.GeoBonus > 0 {
		parts = append(parts, fmt.Sprintf("geo %d", b.GeoBonus))
	}
	if b.LetterBonus > 0 {
		parts = append(parts, fmt.Sprintf("letters %d", b.LetterBonus))
	}
	if b.ExtraBonus > 0 {
		parts = append(parts, fmt.Sprintf("conditions %d", b.ExtraBonus))
	}
	return fmt.Sprintf("%d base + %d bonus: %s", b.BasePoints, b.BonusPoints, strings.Join(parts, ", "))
}

// WriteJSON writes the report as a single indented JSON document.
func WriteJSON(w io.Writer, r *challenge.ScoreReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
