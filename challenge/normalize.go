package challenge

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"licwchallenge/adif"
	"licwchallenge/marker"
	"licwchallenge/strutil"
)

// adifDateLayout is the ADIF qso_date format (YYYYMMDD).
const adifDateLayout = "20060102"

// callsignPattern accepts plain callsigns plus portable/suffixed forms like
// EA8/K1ABC or K1ABC/P.
var callsignPattern = regexp.MustCompile(`^[A-Z0-9]+(?:/[A-Z0-9]+)*$`)

// Normalize merges one raw ADIF record with its marker scan result into a
// ScoringUnit. Contacts without a marker yield (nil, nil): they are not
// challenge contacts and are silently dropped. A malformed marker or a
// record missing the metadata scoring needs yields a Defect instead of a
// unit. The returned unit carries identity fields for dedup but no points;
// the policy fills those in later.
func Normalize(rec adif.Record, seq int) (*ScoringUnit, *Defect) {
	call := strutil.NormalizeUpper(rec.Get("call"))

	scan := marker.Scan(rec.Get("comment"))
	switch scan.Outcome {
	case marker.Absent:
		return nil, nil
	case marker.Malformed:
		return nil, &Defect{
			File:   rec.File,
			Record: rec.Index,
			Call:   call,
			Reason: "marker: " + scan.Reason,
		}
	}

	defect := func(format string, args ...any) (*ScoringUnit, *Defect) {
		return nil, &Defect{
			File:   rec.File,
			Record: rec.Index,
			Call:   call,
			Reason: fmt.Sprintf(format, args...),
		}
	}

	if call == "" {
		return defect("marker present but record has no callsign")
	}
	if !callsignPattern.MatchString(call) {
		return defect("implausible callsign %q", call)
	}

	rawDate := rec.Get("qso_date")
	if rawDate == "" {
		return defect("marker present but record has no qso_date")
	}
	date, err := time.ParseInLocation(adifDateLayout, strings.TrimSpace(rawDate), time.UTC)
	if err != nil {
		return defect("bad qso_date %q", rawDate)
	}

	band := rec.Get("band")
	bandNorm := NormalizeBand(band)
	if bandNorm == "" {
		return defect("marker present but record has no band")
	}

	return &ScoringUnit{
		Seq:      seq,
		File:     rec.File,
		Call:     strings.TrimSpace(rec.Get("call")), // logged casing kept for display
		CallNorm: call,
		Band:     band,
		BandNorm: bandNorm,
		Date:     date,
		Marker:   scan.Marker,
	}, nil
}
