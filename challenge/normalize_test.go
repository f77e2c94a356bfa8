package challenge

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"licwchallenge/adif"
)

// record builds a single ADIF record from field/value pairs.
func record(t *testing.T, pairs ...string) adif.Record {
	t.Helper()
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString("<")
		b.WriteString(pairs[i])
		b.WriteString(":")
		b.WriteString(strconv.Itoa(len(pairs[i+1])))
		b.WriteString(">")
		b.WriteString(pairs[i+1])
	}
	b.WriteString("<EOR>")
	records, err := adif.Read(strings.NewReader(b.String()), "test.adi")
	if err != nil {
		t.Fatalf("building record: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	return records[0]
}

func TestNormalizeValidContact(t *testing.T) {
	rec := record(t,
		"call", "k1abc",
		"qso_date", "20250712",
		"band", "20M",
		"comment", "LICW[ny:004is] tnx")
	unit, defect := Normalize(rec, 7)
	if defect != nil {
		t.Fatalf("unexpected defect: %s", defect)
	}
	if unit == nil {
		t.Fatal("expected a scoring unit")
	}
	if unit.CallNorm != "K1ABC" {
		t.Fatalf("expected normalized call K1ABC, got %q", unit.CallNorm)
	}
	if unit.Call != "k1abc" {
		t.Fatalf("expected logged casing retained, got %q", unit.Call)
	}
	if unit.BandNorm != "20m" {
		t.Fatalf("expected band 20m, got %q", unit.BandNorm)
	}
	if want := time.Date(2025, time.July, 12, 0, 0, 0, 0, time.UTC); !unit.Date.Equal(want) {
		t.Fatalf("expected date %s, got %s", want, unit.Date)
	}
	if unit.Marker.SPC != "NY" || unit.Marker.MemberNumber != 4 || unit.Marker.BonusLetters != "is" {
		t.Fatalf("unexpected marker %+v", unit.Marker)
	}
	if unit.Seq != 7 {
		t.Fatalf("expected seq 7, got %d", unit.Seq)
	}
	if unit.TotalPoints != 0 {
		t.Fatalf("normalizer must not score; got total %d", unit.TotalPoints)
	}
}

func TestNormalizeAbsentMarkerIsSilentlyDropped(t *testing.T) {
	rec := record(t,
		"call", "K1ABC",
		"qso_date", "20250712",
		"band", "20m",
		"comment", "nice chat, 73")
	unit, defect := Normalize(rec, 0)
	if unit != nil || defect != nil {
		t.Fatalf("expected (nil, nil) for absent marker, got %v / %v", unit, defect)
	}
}

func TestNormalizeMalformedMarkerIsDefect(t *testing.T) {
	rec := record(t,
		"call", "K1ABC",
		"qso_date", "20250712",
		"band", "20m",
		"comment", "LICW[broken")
	unit, defect := Normalize(rec, 0)
	if unit != nil {
		t.Fatal("expected no unit for malformed marker")
	}
	if defect == nil || !strings.Contains(defect.Reason, "marker:") {
		t.Fatalf("expected marker defect, got %v", defect)
	}
	if defect.Call != "K1ABC" || defect.File != "test.adi" || defect.Record != 1 {
		t.Fatalf("defect missing provenance: %+v", defect)
	}
}

func TestNormalizeMissingMetadataIsDefect(t *testing.T) {
	cases := []struct {
		name   string
		pairs  []string
		reason string
	}{
		{
			"no callsign",
			[]string{"qso_date", "20250712", "band", "20m", "comment", "LICW[NY:1]"},
			"no callsign",
		},
		{
			"bad callsign",
			[]string{"call", "K1 ABC", "qso_date", "20250712", "band", "20m", "comment", "LICW[NY:1]"},
			"implausible callsign",
		},
		{
			"no date",
			[]string{"call", "K1ABC", "band", "20m", "comment", "LICW[NY:1]"},
			"no qso_date",
		},
		{
			"bad date",
			[]string{"call", "K1ABC", "qso_date", "2025-07-12", "band", "20m", "comment", "LICW[NY:1]"},
			"bad qso_date",
		},
		{
			"no band",
			[]string{"call", "K1ABC", "qso_date", "20250712", "comment", "LICW[NY:1]"},
			"no band",
		},
	}
	for _, tc := range cases {
		rec := record(t, tc.pairs...)
		unit, defect := Normalize(rec, 0)
		if unit != nil {
			t.Fatalf("%s: expected no unit", tc.name)
		}
		if defect == nil || !strings.Contains(defect.Reason, tc.reason) {
			t.Fatalf("%s: expected defect mentioning %q, got %v", tc.name, tc.reason, defect)
		}
	}
}

func TestNormalizePortableCallsignAccepted(t *testing.T) {
	rec := record(t,
		"call", "EA8/K1ABC",
		"qso_date", "20250712",
		"band", "20m",
		"comment", "LICW[EA:9]")
	unit, defect := Normalize(rec, 0)
	if defect != nil || unit == nil {
		t.Fatalf("expected portable callsign to pass, got defect %v", defect)
	}
}
