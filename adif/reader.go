// Package adif reads contact records from ADIF log files. Only the data
// specifier syntax is implemented; the reader makes no attempt at full ADIF
// compliance and simply yields every field of every record as text, letting
// the scoring pipeline pick out the handful of fields it needs.
package adif

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"licwchallenge/strutil"
)

// Record is one logged contact: a case-insensitive mapping of ADIF field
// name to raw text value, plus its position in the source file for defect
// reporting.
type Record struct {
	File   string
	Index  int // 1-based record number within File
	fields map[string]string
}

// Get returns the value of the named field, matched case-insensitively.
// Missing fields return the empty string.
func (r Record) Get(name string) string {
	return r.fields[strutil.NormalizeLower(name)]
}

// Has reports whether the named field is present, even if empty.
func (r Record) Has(name string) bool {
	_, ok := r.fields[strutil.NormalizeLower(name)]
	return ok
}

// ReadFile parses the ADIF log at path and returns its records in file order.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("adif: open log: %w", err)
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses an ADIF document from r. The name is attached to each record
// for defect reporting and error messages.
//
// An ADIF data specifier has the form <name:length[:type]>value, where value
// is the next length characters and may span line breaks. A document that
// does not start with '<' carries a free-text header terminated by <eoh>.
// Records are terminated by <eor>; a trailing record missing its <eor> is
// still returned. Structural damage (unterminated tag, bad length, truncated
// value) is a hard error: the caller gets no partial record set.
func Read(r io.Reader, name string) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("adif: read %s: %w", name, err)
	}
	doc := string(data)

	pos := 0
	if !startsWithTag(doc) {
		end := headerEnd(doc)
		if end < 0 {
			// Header but no <eoh>: nothing but header text in the file.
			return nil, nil
		}
		pos = end
	}

	var records []Record
	fields := make(map[string]string)
	index := 1

	for pos < len(doc) {
		open := strings.IndexByte(doc[pos:], '<')
		if open < 0 {
			break
		}
		pos += open
		end := strings.IndexByte(doc[pos:], '>')
		if end < 0 {
			return nil, fmt.Errorf("adif: %s: unterminated tag at offset %d", name, pos)
		}
		tag := doc[pos+1 : pos+end]
		pos += end + 1

		fieldName, length, ok, err := splitTag(tag)
		if err != nil {
			return nil, fmt.Errorf("adif: %s: %w", name, err)
		}
		if !ok {
			switch strutil.NormalizeLower(tag) {
			case "eor":
				if len(fields) > 0 {
					records = append(records, Record{File: name, Index: index, fields: fields})
					fields = make(map[string]string)
					index++
				}
			case "eoh":
				// Stray header terminator mid-document; ignore.
			default:
				// Bare tag we do not recognize; skip it.
			}
			continue
		}
		if pos+length > len(doc) {
			return nil, fmt.Errorf("adif: %s: field %s truncated at offset %d", name, fieldName, pos)
		}
		fields[strutil.NormalizeLower(fieldName)] = doc[pos : pos+length]
		pos += length
	}

	if len(fields) > 0 {
		records = append(records, Record{File: name, Index: index, fields: fields})
	}
	return records, nil
}

// splitTag parses "name:length[:type]" from inside a tag. Tags without a
// length (eor, eoh) return ok=false with no error.
func splitTag(tag string) (string, int, bool, error) {
	parts := strings.SplitN(tag, ":", 3)
	if len(parts) < 2 {
		return "", 0, false, nil
	}
	fieldName := strings.TrimSpace(parts[0])
	length, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || length < 0 {
		return "", 0, false, fmt.Errorf("bad field length in tag <%s>", tag)
	}
	if fieldName == "" {
		return "", 0, false, fmt.Errorf("empty field name in tag <%s>", tag)
	}
	return fieldName, length, true, nil
}

// startsWithTag reports whether the document begins with a tag, ignoring
// leading whitespace. ADIF defines the header as present only when the first
// character is not '<'.
func startsWithTag(doc string) bool {
	trimmed := strings.TrimLeft(doc, " \t\r\n")
	return strings.HasPrefix(trimmed, "<")
}

// eohPattern locates the header terminator case-insensitively. Matching on
// the original document keeps the offset valid when header text carries
// characters whose width changes under case conversion.
var eohPattern = regexp.MustCompile(`(?i)<eoh>`)

// headerEnd returns the offset just past the first <eoh>, or -1.
func headerEnd(doc string) int {
	loc := eohPattern.FindStringIndex(doc)
	if loc == nil {
		return -1
	}
	return loc[1]
}
