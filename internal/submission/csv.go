package submission

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Header is the CSV header for submission files.
const Header = "field_id,value"

const (
	numFields  = 2
	colFieldID = 0
	colValue   = 1
)

// Read parses a submission from a field_id,value CSV reader.
func Read(r io.Reader) (Submission, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading submission CSV: %w", err)
	}

	if len(records) == 0 {
		return Submission{}, nil
	}

	// Skip header row.
	sub := make(Submission, len(records)-1)
	for i, rec := range records[1:] {
		id := rec[colFieldID]
		if id == "" {
			return nil, fmt.Errorf("row %d: empty field_id", i+2)
		}
		sub[id] = rec[colValue]
	}
	return sub, nil
}

// Write writes a submission as CSV (including header), with fields sorted by
// identifier for stable output.
func Write(w io.Writer, sub Submission) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, id := range sortedIDs(sub) {
		if err := cw.Write([]string{id, sub[id]}); err != nil {
			return fmt.Errorf("writing field %s: %w", id, err)
		}
	}
	return cw.Error()
}

func sortedIDs(sub Submission) []string {
	ids := make([]string, 0, len(sub))
	for id := range sub {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadFile reads a submission CSV from disk.
func LoadFile(path string) (Submission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening submission %s: %w", path, err)
	}
	defer f.Close()

	sub, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading submission %s: %w", path, err)
	}
	return sub, nil
}
