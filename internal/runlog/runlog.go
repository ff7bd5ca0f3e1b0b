// Package runlog keeps an append-only CSV audit trail of grading runs, one
// row per graded task section.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the grading log.
type Entry struct {
	Timestamp time.Time
	Dataset   string
	Student   string
	Section   string
	Task      string
	Correct   int
	Total     int
	Grade     string
}

// Header is the CSV header for grading-log.csv.
const Header = "timestamp,dataset,student,section,task,correct,total,grade"

const (
	numFields    = 8
	logDir       = "logs"
	logFile      = "logs/grading-log.csv"
	colTimestamp = 0
	colDataset   = 1
	colStudent   = 2
	colSection   = 3
	colTask      = 4
	colCorrect   = 5
	colTotal     = 6
	colGrade     = 7
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colDataset] = e.Dataset
	row[colStudent] = e.Student
	row[colSection] = e.Section
	row[colTask] = e.Task
	row[colCorrect] = strconv.Itoa(e.Correct)
	row[colTotal] = strconv.Itoa(e.Total)
	row[colGrade] = e.Grade
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	correct, err := strconv.Atoi(record[colCorrect])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing correct count %q: %w", record[colCorrect], err)
	}
	total, err := strconv.Atoi(record[colTotal])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing total count %q: %w", record[colTotal], err)
	}

	return Entry{
		Timestamp: ts,
		Dataset:   record[colDataset],
		Student:   record[colStudent],
		Section:   record[colSection],
		Task:      record[colTask],
		Correct:   correct,
		Total:     total,
		Grade:     record[colGrade],
	}, nil
}

// Append writes entries to <root>/logs/grading-log.csv, creating the file and
// header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening grading log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <root>/logs/grading-log.csv.
// Returns an empty slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening grading log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading grading log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
