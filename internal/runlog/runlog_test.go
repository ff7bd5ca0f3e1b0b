package runlog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp: testTime,
		Dataset:   "t2-task01-0042.yaml",
		Student:   "Reyes, Ana",
		Section:   "Grade 11 - Einstein",
		Task:      "ledgers",
		Correct:   38,
		Total:     40,
		Grade:     "A",
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	err := Append(dir, []Entry{testEntry()})
	require.NoError(t, err)

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "ledgers", entries[0].Task)
	assert.Equal(t, 38, entries[0].Correct)
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.Task = "trial-balance"
	e2.Correct = 12
	e2.Total = 14
	e2.Grade = "P"
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ledgers", entries[0].Task)
	assert.Equal(t, "trial-balance", entries[1].Task)
	assert.Equal(t, "P", entries[1].Grade)
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMarshalRoundTrip(t *testing.T) {
	e := testEntry()
	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestUnmarshalErrors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"too", "short"})
	assert.Error(t, err)

	row := MarshalEntry(testEntry())
	row[colTimestamp] = "yesterday"
	_, err = UnmarshalEntry(row)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "timestamp"))

	row = MarshalEntry(testEntry())
	row[colCorrect] = "many"
	_, err = UnmarshalEntry(row)
	assert.Error(t, err)
}
