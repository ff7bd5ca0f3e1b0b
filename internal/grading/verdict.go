// Package grading compares a student's submitted field values against the
// reconstructed answer key and classifies each relevant field. The validator
// never fails: every field either resolves to a verdict or stays unset,
// meaning the field was not applicable to that account or row.
package grading

import "sort"

// Verdict is the outcome for one submitted field.
type Verdict string

const (
	VerdictMatch    Verdict = "match"
	VerdictMismatch Verdict = "mismatch"
	// VerdictNA is reported for fields no verdict was recorded for.
	VerdictNA Verdict = "n/a"
)

// VerdictMap holds per-field outcomes keyed by field identifier.
type VerdictMap map[string]Verdict

// Get returns the verdict for a field, VerdictNA when unset.
func (m VerdictMap) Get(id string) Verdict {
	if v, ok := m[id]; ok {
		return v
	}
	return VerdictNA
}

// Mismatches returns the sorted field identifiers flagged as mismatching.
func (m VerdictMap) Mismatches() []string {
	return m.withVerdict(VerdictMismatch)
}

// Matches returns the sorted field identifiers that graded correct.
func (m VerdictMap) Matches() []string {
	return m.withVerdict(VerdictMatch)
}

func (m VerdictMap) withVerdict(want Verdict) []string {
	var ids []string
	for id, v := range m {
		if v == want {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
