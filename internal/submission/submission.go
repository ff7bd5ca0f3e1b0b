// Package submission holds a student's raw submitted field values and the
// CSV format they are exchanged in.
package submission

import (
	"github.com/shopspring/decimal"
)

// Submission maps field identifiers to raw submitted values. Values are
// read-only during validation; missing fields read as empty.
type Submission map[string]string

// Value returns the raw value of a field, or "" when absent.
func (s Submission) Value(id string) string {
	return s[id]
}

// Number returns the field parsed as a decimal. Blank or unparseable values
// coerce to zero: an ungraded blank field is indistinguishable from an
// explicit zero, which the grading rules rely on.
func (s Submission) Number(id string) decimal.Decimal {
	v := s[id]
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Checked reports whether a posting-reference box field is marked.
func (s Submission) Checked(id string) bool {
	v := s[id]
	return v == "1" || v == "true"
}
