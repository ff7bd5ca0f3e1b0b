package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BeginningBalance is one pre-closing trial balance line (engine input).
// The YAML codec lives in yaml.go.
type BeginningBalance struct {
	Account string
	Side    Side
	Amount  decimal.Decimal
}

// JournalEntry is a compound transaction with exactly one debit line and one
// credit line. Debit and credit amounts are taken as equal by the dataset
// generator; the engine never re-checks entry-internal balance.
type JournalEntry struct {
	ID            int
	Day           string // may be zero-padded, e.g. "05"
	Month         string
	DebitAccount  string
	CreditAccount string
	DebitAmount   decimal.Decimal
	CreditAmount  decimal.Decimal
	Description   string
}

// DayUnpadded returns the day stamp without a leading zero.
// "05" -> "5", "15" -> "15".
func (e JournalEntry) DayUnpadded() string {
	return UnpadDay(e.Day)
}

// UnpadDay strips leading zeros from a day stamp.
func UnpadDay(day string) string {
	d := strings.TrimLeft(day, "0")
	if d == "" {
		return "0"
	}
	return d
}

// AdjustingEntry is one adjustment applied after the unadjusted trial balance.
type AdjustingEntry struct {
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
	Description   string
}

// NewAccount declares an account introduced by adjustments that carries no
// beginning balance, together with its classification.
type NewAccount struct {
	Name           string         `yaml:"name"`
	Classification Classification `yaml:",inline"`
}
