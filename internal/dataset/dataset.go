// Package dataset loads the canonical assignment data an answer key is
// reconstructed from: student info, beginning balances, journal entries,
// adjustments, the presentation order of accounts, and the classification
// table mapping account names to types and statement buckets.
package dataset

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gradekey-dev/gradekey/internal/model"
)

// StudentInfo identifies the student a dataset was generated for.
type StudentInfo struct {
	ClassNumber  string `yaml:"class_number"`
	FullName     string `yaml:"full_name"` // "Family, Given"
	GradeSection string `yaml:"grade_section"`
}

// LedgerForm describes one blank ledger form presented to the student.
type LedgerForm struct {
	ID   int `yaml:"id"`
	Rows int `yaml:"rows,omitempty"`
}

// defaultLedgerRows matches the form layout when rows is unset.
const defaultLedgerRows = 4

// RowCount returns the number of transaction rows on the form.
func (f LedgerForm) RowCount() int {
	if f.Rows <= 0 {
		return defaultLedgerRows
	}
	return f.Rows
}

// Dataset is one generated assignment: the inputs the engine reconstructs
// the answer key from, plus the structure of the forms the student fills in.
type Dataset struct {
	Student           StudentInfo                     `yaml:"student"`
	Year              int                             `yaml:"year"`
	Month             string                          `yaml:"month,omitempty"` // e.g. "Sep"
	BeginningBalances []model.BeginningBalance        `yaml:"beginning_balances"`
	JournalEntries    []model.JournalEntry            `yaml:"journal_entries,omitempty"`
	Adjustments       []model.AdjustingEntry          `yaml:"adjustments,omitempty"`
	NewAccounts       []model.NewAccount              `yaml:"new_accounts,omitempty"`
	AccountOrder      []string                        `yaml:"account_order"`
	Classifications   map[string]model.Classification `yaml:"classifications"`
	Ledgers           []LedgerForm                    `yaml:"ledgers,omitempty"`
}

// Load reads a dataset YAML file from disk.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	return &ds, nil
}

// Save writes a Dataset to a YAML file.
func Save(path string, ds *Dataset) error {
	data, err := yaml.Marshal(ds)
	if err != nil {
		return fmt.Errorf("marshaling dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	return nil
}

// FamilyName returns the surname portion of the student's full name
// ("Reyes, Ana" -> "Reyes"), or "Student" when unavailable.
func (d *Dataset) FamilyName() string {
	name := strings.TrimSpace(strings.SplitN(d.Student.FullName, ",", 2)[0])
	if name == "" {
		return "Student"
	}
	return name
}

// CapitalAccount returns the owner's capital account title for this student.
func (d *Dataset) CapitalAccount() string {
	return d.FamilyName() + ", Capital"
}

// WithdrawalsAccount returns the owner's withdrawals account title.
func (d *Dataset) WithdrawalsAccount() string {
	return d.FamilyName() + ", Withdrawals"
}

// TransactionMonth returns the month label transactions carry: the explicit
// month if set, otherwise the month of the first journal entry.
func (d *Dataset) TransactionMonth() string {
	if d.Month != "" {
		return d.Month
	}
	if len(d.JournalEntries) > 0 {
		return d.JournalEntries[0].Month
	}
	return "Jan"
}

// RequiredAccounts returns the sorted, deduplicated union of account names
// appearing in the beginning balances and journal entries. These are the
// accounts the ledger and trial balance tasks are graded against.
func (d *Dataset) RequiredAccounts() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, b := range d.BeginningBalances {
		add(b.Account)
	}
	for _, e := range d.JournalEntries {
		add(e.DebitAccount)
		add(e.CreditAccount)
	}
	sort.Strings(names)
	return names
}

// ClassificationTable returns the complete name-to-classification table for
// the engine: the dataset's table, the new-account declarations, and the
// synthesized equity accounts for this student's family name.
func (d *Dataset) ClassificationTable() map[string]model.Classification {
	table := make(map[string]model.Classification, len(d.Classifications)+len(d.NewAccounts)+2)
	for name, c := range d.Classifications {
		table[name] = c
	}
	for _, na := range d.NewAccounts {
		if _, ok := table[na.Name]; !ok {
			table[na.Name] = na.Classification
		}
	}
	equity := model.Classification{Type: model.AccountTypeEquity, Statement: model.StatementBS}
	if _, ok := table[d.CapitalAccount()]; !ok {
		table[d.CapitalAccount()] = equity
	}
	if _, ok := table[d.WithdrawalsAccount()]; !ok {
		table[d.WithdrawalsAccount()] = equity
	}
	return table
}

// FindBeginningBalance returns the beginning balance entry for an account.
func (d *Dataset) FindBeginningBalance(account string) (model.BeginningBalance, bool) {
	for _, b := range d.BeginningBalances {
		if b.Account == account {
			return b, true
		}
	}
	return model.BeginningBalance{}, false
}
