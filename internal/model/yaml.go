package model

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// The YAML codec goes through string amounts because decimal.Decimal carries
// no YAML methods of its own and the yaml decoder cannot fill its unexported
// fields.

func parseAmount(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return d, nil
}

type beginningBalanceYAML struct {
	Account string `yaml:"account"`
	Side    Side   `yaml:"side"`
	Amount  string `yaml:"amount"`
}

func (b BeginningBalance) MarshalYAML() (any, error) {
	return beginningBalanceYAML{
		Account: b.Account,
		Side:    b.Side,
		Amount:  b.Amount.String(),
	}, nil
}

func (b *BeginningBalance) UnmarshalYAML(value *yaml.Node) error {
	var raw beginningBalanceYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	amount, err := parseAmount("amount", raw.Amount)
	if err != nil {
		return err
	}
	*b = BeginningBalance{Account: raw.Account, Side: raw.Side, Amount: amount}
	return nil
}

type journalEntryYAML struct {
	ID            int    `yaml:"id"`
	Day           string `yaml:"day"`
	Month         string `yaml:"month"`
	DebitAccount  string `yaml:"debit_account"`
	CreditAccount string `yaml:"credit_account"`
	DebitAmount   string `yaml:"debit_amount"`
	CreditAmount  string `yaml:"credit_amount"`
	Description   string `yaml:"description,omitempty"`
}

func (e JournalEntry) MarshalYAML() (any, error) {
	return journalEntryYAML{
		ID:            e.ID,
		Day:           e.Day,
		Month:         e.Month,
		DebitAccount:  e.DebitAccount,
		CreditAccount: e.CreditAccount,
		DebitAmount:   e.DebitAmount.String(),
		CreditAmount:  e.CreditAmount.String(),
		Description:   e.Description,
	}, nil
}

func (e *JournalEntry) UnmarshalYAML(value *yaml.Node) error {
	var raw journalEntryYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	debit, err := parseAmount("debit_amount", raw.DebitAmount)
	if err != nil {
		return err
	}
	credit, err := parseAmount("credit_amount", raw.CreditAmount)
	if err != nil {
		return err
	}
	*e = JournalEntry{
		ID:            raw.ID,
		Day:           raw.Day,
		Month:         raw.Month,
		DebitAccount:  raw.DebitAccount,
		CreditAccount: raw.CreditAccount,
		DebitAmount:   debit,
		CreditAmount:  credit,
		Description:   raw.Description,
	}
	return nil
}

type adjustingEntryYAML struct {
	DebitAccount  string `yaml:"debit_account"`
	CreditAccount string `yaml:"credit_account"`
	Amount        string `yaml:"amount"`
	Description   string `yaml:"description,omitempty"`
}

func (a AdjustingEntry) MarshalYAML() (any, error) {
	return adjustingEntryYAML{
		DebitAccount:  a.DebitAccount,
		CreditAccount: a.CreditAccount,
		Amount:        a.Amount.String(),
		Description:   a.Description,
	}, nil
}

func (a *AdjustingEntry) UnmarshalYAML(value *yaml.Node) error {
	var raw adjustingEntryYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	amount, err := parseAmount("amount", raw.Amount)
	if err != nil {
		return err
	}
	*a = AdjustingEntry{
		DebitAccount:  raw.DebitAccount,
		CreditAccount: raw.CreditAccount,
		Amount:        amount,
		Description:   raw.Description,
	}
	return nil
}
