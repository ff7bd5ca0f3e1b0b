package model

// AccountType classifies accounts for statement extension.
type AccountType string

const (
	AccountTypeAsset       AccountType = "asset"
	AccountTypeContraAsset AccountType = "contra-asset"
	AccountTypeLiability   AccountType = "liability"
	AccountTypeEquity      AccountType = "equity"
	AccountTypeRevenue     AccountType = "revenue"
	AccountTypeExpense     AccountType = "expense"
)

// Statement is the worksheet extension bucket for an account.
type Statement string

const (
	// StatementIS extends into the income statement columns.
	StatementIS Statement = "IS"
	// StatementBS extends into the balance sheet columns.
	StatementBS Statement = "BS"
	// StatementNone is for accounts that net out and extend nowhere
	// (e.g. income summary).
	StatementNone Statement = ""
)

// Classification pairs an account type with its statement bucket.
type Classification struct {
	Type      AccountType `yaml:"type"`
	Statement Statement   `yaml:"statement"`
}

// Side marks the normal column of a balance or posting.
type Side string

const (
	SideDebit  Side = "Dr"
	SideCredit Side = "Cr"
)

// Valid reports whether the side is one of Dr/Cr.
func (s Side) Valid() bool {
	return s == SideDebit || s == SideCredit
}
