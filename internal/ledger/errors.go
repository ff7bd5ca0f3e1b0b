package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Reference sources for unknown-account reports.
const (
	SourceBeginningBalance = "beginning-balance"
	SourceJournal          = "journal"
	SourceAdjustment       = "adjustment"
)

// UnknownAccountReference records an entry that names an account absent from
// the account order. The entry's effect on that side is dropped; the
// reference is collected so malformed datasets are detectable.
type UnknownAccountReference struct {
	Source  string
	EntryID int // journal entry ID; zero for other sources
	Account string
}

func (u UnknownAccountReference) String() string {
	if u.EntryID != 0 {
		return fmt.Sprintf("%s entry %d references unknown account %q", u.Source, u.EntryID, u.Account)
	}
	return fmt.Sprintf("%s references unknown account %q", u.Source, u.Account)
}

// DataIntegrityError reports a dataset whose reconstructed balance sheet does
// not satisfy the accounting equation. It indicates a bug in assignment
// generation, not a student error.
type DataIntegrityError struct {
	TotalAssets               decimal.Decimal
	TotalLiabilitiesAndEquity decimal.Decimal
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("accounting equation violated: assets %s != liabilities+equity %s",
		e.TotalAssets.StringFixed(2), e.TotalLiabilitiesAndEquity.StringFixed(2))
}
