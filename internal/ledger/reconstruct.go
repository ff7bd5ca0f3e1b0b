// Package ledger reconstructs the correct worksheet, ledger, and financial
// statement figures for an assignment, independent of anything the student
// submitted. Reconstruct is a pure function: identical input yields identical
// output and nothing outside the returned structures is touched.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/gradekey-dev/gradekey/internal/model"
)

// Input is the canonical assignment data the answer key derives from.
type Input struct {
	BeginningBalances  []model.BeginningBalance
	JournalEntries     []model.JournalEntry
	Adjustments        []model.AdjustingEntry
	AccountOrder       []string
	Classifications    map[string]model.Classification
	CapitalAccount     string
	WithdrawalsAccount string
}

// Posting is one expected ledger row derived from a journal entry line.
type Posting struct {
	EntryID int
	Line    int // 0 = debit line, 1 = credit line
	Side    model.Side
	Day     string
	Month   string
	Amount  decimal.Decimal
}

// AccountState carries one account's column amounts across the worksheet.
// After reconstruction at most one of ATBDr/ATBCr is non-zero.
type AccountState struct {
	Name           string
	Classification model.Classification

	TBDr, TBCr     decimal.Decimal // unadjusted trial balance (beginning balances)
	PostDr, PostCr decimal.Decimal // journal posting totals
	AdjDr, AdjCr   decimal.Decimal // adjustment column
	ATBDr, ATBCr   decimal.Decimal // adjusted trial balance, one side zeroed
	ISDr, ISCr     decimal.Decimal // income statement extension
	BSDr, BSCr     decimal.Decimal // balance sheet extension

	Postings []Posting // expected ledger rows, in journal order
}

// UnadjustedBalance returns the account's net balance before adjustments:
// beginning balance plus journal postings. Positive means a debit balance.
func (a *AccountState) UnadjustedBalance() decimal.Decimal {
	return a.TBDr.Add(a.PostDr).Sub(a.TBCr.Add(a.PostCr))
}

// Totals are the aggregate worksheet figures.
type Totals struct {
	TBDr, TBCr   decimal.Decimal
	AdjDr, AdjCr decimal.Decimal
	ATBDr, ATBCr decimal.Decimal

	// Column subtotals before the net income plug.
	ISSubDr, ISSubCr decimal.Decimal
	BSSubDr, BSSubCr decimal.Decimal

	// Final balanced columns after the plug.
	ISDr, ISCr decimal.Decimal
	BSDr, BSCr decimal.Decimal

	NetIncome     decimal.Decimal // negative on a net loss
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal

	StartingCapital decimal.Decimal
	Withdrawals     decimal.Decimal
	EndingCapital   decimal.Decimal

	TotalAssetsNet            decimal.Decimal // assets net of contra-assets
	TotalLiabilities          decimal.Decimal
	TotalLiabilitiesAndEquity decimal.Decimal
}

// Result is the reconstructed answer key.
type Result struct {
	Accounts    []*AccountState // in account-order, only accounts the data references
	Totals      Totals
	UnknownRefs []UnknownAccountReference

	byName map[string]*AccountState
}

// Account returns the state for an account name.
func (r *Result) Account(name string) (*AccountState, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// TrialBalanceTotal returns the expected total of either trial balance
// column: the sum of all positive unadjusted balances. Debit and credit
// totals are equal by construction.
func (r *Result) TrialBalanceTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range r.Accounts {
		if bal := a.UnadjustedBalance(); bal.IsPositive() {
			total = total.Add(bal)
		}
	}
	return total
}

// Reconstruct computes the answer key for an assignment. The returned error
// is non-nil only for a *DataIntegrityError (accounting equation violated);
// the result is still populated in that case so callers can inspect it.
// Unknown account references never fail the run; they are collected on the
// result and the offending side's effect is dropped.
func Reconstruct(in Input) (*Result, error) {
	r := &Result{byName: make(map[string]*AccountState)}

	ordered := make(map[string]bool, len(in.AccountOrder))
	for _, name := range in.AccountOrder {
		ordered[name] = true
	}

	get := func(name string) *AccountState {
		return r.byName[name]
	}
	create := func(name string) *AccountState {
		a := &AccountState{Name: name, Classification: in.Classifications[name]}
		r.byName[name] = a
		return a
	}

	// Seed from beginning balances. Accounts outside the order still
	// accumulate so they can be looked up, but they are excluded from the
	// worksheet and its totals; flag them.
	for _, b := range in.BeginningBalances {
		a := get(b.Account)
		if a == nil {
			a = create(b.Account)
			if !ordered[b.Account] {
				r.UnknownRefs = append(r.UnknownRefs, UnknownAccountReference{
					Source: SourceBeginningBalance, Account: b.Account,
				})
			}
		}
		switch b.Side {
		case model.SideDebit:
			a.TBDr = a.TBDr.Add(b.Amount)
		case model.SideCredit:
			a.TBCr = a.TBCr.Add(b.Amount)
		}
	}

	// resolve returns the account a journal/adjustment side applies to,
	// creating zero-column states for ordered accounts seen for the first
	// time. References outside the order are dropped and collected.
	resolve := func(name, source string, entryID int) *AccountState {
		if a := get(name); a != nil {
			return a
		}
		if ordered[name] {
			return create(name)
		}
		r.UnknownRefs = append(r.UnknownRefs, UnknownAccountReference{
			Source: source, EntryID: entryID, Account: name,
		})
		return nil
	}

	// Journal postings.
	for _, e := range in.JournalEntries {
		if a := resolve(e.DebitAccount, SourceJournal, e.ID); a != nil {
			a.PostDr = a.PostDr.Add(e.DebitAmount)
			a.Postings = append(a.Postings, Posting{
				EntryID: e.ID, Line: 0, Side: model.SideDebit,
				Day: e.Day, Month: e.Month, Amount: e.DebitAmount,
			})
		}
		if a := resolve(e.CreditAccount, SourceJournal, e.ID); a != nil {
			a.PostCr = a.PostCr.Add(e.CreditAmount)
			a.Postings = append(a.Postings, Posting{
				EntryID: e.ID, Line: 1, Side: model.SideCredit,
				Day: e.Day, Month: e.Month, Amount: e.CreditAmount,
			})
		}
	}

	// Adjustments.
	for _, adj := range in.Adjustments {
		if a := resolve(adj.DebitAccount, SourceAdjustment, 0); a != nil {
			a.AdjDr = a.AdjDr.Add(adj.Amount)
		}
		if a := resolve(adj.CreditAccount, SourceAdjustment, 0); a != nil {
			a.AdjCr = a.AdjCr.Add(adj.Amount)
		}
	}

	// Net each account to one side and extend into its statement columns,
	// accumulating column totals in presentation order.
	t := &r.Totals
	for _, name := range in.AccountOrder {
		a := get(name)
		if a == nil {
			continue
		}
		r.Accounts = append(r.Accounts, a)

		balance := a.TBDr.Add(a.PostDr).Add(a.AdjDr).Sub(a.TBCr.Add(a.PostCr).Add(a.AdjCr))
		switch balance.Sign() {
		case 1:
			a.ATBDr, a.ATBCr = balance, decimal.Zero
		case -1:
			a.ATBDr, a.ATBCr = decimal.Zero, balance.Abs()
		default:
			a.ATBDr, a.ATBCr = decimal.Zero, decimal.Zero
		}

		switch a.Classification.Statement {
		case model.StatementIS:
			a.ISDr, a.ISCr = a.ATBDr, a.ATBCr
			t.ISSubDr = t.ISSubDr.Add(a.ISDr)
			t.ISSubCr = t.ISSubCr.Add(a.ISCr)
		case model.StatementBS:
			a.BSDr, a.BSCr = a.ATBDr, a.ATBCr
			t.BSSubDr = t.BSSubDr.Add(a.BSDr)
			t.BSSubCr = t.BSSubCr.Add(a.BSCr)
		}

		t.TBDr = t.TBDr.Add(a.TBDr)
		t.TBCr = t.TBCr.Add(a.TBCr)
		t.AdjDr = t.AdjDr.Add(a.AdjDr)
		t.AdjCr = t.AdjCr.Add(a.AdjCr)
		t.ATBDr = t.ATBDr.Add(a.ATBDr)
		t.ATBCr = t.ATBCr.Add(a.ATBCr)
	}

	// Plug net income (or loss) into the minority IS and BS columns so both
	// extend to balanced totals.
	t.NetIncome = t.ISSubCr.Sub(t.ISSubDr)
	t.TotalRevenue = t.ISSubCr
	t.TotalExpenses = t.ISSubDr
	income, loss := decimal.Zero, decimal.Zero
	if t.NetIncome.IsPositive() {
		income = t.NetIncome
	} else {
		loss = t.NetIncome.Abs()
	}
	t.ISDr = t.ISSubDr.Add(income)
	t.ISCr = t.ISSubCr.Add(loss)
	t.BSDr = t.BSSubDr.Add(loss)
	t.BSCr = t.BSSubCr.Add(income)

	// Equity roll-forward.
	if capital, ok := r.byName[in.CapitalAccount]; ok {
		t.StartingCapital = capital.ATBCr
	}
	if wd, ok := r.byName[in.WithdrawalsAccount]; ok {
		t.Withdrawals = wd.ATBDr
	}
	t.EndingCapital = t.StartingCapital.Add(t.NetIncome).Sub(t.Withdrawals)

	// Balance sheet totals: assets net of contra-assets, then liabilities
	// plus ending capital.
	for _, a := range r.Accounts {
		if a.Classification.Statement != model.StatementBS {
			continue
		}
		switch a.Classification.Type {
		case model.AccountTypeAsset:
			t.TotalAssetsNet = t.TotalAssetsNet.Add(a.ATBDr)
		case model.AccountTypeContraAsset:
			t.TotalAssetsNet = t.TotalAssetsNet.Sub(a.ATBCr)
		case model.AccountTypeLiability:
			t.TotalLiabilities = t.TotalLiabilities.Add(a.ATBCr)
		}
	}
	t.TotalLiabilitiesAndEquity = t.TotalLiabilities.Add(t.EndingCapital)

	// Datasets without a classification table never extend the worksheet,
	// so the equation cannot be meaningfully checked for them.
	if len(in.Classifications) > 0 && !t.TotalAssetsNet.Equal(t.TotalLiabilitiesAndEquity) {
		return r, &DataIntegrityError{
			TotalAssets:               t.TotalAssetsNet,
			TotalLiabilitiesAndEquity: t.TotalLiabilitiesAndEquity,
		}
	}
	return r, nil
}
