package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradekey-dev/gradekey/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func assertDecEqual(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "want %s, got %s: %v", want, got, msgAndArgs)
}

// balancedInput is a self-consistent worksheet assignment: beginning balances
// sum to equal debit/credit totals and the adjustments introduce two new
// accounts.
func balancedInput() Input {
	cls := map[string]model.Classification{
		"Cash":                     {Type: model.AccountTypeAsset, Statement: model.StatementBS},
		"Supplies":                 {Type: model.AccountTypeAsset, Statement: model.StatementBS},
		"Equipment":                {Type: model.AccountTypeAsset, Statement: model.StatementBS},
		"Accumulated Depreciation": {Type: model.AccountTypeContraAsset, Statement: model.StatementBS},
		"Accounts Payable":         {Type: model.AccountTypeLiability, Statement: model.StatementBS},
		"Reyes, Capital":           {Type: model.AccountTypeEquity, Statement: model.StatementBS},
		"Reyes, Withdrawals":       {Type: model.AccountTypeEquity, Statement: model.StatementBS},
		"Service Revenue":          {Type: model.AccountTypeRevenue, Statement: model.StatementIS},
		"Salaries Expense":         {Type: model.AccountTypeExpense, Statement: model.StatementIS},
		"Supplies Expense":         {Type: model.AccountTypeExpense, Statement: model.StatementIS},
		"Depreciation Expense":     {Type: model.AccountTypeExpense, Statement: model.StatementIS},
	}
	return Input{
		BeginningBalances: []model.BeginningBalance{
			{Account: "Cash", Side: model.SideDebit, Amount: dec("7500")},
			{Account: "Supplies", Side: model.SideDebit, Amount: dec("1000")},
			{Account: "Equipment", Side: model.SideDebit, Amount: dec("5000")},
			{Account: "Reyes, Withdrawals", Side: model.SideDebit, Amount: dec("500")},
			{Account: "Salaries Expense", Side: model.SideDebit, Amount: dec("1000")},
			{Account: "Accounts Payable", Side: model.SideCredit, Amount: dec("2000")},
			{Account: "Reyes, Capital", Side: model.SideCredit, Amount: dec("10000")},
			{Account: "Service Revenue", Side: model.SideCredit, Amount: dec("3000")},
		},
		Adjustments: []model.AdjustingEntry{
			{DebitAccount: "Supplies Expense", CreditAccount: "Supplies", Amount: dec("400"), Description: "Supplies used"},
			{DebitAccount: "Depreciation Expense", CreditAccount: "Accumulated Depreciation", Amount: dec("500"), Description: "Annual depreciation"},
		},
		AccountOrder: []string{
			"Cash", "Supplies", "Equipment", "Accumulated Depreciation",
			"Accounts Payable", "Reyes, Capital", "Reyes, Withdrawals",
			"Service Revenue", "Salaries Expense", "Supplies Expense", "Depreciation Expense",
		},
		Classifications:    cls,
		CapitalAccount:     "Reyes, Capital",
		WithdrawalsAccount: "Reyes, Withdrawals",
	}
}

func TestReconstructBalancedWorksheet(t *testing.T) {
	r, err := Reconstruct(balancedInput())
	require.NoError(t, err)
	assert.Empty(t, r.UnknownRefs)
	require.Len(t, r.Accounts, 11)

	supplies, ok := r.Account("Supplies")
	require.True(t, ok)
	assertDecEqual(t, "1000", supplies.TBDr)
	assertDecEqual(t, "400", supplies.AdjCr)
	assertDecEqual(t, "600", supplies.ATBDr)
	assertDecEqual(t, "600", supplies.BSDr)

	accumDep, ok := r.Account("Accumulated Depreciation")
	require.True(t, ok)
	assertDecEqual(t, "0", accumDep.TBDr)
	assertDecEqual(t, "0", accumDep.TBCr)
	assertDecEqual(t, "500", accumDep.ATBCr, "adjustment-only account seeded with zero columns")

	tt := r.Totals
	assertDecEqual(t, "1900", tt.TotalExpenses)
	assertDecEqual(t, "3000", tt.TotalRevenue)
	assertDecEqual(t, "1100", tt.NetIncome)

	assertDecEqual(t, "10000", tt.StartingCapital)
	assertDecEqual(t, "500", tt.Withdrawals)
	assertDecEqual(t, "10600", tt.EndingCapital)

	assertDecEqual(t, "12600", tt.TotalAssetsNet)
	assertDecEqual(t, "2000", tt.TotalLiabilities)
	assertDecEqual(t, "12600", tt.TotalLiabilitiesAndEquity)
}

func TestReconstructBalancingInvariant(t *testing.T) {
	r, err := Reconstruct(balancedInput())
	require.NoError(t, err)

	tt := r.Totals
	assert.True(t, tt.ISDr.Equal(tt.ISCr), "IS final %s != %s", tt.ISDr, tt.ISCr)
	assert.True(t, tt.BSDr.Equal(tt.BSCr), "BS final %s != %s", tt.BSDr, tt.BSCr)
	assertDecEqual(t, "3000", tt.ISDr)
	assertDecEqual(t, "13600", tt.BSDr)
}

func TestReconstructOneSidedATB(t *testing.T) {
	r, err := Reconstruct(balancedInput())
	require.NoError(t, err)

	for _, a := range r.Accounts {
		assert.True(t, a.ATBDr.IsZero() || a.ATBCr.IsZero(),
			"account %s has two-sided ATB: %s / %s", a.Name, a.ATBDr, a.ATBCr)
	}
}

func TestReconstructIdempotent(t *testing.T) {
	in := balancedInput()
	first, err1 := Reconstruct(in)
	second, err2 := Reconstruct(in)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

// The minimal posting scenario: a beginning cash balance, one service sale,
// no adjustments. The dataset is deliberately not a full balance sheet, so
// the accounting equation fails while every column figure is still computed.
func TestReconstructCashServiceScenario(t *testing.T) {
	in := Input{
		BeginningBalances: []model.BeginningBalance{
			{Account: "Cash", Side: model.SideDebit, Amount: dec("10000")},
		},
		JournalEntries: []model.JournalEntry{
			{
				ID: 1, Day: "05", Month: "Sep",
				DebitAccount: "Cash", CreditAccount: "Service Revenue",
				DebitAmount: dec("2000"), CreditAmount: dec("2000"),
			},
		},
		AccountOrder: []string{"Cash", "Service Revenue"},
		Classifications: map[string]model.Classification{
			"Cash":            {Type: model.AccountTypeAsset, Statement: model.StatementBS},
			"Service Revenue": {Type: model.AccountTypeRevenue, Statement: model.StatementIS},
		},
	}

	r, err := Reconstruct(in)

	cash, ok := r.Account("Cash")
	require.True(t, ok)
	assertDecEqual(t, "10000", cash.TBDr, "TB column holds beginning balances only")
	assertDecEqual(t, "0", cash.AdjDr)
	assertDecEqual(t, "0", cash.AdjCr)
	assertDecEqual(t, "12000", cash.ATBDr, "postings flow into the adjusted trial balance")
	require.Len(t, cash.Postings, 1)
	assertDecEqual(t, "2000", cash.Postings[0].Amount)
	assert.Equal(t, 0, cash.Postings[0].Line)

	rev, ok := r.Account("Service Revenue")
	require.True(t, ok)
	assertDecEqual(t, "2000", rev.ATBCr)
	assertDecEqual(t, "2000", rev.ISCr)

	tt := r.Totals
	assertDecEqual(t, "2000", tt.NetIncome)
	assertDecEqual(t, "2000", tt.ISDr, "net income plugged into the debit side")
	assertDecEqual(t, "2000", tt.ISCr)
	assertDecEqual(t, "0", tt.BSSubCr)
	assertDecEqual(t, "2000", tt.BSCr, "plug lands on the BS credit side")

	// Cash is unbacked by capital here, so the equation cannot hold.
	var integrity *DataIntegrityError
	require.ErrorAs(t, err, &integrity)
	assertDecEqual(t, "12000", integrity.TotalAssets)
	assertDecEqual(t, "2000", integrity.TotalLiabilitiesAndEquity)
}

func TestReconstructUnknownReferences(t *testing.T) {
	in := Input{
		BeginningBalances: []model.BeginningBalance{
			{Account: "Cash", Side: model.SideDebit, Amount: dec("1000")},
		},
		JournalEntries: []model.JournalEntry{
			{
				ID: 7, Day: "12", Month: "Sep",
				DebitAccount: "Cash", CreditAccount: "Mystery Income",
				DebitAmount: dec("300"), CreditAmount: dec("300"),
			},
		},
		Adjustments: []model.AdjustingEntry{
			{DebitAccount: "Phantom Expense", CreditAccount: "Cash", Amount: dec("50")},
		},
		AccountOrder: []string{"Cash"},
	}

	r, err := Reconstruct(in)
	require.NoError(t, err)

	require.Len(t, r.UnknownRefs, 2)
	assert.Equal(t, UnknownAccountReference{Source: SourceJournal, EntryID: 7, Account: "Mystery Income"}, r.UnknownRefs[0])
	assert.Equal(t, UnknownAccountReference{Source: SourceAdjustment, Account: "Phantom Expense"}, r.UnknownRefs[1])

	// The known sides still applied.
	cash, ok := r.Account("Cash")
	require.True(t, ok)
	assertDecEqual(t, "300", cash.PostDr)
	assertDecEqual(t, "50", cash.AdjCr)
}

func TestTrialBalanceTotal(t *testing.T) {
	in := balancedInput()
	in.JournalEntries = []model.JournalEntry{
		{
			ID: 1, Day: "03", Month: "Sep",
			DebitAccount: "Cash", CreditAccount: "Service Revenue",
			DebitAmount: dec("1500"), CreditAmount: dec("1500"),
		},
	}
	r, err := Reconstruct(in)
	require.NoError(t, err)

	// Positive unadjusted balances: Cash 9000, Supplies 1000, Equipment
	// 5000, Withdrawals 500, Salaries 1000 = 16500.
	assertDecEqual(t, "16500", r.TrialBalanceTotal())
}

func TestUnknownAccountReferenceString(t *testing.T) {
	withEntry := UnknownAccountReference{Source: SourceJournal, EntryID: 3, Account: "Mystery"}
	assert.Equal(t, `journal entry 3 references unknown account "Mystery"`, withEntry.String())

	noEntry := UnknownAccountReference{Source: SourceAdjustment, Account: "Phantom"}
	assert.Equal(t, `adjustment references unknown account "Phantom"`, noEntry.String())
}
