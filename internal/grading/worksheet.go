package grading

import (
	"github.com/shopspring/decimal"

	"github.com/gradekey-dev/gradekey/internal/fieldid"
	"github.com/gradekey-dev/gradekey/internal/ledger"
	"github.com/gradekey-dev/gradekey/internal/model"
)

// Worksheet column labels, in presentation order.
var worksheetColumns = []string{
	"TB_DR", "TB_CR", "ADJ_DR", "ADJ_CR", "ATB_DR", "ATB_CR",
	"IS_DR", "IS_CR", "BS_DR", "BS_CR",
}

// inputColumns are the per-account columns the student fills in; the trial
// balance pair is given.
var inputColumns = worksheetColumns[2:]

func accountColumn(acc *ledger.AccountState, column string) decimal.Decimal {
	switch column {
	case "TB_DR":
		return acc.TBDr
	case "TB_CR":
		return acc.TBCr
	case "ADJ_DR":
		return acc.AdjDr
	case "ADJ_CR":
		return acc.AdjCr
	case "ATB_DR":
		return acc.ATBDr
	case "ATB_CR":
		return acc.ATBCr
	case "IS_DR":
		return acc.ISDr
	case "IS_CR":
		return acc.ISCr
	case "BS_DR":
		return acc.BSDr
	case "BS_CR":
		return acc.BSCr
	}
	return decimal.Zero
}

func subtotalColumn(t ledger.Totals, column string) decimal.Decimal {
	switch column {
	case "TB_DR":
		return t.TBDr
	case "TB_CR":
		return t.TBCr
	case "ADJ_DR":
		return t.AdjDr
	case "ADJ_CR":
		return t.AdjCr
	case "ATB_DR":
		return t.ATBDr
	case "ATB_CR":
		return t.ATBCr
	case "IS_DR":
		return t.ISSubDr
	case "IS_CR":
		return t.ISSubCr
	case "BS_DR":
		return t.BSSubDr
	case "BS_CR":
		return t.BSSubCr
	}
	return decimal.Zero
}

func finalColumn(t ledger.Totals, column string) decimal.Decimal {
	switch column {
	case "IS_DR":
		return t.ISDr
	case "IS_CR":
		return t.ISCr
	case "BS_DR":
		return t.BSDr
	case "BS_CR":
		return t.BSCr
	}
	return subtotalColumn(t, column)
}

// netIncomeColumn returns the net-income plug row value: income lands in
// IS_DR and BS_CR, a loss in IS_CR and BS_DR.
func netIncomeColumn(netIncome decimal.Decimal, column string) decimal.Decimal {
	income, loss := decimal.Zero, decimal.Zero
	if netIncome.IsPositive() {
		income = netIncome
	} else {
		loss = netIncome.Abs()
	}
	switch column {
	case "IS_DR", "BS_CR":
		return income
	case "IS_CR", "BS_DR":
		return loss
	}
	return decimal.Zero
}

// ValidateWorksheet grades the 10-column worksheet: every adjustment,
// adjusted-trial-balance, and statement-extension cell per account, the
// column subtotals, the net income row, and the final balanced totals. Every
// cell gets a verdict; a blank cell is graded as zero.
func (v *Validator) ValidateWorksheet() {
	for i, acc := range v.key.Accounts {
		for _, col := range inputColumns {
			id := fieldid.WorksheetCell(i, col)
			v.mark(TaskWorksheet, id, within(v.sub.Number(id), accountColumn(acc, col), v.tol.Cent))
		}
	}

	t := v.key.Totals
	for _, col := range worksheetColumns {
		id := fieldid.WorksheetSubtotal(col)
		v.mark(TaskWorksheet, id, within(v.sub.Number(id), subtotalColumn(t, col), v.tol.Cent))
	}
	for _, col := range []string{"IS_DR", "IS_CR", "BS_DR", "BS_CR"} {
		id := fieldid.WorksheetNetIncome(col)
		v.mark(TaskWorksheet, id, within(v.sub.Number(id), netIncomeColumn(t.NetIncome, col), v.tol.Cent))
	}
	for _, col := range worksheetColumns {
		id := fieldid.WorksheetFinal(col)
		v.mark(TaskWorksheet, id, within(v.sub.Number(id), finalColumn(t, col), v.tol.Cent))
	}
}

// ValidateStatements grades the three financial statements prepared from the
// worksheet: income statement lines and totals, the statement of changes in
// equity, and the balance sheet with assets net of contra-assets.
func (v *Validator) ValidateStatements() {
	t := v.key.Totals
	cent := func(id string, want decimal.Decimal) {
		v.mark(TaskStatements, id, within(v.sub.Number(id), want, v.tol.Cent))
	}

	for _, acc := range v.key.Accounts {
		switch {
		case acc.Classification.Statement == model.StatementIS && acc.Classification.Type == model.AccountTypeRevenue:
			cent(fieldid.ISLine(acc.Name), acc.ATBCr)
		case acc.Classification.Statement == model.StatementIS && acc.Classification.Type == model.AccountTypeExpense:
			cent(fieldid.ISLine(acc.Name), acc.ATBDr)
		case acc.Classification.Statement == model.StatementBS && acc.Classification.Type == model.AccountTypeAsset:
			cent(fieldid.BSLine(acc.Name), acc.ATBDr)
		case acc.Classification.Statement == model.StatementBS && acc.Classification.Type == model.AccountTypeContraAsset:
			cent(fieldid.BSLine(acc.Name), acc.ATBCr)
		case acc.Classification.Statement == model.StatementBS && acc.Classification.Type == model.AccountTypeLiability:
			cent(fieldid.BSLine(acc.Name), acc.ATBCr)
		}
	}

	cent(fieldid.ISTotalRevenue, t.TotalRevenue)
	cent(fieldid.ISTotalExpense, t.TotalExpenses)
	cent(fieldid.ISNetIncome, t.NetIncome.Abs())

	cent(fieldid.SCEStartingCapital, t.StartingCapital)
	cent(fieldid.SCENetIncome, t.NetIncome.Abs())
	cent(fieldid.SCEWithdrawals, t.Withdrawals)
	cent(fieldid.SCEEndingCapital, t.EndingCapital)

	cent(fieldid.BSEndingCapital, t.EndingCapital)
	cent(fieldid.BSTotalAssets, t.TotalAssetsNet)
	cent(fieldid.BSTotalLiabEquity, t.TotalLiabilitiesAndEquity)
}
