// Package fieldid formats and parses the flat field identifiers used by
// student submissions: ledger cells, journal posting-reference boxes, trial
// balance rows, worksheet cells, and financial statement lines.
package fieldid

import (
	"fmt"
	"strconv"
	"strings"
)

// Ledger cell columns.
const (
	ColDate        = "d"
	ColParticulars = "p"
	ColPostingRef  = "pr"
	ColAmount      = "a"
)

// LedgerName returns the account title field of a ledger form, e.g. "l_2_name".
func LedgerName(formID int) string {
	return fmt.Sprintf("l_%d_name", formID)
}

// LedgerYear returns the year field for one side of a ledger form.
func LedgerYear(formID int, side string) string {
	return fmt.Sprintf("l_%d_%s_year", formID, side)
}

// LedgerCell returns a row cell field, e.g. "l_2_dr_a_0".
func LedgerCell(formID int, side, col string, row int) string {
	return fmt.Sprintf("l_%d_%s_%s_%d", formID, side, col, row)
}

// LedgerTotal returns the per-side total field, e.g. "l_2_total_dr".
func LedgerTotal(formID int, side string) string {
	return fmt.Sprintf("l_%d_total_%s", formID, side)
}

// LedgerBalance returns the balance amount field of a ledger form.
func LedgerBalance(formID int) string {
	return fmt.Sprintf("l_%d_bal", formID)
}

// LedgerBalanceType returns the balance side selector field of a ledger form.
func LedgerBalanceType(formID int) string {
	return fmt.Sprintf("l_%d_bal_type", formID)
}

// JournalPR returns the posting-reference box field for one line of a journal
// entry: line 0 is the debit line, line 1 the credit line.
func JournalPR(entryID, line int) string {
	return fmt.Sprintf("j_%d_%d", entryID, line)
}

// Trial balance fields.
const (
	TrialBalanceTotalDebit  = "tb_total_dr"
	TrialBalanceTotalCredit = "tb_total_cr"
)

// TrialBalanceName returns the account title field of a trial balance row.
func TrialBalanceName(row int) string {
	return fmt.Sprintf("tb_name_%d", row)
}

// TrialBalanceDebit returns the debit field of a trial balance row.
func TrialBalanceDebit(row int) string {
	return fmt.Sprintf("tb_dr_%d", row)
}

// TrialBalanceCredit returns the credit field of a trial balance row.
func TrialBalanceCredit(row int) string {
	return fmt.Sprintf("tb_cr_%d", row)
}

// ParseTrialBalanceName extracts the row index from a "tb_name_<i>" field.
func ParseTrialBalanceName(id string) (row int, ok bool) {
	rest, found := strings.CutPrefix(id, "tb_name_")
	if !found {
		return 0, false
	}
	row, err := strconv.Atoi(rest)
	if err != nil || row < 0 {
		return 0, false
	}
	return row, true
}

// WorksheetCell returns a per-account worksheet field, e.g. "wks_3_ADJ_DR".
// The column is one of TB_DR, TB_CR, ADJ_DR, ADJ_CR, ATB_DR, ATB_CR, IS_DR,
// IS_CR, BS_DR, BS_CR.
func WorksheetCell(accountIndex int, column string) string {
	return fmt.Sprintf("wks_%d_%s", accountIndex, column)
}

// WorksheetSubtotal returns a column-subtotal field, e.g. "wks_SUBTOTAL_IS_DR".
func WorksheetSubtotal(column string) string {
	return "wks_SUBTOTAL_" + column
}

// WorksheetNetIncome returns a net-income row field, e.g. "wks_NI_BS_CR".
func WorksheetNetIncome(column string) string {
	return "wks_NI_" + column
}

// WorksheetFinal returns a final-totals row field, e.g. "wks_FINAL_TB_DR".
func WorksheetFinal(column string) string {
	return "wks_FINAL_" + column
}

// Financial statement fields.
const (
	ISTotalRevenue     = "is_total_revenue"
	ISTotalExpense     = "is_total_expense"
	ISNetIncome        = "is_net_income"
	SCEStartingCapital = "sce_starting_capital"
	SCENetIncome       = "sce_net_income"
	SCEWithdrawals     = "sce_withdrawals"
	SCEEndingCapital   = "sce_ending_capital"
	BSEndingCapital    = "bs_ending_capital_bs"
	BSTotalAssets      = "bs_total_assets"
	BSTotalLiabEquity  = "bs_total_liab_equity"
)

// AccountSlug lowercases an account name and replaces every non-alphanumeric
// rune with an underscore. "Accounts Receivable" -> "accounts_receivable".
func AccountSlug(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// ISLine returns the income statement line field for an account.
func ISLine(accountName string) string {
	return AccountSlug(accountName) + "_is_li"
}

// BSLine returns the balance sheet line field for an account.
func BSLine(accountName string) string {
	return AccountSlug(accountName) + "_bs_li"
}
