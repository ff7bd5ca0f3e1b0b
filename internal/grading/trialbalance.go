package grading

import (
	"sort"
	"strings"

	"github.com/gradekey-dev/gradekey/internal/fieldid"
)

// ValidateTrialBalance grades the trial balance: rows are discovered by
// scanning the submission for title fields, titles are matched
// case-insensitively against the required accounts, and matched rows are
// compared against the account's unadjusted net balance. An amount entered on
// the wrong side flags both columns.
func (v *Validator) ValidateTrialBalance() {
	expectedTotal := v.key.TrialBalanceTotal()

	totalDr := v.sub.Number(fieldid.TrialBalanceTotalDebit)
	v.mark(TaskTrialBalance, fieldid.TrialBalanceTotalDebit,
		within(totalDr, expectedTotal, v.tol.Total) && totalDr.IsPositive())

	totalCr := v.sub.Number(fieldid.TrialBalanceTotalCredit)
	v.mark(TaskTrialBalance, fieldid.TrialBalanceTotalCredit,
		within(totalCr, expectedTotal, v.tol.Total) && totalCr.IsPositive())

	for _, row := range v.trialBalanceRows() {
		nameID := fieldid.TrialBalanceName(row)
		drID := fieldid.TrialBalanceDebit(row)
		crID := fieldid.TrialBalanceCredit(row)

		nameVal := strings.TrimSpace(v.sub.Value(nameID))
		drVal := v.sub.Number(drID)
		crVal := v.sub.Number(crID)
		if nameVal == "" && drVal.IsZero() && crVal.IsZero() {
			continue
		}

		accName, found := v.matchAccountName(nameVal)
		if !found {
			v.mark(TaskTrialBalance, nameID, false)
			if !drVal.IsZero() {
				v.mark(TaskTrialBalance, drID, false)
			}
			if !crVal.IsZero() {
				v.mark(TaskTrialBalance, crID, false)
			}
			continue
		}
		v.mark(TaskTrialBalance, nameID, true)

		acc, ok := v.key.Account(accName)
		if !ok {
			continue
		}
		bal := acc.UnadjustedBalance()
		absBal := bal.Abs()

		if bal.Sign() >= 0 {
			if within(drVal, absBal, v.tol.Total) && crVal.IsZero() {
				v.mark(TaskTrialBalance, drID, true)
			} else {
				v.mark(TaskTrialBalance, drID, false)
				if !crVal.IsZero() {
					v.mark(TaskTrialBalance, crID, false)
				}
			}
			continue
		}
		if within(crVal, absBal, v.tol.Total) && drVal.IsZero() {
			v.mark(TaskTrialBalance, crID, true)
		} else {
			v.mark(TaskTrialBalance, crID, false)
			if !drVal.IsZero() {
				v.mark(TaskTrialBalance, drID, false)
			}
		}
	}
}

// trialBalanceRows returns the row indices present in the submission, in
// ascending order.
func (v *Validator) trialBalanceRows() []int {
	var rows []int
	for id := range v.sub {
		if row, ok := fieldid.ParseTrialBalanceName(id); ok {
			rows = append(rows, row)
		}
	}
	sort.Ints(rows)
	return rows
}
