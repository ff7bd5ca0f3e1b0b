package grading

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gradekey-dev/gradekey/internal/fieldid"
	"github.com/gradekey-dev/gradekey/internal/ledger"
	"github.com/gradekey-dev/gradekey/internal/model"
)

// ValidateLedgers grades the general ledger forms: account titles, year and
// beginning-balance rows, transaction rows matched first-fit against the
// expected postings, per-side totals, and the closing balance. Matching a
// transaction row marks the source journal line as posted, which
// ValidatePostingReferences consumes afterwards.
func (v *Validator) ValidateLedgers() {
	month := v.ds.TransactionMonth()
	begDates := []string{month + " 01", month + " 1"}
	year := decimal.NewFromInt(int64(v.ds.Year))

	for _, form := range v.ds.Ledgers {
		id := form.ID
		nameVal := strings.TrimSpace(v.sub.Value(fieldid.LedgerName(id)))
		accName, found := v.matchAccountName(nameVal)

		// The side holding the beginning balance row; guessed from the
		// filled side when the title is unrecognized.
		bb, hasBB := v.ds.FindBeginningBalance(accName)
		side := "cr"
		switch {
		case found && hasBB:
			side = lowerSide(bb.Side)
		case v.sub.Value(fieldid.LedgerCell(id, "dr", fieldid.ColAmount, 0)) != "":
			side = "dr"
		}

		yearID := fieldid.LedgerYear(id, side)
		if v.sub.Number(yearID).Equal(year) {
			v.mark(TaskLedgers, yearID, true)
		} else if v.sub.Value(yearID) != "" {
			v.mark(TaskLedgers, yearID, false)
		}

		if found && hasBB {
			v.checkBeginningRow(id, side, bb, begDates)
		}

		if !found {
			if nameVal != "" {
				v.mark(TaskLedgers, fieldid.LedgerName(id), false)
			}
			continue
		}

		acc, ok := v.key.Account(accName)
		if !ok {
			continue
		}
		v.checkLedgerTotals(id, acc)
		v.checkLedgerRows(form.RowCount(), id, acc, hasBB, lowerSide(bb.Side))
	}
}

func (v *Validator) checkBeginningRow(formID int, side string, bb model.BeginningBalance, begDates []string) {
	dateID := fieldid.LedgerCell(formID, side, fieldid.ColDate, 0)
	if d := v.sub.Value(dateID); d == begDates[0] || d == begDates[1] {
		v.mark(TaskLedgers, dateID, true)
	} else if d != "" {
		v.mark(TaskLedgers, dateID, false)
	}

	partID := fieldid.LedgerCell(formID, side, fieldid.ColParticulars, 0)
	if p := v.sub.Value(partID); strings.EqualFold(p, "BB") {
		v.mark(TaskLedgers, partID, true)
	} else if p != "" {
		v.mark(TaskLedgers, partID, false)
	}

	// The beginning balance row carries no posting reference.
	prID := fieldid.LedgerCell(formID, side, fieldid.ColPostingRef, 0)
	v.mark(TaskLedgers, prID, v.sub.Value(prID) == "")

	amtID := fieldid.LedgerCell(formID, side, fieldid.ColAmount, 0)
	if a := v.sub.Number(amtID); within(a, bb.Amount, v.tol.Peso) {
		v.mark(TaskLedgers, amtID, true)
	} else if !a.IsZero() {
		v.mark(TaskLedgers, amtID, false)
	}
}

func (v *Validator) checkLedgerTotals(formID int, acc *ledger.AccountState) {
	totalDrID := fieldid.LedgerTotal(formID, "dr")
	v.mark(TaskLedgers, totalDrID, within(v.sub.Number(totalDrID), acc.TBDr.Add(acc.PostDr), v.tol.Total))

	totalCrID := fieldid.LedgerTotal(formID, "cr")
	v.mark(TaskLedgers, totalCrID, within(v.sub.Number(totalCrID), acc.TBCr.Add(acc.PostCr), v.tol.Total))

	net := acc.UnadjustedBalance()
	expectedSide := "dr"
	if net.Sign() < 0 {
		expectedSide = "cr"
	}

	balID := fieldid.LedgerBalance(formID)
	balTypeID := fieldid.LedgerBalanceType(formID)
	balOK := within(v.sub.Number(balID), net.Abs(), v.tol.Total)
	sideOK := v.sub.Value(balTypeID) == expectedSide
	if balOK && sideOK {
		v.mark(TaskLedgers, balID, true)
		v.mark(TaskLedgers, balTypeID, true)
		return
	}
	if !balOK {
		v.mark(TaskLedgers, balID, false)
	}
	if !sideOK {
		v.mark(TaskLedgers, balTypeID, false)
	}
}

// checkLedgerRows matches submitted transaction amounts against the account's
// expected postings: first unmatched posting on the same side within
// tolerance wins, one-to-one, regardless of whether an exact match exists
// later. A row whose amount finds no posting is wrong outright and its filled
// sibling cells are flagged without independent checking.
func (v *Validator) checkLedgerRows(rowCount, formID int, acc *ledger.AccountState, hasBB bool, begSide string) {
	if !hasBB {
		begSide = "none"
	}
	consumed := v.consumedFor(acc)

	for r := 0; r < rowCount; r++ {
		for _, side := range []string{"dr", "cr"} {
			if begSide == side && r == 0 {
				continue
			}
			amtID := fieldid.LedgerCell(formID, side, fieldid.ColAmount, r)
			uAmt := v.sub.Number(amtID)
			if !uAmt.IsPositive() {
				continue
			}

			idx := -1
			for i, p := range acc.Postings {
				if consumed[i] || lowerSide(p.Side) != side {
					continue
				}
				if within(p.Amount, uAmt, v.tol.Peso) {
					idx = i
					break
				}
			}

			partID := fieldid.LedgerCell(formID, side, fieldid.ColParticulars, r)
			prID := fieldid.LedgerCell(formID, side, fieldid.ColPostingRef, r)
			dateID := fieldid.LedgerCell(formID, side, fieldid.ColDate, r)

			if idx < 0 {
				v.mark(TaskLedgers, amtID, false)
				for _, sibling := range []string{partID, prID, dateID} {
					if v.sub.Value(sibling) != "" {
						v.mark(TaskLedgers, sibling, false)
					}
				}
				continue
			}

			consumed[idx] = true
			p := acc.Postings[idx]
			v.posted[fieldid.JournalPR(p.EntryID, p.Line)] = true

			v.mark(TaskLedgers, amtID, true)
			v.mark(TaskLedgers, partID, strings.EqualFold(v.sub.Value(partID), "GJ"))
			v.mark(TaskLedgers, prID, v.sub.Value(prID) == "1")
			v.mark(TaskLedgers, dateID, acceptedTransactionDate(v.sub.Value(dateID), p))
		}
	}
}

// acceptedTransactionDate reports whether a submitted date cell matches any
// of the four accepted forms: the day as given, the day unpadded, or either
// prefixed with the transaction month.
func acceptedTransactionDate(val string, p ledger.Posting) bool {
	unpadded := model.UnpadDay(p.Day)
	switch val {
	case p.Day, unpadded, p.Month + " " + p.Day, p.Month + " " + unpadded:
		return true
	}
	return false
}

// ValidatePostingReferences grades the journal PR boxes. A box should be
// checked iff the line's amount was consumed by some ledger row, so this runs
// after ValidateLedgers. An unchecked box for an unposted line stays unset.
func (v *Validator) ValidatePostingReferences() {
	for _, e := range v.ds.JournalEntries {
		for line := 0; line < 2; line++ {
			id := fieldid.JournalPR(e.ID, line)
			checked := v.sub.Checked(id)
			posted := v.posted[id]
			if checked {
				v.mark(TaskPostingRefs, id, posted)
			} else if posted {
				v.mark(TaskPostingRefs, id, false)
			}
		}
	}
}

func (v *Validator) consumedFor(acc *ledger.AccountState) []bool {
	c, ok := v.consumed[acc]
	if !ok {
		c = make([]bool, len(acc.Postings))
		v.consumed[acc] = c
	}
	return c
}

func lowerSide(s model.Side) string {
	return strings.ToLower(string(s))
}
