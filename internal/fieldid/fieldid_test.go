package fieldid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerFields(t *testing.T) {
	assert.Equal(t, "l_2_name", LedgerName(2))
	assert.Equal(t, "l_2_dr_year", LedgerYear(2, "dr"))
	assert.Equal(t, "l_2_cr_a_3", LedgerCell(2, "cr", ColAmount, 3))
	assert.Equal(t, "l_2_dr_pr_0", LedgerCell(2, "dr", ColPostingRef, 0))
	assert.Equal(t, "l_2_total_cr", LedgerTotal(2, "cr"))
	assert.Equal(t, "l_2_bal", LedgerBalance(2))
	assert.Equal(t, "l_2_bal_type", LedgerBalanceType(2))
}

func TestJournalPR(t *testing.T) {
	assert.Equal(t, "j_7_0", JournalPR(7, 0))
	assert.Equal(t, "j_7_1", JournalPR(7, 1))
}

func TestParseTrialBalanceName(t *testing.T) {
	tests := []struct {
		id  string
		row int
		ok  bool
	}{
		{"tb_name_0", 0, true},
		{"tb_name_12", 12, true},
		{"tb_dr_3", 0, false},
		{"tb_name_", 0, false},
		{"tb_name_x", 0, false},
		{"tb_name_-1", 0, false},
	}
	for _, tt := range tests {
		row, ok := ParseTrialBalanceName(tt.id)
		assert.Equal(t, tt.ok, ok, tt.id)
		if tt.ok {
			assert.Equal(t, tt.row, row, tt.id)
		}
	}
}

func TestWorksheetFields(t *testing.T) {
	assert.Equal(t, "wks_3_ADJ_DR", WorksheetCell(3, "ADJ_DR"))
	assert.Equal(t, "wks_SUBTOTAL_IS_CR", WorksheetSubtotal("IS_CR"))
	assert.Equal(t, "wks_NI_BS_CR", WorksheetNetIncome("BS_CR"))
	assert.Equal(t, "wks_FINAL_TB_DR", WorksheetFinal("TB_DR"))
}

func TestAccountSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Cash", "cash"},
		{"Accounts Receivable", "accounts_receivable"},
		{"Accumulated Depreciation-Equip.", "accumulated_depreciation_equip_"},
		{"Reyes, Capital", "reyes__capital"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AccountSlug(tt.name))
	}
	assert.Equal(t, "service_revenue_is_li", ISLine("Service Revenue"))
	assert.Equal(t, "cash_bs_li", BSLine("Cash"))
}
