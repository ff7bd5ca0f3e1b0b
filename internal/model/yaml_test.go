package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestJournalEntryYAMLRoundTrip(t *testing.T) {
	e := JournalEntry{
		ID: 3, Day: "05", Month: "Sep",
		DebitAccount: "Cash", CreditAccount: "Service Revenue",
		DebitAmount: dec(t, "1250.55"), CreditAmount: dec(t, "1250.55"),
		Description: "Services rendered",
	}

	data, err := yaml.Marshal(e)
	require.NoError(t, err)

	var got JournalEntry
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, e, got)
}

func TestBeginningBalanceYAMLAcceptsBareNumbers(t *testing.T) {
	var b BeginningBalance
	require.NoError(t, yaml.Unmarshal([]byte("account: Cash\nside: Dr\namount: 10000\n"), &b))
	assert.Equal(t, "Cash", b.Account)
	assert.Equal(t, SideDebit, b.Side)
	assert.True(t, b.Amount.Equal(dec(t, "10000")))
}

func TestAdjustingEntryYAMLRejectsBadAmount(t *testing.T) {
	var a AdjustingEntry
	err := yaml.Unmarshal([]byte("debit_account: X\ncredit_account: Y\namount: lots\n"), &a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}

func TestBlankAmountIsZero(t *testing.T) {
	var b BeginningBalance
	require.NoError(t, yaml.Unmarshal([]byte("account: Cash\nside: Dr\n"), &b))
	assert.True(t, b.Amount.IsZero())
}
