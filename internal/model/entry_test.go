package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJournalEntryDayUnpadded(t *testing.T) {
	tests := []struct {
		day  string
		want string
	}{
		{"05", "5"},
		{"5", "5"},
		{"15", "15"},
		{"00", "0"},
		{"", "0"},
	}
	for _, tt := range tests {
		e := JournalEntry{Day: tt.day}
		assert.Equal(t, tt.want, e.DayUnpadded(), "DayUnpadded(%q)", tt.day)
	}
}

func TestSideValid(t *testing.T) {
	assert.True(t, SideDebit.Valid())
	assert.True(t, SideCredit.Valid())
	assert.False(t, Side("dr").Valid())
	assert.False(t, Side("").Valid())
}
