package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryStatusTransitions(t *testing.T) {
	cases := []struct {
		from    EntryStatus
		to      EntryStatus
		allowed bool
	}{
		{Draft, Posted, true},
		{Posted, Void, true},
		{Draft, Void, false},
		{Posted, Draft, false},
		{Void, Draft, false},
		{Void, Posted, false},
		{Posted, Posted, false},
		{Draft, Draft, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIsBalanced(t *testing.T) {
	balanced := []JournalLine{
		{Side: Debit, Amount: 100000},
		{Side: Credit, Amount: 100000},
	}
	assert.True(t, IsBalanced(balanced))

	unbalanced := []JournalLine{
		{Side: Debit, Amount: 100000},
		{Side: Credit, Amount: 90000},
	}
	assert.False(t, IsBalanced(unbalanced))

	split := []JournalLine{
		{Side: Debit, Amount: 60000},
		{Side: Debit, Amount: 40000},
		{Side: Credit, Amount: 100000},
	}
	assert.True(t, IsBalanced(split))
}

func TestValidSide(t *testing.T) {
	assert.True(t, ValidSide(Debit))
	assert.True(t, ValidSide(Credit))
	assert.False(t, ValidSide(EntrySide("BOTH")))
	assert.False(t, ValidSide(EntrySide("")))
}
