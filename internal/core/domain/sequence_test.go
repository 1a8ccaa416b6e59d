package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSequenceScopeKey(t *testing.T) {
	assert.Equal(t, "JE", SequenceScope{Kind: DocKindJournalEntry}.Key())
	assert.Equal(t, "VCH-BD-PC", SequenceScope{Kind: DocKindVoucher, BranchCode: "BD", FundCode: "PC"}.Key())
	assert.Equal(t, "STK-BD", SequenceScope{Kind: DocKindStock, BranchCode: "BD"}.Key())
}

func TestSequenceScopeCounterDate(t *testing.T) {
	forDate := time.Date(2025, 11, 22, 15, 4, 5, 0, time.UTC)

	je := SequenceScope{Kind: DocKindJournalEntry}
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), je.CounterDate(forDate))

	vch := SequenceScope{Kind: DocKindVoucher, BranchCode: "BD", FundCode: "PC"}
	assert.Equal(t, time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC), vch.CounterDate(forDate))
}

func TestFormatEntryNumber(t *testing.T) {
	forDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "JE-2025-0001", FormatEntryNumber(forDate, 1))
	assert.Equal(t, "JE-2025-0041", FormatEntryNumber(forDate, 41))
	// Padding is cosmetic: counters beyond the pad width widen, never truncate.
	assert.Equal(t, "JE-2025-10001", FormatEntryNumber(forDate, 10001))
}

func TestFormatVoucherNumber(t *testing.T) {
	forDate := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "BD-PC-20251122-0041", FormatVoucherNumber("BD", "PC", forDate, 41))
	assert.Equal(t, "BD-PC-20251122-123456", FormatVoucherNumber("BD", "PC", forDate, 123456))
}

func TestFormatDocumentNumber(t *testing.T) {
	forDate := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "JE-2025-0007", FormatDocumentNumber(SequenceScope{Kind: DocKindJournalEntry}, forDate, 7))
	assert.Equal(t, "BD-PC-20251122-0002", FormatDocumentNumber(SequenceScope{Kind: DocKindVoucher, BranchCode: "BD", FundCode: "PC"}, forDate, 2))
	assert.Equal(t, "STK-BD-20251122-0003", FormatDocumentNumber(SequenceScope{Kind: DocKindStock, BranchCode: "BD"}, forDate, 3))
}
