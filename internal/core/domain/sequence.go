package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DocumentKind identifies a family of generated document numbers.
type DocumentKind string

const (
	DocKindJournalEntry DocumentKind = "JE"
	DocKindVoucher      DocumentKind = "VCH"
	DocKindStock        DocumentKind = "STK"
)

// ValidDocumentKind reports whether kind is one of the closed set.
func ValidDocumentKind(kind DocumentKind) bool {
	switch kind {
	case DocKindJournalEntry, DocKindVoucher, DocKindStock:
		return true
	}
	return false
}

// SequenceScope identifies an independently incremented counter. Counters for
// different scopes have no ordering relationship to each other.
type SequenceScope struct {
	Kind       DocumentKind
	BranchCode string // Empty for kinds numbered globally (journal entries)
	FundCode   string // Empty unless the kind is fund-scoped (cash vouchers)
}

// Key builds the sequence_counters scope key, e.g. "JE" or "VCH-BD-PC".
func (s SequenceScope) Key() string {
	parts := []string{string(s.Kind)}
	if s.BranchCode != "" {
		parts = append(parts, s.BranchCode)
	}
	if s.FundCode != "" {
		parts = append(parts, s.FundCode)
	}
	return strings.Join(parts, "-")
}

// CounterDate truncates forDate to the period the counter restarts on.
// Journal entries are numbered per year; everything else per calendar day.
func (s SequenceScope) CounterDate(forDate time.Time) time.Time {
	t := forDate.UTC()
	if s.Kind == DocKindJournalEntry {
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// counterPadWidth is cosmetic: counters beyond 9999 widen the number instead
// of truncating, so formatted numbers stay unique.
const counterPadWidth = 4

func padCounter(counter int64) string {
	s := strconv.FormatInt(counter, 10)
	if len(s) >= counterPadWidth {
		return s
	}
	return strings.Repeat("0", counterPadWidth-len(s)) + s
}

// FormatEntryNumber renders a journal entry number, e.g. "JE-2025-0001".
func FormatEntryNumber(forDate time.Time, counter int64) string {
	return fmt.Sprintf("JE-%d-%s", forDate.UTC().Year(), padCounter(counter))
}

// FormatVoucherNumber renders a cash voucher bill number, e.g. "BD-PC-20251122-0041".
func FormatVoucherNumber(branchCode, fundCode string, forDate time.Time, counter int64) string {
	return fmt.Sprintf("%s-%s-%s-%s", branchCode, fundCode, forDate.UTC().Format("20060102"), padCounter(counter))
}

// FormatStockNumber renders a vehicle stock number, e.g. "STK-BD-20251122-0003".
func FormatStockNumber(branchCode string, forDate time.Time, counter int64) string {
	return fmt.Sprintf("STK-%s-%s-%s", branchCode, forDate.UTC().Format("20060102"), padCounter(counter))
}

// FormatDocumentNumber dispatches to the formatter for the scope's kind.
func FormatDocumentNumber(scope SequenceScope, forDate time.Time, counter int64) string {
	switch scope.Kind {
	case DocKindJournalEntry:
		return FormatEntryNumber(forDate, counter)
	case DocKindVoucher:
		return FormatVoucherNumber(scope.BranchCode, scope.FundCode, forDate, counter)
	default:
		return FormatStockNumber(scope.BranchCode, forDate, counter)
	}
}
