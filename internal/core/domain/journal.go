package domain

import "time"

// EntryStatus indicates where a journal entry is in its lifecycle.
type EntryStatus string

const (
	Draft  EntryStatus = "DRAFT"
	Posted EntryStatus = "POSTED"
	Void   EntryStatus = "VOID"
)

// allowedTransitions is the closed transition table for the entry state machine.
// Transitions are monotone: once POSTED an entry can only become VOID, and VOID
// is terminal.
var allowedTransitions = map[EntryStatus][]EntryStatus{
	Draft:  {Posted},
	Posted: {Void},
	Void:   {},
}

// CanTransitionTo reports whether the state machine permits moving from s to next.
func (s EntryStatus) CanTransitionTo(next EntryStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// EntryType tags the origin of a journal entry.
type EntryType string

const (
	EntryTypeManual  EntryType = "MANUAL"
	EntryTypeVoucher EntryType = "VOUCHER"
)

// JournalEntry represents a single, balanced financial event composed of at
// least two lines. Totals are in minor currency units; TotalDebit must equal
// TotalCredit exactly once the entry leaves DRAFT.
type JournalEntry struct {
	EntryID     string      `json:"entryID"`     // Primary Key (UUID)
	EntryNumber string      `json:"entryNumber"` // Assigned at posting, format JE-<year>-NNNN; empty while DRAFT
	EntryDate   time.Time   `json:"entryDate"`
	EntryType   EntryType   `json:"entryType"`
	Description string      `json:"description"`
	BranchCode  string      `json:"branchCode"`
	Status      EntryStatus `json:"status"`
	TotalDebit  int64       `json:"totalDebit"`
	TotalCredit int64       `json:"totalCredit"`
	SourceKind  string      `json:"sourceKind"` // Optional link to the originating document
	SourceID    string      `json:"sourceID"`
	PostedAt    *time.Time  `json:"postedAt"`
	PostedBy    string      `json:"postedBy"`
	VoidedAt    *time.Time  `json:"voidedAt"`
	VoidedBy    string      `json:"voidedBy"`
	VoidReason  string      `json:"voidReason"`
	AuditFields
	Lines []JournalLine `json:"lines,omitempty"` // Often loaded separately
}

// IsBalanced reports whether the entry's lines sum to equal debits and credits.
// The comparison is exact integer equality; minor-unit amounts need no tolerance.
func IsBalanced(lines []JournalLine) bool {
	var debits, credits int64
	for _, line := range lines {
		if line.Side == Debit {
			debits += line.Amount
		} else {
			credits += line.Amount
		}
	}
	return debits == credits
}
