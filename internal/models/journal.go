package models

import "time"

// EntryStatus indicates the state of a journal entry row.
type EntryStatus string

const (
	Draft  EntryStatus = "DRAFT"
	Posted EntryStatus = "POSTED"
	Void   EntryStatus = "VOID"
)

// JournalEntry represents a journal entry header row. Totals are minor units.
type JournalEntry struct {
	EntryID     string      `db:"entry_id"`
	EntryNumber string      `db:"entry_number"` // Nullable until posted
	EntryDate   time.Time   `db:"entry_date"`
	EntryType   string      `db:"entry_type"`
	Description string      `db:"description"`
	BranchCode  string      `db:"branch_code"`
	Status      EntryStatus `db:"status"`
	TotalDebit  int64       `db:"total_debit"`
	TotalCredit int64       `db:"total_credit"`
	SourceKind  string      `db:"source_kind"` // Nullable
	SourceID    string      `db:"source_id"`   // Nullable
	PostedAt    *time.Time  `db:"posted_at"`
	PostedBy    string      `db:"posted_by"` // Nullable
	VoidedAt    *time.Time  `db:"voided_at"`
	VoidedBy    string      `db:"voided_by"`   // Nullable
	VoidReason  string      `db:"void_reason"` // Nullable
	AuditFields
}
