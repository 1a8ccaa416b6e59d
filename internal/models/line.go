package models

// EntrySide indicates whether a line is a debit or a credit.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// JournalEntryLine represents a single line row within a journal entry.
// Amount is in minor units and always positive; the side tag says which column
// of the trial balance it lands on.
type JournalEntryLine struct {
	LineID     string    `db:"line_id"`
	EntryID    string    `db:"entry_id"`
	LineNo     int       `db:"line_no"`
	AccountID  string    `db:"account_id"`
	Side       EntrySide `db:"side"`
	Amount     int64     `db:"amount"`
	CostCenter string    `db:"cost_center"`
	AuditFields
}
