package domain

// EntrySide tags a journal line as the debit side or the credit side.
// A line carries exactly one side and a positive amount, so the illegal
// "both amounts set" and "neither amount set" shapes are unrepresentable.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// ValidSide reports whether the given side is DEBIT or CREDIT.
func ValidSide(side EntrySide) bool {
	return side == Debit || side == Credit
}

// JournalLine represents a single line of a journal entry, affecting one account.
// Amounts are in minor currency units, always positive.
type JournalLine struct {
	LineID     string    `json:"lineID"`  // Primary Key (UUID)
	EntryID    string    `json:"entryID"` // FK -> JournalEntry.EntryID
	LineNo     int       `json:"lineNo"`  // Order within the entry, 1-based
	AccountID  string    `json:"accountID"`
	Side       EntrySide `json:"side"`
	Amount     int64     `json:"amount"`     // Minor units, > 0
	CostCenter string    `json:"costCenter"` // Optional tag
	AuditFields
}
