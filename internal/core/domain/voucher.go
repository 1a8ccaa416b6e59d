package domain

import "time"

// VoucherStatus indicates the state of a cash voucher.
type VoucherStatus string

const (
	VoucherApproved VoucherStatus = "APPROVED"
	VoucherPosted   VoucherStatus = "POSTED"
)

// CashVoucher is a source document that the posting bridge turns into a
// balanced journal entry. Once posted it carries a permanent reference to
// the resulting entry; a second posting attempt is rejected.
type CashVoucher struct {
	VoucherID      string        `json:"voucherID"`     // Primary Key (UUID)
	VoucherNumber  string        `json:"voucherNumber"` // Bill number, e.g. "BD-PC-20251122-0041"
	BranchCode     string        `json:"branchCode"`
	FundCode       string        `json:"fundCode"`
	VoucherDate    time.Time     `json:"voucherDate"`
	Amount         int64         `json:"amount"` // Minor units, > 0
	Description    string        `json:"description"`
	Status         VoucherStatus `json:"status"`
	JournalEntryID *string       `json:"journalEntryID"` // Set when posted; idempotency guard
	PostedAt       *time.Time    `json:"postedAt"`
	PostedBy       string        `json:"postedBy"`
	AuditFields
}
