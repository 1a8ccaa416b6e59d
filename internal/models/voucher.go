package models

import "time"

// VoucherStatus indicates the state of a cash voucher row.
type VoucherStatus string

const (
	VoucherApproved VoucherStatus = "APPROVED"
	VoucherPosted   VoucherStatus = "POSTED"
)

// CashVoucher represents a cash voucher row. JournalEntryID doubles as the
// document-level idempotency guard for the posting bridge.
type CashVoucher struct {
	VoucherID      string        `db:"voucher_id"`
	VoucherNumber  string        `db:"voucher_number"`
	BranchCode     string        `db:"branch_code"`
	FundCode       string        `db:"fund_code"`
	VoucherDate    time.Time     `db:"voucher_date"`
	Amount         int64         `db:"amount"` // Minor units
	Description    string        `db:"description"`
	Status         VoucherStatus `db:"status"`
	JournalEntryID *string       `db:"journal_entry_id"` // Nullable
	PostedAt       *time.Time    `db:"posted_at"`
	PostedBy       string        `db:"posted_by"` // Nullable
	AuditFields
}
