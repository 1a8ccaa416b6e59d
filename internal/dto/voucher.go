package dto

import (
	"time"

	"github.com/bizopshq/ledger_engine/internal/core/domain"
	"github.com/bizopshq/ledger_engine/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CreateVoucherRequest defines the data needed to record an approved cash voucher.
type CreateVoucherRequest struct {
	BranchCode  string          `json:"branchCode" binding:"required"`
	FundCode    string          `json:"fundCode" binding:"required"`
	VoucherDate time.Time       `json:"voucherDate" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,positiveamount"`
	Description string          `json:"description" binding:"required"`
}

// PostVoucherRequest names the two accounts the posting bridge builds lines for.
type PostVoucherRequest struct {
	DebitAccountID  string `json:"debitAccountID" binding:"required"`
	CreditAccountID string `json:"creditAccountID" binding:"required"`
}

// VoucherResponse defines the data returned for a cash voucher.
type VoucherResponse struct {
	VoucherID      string               `json:"voucherID"`
	VoucherNumber  string               `json:"voucherNumber"`
	BranchCode     string               `json:"branchCode"`
	FundCode       string               `json:"fundCode"`
	VoucherDate    time.Time            `json:"voucherDate"`
	Amount         decimal.Decimal      `json:"amount"`
	Description    string               `json:"description"`
	Status         domain.VoucherStatus `json:"status"`
	JournalEntryID *string              `json:"journalEntryID,omitempty"`
	PostedAt       *time.Time           `json:"postedAt,omitempty"`
	PostedBy       string               `json:"postedBy,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	CreatedBy      string               `json:"createdBy"`
}

// ToVoucherResponse converts a domain.CashVoucher to VoucherResponse DTO
func ToVoucherResponse(v *domain.CashVoucher) VoucherResponse {
	return VoucherResponse{
		VoucherID:      v.VoucherID,
		VoucherNumber:  v.VoucherNumber,
		BranchCode:     v.BranchCode,
		FundCode:       v.FundCode,
		VoucherDate:    v.VoucherDate,
		Amount:         money.FromMinorUnits(v.Amount),
		Description:    v.Description,
		Status:         v.Status,
		JournalEntryID: v.JournalEntryID,
		PostedAt:       v.PostedAt,
		PostedBy:       v.PostedBy,
		CreatedAt:      v.CreatedAt,
		CreatedBy:      v.CreatedBy,
	}
}
