package services

import (
	"context"

	"github.com/bizopshq/ledger_engine/internal/core/domain"
	"github.com/bizopshq/ledger_engine/internal/dto"
)

// PostingSvcFacade is the bridge that turns source documents into posted
// journal entries.
type PostingSvcFacade interface {
	// CreateVoucher persists a new approved cash voucher, allocating its bill number.
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, creator string) (*domain.CashVoucher, error)

	// GetVoucherByID retrieves a voucher.
	GetVoucherByID(ctx context.Context, voucherID string) (*domain.CashVoucher, error)

	// PostVoucher builds a balanced two-line entry from the voucher, posts it,
	// and stamps the voucher with the entry reference, all in one transaction.
	PostVoucher(ctx context.Context, voucherID string, req dto.PostVoucherRequest, actor string) (*domain.JournalEntry, error)
}
