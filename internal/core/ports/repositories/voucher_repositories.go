package repositories

import (
	"context"
	"time"

	"github.com/bizopshq/ledger_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// VoucherReader defines read operations for cash vouchers.
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher by its unique identifier.
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.CashVoucher, error)

	// FindVoucherByIDForUpdate retrieves a voucher and locks its row inside
	// the caller's transaction, so the posted flag cannot race.
	FindVoucherByIDForUpdate(ctx context.Context, tx pgx.Tx, voucherID string) (*domain.CashVoucher, error)
}

// VoucherWriter defines write operations for cash vouchers.
type VoucherWriter interface {
	// SaveVoucherInTx inserts a new voucher inside the caller's transaction.
	SaveVoucherInTx(ctx context.Context, tx pgx.Tx, voucher domain.CashVoucher) error

	// MarkPostedInTx stamps the voucher with its journal entry reference inside
	// the caller's transaction. It fails when the voucher is already linked.
	MarkPostedInTx(ctx context.Context, tx pgx.Tx, voucherID string, entryID string, actor string, at time.Time) error
}

// VoucherRepositoryWithTx combines voucher operations with transaction management.
type VoucherRepositoryWithTx interface {
	VoucherReader
	VoucherWriter
	TransactionManager
}
