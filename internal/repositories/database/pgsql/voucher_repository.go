package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizopshq/ledger_engine/internal/apperrors"
	"github.com/bizopshq/ledger_engine/internal/core/domain"
	portsrepo "github.com/bizopshq/ledger_engine/internal/core/ports/repositories"
	"github.com/bizopshq/ledger_engine/internal/models"
	"github.com/bizopshq/ledger_engine/internal/utils/mapping"
)

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for cash voucher data.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryWithTx {
	return &PgxVoucherRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VoucherRepositoryWithTx = (*PgxVoucherRepository)(nil)

const voucherColumns = `voucher_id, voucher_number, branch_code, fund_code, voucher_date, amount, description, status, journal_entry_id, posted_at, posted_by, created_at, created_by, last_updated_at, last_updated_by`

func scanVoucher(row pgx.Row) (models.CashVoucher, error) {
	var m models.CashVoucher
	var postedBy sql.NullString
	err := row.Scan(
		&m.VoucherID, &m.VoucherNumber, &m.BranchCode, &m.FundCode, &m.VoucherDate,
		&m.Amount, &m.Description, &m.Status, &m.JournalEntryID, &m.PostedAt, &postedBy,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return models.CashVoucher{}, err
	}
	m.PostedBy = postedBy.String
	return m, nil
}

// FindVoucherByID retrieves a voucher by its unique identifier.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.CashVoucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM cash_vouchers WHERE voucher_id = $1;`

	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("voucher %s: %w", voucherID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}
	voucher := mapping.ToDomainCashVoucher(m)
	return &voucher, nil
}

// FindVoucherByIDForUpdate retrieves a voucher and locks its row inside tx,
// serializing concurrent posting attempts on the same voucher.
func (r *PgxVoucherRepository) FindVoucherByIDForUpdate(ctx context.Context, tx pgx.Tx, voucherID string) (*domain.CashVoucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM cash_vouchers WHERE voucher_id = $1 FOR UPDATE;`

	m, err := scanVoucher(tx.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("voucher %s: %w", voucherID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock voucher %s: %w", voucherID, err)
	}
	voucher := mapping.ToDomainCashVoucher(m)
	return &voucher, nil
}

// SaveVoucherInTx inserts a new voucher inside the caller's transaction.
func (r *PgxVoucherRepository) SaveVoucherInTx(ctx context.Context, tx pgx.Tx, voucher domain.CashVoucher) error {
	m := mapping.ToModelCashVoucher(voucher)

	query := `
		INSERT INTO cash_vouchers (voucher_id, voucher_number, branch_code, fund_code, voucher_date, amount, description, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		m.VoucherID,
		m.VoucherNumber,
		m.BranchCode,
		m.FundCode,
		m.VoucherDate,
		m.Amount,
		m.Description,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: voucher number %s", apperrors.ErrDuplicate, m.VoucherNumber)
		}
		return fmt.Errorf("failed to save voucher %s: %w", m.VoucherID, err)
	}
	return nil
}

// MarkPostedInTx stamps the voucher with its journal entry reference inside
// the caller's transaction. The IS NULL guard makes the stamp idempotent:
// once a voucher is linked it can never be linked again.
func (r *PgxVoucherRepository) MarkPostedInTx(ctx context.Context, tx pgx.Tx, voucherID string, entryID string, actor string, at time.Time) error {
	query := `
		UPDATE cash_vouchers
		SET status = 'POSTED', journal_entry_id = $2, posted_at = $3, posted_by = $4, last_updated_at = $3, last_updated_by = $4
		WHERE voucher_id = $1 AND journal_entry_id IS NULL;
	`
	cmdTag, err := tx.Exec(ctx, query, voucherID, entryID, at, actor)
	if err != nil {
		return fmt.Errorf("failed to stamp voucher %s: %w", voucherID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: voucher %s", apperrors.ErrAlreadyPosted, voucherID)
	}
	return nil
}
