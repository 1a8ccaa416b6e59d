package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizopshq/ledger_engine/internal/apperrors"
	portsrepo "github.com/bizopshq/ledger_engine/internal/core/ports/repositories"
)

// pgLockNotAvailable is the SQLSTATE raised when lock_timeout expires.
const pgLockNotAvailable = "55P03"

type PgxSequenceRepository struct {
	BaseRepository
	lockTimeout time.Duration
}

// newPgxSequenceRepository creates a new repository for sequence counters.
// lockTimeout bounds how long an allocation waits for the counter row lock.
func newPgxSequenceRepository(pool *pgxpool.Pool, lockTimeout time.Duration) portsrepo.SequenceRepositoryWithTx {
	return &PgxSequenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
		lockTimeout:    lockTimeout,
	}
}

var _ portsrepo.SequenceRepositoryWithTx = (*PgxSequenceRepository)(nil)

// NextValue atomically fetches and increments the counter for the given
// (scope key, counter date) inside tx. The counter row is created lazily at
// zero on first use, then locked with SELECT ... FOR UPDATE before reading,
// so two concurrent allocators can never observe the same base value.
func (r *PgxSequenceRepository) NextValue(ctx context.Context, tx pgx.Tx, scopeKey string, counterDate time.Time) (int64, error) {
	// SET LOCAL scopes the timeout to this transaction only. The value cannot
	// be a bind parameter.
	timeoutQuery := fmt.Sprintf("SET LOCAL lock_timeout = '%dms';", r.lockTimeout.Milliseconds())
	if _, err := tx.Exec(ctx, timeoutQuery); err != nil {
		return 0, fmt.Errorf("failed to set lock timeout: %w", err)
	}

	insertQuery := `
		INSERT INTO sequence_counters (scope_key, counter_date, current_value, last_updated_at)
		VALUES ($1, $2, 0, $3)
		ON CONFLICT (scope_key, counter_date) DO NOTHING;
	`
	if _, err := tx.Exec(ctx, insertQuery, scopeKey, counterDate, time.Now().UTC()); err != nil {
		return 0, fmt.Errorf("failed to ensure counter row %s/%s: %w", scopeKey, counterDate.Format("2006-01-02"), err)
	}

	var current int64
	lockQuery := `
		SELECT current_value FROM sequence_counters
		WHERE scope_key = $1 AND counter_date = $2
		FOR UPDATE;
	`
	if err := tx.QueryRow(ctx, lockQuery, scopeKey, counterDate).Scan(&current); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable {
			return 0, fmt.Errorf("%w: scope %s", apperrors.ErrContention, scopeKey)
		}
		return 0, fmt.Errorf("failed to lock counter %s/%s: %w", scopeKey, counterDate.Format("2006-01-02"), err)
	}

	next := current + 1
	updateQuery := `
		UPDATE sequence_counters
		SET current_value = $3, last_updated_at = $4
		WHERE scope_key = $1 AND counter_date = $2;
	`
	if _, err := tx.Exec(ctx, updateQuery, scopeKey, counterDate, next, time.Now().UTC()); err != nil {
		return 0, fmt.Errorf("failed to increment counter %s/%s: %w", scopeKey, counterDate.Format("2006-01-02"), err)
	}
	return next, nil
}
