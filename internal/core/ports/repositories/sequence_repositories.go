package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// SequenceRepository is the locked-counter abstraction behind document numbers.
type SequenceRepository interface {
	// NextValue atomically fetches and increments the counter for the given
	// (scope key, counter date) inside the caller's transaction. The row is
	// locked before the current value is read, so two concurrent callers can
	// never observe the same base value; a missing row is created at zero
	// inside the same locked transaction, then incremented to one.
	//
	// When the row lock cannot be acquired within the configured timeout the
	// call fails with apperrors.ErrContention; the caller must retry its whole
	// unit of work, never just the allocation.
	NextValue(ctx context.Context, tx pgx.Tx, scopeKey string, counterDate time.Time) (int64, error)
}

// SequenceRepositoryWithTx additionally exposes transaction management for
// callers that allocate outside any larger unit of work.
type SequenceRepositoryWithTx interface {
	SequenceRepository
	TransactionManager
}
