package repositories

import (
	"context"
	"time"

	"github.com/bizopshq/ledger_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// JournalReader defines read operations for journal entries and lines.
type JournalReader interface {
	// FindEntryByID retrieves a journal entry header by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines of an entry ordered by line number.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// ListEntries retrieves a paginated list of entries for a branch using
	// token-based pagination. It returns the entries, a token for the next
	// page, and an error.
	ListEntries(ctx context.Context, branchCode string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal entries and lines.
type JournalWriter interface {
	// SaveEntry persists a new entry and its lines atomically in its own transaction.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// SaveEntryInTx persists a new entry and its lines inside the caller's transaction.
	SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, lines []domain.JournalLine) error

	// ReplaceLines swaps a DRAFT entry's lines and totals atomically.
	ReplaceLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// MarkPosted transitions a DRAFT entry to POSTED inside the caller's
	// transaction, stamping the entry number and posting metadata. It fails
	// when the entry is no longer DRAFT.
	MarkPosted(ctx context.Context, tx pgx.Tx, entryID string, entryNumber string, actor string, at time.Time) error

	// MarkVoided transitions a POSTED entry to VOID, retaining lines and totals.
	// It fails when the entry is not POSTED.
	MarkVoided(ctx context.Context, entryID string, actor string, reason string, at time.Time) error

	// DeleteEntry removes a DRAFT entry and its lines. It fails with an
	// invalid-state error when the entry has left DRAFT.
	DeleteEntry(ctx context.Context, entryID string) error
}

// JournalRepositoryFacade combines journal read and write operations.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx additionally exposes transaction management so
// services can compose multi-step units of work (post, bridge posting).
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
