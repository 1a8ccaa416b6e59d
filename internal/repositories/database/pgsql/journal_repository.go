package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizopshq/ledger_engine/internal/apperrors"
	"github.com/bizopshq/ledger_engine/internal/core/domain"
	portsrepo "github.com/bizopshq/ledger_engine/internal/core/ports/repositories"
	"github.com/bizopshq/ledger_engine/internal/models"
	"github.com/bizopshq/ledger_engine/internal/utils/mapping"
	"github.com/bizopshq/ledger_engine/internal/utils/pagination"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

const entryColumns = `entry_id, entry_number, entry_date, entry_type, description, branch_code, status, total_debit, total_credit, source_kind, source_id, posted_at, posted_by, voided_at, voided_by, void_reason, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	var entryNumber, sourceKind, sourceID, postedBy, voidedBy, voidReason sql.NullString
	err := row.Scan(
		&m.EntryID, &entryNumber, &m.EntryDate, &m.EntryType, &m.Description,
		&m.BranchCode, &m.Status, &m.TotalDebit, &m.TotalCredit,
		&sourceKind, &sourceID, &m.PostedAt, &postedBy,
		&m.VoidedAt, &voidedBy, &voidReason,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return models.JournalEntry{}, err
	}
	m.EntryNumber = entryNumber.String
	m.SourceKind = sourceKind.String
	m.SourceID = sourceID.String
	m.PostedBy = postedBy.String
	m.VoidedBy = voidedBy.String
	m.VoidReason = voidReason.String
	return m, nil
}

func nullStr(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// insertEntryInTx inserts the entry header and its lines inside tx.
func (r *PgxJournalRepository) insertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, lines []domain.JournalLine) error {
	m := mapping.ToModelJournalEntry(entry)

	entryQuery := `
		INSERT INTO journal_entries (
			entry_id, entry_number, entry_date, entry_type, description, branch_code,
			status, total_debit, total_credit, source_kind, source_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, entryQuery,
		m.EntryID,
		nullStr(m.EntryNumber),
		m.EntryDate,
		m.EntryType,
		m.Description,
		m.BranchCode,
		m.Status,
		m.TotalDebit,
		m.TotalCredit,
		nullStr(m.SourceKind),
		nullStr(m.SourceID),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", m.EntryID, err)
	}

	return r.insertLinesInTx(ctx, tx, lines)
}

func (r *PgxJournalRepository) insertLinesInTx(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error {
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_entry_lines (line_id, entry_id, line_no, account_id, side, amount, cost_center, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, line := range lines {
		ml := mapping.ToModelJournalEntryLine(line)
		batch.Queue(lineQuery,
			ml.LineID,
			ml.EntryID,
			ml.LineNo,
			ml.AccountID,
			ml.Side,
			ml.Amount,
			nullStr(ml.CostCenter),
			ml.CreatedAt,
			ml.CreatedBy,
			ml.LastUpdatedAt,
			ml.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for range lines {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert journal line: %w", err)
		}
	}
	return nil
}

// SaveEntry persists a new entry and its lines atomically in its own transaction.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.insertEntryInTx(ctx, tx, entry, lines); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveEntryInTx persists a new entry and its lines inside the caller's transaction.
func (r *PgxJournalRepository) SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, lines []domain.JournalLine) error {
	return r.insertEntryInTx(ctx, tx, entry, lines)
}

// FindEntryByID retrieves a journal entry header by its unique identifier.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("journal entry %s: %w", entryID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

// FindLinesByEntryID retrieves all lines of an entry ordered by line number.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, line_no, account_id, side, amount, cost_center, created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entry_lines
		WHERE entry_id = $1
		ORDER BY line_no;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of entry %s: %w", entryID, err)
	}
	defer rows.Close()

	var lines []models.JournalEntryLine
	for rows.Next() {
		var m models.JournalEntryLine
		var costCenter sql.NullString
		if err := rows.Scan(
			&m.LineID, &m.EntryID, &m.LineNo, &m.AccountID, &m.Side, &m.Amount,
			&costCenter, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		m.CostCenter = costCenter.String
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return mapping.ToDomainJournalLineSlice(lines), nil
}

// ListEntries retrieves a page of entries for a branch, newest first, using
// token-based pagination on (entry_date, created_at).
func (r *PgxJournalRepository) ListEntries(ctx context.Context, branchCode string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE branch_code = $1`
	args := []any{branchCode}

	if nextToken != nil && *nextToken != "" {
		entryDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND (entry_date, created_at) < ($2, $3)`
		args = append(args, entryDate, createdAt)
	}
	query += fmt.Sprintf(` ORDER BY entry_date DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1) // Fetch one extra to know whether a next page exists

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		token = &t
	}
	return entries, token, nil
}

// ReplaceLines swaps a DRAFT entry's lines and totals atomically.
func (r *PgxJournalRepository) ReplaceLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	headerQuery := `
		UPDATE journal_entries
		SET entry_date = $2, description = $3, total_debit = $4, total_credit = $5, last_updated_at = $6, last_updated_by = $7
		WHERE entry_id = $1 AND status = 'DRAFT';
	`
	cmdTag, err := tx.Exec(ctx, headerQuery,
		m.EntryID, m.EntryDate, m.Description, m.TotalDebit, m.TotalCredit, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %s: %w", m.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s is not DRAFT", apperrors.ErrInvalidState, m.EntryID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_entry_lines WHERE entry_id = $1;`, m.EntryID); err != nil {
		return fmt.Errorf("failed to delete lines of entry %s: %w", m.EntryID, err)
	}
	if err := r.insertLinesInTx(ctx, tx, lines); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// MarkPosted transitions a DRAFT entry to POSTED inside the caller's
// transaction. The status guard in the WHERE clause makes concurrent posts of
// the same entry lose cleanly instead of double-posting.
func (r *PgxJournalRepository) MarkPosted(ctx context.Context, tx pgx.Tx, entryID string, entryNumber string, actor string, at time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = 'POSTED', entry_number = $2, posted_at = $3, posted_by = $4, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $1 AND status = 'DRAFT';
	`
	cmdTag, err := tx.Exec(ctx, query, entryID, entryNumber, at, actor)
	if err != nil {
		return fmt.Errorf("failed to post journal entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s is not DRAFT", apperrors.ErrInvalidState, entryID)
	}
	return nil
}

// MarkVoided transitions a POSTED entry to VOID. Lines and totals stay in
// place; voiding is a status marker, not a deletion.
func (r *PgxJournalRepository) MarkVoided(ctx context.Context, entryID string, actor string, reason string, at time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = 'VOID', voided_at = $2, voided_by = $3, void_reason = $4, last_updated_at = $2, last_updated_by = $3
		WHERE entry_id = $1 AND status = 'POSTED';
	`
	cmdTag, err := r.Pool.Exec(ctx, query, entryID, at, actor, reason)
	if err != nil {
		return fmt.Errorf("failed to void journal entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s is not POSTED", apperrors.ErrInvalidState, entryID)
	}
	return nil
}

// DeleteEntry removes a DRAFT entry; its lines go with it via ON DELETE CASCADE.
func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1 AND status = 'DRAFT';`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: entry %s is not DRAFT or does not exist", apperrors.ErrInvalidState, entryID)
	}
	return nil
}
