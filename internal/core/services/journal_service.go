package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bizopshq/ledger_engine/internal/apperrors"
	"github.com/bizopshq/ledger_engine/internal/core/domain"
	portsrepo "github.com/bizopshq/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/bizopshq/ledger_engine/internal/core/ports/services"
	"github.com/bizopshq/ledger_engine/internal/dto"
	"github.com/bizopshq/ledger_engine/internal/middleware"
	"github.com/bizopshq/ledger_engine/internal/platform/metrics"
	"github.com/bizopshq/ledger_engine/internal/utils/money"
)

var (
	ErrEntryUnbalanced    = fmt.Errorf("%w: debits and credits do not balance", apperrors.ErrValidation)
	ErrEntryMinLines      = fmt.Errorf("%w: entry must have at least two lines", apperrors.ErrValidation)
	ErrEntryMinAccounts   = fmt.Errorf("%w: entry must affect at least two different accounts", apperrors.ErrValidation)
	ErrAmountNotPositive  = fmt.Errorf("%w: line amount must be positive", apperrors.ErrValidation)
	ErrInvalidSide        = fmt.Errorf("%w: line side must be DEBIT or CREDIT", apperrors.ErrValidation)
	ErrAccountNotPostable = fmt.Errorf("%w: account cannot receive postings", apperrors.ErrValidation)
	ErrUnknownAccount     = fmt.Errorf("%w: account does not exist", apperrors.ErrValidation)
	ErrVoidReasonMissing  = fmt.Errorf("%w: void reason is required", apperrors.ErrValidation)
)

// journalService enforces the double-entry invariants and the
// DRAFT -> POSTED -> VOID state machine.
type journalService struct {
	journalRepo  portsrepo.JournalRepositoryWithTx
	sequenceRepo portsrepo.SequenceRepository
	accountSvc   portssvc.AccountReaderSvc
}

// NewJournalService creates a new journal entry engine.
func NewJournalService(journalRepo portsrepo.JournalRepositoryWithTx, sequenceRepo portsrepo.SequenceRepository, accountSvc portssvc.AccountReaderSvc) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo:  journalRepo,
		sequenceRepo: sequenceRepo,
		accountSvc:   accountSvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildLines converts request lines into domain lines, enforcing the
// per-line shape invariant (valid side, positive minor-unit amount).
func buildLines(entryID string, reqLines []dto.EntryLineRequest, creator string, now time.Time) ([]domain.JournalLine, error) {
	lines := make([]domain.JournalLine, len(reqLines))
	for i, lr := range reqLines {
		if !domain.ValidSide(lr.Side) {
			return nil, ErrInvalidSide
		}
		amount, err := money.ToMinorUnits(lr.Amount)
		if err != nil {
			return nil, err
		}
		if amount <= 0 {
			return nil, fmt.Errorf("%w: account %s", ErrAmountNotPositive, lr.AccountID)
		}
		lines[i] = domain.JournalLine{
			LineID:     uuid.NewString(),
			EntryID:    entryID,
			LineNo:     i + 1,
			AccountID:  lr.AccountID,
			Side:       lr.Side,
			Amount:     amount,
			CostCenter: lr.CostCenter,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creator,
				LastUpdatedAt: now,
				LastUpdatedBy: creator,
			},
		}
	}
	return lines, nil
}

// validateLines runs the structural double-entry checks: minimum line count,
// minimum distinct accounts, and exact integer balance.
func validateLines(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return ErrEntryMinLines
	}

	accountSet := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		accountSet[line.AccountID] = struct{}{}
	}
	if len(accountSet) < 2 {
		return ErrEntryMinAccounts
	}

	if !domain.IsBalanced(lines) {
		var debits, credits int64
		for _, line := range lines {
			if line.Side == domain.Debit {
				debits += line.Amount
			} else {
				credits += line.Amount
			}
		}
		return fmt.Errorf("%w: debits sum is %d and credits sum is %d", ErrEntryUnbalanced, debits, credits)
	}
	return nil
}

// checkAccountsPostable verifies that every referenced account exists, is
// active, and is not a header account.
func (s *journalService) checkAccountsPostable(ctx context.Context, lines []domain.JournalLine) error {
	accountIDs := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; !ok {
			seen[line.AccountID] = struct{}{}
			accountIDs = append(accountIDs, line.AccountID)
		}
	}

	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}

	for _, id := range accountIDs {
		acc, found := accountsMap[id]
		if !found {
			return fmt.Errorf("%w: ID %s", ErrUnknownAccount, id)
		}
		if acc.IsHeader {
			return fmt.Errorf("%w: %s is a header account", ErrAccountNotPostable, acc.Code)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: %s is inactive", ErrAccountNotPostable, acc.Code)
		}
	}
	return nil
}

func entryTotals(lines []domain.JournalLine) (debit int64, credit int64) {
	for _, line := range lines {
		if line.Side == domain.Debit {
			debit += line.Amount
		} else {
			credit += line.Amount
		}
	}
	return debit, credit
}

// CreateEntry validates and persists a new journal entry in DRAFT.
// The entry number is not assigned here; allocation is deferred to posting so
// that deleting a draft never wastes a number.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creator string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	entryID := uuid.NewString()

	lines, err := buildLines(entryID, req.Lines, creator, now)
	if err != nil {
		return nil, err
	}
	if err := validateLines(lines); err != nil {
		return nil, err
	}
	if err := s.checkAccountsPostable(ctx, lines); err != nil {
		return nil, err
	}

	entryType := domain.EntryType(req.EntryType)
	if entryType == "" {
		entryType = domain.EntryTypeManual
	}

	totalDebit, totalCredit := entryTotals(lines)
	entry := domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   req.EntryDate,
		EntryType:   entryType,
		Description: req.Description,
		BranchCode:  req.BranchCode,
		Status:      domain.Draft,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator,
			LastUpdatedAt: now,
			LastUpdatedBy: creator,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry created", slog.String("entry_id", entry.EntryID), slog.String("branch", entry.BranchCode))
	entry.Lines = lines
	return &entry, nil
}

// GetEntryByID retrieves an entry with its lines populated.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to fetch entry lines", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, apperrors.ErrInternal)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a paginated list of entries for a branch.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, params.BranchCode, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}

	responses := make([]dto.EntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToEntryResponse(&entries[i])
	}
	return &dto.ListEntriesResponse{Entries: responses, NextToken: nextToken}, nil
}

// UpdateEntry replaces a DRAFT entry's lines and header fields.
// Full validation re-runs because the edit may have unbalanced the entry.
func (s *journalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, actor string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: entry %s is %s, only DRAFT entries can be edited", apperrors.ErrInvalidState, entryID, entry.Status)
	}

	now := time.Now().UTC()
	if req.EntryDate != nil {
		entry.EntryDate = *req.EntryDate
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actor

	var lines []domain.JournalLine
	if req.Lines != nil {
		lines, err = buildLines(entryID, req.Lines, actor, now)
		if err != nil {
			return nil, err
		}
	} else {
		lines, err = s.journalRepo.FindLinesByEntryID(ctx, entryID)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
		}
	}
	if err := validateLines(lines); err != nil {
		return nil, err
	}
	if err := s.checkAccountsPostable(ctx, lines); err != nil {
		return nil, err
	}

	entry.TotalDebit, entry.TotalCredit = entryTotals(lines)

	if err := s.journalRepo.ReplaceLines(ctx, *entry, lines); err != nil {
		logger.Error("Failed to update journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	logger.Info("Journal entry updated", slog.String("entry_id", entryID))
	entry.Lines = lines
	return entry, nil
}

// DeleteEntry removes a DRAFT entry and its lines.
func (s *journalService) DeleteEntry(ctx context.Context, entryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.Status != domain.Draft {
		return fmt.Errorf("%w: entry %s is %s, only DRAFT entries can be deleted", apperrors.ErrInvalidState, entryID, entry.Status)
	}

	if err := s.journalRepo.DeleteEntry(ctx, entryID); err != nil {
		logger.Error("Failed to delete journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return err
	}
	logger.Info("Journal entry deleted", slog.String("entry_id", entryID))
	return nil
}

// PostEntry transitions a DRAFT entry to POSTED. The balance invariant is
// re-validated because lines may have been edited since creation, and the
// entry number is allocated inside the same transaction that flips the
// status, so a failed post never consumes a number that reaches a record.
func (s *journalService) PostEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !entry.Status.CanTransitionTo(domain.Posted) {
		return nil, fmt.Errorf("%w: entry %s is %s, expected DRAFT", apperrors.ErrInvalidState, entryID, entry.Status)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}
	if err := validateLines(lines); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	scope := domain.SequenceScope{Kind: domain.DocKindJournalEntry}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.journalRepo.Rollback(ctx, tx)

	counter, err := s.sequenceRepo.NextValue(ctx, tx, scope.Key(), scope.CounterDate(entry.EntryDate))
	if err != nil {
		if errors.Is(err, apperrors.ErrContention) {
			metrics.SequenceContention.Inc()
			logger.Warn("Sequence lock contention while posting entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	entryNumber := domain.FormatEntryNumber(entry.EntryDate, counter)

	if err := s.journalRepo.MarkPosted(ctx, tx, entryID, entryNumber, actor, now); err != nil {
		return nil, err
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	metrics.SequenceAllocations.WithLabelValues(scope.Key()).Inc()
	metrics.EntriesPosted.Inc()
	logger.Info("Journal entry posted", slog.String("entry_id", entryID), slog.String("entry_number", entryNumber))

	entry.Status = domain.Posted
	entry.EntryNumber = entryNumber
	entry.PostedAt = &now
	entry.PostedBy = actor
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actor
	entry.Lines = lines
	return entry, nil
}

// VoidEntry transitions a POSTED entry to VOID. Lines and totals are
// retained untouched so historical reporting stays reproducible; no reversing
// entry is generated, callers needing one must create it explicitly.
func (s *journalService) VoidEntry(ctx context.Context, entryID string, actor string, reason string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if reason == "" {
		return nil, ErrVoidReasonMissing
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !entry.Status.CanTransitionTo(domain.Void) {
		return nil, fmt.Errorf("%w: entry %s is %s, expected POSTED", apperrors.ErrInvalidState, entryID, entry.Status)
	}

	now := time.Now().UTC()
	if err := s.journalRepo.MarkVoided(ctx, entryID, actor, reason, now); err != nil {
		logger.Error("Failed to void journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, err
	}

	metrics.EntriesVoided.Inc()
	logger.Info("Journal entry voided", slog.String("entry_id", entryID), slog.String("reason", reason))

	entry.Status = domain.Void
	entry.VoidedAt = &now
	entry.VoidedBy = actor
	entry.VoidReason = reason
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actor
	return entry, nil
}
