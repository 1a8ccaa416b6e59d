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

var ErrSameAccount = fmt.Errorf("%w: debit and credit accounts must differ", apperrors.ErrValidation)

// SourceKindCashVoucher tags journal entries produced by the voucher bridge.
const SourceKindCashVoucher = "CASH_VOUCHER"

// postingService is the bridge between source documents and the journal.
// Posting a voucher creates the entry, posts it, and stamps the voucher in a
// single transaction; either everything lands or nothing does.
type postingService struct {
	voucherRepo  portsrepo.VoucherRepositoryWithTx
	journalRepo  portsrepo.JournalRepositoryFacade
	sequenceRepo portsrepo.SequenceRepository
	accountSvc   portssvc.AccountReaderSvc
}

// NewPostingService creates a new posting bridge.
func NewPostingService(
	voucherRepo portsrepo.VoucherRepositoryWithTx,
	journalRepo portsrepo.JournalRepositoryFacade,
	sequenceRepo portsrepo.SequenceRepository,
	accountSvc portssvc.AccountReaderSvc,
) portssvc.PostingSvcFacade {
	return &postingService{
		voucherRepo:  voucherRepo,
		journalRepo:  journalRepo,
		sequenceRepo: sequenceRepo,
		accountSvc:   accountSvc,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// CreateVoucher persists an approved cash voucher, allocating its bill number
// from the per-(branch, fund, day) counter in the same transaction as the insert.
func (s *postingService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, creator string) (*domain.CashVoucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := money.ToMinorUnits(req.Amount)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: voucher amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	scope := domain.SequenceScope{
		Kind:       domain.DocKindVoucher,
		BranchCode: req.BranchCode,
		FundCode:   req.FundCode,
	}

	tx, err := s.voucherRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.voucherRepo.Rollback(ctx, tx)

	counter, err := s.sequenceRepo.NextValue(ctx, tx, scope.Key(), scope.CounterDate(req.VoucherDate))
	if err != nil {
		if errors.Is(err, apperrors.ErrContention) {
			metrics.SequenceContention.Inc()
			logger.Warn("Sequence lock contention while numbering voucher", slog.String("scope", scope.Key()))
		}
		return nil, err
	}

	voucher := domain.CashVoucher{
		VoucherID:     uuid.NewString(),
		VoucherNumber: domain.FormatVoucherNumber(req.BranchCode, req.FundCode, req.VoucherDate, counter),
		BranchCode:    req.BranchCode,
		FundCode:      req.FundCode,
		VoucherDate:   req.VoucherDate,
		Amount:        amount,
		Description:   req.Description,
		Status:        domain.VoucherApproved,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator,
			LastUpdatedAt: now,
			LastUpdatedBy: creator,
		},
	}

	if err := s.voucherRepo.SaveVoucherInTx(ctx, tx, voucher); err != nil {
		logger.Error("Failed to save voucher", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save voucher: %w", err)
	}
	if err := s.voucherRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	metrics.SequenceAllocations.WithLabelValues(scope.Key()).Inc()
	logger.Info("Voucher created", slog.String("voucher_id", voucher.VoucherID), slog.String("voucher_number", voucher.VoucherNumber))
	return &voucher, nil
}

// GetVoucherByID retrieves a voucher.
func (s *postingService) GetVoucherByID(ctx context.Context, voucherID string) (*domain.CashVoucher, error) {
	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

// PostVoucher turns an approved voucher into a posted two-line journal entry.
// The voucher row is locked first so two concurrent attempts serialize; the
// loser then sees the entry reference and fails with an already-posted error.
func (s *postingService) PostVoucher(ctx context.Context, voucherID string, req dto.PostVoucherRequest, actor string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.DebitAccountID == req.CreditAccountID {
		return nil, ErrSameAccount
	}

	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, []string{req.DebitAccountID, req.CreditAccountID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range []string{req.DebitAccountID, req.CreditAccountID} {
		acc, found := accountsMap[id]
		if !found {
			return nil, fmt.Errorf("%w: ID %s", ErrUnknownAccount, id)
		}
		if !acc.IsPostable() {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotPostable, acc.Code)
		}
	}

	now := time.Now().UTC()

	tx, err := s.voucherRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.voucherRepo.Rollback(ctx, tx)

	voucher, err := s.voucherRepo.FindVoucherByIDForUpdate(ctx, tx, voucherID)
	if err != nil {
		return nil, err
	}
	if voucher.JournalEntryID != nil {
		return nil, fmt.Errorf("%w: voucher %s is linked to entry %s", apperrors.ErrAlreadyPosted, voucher.VoucherNumber, *voucher.JournalEntryID)
	}

	entryID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor,
		LastUpdatedAt: now,
		LastUpdatedBy: actor,
	}
	lines := []domain.JournalLine{
		{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			LineNo:      1,
			AccountID:   req.DebitAccountID,
			Side:        domain.Debit,
			Amount:      voucher.Amount,
			AuditFields: audit,
		},
		{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			LineNo:      2,
			AccountID:   req.CreditAccountID,
			Side:        domain.Credit,
			Amount:      voucher.Amount,
			AuditFields: audit,
		},
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   voucher.VoucherDate,
		EntryType:   domain.EntryTypeVoucher,
		Description: fmt.Sprintf("Cash voucher %s: %s", voucher.VoucherNumber, voucher.Description),
		BranchCode:  voucher.BranchCode,
		Status:      domain.Draft,
		TotalDebit:  voucher.Amount,
		TotalCredit: voucher.Amount,
		SourceKind:  SourceKindCashVoucher,
		SourceID:    voucher.VoucherID,
		AuditFields: audit,
	}

	if err := s.journalRepo.SaveEntryInTx(ctx, tx, entry, lines); err != nil {
		logger.Error("Failed to save bridged entry", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	scope := domain.SequenceScope{Kind: domain.DocKindJournalEntry}
	counter, err := s.sequenceRepo.NextValue(ctx, tx, scope.Key(), scope.CounterDate(entry.EntryDate))
	if err != nil {
		if errors.Is(err, apperrors.ErrContention) {
			metrics.SequenceContention.Inc()
			logger.Warn("Sequence lock contention while posting voucher", slog.String("voucher_id", voucherID))
		}
		return nil, err
	}
	entryNumber := domain.FormatEntryNumber(entry.EntryDate, counter)

	if err := s.journalRepo.MarkPosted(ctx, tx, entryID, entryNumber, actor, now); err != nil {
		return nil, err
	}
	if err := s.voucherRepo.MarkPostedInTx(ctx, tx, voucherID, entryID, actor, now); err != nil {
		return nil, err
	}
	if err := s.voucherRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	metrics.SequenceAllocations.WithLabelValues(scope.Key()).Inc()
	metrics.EntriesPosted.Inc()
	metrics.VouchersPosted.Inc()
	logger.Info("Voucher posted",
		slog.String("voucher_id", voucherID),
		slog.String("entry_id", entryID),
		slog.String("entry_number", entryNumber))

	entry.Status = domain.Posted
	entry.EntryNumber = entryNumber
	entry.PostedAt = &now
	entry.PostedBy = actor
	entry.Lines = lines
	return &entry, nil
}
