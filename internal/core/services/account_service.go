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
)

var (
	ErrAccountHasChildren = fmt.Errorf("%w: account has child accounts", apperrors.ErrProtectedResource)
	ErrAccountHasHistory  = fmt.Errorf("%w: account has journal history", apperrors.ErrProtectedResource)
	ErrAccountIsSystem    = fmt.Errorf("%w: account is system seeded", apperrors.ErrProtectedResource)
	ErrInvalidCategory    = fmt.Errorf("%w: unknown account category", apperrors.ErrValidation)
	ErrParentNotFound     = fmt.Errorf("%w: parent account does not exist", apperrors.ErrValidation)
)

// accountService maintains the chart-of-accounts tree.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account directory service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount validates the category and parentage, derives the tree level,
// and persists the account. The normal balance is never stored; it is always
// derived from the category.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creator string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, req.Category)
	}

	level := 1
	parentID := ""
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: ID %s", ErrParentNotFound, *req.ParentAccountID)
			}
			return nil, fmt.Errorf("failed to resolve parent account: %w", err)
		}
		parentID = parent.AccountID
		level = parent.Level + 1
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Code:            req.Code,
		Name:            req.Name,
		Category:        req.Category,
		ParentAccountID: parentID,
		Level:           level,
		IsHeader:        req.IsHeader,
		IsActive:        true,
		Description:     req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator,
			LastUpdatedAt: now,
			LastUpdatedBy: creator,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, req.Code)
		}
		logger.Error("Failed to save account", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves a specific account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountsByIDs retrieves multiple accounts keyed by ID.
func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
}

// ListAccounts retrieves a paginated list of accounts.
func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount applies the mutable fields. Category, code and parentage are
// immutable after creation; restructure the tree with new accounts instead.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actor string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = actor

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeactivateAccount marks an account inactive. This is the path for accounts
// that have history and therefore cannot be deleted.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, actor string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, actor, time.Now().UTC()); err != nil {
		logger.Error("Failed to deactivate account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	return nil
}

// DeleteAccount physically removes an account. System accounts, accounts with
// children, and accounts referenced by journal lines are protected; callers
// should deactivate those instead.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.IsSystem {
		return fmt.Errorf("%w: %s", ErrAccountIsSystem, account.Code)
	}

	hasChildren, err := s.accountRepo.HasChildren(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to check child accounts: %w", err)
	}
	if hasChildren {
		return fmt.Errorf("%w: %s", ErrAccountHasChildren, account.Code)
	}

	hasLines, err := s.accountRepo.HasJournalLines(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to check journal history: %w", err)
	}
	if hasLines {
		return fmt.Errorf("%w: %s", ErrAccountHasHistory, account.Code)
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		logger.Error("Failed to delete account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}

	logger.Info("Account deleted", slog.String("account_id", accountID), slog.String("code", account.Code))
	return nil
}
