package services

import (
	"context"

	"github.com/bizopshq/ledger_engine/internal/core/domain"
	"github.com/bizopshq/ledger_engine/internal/dto"
)

// AccountReaderSvc defines read operations for the account directory.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its ID.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountsByIDs retrieves multiple accounts keyed by ID.
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for the account directory.
type AccountWriterSvc interface {
	// CreateAccount creates a new account after validating code uniqueness and parentage.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creator string) (*domain.Account, error)

	// UpdateAccount updates the mutable fields of an account.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actor string) (*domain.Account, error)

	// DeactivateAccount marks an account inactive.
	DeactivateAccount(ctx context.Context, accountID string, actor string) error

	// DeleteAccount physically removes an account; it fails when the account
	// has children, journal history, or is system seeded.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines account read and write operations.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
