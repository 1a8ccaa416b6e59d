package repositories

import (
	"context"
	"time"

	"github.com/bizopshq/ledger_engine/internal/core/domain"
)

// AccountReader defines read operations for the account directory.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by ID. Missing IDs
	// are simply absent from the map; the caller decides whether that is fatal.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts ordered by code.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// HasChildren reports whether any account references accountID as its parent.
	HasChildren(ctx context.Context, accountID string) (bool, error)

	// HasJournalLines reports whether any journal line references the account.
	HasJournalLines(ctx context.Context, accountID string) (bool, error)
}

// AccountWriter defines write operations for the account directory.
type AccountWriter interface {
	// SaveAccount inserts a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates the mutable fields of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account inactive without deleting it.
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error

	// DeleteAccount physically removes an account. The service layer is
	// responsible for the children/history/protection checks beforehand.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines account read and write operations.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
