package dto

import (
	"time"

	"github.com/bizopshq/ledger_engine/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code            string                 `json:"code" binding:"required"`
	Name            string                 `json:"name" binding:"required"`
	Category        domain.AccountCategory `json:"category" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	ParentAccountID *string                `json:"parentAccountID"` // Optional, use pointer for nullability
	IsHeader        bool                   `json:"isHeader"`
	Description     string                 `json:"description"` // Optional
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string                 `json:"accountID"`
	Code            string                 `json:"code"`
	Name            string                 `json:"name"`
	Category        domain.AccountCategory `json:"category"`
	NormalBalance   domain.NormalBalance   `json:"normalBalance"` // Derived, never stored
	ParentAccountID string                 `json:"parentAccountID"`
	Level           int                    `json:"level"`
	IsHeader        bool                   `json:"isHeader"`
	IsSystem        bool                   `json:"isSystem"`
	IsActive        bool                   `json:"isActive"`
	Description     string                 `json:"description"`
	CreatedAt       time.Time              `json:"createdAt"`
	CreatedBy       string                 `json:"createdBy"`
	LastUpdatedAt   time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy   string                 `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Code:            acc.Code,
		Name:            acc.Name,
		Category:        acc.Category,
		NormalBalance:   acc.NormalBalance(),
		ParentAccountID: acc.ParentAccountID,
		Level:           acc.Level,
		IsHeader:        acc.IsHeader,
		IsSystem:        acc.IsSystem,
		IsActive:        acc.IsActive,
		Description:     acc.Description,
		CreatedAt:       acc.CreatedAt,
		CreatedBy:       acc.CreatedBy,
		LastUpdatedAt:   acc.LastUpdatedAt,
		LastUpdatedBy:   acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
