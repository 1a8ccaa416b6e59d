package domain

// AccountCategory defines the fundamental accounting category of an account.
type AccountCategory string

const (
	Asset     AccountCategory = "ASSET"
	Liability AccountCategory = "LIABILITY"
	Equity    AccountCategory = "EQUITY"
	Revenue   AccountCategory = "REVENUE"
	Expense   AccountCategory = "EXPENSE"
)

// NormalBalance is the side on which an account naturally increases.
type NormalBalance string

const (
	NormalDebit  NormalBalance = "DEBIT"
	NormalCredit NormalBalance = "CREDIT"
)

// NormalBalanceFor derives the normal balance from the account category.
// It is a pure function; the normal balance is never stored or set independently.
func NormalBalanceFor(category AccountCategory) NormalBalance {
	switch category {
	case Asset, Expense:
		return NormalDebit
	default:
		return NormalCredit
	}
}

// ValidCategory reports whether the given category is one of the closed set.
func ValidCategory(category AccountCategory) bool {
	switch category {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents a node in the chart-of-accounts tree.
type Account struct {
	AccountID       string          `json:"accountID"`       // Primary Key (UUID)
	Code            string          `json:"code"`            // Unique hierarchical human code, e.g. "1120"
	Name            string          `json:"name"`            // User-defined name
	Category        AccountCategory `json:"category"`        // ASSET, LIABILITY, etc.
	ParentAccountID string          `json:"parentAccountID"` // Empty for root accounts
	Level           int             `json:"level"`           // 1 for roots, parent level + 1 otherwise
	IsHeader        bool            `json:"isHeader"`        // Aggregation-only; cannot receive postings
	IsSystem        bool            `json:"isSystem"`        // Seeded by the system; protected from deletion
	IsActive        bool            `json:"isActive"`        // Deactivated instead of deleted once it has history
	Description     string          `json:"description"`
	AuditFields
}

// NormalBalance returns the account's derived normal balance.
func (a Account) NormalBalance() NormalBalance {
	return NormalBalanceFor(a.Category)
}

// IsPostable reports whether journal lines may reference this account.
// Header accounts and inactive accounts never receive postings.
func (a Account) IsPostable() bool {
	return a.IsActive && !a.IsHeader
}
