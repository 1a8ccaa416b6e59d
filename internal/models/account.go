package models

// AccountCategory defines the fundamental accounting category of an account.
type AccountCategory string

const (
	Asset     AccountCategory = "ASSET"
	Liability AccountCategory = "LIABILITY"
	Equity    AccountCategory = "EQUITY"
	Revenue   AccountCategory = "REVENUE"
	Expense   AccountCategory = "EXPENSE"
)

// Account represents a chart-of-accounts row.
// Note: ParentAccountID uses string for the nullable foreign key; repositories
// translate empty string to NULL.
type Account struct {
	AccountID       string          `db:"account_id"`
	Code            string          `db:"code"` // Unique hierarchical human code
	Name            string          `db:"name"`
	Category        AccountCategory `db:"category"`
	ParentAccountID string          `db:"parent_account_id"` // Nullable
	Level           int             `db:"level"`
	IsHeader        bool            `db:"is_header"`
	IsSystem        bool            `db:"is_system"`
	IsActive        bool            `db:"is_active"`
	Description     string          `db:"description"`
	AuditFields
}
