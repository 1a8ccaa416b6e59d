package dto

import (
	"time"

	"github.com/bizopshq/ledger_engine/internal/core/domain"
	"github.com/bizopshq/ledger_engine/internal/utils/money"
	"github.com/shopspring/decimal"
)

// EntryLineRequest defines one line of a journal entry. The side tag plus a
// single positive amount replaces the nullable debit/credit pair: "both set"
// and "neither set" cannot be expressed.
type EntryLineRequest struct {
	AccountID  string           `json:"accountID" binding:"required"`
	Side       domain.EntrySide `json:"side" binding:"required,oneof=DEBIT CREDIT"`
	Amount     decimal.Decimal  `json:"amount" binding:"required,positiveamount"`
	CostCenter string           `json:"costCenter"`
}

// CreateEntryRequest defines the data needed to create a journal entry in DRAFT.
type CreateEntryRequest struct {
	EntryDate   time.Time          `json:"entryDate" binding:"required"`
	EntryType   string             `json:"entryType" binding:"omitempty,oneof=MANUAL VOUCHER"`
	Description string             `json:"description" binding:"required"`
	BranchCode  string             `json:"branchCode" binding:"required"`
	Lines       []EntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateEntryRequest defines the data allowed for updating a DRAFT entry.
// Providing lines replaces all existing lines after full re-validation.
type UpdateEntryRequest struct {
	EntryDate   *time.Time         `json:"entryDate"`
	Description *string            `json:"description"`
	Lines       []EntryLineRequest `json:"lines" binding:"omitempty,min=2,dive"`
}

// VoidEntryRequest carries the mandatory reason for voiding a posted entry.
type VoidEntryRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// EntryLineResponse defines the data returned for a journal line.
type EntryLineResponse struct {
	LineID     string           `json:"lineID"`
	LineNo     int              `json:"lineNo"`
	AccountID  string           `json:"accountID"`
	Side       domain.EntrySide `json:"side"`
	Amount     decimal.Decimal  `json:"amount"`
	CostCenter string           `json:"costCenter,omitempty"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID     string              `json:"entryID"`
	EntryNumber string              `json:"entryNumber,omitempty"`
	EntryDate   time.Time           `json:"entryDate"`
	EntryType   domain.EntryType    `json:"entryType"`
	Description string              `json:"description"`
	BranchCode  string              `json:"branchCode"`
	Status      domain.EntryStatus  `json:"status"`
	TotalDebit  decimal.Decimal     `json:"totalDebit"`
	TotalCredit decimal.Decimal     `json:"totalCredit"`
	SourceKind  string              `json:"sourceKind,omitempty"`
	SourceID    string              `json:"sourceID,omitempty"`
	PostedAt    *time.Time          `json:"postedAt,omitempty"`
	PostedBy    string              `json:"postedBy,omitempty"`
	VoidedAt    *time.Time          `json:"voidedAt,omitempty"`
	VoidedBy    string              `json:"voidedBy,omitempty"`
	VoidReason  string              `json:"voidReason,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	CreatedBy   string              `json:"createdBy"`
	Lines       []EntryLineResponse `json:"lines,omitempty"`
}

// ToEntryLineResponse converts a domain.JournalLine to EntryLineResponse DTO
func ToEntryLineResponse(line *domain.JournalLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:     line.LineID,
		LineNo:     line.LineNo,
		AccountID:  line.AccountID,
		Side:       line.Side,
		Amount:     money.FromMinorUnits(line.Amount),
		CostCenter: line.CostCenter,
	}
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO
func ToEntryResponse(entry *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:     entry.EntryID,
		EntryNumber: entry.EntryNumber,
		EntryDate:   entry.EntryDate,
		EntryType:   entry.EntryType,
		Description: entry.Description,
		BranchCode:  entry.BranchCode,
		Status:      entry.Status,
		TotalDebit:  money.FromMinorUnits(entry.TotalDebit),
		TotalCredit: money.FromMinorUnits(entry.TotalCredit),
		SourceKind:  entry.SourceKind,
		SourceID:    entry.SourceID,
		PostedAt:    entry.PostedAt,
		PostedBy:    entry.PostedBy,
		VoidedAt:    entry.VoidedAt,
		VoidedBy:    entry.VoidedBy,
		VoidReason:  entry.VoidReason,
		CreatedAt:   entry.CreatedAt,
		CreatedBy:   entry.CreatedBy,
	}
	if len(entry.Lines) > 0 {
		resp.Lines = make([]EntryLineResponse, len(entry.Lines))
		for i := range entry.Lines {
			resp.Lines[i] = ToEntryLineResponse(&entry.Lines[i])
		}
	}
	return resp
}

// ListEntriesParams defines query parameters for listing journal entries.
type ListEntriesParams struct {
	BranchCode string  `form:"branchCode" binding:"required"`
	Limit      int     `form:"limit,default=20"`
	NextToken  *string `form:"nextToken"`
}

// ListEntriesResponse wraps the paginated list of entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}
