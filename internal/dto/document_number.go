package dto

import (
	"time"

	"github.com/bizopshq/ledger_engine/internal/core/domain"
)

// AllocateDocumentNumberRequest asks the sequence generator for the next
// number of a document kind, e.g. a vehicle stock number.
type AllocateDocumentNumberRequest struct {
	Kind       domain.DocumentKind `json:"kind" binding:"required,oneof=JE VCH STK"`
	BranchCode string              `json:"branchCode"`
	FundCode   string              `json:"fundCode"`
	Date       time.Time           `json:"date" binding:"required"`
}

// DocumentNumberResponse returns the allocated, formatted document number.
type DocumentNumberResponse struct {
	DocumentNumber string `json:"documentNumber"`
	Counter        int64  `json:"counter"`
}
