package services

import (
	"context"
	"time"

	"github.com/bizopshq/ledger_engine/internal/core/domain"
)

// AllocatedNumber is the result of a document number allocation.
type AllocatedNumber struct {
	DocumentNumber string
	Counter        int64
}

// SequenceSvcFacade issues globally unique, never-repeating document numbers.
type SequenceSvcFacade interface {
	// AllocateDocumentNumber reserves the next counter for the scope in its
	// own transaction and returns the formatted document number.
	AllocateDocumentNumber(ctx context.Context, scope domain.SequenceScope, forDate time.Time) (*AllocatedNumber, error)
}
