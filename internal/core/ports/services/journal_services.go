package services

import (
	"context"

	"github.com/bizopshq/ledger_engine/internal/core/domain"
	"github.com/bizopshq/ledger_engine/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries.
type JournalReaderSvc interface {
	// GetEntryByID retrieves an entry with its lines populated.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of entries.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// JournalWriterSvc defines the lifecycle operations of the journal entry engine.
type JournalWriterSvc interface {
	// CreateEntry validates and persists a new entry in DRAFT.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creator string) (*domain.JournalEntry, error)

	// UpdateEntry replaces a DRAFT entry's lines and header fields after full re-validation.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, actor string) (*domain.JournalEntry, error)

	// DeleteEntry removes a DRAFT entry and its lines.
	DeleteEntry(ctx context.Context, entryID string) error

	// PostEntry transitions a DRAFT entry to POSTED, allocating its entry number.
	PostEntry(ctx context.Context, entryID string, actor string) (*domain.JournalEntry, error)

	// VoidEntry transitions a POSTED entry to VOID with a mandatory reason.
	VoidEntry(ctx context.Context, entryID string, actor string, reason string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines journal read and lifecycle operations.
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
