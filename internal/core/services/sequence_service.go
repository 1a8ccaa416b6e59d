package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizopshq/ledger_engine/internal/apperrors"
	"github.com/bizopshq/ledger_engine/internal/core/domain"
	portsrepo "github.com/bizopshq/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/bizopshq/ledger_engine/internal/core/ports/services"
	"github.com/bizopshq/ledger_engine/internal/middleware"
	"github.com/bizopshq/ledger_engine/internal/platform/metrics"
)

var ErrUnknownDocumentKind = fmt.Errorf("%w: unknown document kind", apperrors.ErrValidation)

// sequenceService issues document numbers for callers that are not already
// inside a larger unit of work. The posting paths bypass it and call the
// repository directly with their own transaction.
type sequenceService struct {
	sequenceRepo portsrepo.SequenceRepositoryWithTx
}

// NewSequenceService creates a new document number allocator.
func NewSequenceService(sequenceRepo portsrepo.SequenceRepositoryWithTx) portssvc.SequenceSvcFacade {
	return &sequenceService{sequenceRepo: sequenceRepo}
}

var _ portssvc.SequenceSvcFacade = (*sequenceService)(nil)

// AllocateDocumentNumber reserves the next counter for the scope in its own
// transaction and returns the formatted number. A counter value that reaches
// a commit is never handed out again; rollbacks may leave gaps, which is
// acceptable.
func (s *sequenceService) AllocateDocumentNumber(ctx context.Context, scope domain.SequenceScope, forDate time.Time) (*portssvc.AllocatedNumber, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidDocumentKind(scope.Kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentKind, scope.Kind)
	}

	tx, err := s.sequenceRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.sequenceRepo.Rollback(ctx, tx)

	counter, err := s.sequenceRepo.NextValue(ctx, tx, scope.Key(), scope.CounterDate(forDate))
	if err != nil {
		if errors.Is(err, apperrors.ErrContention) {
			metrics.SequenceContention.Inc()
			logger.Warn("Sequence lock contention", slog.String("scope", scope.Key()))
		}
		return nil, err
	}
	if err := s.sequenceRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	metrics.SequenceAllocations.WithLabelValues(scope.Key()).Inc()
	return &portssvc.AllocatedNumber{
		DocumentNumber: domain.FormatDocumentNumber(scope, forDate, counter),
		Counter:        counter,
	}, nil
}
