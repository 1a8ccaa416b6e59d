package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bizopshq/ledger_engine/internal/apperrors"
	"github.com/bizopshq/ledger_engine/internal/core/domain"
	"github.com/bizopshq/ledger_engine/internal/core/services"
)

// fakeSequenceRepo is an in-memory counter store with the same fetch-and-
// increment contract as the database implementation: the mutex stands in for
// the row lock, so no two calls can observe the same base value.
type fakeSequenceRepo struct {
	mu       sync.Mutex
	counters map[string]int64
	failWith error
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{counters: make(map[string]int64)}
}

func (f *fakeSequenceRepo) NextValue(ctx context.Context, tx pgx.Tx, scopeKey string, counterDate time.Time) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := scopeKey + "|" + counterDate.Format("2006-01-02")
	f.counters[key]++
	return f.counters[key], nil
}

func (f *fakeSequenceRepo) Begin(ctx context.Context) (pgx.Tx, error)     { return nil, nil }
func (f *fakeSequenceRepo) Commit(ctx context.Context, tx pgx.Tx) error   { return nil }
func (f *fakeSequenceRepo) Rollback(ctx context.Context, tx pgx.Tx) error { return nil }

func TestAllocateDocumentNumber_Formats(t *testing.T) {
	repo := newFakeSequenceRepo()
	svc := services.NewSequenceService(repo)
	ctx := context.Background()
	date := time.Date(2025, 11, 22, 10, 30, 0, 0, time.UTC)

	je, err := svc.AllocateDocumentNumber(ctx, domain.SequenceScope{Kind: domain.DocKindJournalEntry}, date)
	require.NoError(t, err)
	assert.Equal(t, "JE-2025-0001", je.DocumentNumber)
	assert.Equal(t, int64(1), je.Counter)

	vch, err := svc.AllocateDocumentNumber(ctx, domain.SequenceScope{Kind: domain.DocKindVoucher, BranchCode: "BD", FundCode: "PC"}, date)
	require.NoError(t, err)
	assert.Equal(t, "BD-PC-20251122-0001", vch.DocumentNumber)

	stk, err := svc.AllocateDocumentNumber(ctx, domain.SequenceScope{Kind: domain.DocKindStock, BranchCode: "BD"}, date)
	require.NoError(t, err)
	assert.Equal(t, "STK-BD-20251122-0001", stk.DocumentNumber)
}

func TestAllocateDocumentNumber_ScopesAreIndependent(t *testing.T) {
	repo := newFakeSequenceRepo()
	svc := services.NewSequenceService(repo)
	ctx := context.Background()
	date := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := svc.AllocateDocumentNumber(ctx, domain.SequenceScope{Kind: domain.DocKindVoucher, BranchCode: "BD", FundCode: "PC"}, date)
		require.NoError(t, err)
	}

	// A different branch starts at its own 1
	other, err := svc.AllocateDocumentNumber(ctx, domain.SequenceScope{Kind: domain.DocKindVoucher, BranchCode: "CM", FundCode: "PC"}, date)
	require.NoError(t, err)
	assert.Equal(t, int64(1), other.Counter)

	// The next day restarts the daily counter
	nextDay, err := svc.AllocateDocumentNumber(ctx, domain.SequenceScope{Kind: domain.DocKindVoucher, BranchCode: "BD", FundCode: "PC"}, date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), nextDay.Counter)
}

func TestAllocateDocumentNumber_UnknownKind(t *testing.T) {
	svc := services.NewSequenceService(newFakeSequenceRepo())

	_, err := svc.AllocateDocumentNumber(context.Background(), domain.SequenceScope{Kind: "BOGUS"}, time.Now().UTC())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAllocateDocumentNumber_ContentionPropagates(t *testing.T) {
	repo := newFakeSequenceRepo()
	repo.failWith = apperrors.ErrContention
	svc := services.NewSequenceService(repo)

	_, err := svc.AllocateDocumentNumber(context.Background(), domain.SequenceScope{Kind: domain.DocKindJournalEntry}, time.Now().UTC())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrContention)
}

// Fifty concurrent allocators on one scope must each receive a distinct,
// consecutive counter value.
func TestAllocateDocumentNumber_ConcurrentAllocatorsNoDuplicates(t *testing.T) {
	const n = 50

	repo := newFakeSequenceRepo()
	svc := services.NewSequenceService(repo)
	date := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
	scope := domain.SequenceScope{Kind: domain.DocKindVoucher, BranchCode: "BD", FundCode: "PC"}

	results := make([]int64, n)
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			allocated, err := svc.AllocateDocumentNumber(ctx, scope, date)
			if err != nil {
				return err
			}
			results[i] = allocated.Counter
			return nil
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[int64]bool, n)
	for _, counter := range results {
		assert.False(t, seen[counter], "counter %d allocated twice", counter)
		seen[counter] = true
		assert.GreaterOrEqual(t, counter, int64(1))
		assert.LessOrEqual(t, counter, int64(n))
	}
	assert.Len(t, seen, n)
}
