package pgsql

import (
	"time"

	portsrepo "github.com/bizopshq/ledger_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryContainer holds all repository instances backed by one pool.
type RepositoryContainer struct {
	AccountRepo  portsrepo.AccountRepositoryFacade
	JournalRepo  portsrepo.JournalRepositoryWithTx
	SequenceRepo portsrepo.SequenceRepositoryWithTx
	VoucherRepo  portsrepo.VoucherRepositoryWithTx
}

// NewRepositoryContainer wires the pgx repositories. lockTimeout bounds
// sequence counter lock waits.
func NewRepositoryContainer(dbPool *pgxpool.Pool, lockTimeout time.Duration) *RepositoryContainer {
	return &RepositoryContainer{
		AccountRepo:  newPgxAccountRepository(dbPool),
		JournalRepo:  newPgxJournalRepository(dbPool),
		SequenceRepo: newPgxSequenceRepository(dbPool, lockTimeout),
		VoucherRepo:  newPgxVoucherRepository(dbPool),
	}
}
