package services

import (
	portssvc "github.com/bizopshq/ledger_engine/internal/core/ports/services"
	"github.com/bizopshq/ledger_engine/internal/repositories/database/pgsql"
)

// ServiceContainer holds all service instances consumed by the handlers.
type ServiceContainer struct {
	AccountSvc  portssvc.AccountSvcFacade
	JournalSvc  portssvc.JournalSvcFacade
	SequenceSvc portssvc.SequenceSvcFacade
	PostingSvc  portssvc.PostingSvcFacade
}

// NewServiceContainer wires services to their repositories.
func NewServiceContainer(repos *pgsql.RepositoryContainer) *ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo)
	journalSvc := NewJournalService(repos.JournalRepo, repos.SequenceRepo, accountSvc)
	sequenceSvc := NewSequenceService(repos.SequenceRepo)
	postingSvc := NewPostingService(repos.VoucherRepo, repos.JournalRepo, repos.SequenceRepo, accountSvc)

	return &ServiceContainer{
		AccountSvc:  accountSvc,
		JournalSvc:  journalSvc,
		SequenceSvc: sequenceSvc,
		PostingSvc:  postingSvc,
	}
}
