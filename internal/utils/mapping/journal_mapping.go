package mapping

import (
	"github.com/bizopshq/ledger_engine/internal/core/domain"
	"github.com/bizopshq/ledger_engine/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		EntryNumber: d.EntryNumber,
		EntryDate:   d.EntryDate,
		EntryType:   string(d.EntryType),
		Description: d.Description,
		BranchCode:  d.BranchCode,
		Status:      models.EntryStatus(d.Status),
		TotalDebit:  d.TotalDebit,
		TotalCredit: d.TotalCredit,
		SourceKind:  d.SourceKind,
		SourceID:    d.SourceID,
		PostedAt:    d.PostedAt,
		PostedBy:    d.PostedBy,
		VoidedAt:    d.VoidedAt,
		VoidedBy:    d.VoidedBy,
		VoidReason:  d.VoidReason,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		EntryNumber: m.EntryNumber,
		EntryDate:   m.EntryDate,
		EntryType:   domain.EntryType(m.EntryType),
		Description: m.Description,
		BranchCode:  m.BranchCode,
		Status:      domain.EntryStatus(m.Status),
		TotalDebit:  m.TotalDebit,
		TotalCredit: m.TotalCredit,
		SourceKind:  m.SourceKind,
		SourceID:    m.SourceID,
		PostedAt:    m.PostedAt,
		PostedBy:    m.PostedBy,
		VoidedAt:    m.VoidedAt,
		VoidedBy:    m.VoidedBy,
		VoidReason:  m.VoidReason,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntryLine converts a domain JournalLine to a model JournalEntryLine
func ToModelJournalEntryLine(d domain.JournalLine) models.JournalEntryLine {
	return models.JournalEntryLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		LineNo:      d.LineNo,
		AccountID:   d.AccountID,
		Side:        models.EntrySide(d.Side),
		Amount:      d.Amount,
		CostCenter:  d.CostCenter,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalLine converts a model JournalEntryLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalEntryLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		LineNo:      m.LineNo,
		AccountID:   m.AccountID,
		Side:        domain.EntrySide(m.Side),
		Amount:      m.Amount,
		CostCenter:  m.CostCenter,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalLineSlice converts a slice of model lines to domain lines
func ToDomainJournalLineSlice(ms []models.JournalEntryLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
