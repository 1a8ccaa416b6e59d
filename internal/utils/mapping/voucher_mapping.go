package mapping

import (
	"github.com/bizopshq/ledger_engine/internal/core/domain"
	"github.com/bizopshq/ledger_engine/internal/models"
)

// ToModelCashVoucher converts a domain CashVoucher to a model CashVoucher
func ToModelCashVoucher(d domain.CashVoucher) models.CashVoucher {
	return models.CashVoucher{
		VoucherID:      d.VoucherID,
		VoucherNumber:  d.VoucherNumber,
		BranchCode:     d.BranchCode,
		FundCode:       d.FundCode,
		VoucherDate:    d.VoucherDate,
		Amount:         d.Amount,
		Description:    d.Description,
		Status:         models.VoucherStatus(d.Status),
		JournalEntryID: d.JournalEntryID,
		PostedAt:       d.PostedAt,
		PostedBy:       d.PostedBy,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashVoucher converts a model CashVoucher to a domain CashVoucher
func ToDomainCashVoucher(m models.CashVoucher) domain.CashVoucher {
	return domain.CashVoucher{
		VoucherID:      m.VoucherID,
		VoucherNumber:  m.VoucherNumber,
		BranchCode:     m.BranchCode,
		FundCode:       m.FundCode,
		VoucherDate:    m.VoucherDate,
		Amount:         m.Amount,
		Description:    m.Description,
		Status:         domain.VoucherStatus(m.Status),
		JournalEntryID: m.JournalEntryID,
		PostedAt:       m.PostedAt,
		PostedBy:       m.PostedBy,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
