package mapping

import (
	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	"github.com/ledgerly/ledgerly_backend/internal/models"
)

// ToModelFiscalYear converts a domain FiscalYear to its model.
func ToModelFiscalYear(d domain.FiscalYear) models.FiscalYear {
	return models.FiscalYear{
		FiscalYearID: d.FiscalYearID,
		Name:         d.Name,
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		IsCurrent:    d.IsCurrent,
		IsLocked:     d.IsLocked,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFiscalYear converts a model FiscalYear to the domain type.
func ToDomainFiscalYear(m models.FiscalYear) domain.FiscalYear {
	return domain.FiscalYear{
		FiscalYearID: m.FiscalYearID,
		Name:         m.Name,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		IsCurrent:    m.IsCurrent,
		IsLocked:     m.IsLocked,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFiscalYearSlice converts model fiscal years to domain fiscal years.
func ToDomainFiscalYearSlice(ms []models.FiscalYear) []domain.FiscalYear {
	out := make([]domain.FiscalYear, len(ms))
	for i, m := range ms {
		out[i] = ToDomainFiscalYear(m)
	}
	return out
}

// ToModelAccountingPeriod converts a domain AccountingPeriod to its model.
func ToModelAccountingPeriod(d domain.AccountingPeriod) models.AccountingPeriod {
	return models.AccountingPeriod{
		PeriodID:     d.PeriodID,
		FiscalYearID: d.FiscalYearID,
		Name:         d.Name,
		Type:         string(d.Type),
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		IsClosed:     d.IsClosed,
		Sequence:     d.Sequence,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccountingPeriod converts a model AccountingPeriod to the domain type.
func ToDomainAccountingPeriod(m models.AccountingPeriod) domain.AccountingPeriod {
	return domain.AccountingPeriod{
		PeriodID:     m.PeriodID,
		FiscalYearID: m.FiscalYearID,
		Name:         m.Name,
		Type:         domain.PeriodType(m.Type),
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		IsClosed:     m.IsClosed,
		Sequence:     m.Sequence,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountingPeriodSlice converts model periods to domain periods.
func ToDomainAccountingPeriodSlice(ms []models.AccountingPeriod) []domain.AccountingPeriod {
	out := make([]domain.AccountingPeriod, len(ms))
	for i, m := range ms {
		out[i] = ToDomainAccountingPeriod(m)
	}
	return out
}
