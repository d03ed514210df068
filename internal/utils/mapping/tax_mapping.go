package mapping

import (
	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	"github.com/ledgerly/ledgerly_backend/internal/models"
)

// ToModelTaxRate converts a domain TaxRate to its model.
func ToModelTaxRate(d domain.TaxRate) models.TaxRate {
	m := models.TaxRate{
		TaxRateID:   d.TaxRateID,
		Name:        d.Name,
		Code:        d.Code,
		Rate:        d.Rate,
		IsDefault:   d.IsDefault,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.AccountCode != "" {
		m.AccountCode = &d.AccountCode
	}
	if d.Description != "" {
		m.Description = &d.Description
	}
	return m
}

// ToDomainTaxRate converts a model TaxRate to the domain type.
func ToDomainTaxRate(m models.TaxRate) domain.TaxRate {
	d := domain.TaxRate{
		TaxRateID:   m.TaxRateID,
		Name:        m.Name,
		Code:        m.Code,
		Rate:        m.Rate,
		IsDefault:   m.IsDefault,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.AccountCode != nil {
		d.AccountCode = *m.AccountCode
	}
	if m.Description != nil {
		d.Description = *m.Description
	}
	return d
}

// ToDomainTaxRateSlice converts model tax rates to domain tax rates.
func ToDomainTaxRateSlice(ms []models.TaxRate) []domain.TaxRate {
	out := make([]domain.TaxRate, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTaxRate(m)
	}
	return out
}
