package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
)

// CreateTaxRateRequest adds a configurable tax rate.
type CreateTaxRateRequest struct {
	Name        string          `json:"name" binding:"required"`
	Code        string          `json:"code" binding:"required"`
	Rate        decimal.Decimal `json:"rate" binding:"required"`
	IsDefault   bool            `json:"isDefault"`
	AccountCode string          `json:"accountCode"`
	Description string          `json:"description"`
}

// UpdateTaxRateRequest edits a tax rate. Nil fields are unchanged.
type UpdateTaxRateRequest struct {
	Name        *string          `json:"name,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	AccountCode *string          `json:"accountCode,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// TaxRateResponse describes one tax rate.
type TaxRateResponse struct {
	TaxRateID   string          `json:"taxRateID"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	Rate        decimal.Decimal `json:"rate"`
	IsDefault   bool            `json:"isDefault"`
	IsActive    bool            `json:"isActive"`
	AccountCode string          `json:"accountCode,omitempty"`
	Description string          `json:"description,omitempty"`
}

// ToTaxRateResponse converts a domain TaxRate to its response DTO.
func ToTaxRateResponse(t *domain.TaxRate) TaxRateResponse {
	return TaxRateResponse{
		TaxRateID:   t.TaxRateID,
		Name:        t.Name,
		Code:        t.Code,
		Rate:        t.Rate,
		IsDefault:   t.IsDefault,
		IsActive:    t.IsActive,
		AccountCode: t.AccountCode,
		Description: t.Description,
	}
}

// ToListTaxRateResponse converts domain tax rates to response DTOs.
func ToListTaxRateResponse(rates []domain.TaxRate) []TaxRateResponse {
	res := make([]TaxRateResponse, len(rates))
	for i := range rates {
		res[i] = ToTaxRateResponse(&rates[i])
	}
	return res
}
