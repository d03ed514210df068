package dto

import (
	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
)

// CurrencyResponse describes one registry currency.
type CurrencyResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	Position string `json:"position"`
	Locale   string `json:"locale"`
}

// SelectCurrencyRequest sets the user's display currency preference.
type SelectCurrencyRequest struct {
	Code string `json:"code" binding:"required,supportedcurrency"`
}

// FormatAmountRequest asks for one amount rendered in a currency's convention.
type FormatAmountRequest struct {
	Amount       string  `json:"amount" binding:"required"`
	CurrencyCode string  `json:"currencyCode" binding:"required,uppercase,len=3"`
	Decimals     *int    `json:"decimals,omitempty"`
	ShowSymbol   *bool   `json:"showSymbol,omitempty"`
	Position     *string `json:"position,omitempty" binding:"omitempty,oneof=BEFORE AFTER"`
}

// FormatAmountResponse carries the rendered string.
type FormatAmountResponse struct {
	Formatted string `json:"formatted"`
}

// ToCurrencyResponse converts a domain Currency to its response DTO.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:     c.Code,
		Name:     c.Name,
		Symbol:   c.Symbol,
		Decimals: c.Decimals,
		Position: string(c.Position),
		Locale:   c.Locale,
	}
}

// ToListCurrencyResponse converts registry currencies to response DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
