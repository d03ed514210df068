package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
)

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{name: "single digit class", code: "5", want: 1},
		{name: "two digit group", code: "52", want: 1},
		{name: "three digit account", code: "521", want: 2},
		{name: "four digit account", code: "4431", want: 2},
		{name: "detail account", code: "52000000", want: 3},
		{name: "empty code", code: "", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CalculateLevel(tt.code))

			account := domain.Account{Code: tt.code}
			assert.Equal(t, tt.want, account.Level())
		})
	}
}

func TestPeriodType_Months(t *testing.T) {
	tests := []struct {
		name       string
		periodType domain.PeriodType
		want       int
	}{
		{name: "month", periodType: domain.PeriodMonth, want: 1},
		{name: "quarter", periodType: domain.PeriodQuarter, want: 3},
		{name: "semester", periodType: domain.PeriodSemester, want: 6},
		{name: "unknown", periodType: domain.PeriodType("WEEK"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.periodType.Months())
		})
	}
}

func TestLookupCurrency(t *testing.T) {
	xof := domain.LookupCurrency("XOF")
	if assert.NotNil(t, xof) {
		assert.Equal(t, "FCFA", xof.Symbol)
		assert.Equal(t, 0, xof.Decimals)
		assert.Equal(t, domain.SymbolAfter, xof.Position)
	}

	assert.Nil(t, domain.LookupCurrency("BTC"))
	assert.Nil(t, domain.LookupCurrency("xof"), "lookup is case sensitive, callers normalize first")
}

func TestSupportedCurrencies(t *testing.T) {
	currencies := domain.SupportedCurrencies()

	assert.Len(t, currencies, 6)
	assert.Equal(t, domain.DefaultCurrencyCode, currencies[0].Code)

	// Mutating the returned slice must not touch the registry.
	currencies[0].Symbol = "mutated"
	assert.Equal(t, "FCFA", domain.SupportedCurrencies()[0].Symbol)
}
