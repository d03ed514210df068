package utils

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
)

// FormatOptions overrides the registry defaults for one formatting call.
// Nil fields keep the currency's own convention.
type FormatOptions struct {
	Decimals   *int
	ShowSymbol *bool
	Position   *domain.SymbolPosition
}

// localeSeparators returns the grouping and decimal separators for a locale
// tag. French locales group with a non-breaking space and use a decimal
// comma; everything else gets the en-US convention.
func localeSeparators(locale string) (group, dec string) {
	if strings.HasPrefix(locale, "fr") {
		return " ", ","
	}
	return ",", "."
}

// FormatWithCurrency renders an amount with grouped digits, the currency's
// decimal count and its symbol placement.
// Example: 1234567.5 with XOF returns "1 234 568 FCFA" (non-breaking spaces);
// the same amount with USD returns "$1,234,567.50".
func FormatWithCurrency(amount decimal.Decimal, currency domain.Currency, opts FormatOptions) string {
	decimals := currency.Decimals
	if opts.Decimals != nil && *opts.Decimals >= 0 {
		decimals = *opts.Decimals
	}
	position := currency.Position
	if opts.Position != nil {
		position = *opts.Position
	}
	showSymbol := true
	if opts.ShowSymbol != nil {
		showSymbol = *opts.ShowSymbol
	}

	group, dec := localeSeparators(currency.Locale)
	number := groupDigits(amount.StringFixed(int32(decimals)), group, dec)

	if !showSymbol || currency.Symbol == "" {
		return number
	}
	if position == domain.SymbolBefore {
		return currency.Symbol + number
	}
	return number + " " + currency.Symbol
}

// groupDigits rewrites a plain fixed-point string ("-1234567.89") with
// thousands grouping and the locale decimal separator.
func groupDigits(fixed, group, dec string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart = fixed[:i]
		fracPart = fixed[i+1:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(group)
		}
		b.WriteRune(r)
	}

	out := sign + b.String()
	if fracPart != "" {
		out += dec + fracPart
	}
	return out
}

// FormatWithPrecision rounds an amount to the given precision and returns the
// bare numeric string. This is the fallback path when no registry entry is
// available for a code.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
