package domain

// SymbolPosition says on which side of the formatted amount the currency symbol goes.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "BEFORE"
	SymbolAfter  SymbolPosition = "AFTER"
)

// Currency describes one supported currency in the static registry.
type Currency struct {
	Code     string         `json:"code"`   // e.g. "XOF"
	Name     string         `json:"name"`   // e.g. "Franc CFA (BCEAO)"
	Symbol   string         `json:"symbol"` // e.g. "FCFA"
	Decimals int            `json:"decimals"`
	Position SymbolPosition `json:"position"`
	Locale   string         `json:"locale"` // e.g. "fr-FR"
}

// DefaultCurrencyCode is used when no preference has been stored yet or the
// stored value cannot be read.
const DefaultCurrencyCode = "XOF"

// SelectedCurrencyKey is the app-settings key holding the user's currency preference.
const SelectedCurrencyKey = "settings.currency"

// currencyRegistry is the static table of supported currencies. Exactly one
// entry per code; immutable after process start.
var currencyRegistry = []Currency{
	{Code: "XOF", Name: "Franc CFA (BCEAO)", Symbol: "FCFA", Decimals: 0, Position: SymbolAfter, Locale: "fr-FR"},
	{Code: "CDF", Name: "Franc congolais", Symbol: "FC", Decimals: 2, Position: SymbolAfter, Locale: "fr-CD"},
	{Code: "USD", Name: "US Dollar", Symbol: "$", Decimals: 2, Position: SymbolBefore, Locale: "en-US"},
	{Code: "EUR", Name: "Euro", Symbol: "€", Decimals: 2, Position: SymbolAfter, Locale: "fr-FR"},
	{Code: "NGN", Name: "Nigerian Naira", Symbol: "₦", Decimals: 2, Position: SymbolBefore, Locale: "en-NG"},
	{Code: "GHS", Name: "Ghanaian Cedi", Symbol: "GH₵", Decimals: 2, Position: SymbolBefore, Locale: "en-GH"},
}

var currencyByCode = func() map[string]Currency {
	m := make(map[string]Currency, len(currencyRegistry))
	for _, c := range currencyRegistry {
		m[c.Code] = c
	}
	return m
}()

// LookupCurrency returns the registry entry for code, or nil if unsupported.
func LookupCurrency(code string) *Currency {
	if c, ok := currencyByCode[code]; ok {
		return &c
	}
	return nil
}

// SupportedCurrencies returns the full registry in declaration order.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(currencyRegistry))
	copy(out, currencyRegistry)
	return out
}
