package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a journal entry.
type EntryStatus string

const (
	StatusPending   EntryStatus = "PENDING"
	StatusValidated EntryStatus = "VALIDATED"
	StatusCanceled  EntryStatus = "CANCELED"
)

// BalanceTolerance is the maximum |debits - credits| an entry may carry and
// still count as balanced. It absorbs rounding from float-based clients, not
// a real accounting tolerance.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// JournalEntry represents one double-entry transaction: a set of debit and
// credit lines against accounts, balanced once validated.
type JournalEntry struct {
	EntryID      string        `json:"entryID"`   // Primary Key (UUID)
	Reference    string        `json:"reference"` // User-visible code, e.g. "JRN-2025-0042"
	EntryDate    time.Time     `json:"entryDate"`
	Description  string        `json:"description"`
	CurrencyCode string        `json:"currencyCode"`
	Status       EntryStatus   `json:"status"`
	Lines        []JournalLine `json:"lines,omitempty"`
	ValidatedBy  *string       `json:"validatedBy,omitempty"`
	ValidatedAt  *time.Time    `json:"validatedAt,omitempty"`
	AuditFields
}

// JournalLine is a single debit or credit against one account.
type JournalLine struct {
	LineID      string          `json:"lineID"` // Primary Key (UUID)
	EntryID     string          `json:"entryID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`  // >= 0
	Credit      decimal.Decimal `json:"credit"` // >= 0
	Description string          `json:"description,omitempty"`
}

// TotalDebits sums the debit side of the entry.
func (e *JournalEntry) TotalDebits() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range e.Lines {
		sum = sum.Add(l.Debit)
	}
	return sum
}

// TotalCredits sums the credit side of the entry.
func (e *JournalEntry) TotalCredits() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range e.Lines {
		sum = sum.Add(l.Credit)
	}
	return sum
}

// IsBalanced reports whether debits and credits agree within BalanceTolerance.
func (e *JournalEntry) IsBalanced() bool {
	diff := e.TotalDebits().Sub(e.TotalCredits()).Abs()
	return diff.LessThan(BalanceTolerance)
}

// Amount is the economic value of the entry: the sum of its debit lines.
func (e *JournalEntry) Amount() decimal.Decimal {
	return e.TotalDebits()
}
