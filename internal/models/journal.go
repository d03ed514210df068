package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry maps the accounting_entries table.
type JournalEntry struct {
	EntryID      string
	Reference    string
	EntryDate    time.Time
	Description  string
	CurrencyCode string
	Status       string
	ValidatedBy  *string
	ValidatedAt  *time.Time
	AuditFields
}

// JournalLine maps the accounting_entry_lines table.
type JournalLine struct {
	LineID      string
	EntryID     string
	AccountCode string
	AccountName string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
}
