package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
)

// JournalLineRequest is one debit or credit line of an entry being created
// or updated. Exactly one of Debit/Credit should be positive.
type JournalLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// CreateJournalEntryRequest creates a new entry in PENDING status.
type CreateJournalEntryRequest struct {
	Reference    string               `json:"reference" binding:"required"`
	Date         time.Time            `json:"date" binding:"required"`
	Description  string               `json:"description" binding:"required"`
	CurrencyCode string               `json:"currencyCode" binding:"required,uppercase,len=3"`
	Lines        []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateJournalEntryRequest edits a PENDING entry. Nil fields are unchanged;
// a non-nil Lines slice replaces all lines.
type UpdateJournalEntryRequest struct {
	Reference   *string              `json:"reference,omitempty"`
	Date        *time.Time           `json:"date,omitempty"`
	Description *string              `json:"description,omitempty"`
	Lines       []JournalLineRequest `json:"lines,omitempty" binding:"omitempty,min=2,dive"`
}

// ListJournalEntriesParams filters and orders the entry listing.
type ListJournalEntriesParams struct {
	DateFrom *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Status   string     `form:"status" binding:"omitempty,oneof=all pending validated canceled"`
	Search   string     `form:"search"`
	SortBy   string     `form:"sortBy" binding:"omitempty,oneof=date reference amount"`
	SortDir  string     `form:"sortDir" binding:"omitempty,oneof=asc desc"`
}

// JournalLineResponse is one line of an entry.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// JournalEntryResponse describes an entry with optional lines.
type JournalEntryResponse struct {
	EntryID      string                `json:"entryID"`
	Reference    string                `json:"reference"`
	Date         time.Time             `json:"date"`
	Description  string                `json:"description"`
	CurrencyCode string                `json:"currencyCode"`
	Status       string                `json:"status"`
	Amount       decimal.Decimal       `json:"amount"`
	Balanced     bool                  `json:"balanced"`
	Lines        []JournalLineResponse `json:"lines,omitempty"`
	ValidatedBy  *string               `json:"validatedBy,omitempty"`
	ValidatedAt  *time.Time            `json:"validatedAt,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	CreatedBy    string                `json:"createdBy"`
}

// ListJournalEntriesResponse wraps the filtered listing.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// ToJournalLineResponse converts a domain JournalLine to its response DTO.
func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:      l.LineID,
		AccountCode: l.AccountCode,
		AccountName: l.AccountName,
		Debit:       l.Debit,
		Credit:      l.Credit,
		Description: l.Description,
	}
}

// ToJournalEntryResponse converts a domain JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:      e.EntryID,
		Reference:    e.Reference,
		Date:         e.EntryDate,
		Description:  e.Description,
		CurrencyCode: e.CurrencyCode,
		Status:       string(e.Status),
		Amount:       e.Amount(),
		Balanced:     e.IsBalanced(),
		ValidatedBy:  e.ValidatedBy,
		ValidatedAt:  e.ValidatedAt,
		CreatedAt:    e.CreatedAt,
		CreatedBy:    e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(e.Lines))
		for i := range e.Lines {
			resp.Lines[i] = ToJournalLineResponse(&e.Lines[i])
		}
	}
	return resp
}

// ToListJournalEntriesResponse converts domain entries to the listing DTO.
func ToListJournalEntriesResponse(entries []domain.JournalEntry) ListJournalEntriesResponse {
	res := ListJournalEntriesResponse{Entries: make([]JournalEntryResponse, len(entries))}
	for i := range entries {
		res.Entries[i] = ToJournalEntryResponse(&entries[i])
	}
	return res
}
