package mapping

import (
	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	"github.com/ledgerly/ledgerly_backend/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to its model.
// Lines are mapped separately because they live in their own table.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:      d.EntryID,
		Reference:    d.Reference,
		EntryDate:    d.EntryDate,
		Description:  d.Description,
		CurrencyCode: d.CurrencyCode,
		Status:       string(d.Status),
		ValidatedBy:  d.ValidatedBy,
		ValidatedAt:  d.ValidatedAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry header to the domain type.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:      m.EntryID,
		Reference:    m.Reference,
		EntryDate:    m.EntryDate,
		Description:  m.Description,
		CurrencyCode: m.CurrencyCode,
		Status:       domain.EntryStatus(m.Status),
		ValidatedBy:  m.ValidatedBy,
		ValidatedAt:  m.ValidatedAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to its model.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		AccountCode: d.AccountCode,
		AccountName: d.AccountName,
		Debit:       d.Debit,
		Credit:      d.Credit,
		Description: d.Description,
	}
}

// ToDomainJournalLine converts a model JournalLine to the domain type.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountCode: m.AccountCode,
		AccountName: m.AccountName,
		Debit:       m.Debit,
		Credit:      m.Credit,
		Description: m.Description,
	}
}

// ToDomainJournalLineSlice converts a slice of model lines to domain lines.
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	out := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		out[i] = ToDomainJournalLine(m)
	}
	return out
}
