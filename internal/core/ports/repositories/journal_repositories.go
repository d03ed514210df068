package repositories

import (
	"context"
	"time"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
)

// JournalEntryFilter narrows and orders a ListEntries query. Zero values
// mean "no constraint".
type JournalEntryFilter struct {
	DateFrom *time.Time // inclusive
	DateTo   *time.Time // inclusive
	Status   domain.EntryStatus
	Search   string // case-insensitive substring over reference/description
	SortBy   string // "date" | "reference" | "amount"
	SortDesc bool
}

// JournalRepository persists journal entries and their lines.
type JournalRepository interface {
	// SaveEntry inserts the entry header and all its lines in one transaction.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)
	// UpdateEntry rewrites the header and replaces the lines in one transaction.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error
	// UpdateEntryStatus records a status transition with its audit stamps.
	UpdateEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus, validatedBy *string, validatedAt *time.Time, updaterUserID string, now time.Time) error
	DeleteEntry(ctx context.Context, entryID string) error
	ListEntries(ctx context.Context, filter JournalEntryFilter) ([]domain.JournalEntry, error)
	// CountLinesByAccountCode backs the account deletion guard.
	CountLinesByAccountCode(ctx context.Context, accountCode string) (int64, error)
}
