package services

import (
	"context"

	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
)

// JournalSvcFacade exposes journal entry lifecycle and listing.
type JournalSvcFacade interface {
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, error)
	// UpdateEntry is only allowed while the entry is PENDING.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest, updaterUserID string) (*domain.JournalEntry, error)
	// ValidateEntry requires PENDING status and a balanced entry.
	ValidateEntry(ctx context.Context, entryID string, validatorUserID string) (*domain.JournalEntry, error)
	// CancelEntry and DeleteEntry are only allowed while PENDING.
	CancelEntry(ctx context.Context, entryID string, updaterUserID string) (*domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
}
