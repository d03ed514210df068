package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerly/ledgerly_backend/internal/apperrors"
	"github.com/ledgerly/ledgerly_backend/internal/core/domain"
	portsrepo "github.com/ledgerly/ledgerly_backend/internal/core/ports/repositories"
	portssvc "github.com/ledgerly/ledgerly_backend/internal/core/ports/services"
	"github.com/ledgerly/ledgerly_backend/internal/dto"
)

var (
	// ErrUnbalancedEntry rejects validation when debits and credits differ
	// by more than the balance tolerance.
	ErrUnbalancedEntry = errors.New("journal entry debits and credits do not balance")
	// ErrEntryNotPending rejects any mutation of a VALIDATED or CANCELED entry.
	ErrEntryNotPending = errors.New("journal entry is not pending")
	// ErrEntryMinLines requires at least two lines per entry.
	ErrEntryMinLines = errors.New("journal entry must have at least two lines")
	// ErrLineAmounts rejects a line whose debit/credit amounts are invalid.
	ErrLineAmounts = errors.New("journal line must carry a non-negative debit or credit, not both")
	// ErrAccountNotFound surfaces a line referencing an unknown account code.
	ErrAccountNotFound = errors.New("account not found")
)

// journalService implements journal entry lifecycle and listing.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildLines validates line requests and resolves account names. A line may
// carry a debit or a credit, not both, and not neither.
func (s *journalService) buildLines(ctx context.Context, entryID string, reqs []dto.JournalLineRequest) ([]domain.JournalLine, error) {
	lines := make([]domain.JournalLine, len(reqs))
	for i, lr := range reqs {
		if lr.Debit.IsNegative() || lr.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: negative amount on account %s", ErrLineAmounts, lr.AccountCode)
		}
		debitSet := lr.Debit.IsPositive()
		creditSet := lr.Credit.IsPositive()
		if debitSet == creditSet {
			return nil, fmt.Errorf("%w: account %s", ErrLineAmounts, lr.AccountCode)
		}

		account, err := s.accountRepo.FindAccountByCode(ctx, lr.AccountCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: code %s", ErrAccountNotFound, lr.AccountCode)
			}
			return nil, fmt.Errorf("failed to resolve account %s: %w", lr.AccountCode, err)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, lr.AccountCode)
		}

		lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountCode: lr.AccountCode,
			AccountName: account.Name,
			Debit:       lr.Debit,
			Credit:      lr.Credit,
			Description: lr.Description,
		}
	}
	return lines, nil
}

// CreateEntry stores a new entry in PENDING status. Balance is not required
// yet; it is enforced at validation time.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	if len(req.Lines) < 2 {
		return nil, ErrEntryMinLines
	}
	if domain.LookupCurrency(req.CurrencyCode) == nil {
		return nil, fmt.Errorf("%w: currency code '%s' not supported", apperrors.ErrValidation, req.CurrencyCode)
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	lines, err := s.buildLines(ctx, entryID, req.Lines)
	if err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		EntryID:      entryID,
		Reference:    req.Reference,
		EntryDate:    req.Date,
		Description:  req.Description,
		CurrencyCode: req.CurrencyCode,
		Status:       domain.StatusPending,
		Lines:        lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("reference", req.Reference))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry created", slog.String("entry_id", entryID), slog.String("reference", req.Reference))
	return &entry, nil
}

// GetEntryByID fetches an entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch lines for journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to fetch lines for entry %s: %w", entryID, apperrors.ErrInternal)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries returns entries matching the filter, ordered per the sort
// parameters (date descending by default). Lines are populated so amount
// sums are available to callers.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, error) {
	filter := portsrepo.JournalEntryFilter{
		DateFrom: params.DateFrom,
		DateTo:   params.DateTo,
		Search:   params.Search,
		SortBy:   params.SortBy,
		SortDesc: params.SortDir != "asc",
	}
	switch params.Status {
	case "", "all":
		// no status constraint
	case "pending":
		filter.Status = domain.StatusPending
	case "validated":
		filter.Status = domain.StatusValidated
	case "canceled":
		filter.Status = domain.StatusCanceled
	default:
		return nil, fmt.Errorf("%w: unknown status filter '%s'", apperrors.ErrValidation, params.Status)
	}
	if filter.SortBy == "" {
		filter.SortBy = "date"
	}

	entries, err := s.journalRepo.ListEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

// UpdateEntry edits a PENDING entry. A provided line set replaces all lines.
func (s *journalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest, updaterUserID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	if entry.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: status is %s", ErrEntryNotPending, entry.Status)
	}

	if req.Reference != nil {
		entry.Reference = *req.Reference
	}
	if req.Date != nil {
		entry.EntryDate = *req.Date
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}

	lines := entry.Lines
	if req.Lines != nil {
		if len(req.Lines) < 2 {
			return nil, ErrEntryMinLines
		}
		lines, err = s.buildLines(ctx, entryID, req.Lines)
		if err != nil {
			return nil, err
		}
	} else {
		lines, err = s.journalRepo.FindLinesByEntryID(ctx, entryID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch lines for entry %s: %w", entryID, err)
		}
	}

	now := time.Now().UTC()
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = updaterUserID
	entry.Lines = lines

	if err := s.journalRepo.UpdateEntry(ctx, *entry, lines); err != nil {
		s.LogError(ctx, err, "Failed to update journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

// ValidateEntry transitions PENDING -> VALIDATED. The entry must balance
// within the tolerance; VALIDATED is terminal.
func (s *journalService) ValidateEntry(ctx context.Context, entryID string, validatorUserID string) (*domain.JournalEntry, error) {
	entry, err := s.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: status is %s", ErrEntryNotPending, entry.Status)
	}
	if !entry.IsBalanced() {
		return nil, fmt.Errorf("%w: debits %s, credits %s",
			ErrUnbalancedEntry, entry.TotalDebits().String(), entry.TotalCredits().String())
	}

	now := time.Now().UTC()
	if err := s.journalRepo.UpdateEntryStatus(ctx, entryID, domain.StatusValidated, &validatorUserID, &now, validatorUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to validate journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to validate journal entry: %w", err)
	}

	entry.Status = domain.StatusValidated
	entry.ValidatedBy = &validatorUserID
	entry.ValidatedAt = &now
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = validatorUserID

	s.LogInfo(ctx, "Journal entry validated", slog.String("entry_id", entryID), slog.String("amount", entry.Amount().String()))
	return entry, nil
}

// CancelEntry transitions PENDING -> CANCELED. CANCELED is terminal.
func (s *journalService) CancelEntry(ctx context.Context, entryID string, updaterUserID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	if entry.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: status is %s", ErrEntryNotPending, entry.Status)
	}

	now := time.Now().UTC()
	if err := s.journalRepo.UpdateEntryStatus(ctx, entryID, domain.StatusCanceled, nil, nil, updaterUserID, now); err != nil {
		s.LogError(ctx, err, "Failed to cancel journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to cancel journal entry: %w", err)
	}

	entry.Status = domain.StatusCanceled
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = updaterUserID

	s.LogInfo(ctx, "Journal entry canceled", slog.String("entry_id", entryID))
	return entry, nil
}

// DeleteEntry removes a PENDING entry and its lines. Validated entries are
// immutable for audit integrity and cannot be deleted through this path.
func (s *journalService) DeleteEntry(ctx context.Context, entryID string) error {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}
	if entry.Status != domain.StatusPending {
		return fmt.Errorf("%w: status is %s", ErrEntryNotPending, entry.Status)
	}

	if err := s.journalRepo.DeleteEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete journal entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry deleted", slog.String("entry_id", entryID))
	return nil
}
