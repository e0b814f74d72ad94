package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ticket/internal/domain"
	"ticket/internal/logging"
	"ticket/internal/ports"
)

// ErrJournalUnavailable is returned when the ticket journal could not be opened
var ErrJournalUnavailable = errors.New("ticket journal is unavailable")

// TicketStatusService marks tickets as blocked or open in the journal
type TicketStatusService struct {
	journal ports.TicketRepository
}

// NewTicketStatusService creates a new TicketStatusService. journal may be nil,
// in which case every operation fails with ErrJournalUnavailable.
func NewTicketStatusService(journal ports.TicketRepository) *TicketStatusService {
	return &TicketStatusService{journal: journal}
}

// Block marks a ticket as blocked, creating its journal entry if needed
func (s *TicketStatusService) Block(ctx context.Context, id domain.TicketID, reason string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if s.journal == nil {
		return ErrJournalUnavailable
	}

	reason = strings.TrimSpace(reason)
	logging.Logger.Info("Blocking ticket", "ticket", id.BranchName(), "reason", reason)
	if err := s.journal.SetBlocked(ctx, id, reason); err != nil {
		return fmt.Errorf("failed to block %s: %w", id, err)
	}
	return nil
}

// Unblock marks a blocked ticket as open again
func (s *TicketStatusService) Unblock(ctx context.Context, id domain.TicketID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if s.journal == nil {
		return ErrJournalUnavailable
	}

	logging.Logger.Info("Unblocking ticket", "ticket", id.BranchName())
	if err := s.journal.ClearBlocked(ctx, id); err != nil {
		return fmt.Errorf("failed to unblock %s: %w", id, err)
	}
	return nil
}

// Get returns the journal entry of a ticket
func (s *TicketStatusService) Get(ctx context.Context, id domain.TicketID) (*domain.Ticket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if s.journal == nil {
		return nil, ErrJournalUnavailable
	}
	return s.journal.Get(ctx, id)
}
