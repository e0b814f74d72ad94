package ports

import (
	"context"

	"ticket/internal/domain"
)

// TicketReader reads journal entries
type TicketReader interface {
	Get(ctx context.Context, id domain.TicketID) (*domain.Ticket, error)
	List(ctx context.Context) ([]domain.Ticket, error)
}

// TicketRecorder records lifecycle transitions
type TicketRecorder interface {
	Delete(ctx context.Context, id domain.TicketID) error
	MarkParked(ctx context.Context, id domain.TicketID) error
	MarkStarted(ctx context.Context, id domain.TicketID) error
}

// TicketStatusUpdater changes the journal status of a ticket
type TicketStatusUpdater interface {
	ClearBlocked(ctx context.Context, id domain.TicketID) error
	SetBlocked(ctx context.Context, id domain.TicketID, reason string) error
}

// TicketRepository is the composite interface
type TicketRepository interface {
	TicketReader
	TicketRecorder
	TicketStatusUpdater
	Close() error
}
