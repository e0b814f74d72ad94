package storage

import "ticket/internal/domain"

func ticketModelToDomain(m TicketModel) domain.Ticket {
	return domain.Ticket{
		BlockReason:  m.BlockReason,
		ID:           domain.TicketID(m.ID),
		LastActiveAt: m.LastActiveAt,
		StartedAt:    m.StartedAt,
		Status:       domain.TicketStatus(m.Status),
		StopCount:    m.StopCount,
	}
}
