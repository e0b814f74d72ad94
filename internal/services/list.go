package services

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"ticket/internal/domain"
	"ticket/internal/logging"
	"ticket/internal/ports"
)

// ListService reports the tickets known to the working copy, the session
// host and the journal
type ListService struct {
	branches ports.BranchReader
	journal  ports.TicketReader
	sessions ports.SessionLister
}

// NewListService creates a new ListService. journal may be nil.
func NewListService(branches ports.BranchReader, sessions ports.SessionLister, journal ports.TicketReader) *ListService {
	return &ListService{
		branches: branches,
		journal:  journal,
		sessions: sessions,
	}
}

// List gathers every source concurrently and sorts tickets into sections.
// Each ticket lands in exactly one section: a running session makes it
// active, otherwise a blocked journal entry makes it blocked, otherwise it
// is open.
func (s *ListService) List(ctx context.Context, filter ListFilter) (*TicketListing, error) {
	var (
		branches []string
		current  string
		sessions []string
		tickets  []domain.Ticket
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		sessions, err = s.sessions.ListSessions(gctx)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		branches, err = s.branches.ListBranches(gctx, domain.BranchPrefix+"*")
		if err != nil {
			return fmt.Errorf("failed to list ticket branches: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		current, err = s.branches.CurrentBranch(gctx)
		if err != nil {
			return fmt.Errorf("failed to read current branch: %w", err)
		}
		return nil
	})

	if s.journal != nil {
		g.Go(func() error {
			var err error
			tickets, err = s.journal.List(gctx)
			if err != nil {
				// Branches and sessions are still worth showing
				logging.Logger.Warn("Failed to read ticket journal", "error", err)
				tickets = nil
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := make(map[domain.TicketID]*TicketSummary)
	summary := func(id domain.TicketID) *TicketSummary {
		if sum, ok := summaries[id]; ok {
			return sum
		}
		sum := &TicketSummary{ID: id, Status: domain.StatusOpen}
		summaries[id] = sum
		return sum
	}

	for _, name := range sessions {
		if id, ok := domain.ParseBranchName(name); ok {
			summary(id).SessionActive = true
		}
	}
	for _, branch := range branches {
		if id, ok := domain.ParseBranchName(branch); ok {
			summary(id).HasBranch = true
		}
	}
	for _, ticket := range tickets {
		sum := summary(ticket.ID)
		sum.Status = ticket.Status
		sum.BlockReason = ticket.BlockReason
	}
	if id, ok := domain.ParseBranchName(current); ok {
		summary(id).CheckedOut = true
	}

	ids := make([]domain.TicketID, 0, len(summaries))
	for id := range summaries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	listing := &TicketListing{Filter: filter}
	for _, id := range ids {
		sum := *summaries[id]
		switch {
		case sum.SessionActive:
			if filter.Includes(ListActive) {
				listing.Active = append(listing.Active, sum)
			}
		case sum.Status == domain.StatusBlocked:
			if filter.Includes(ListBlocked) {
				listing.Blocked = append(listing.Blocked, sum)
			}
		default:
			if filter.Includes(ListOpen) {
				listing.Open = append(listing.Open, sum)
			}
		}
	}

	logging.Logger.Debug("Listed tickets",
		"active", len(listing.Active),
		"blocked", len(listing.Blocked),
		"filter", string(filter),
		"open", len(listing.Open),
	)

	return listing, nil
}
