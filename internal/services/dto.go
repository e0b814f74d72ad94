package services

import "ticket/internal/domain"

// LifecycleOptions configures a LifecycleService
type LifecycleOptions struct {
	// Getwd reports the operator's directory; defaults to os.Getwd
	Getwd func() (string, error)
	Trunk string
	// Workspace is the working copy root start must be run from.
	// Empty disables the check.
	Workspace string
}

// KillResult summarizes what kill removed
type KillResult struct {
	DroppedStashes int
	SessionKilled  bool
	Ticket         domain.TicketID
}

// ListFilter selects the sections of a ticket listing
type ListFilter string

const (
	ListActive  ListFilter = "active"
	ListAll     ListFilter = ""
	ListBlocked ListFilter = "blocked"
	ListOpen    ListFilter = "open"
)

// Includes reports whether section is part of the listing
func (f ListFilter) Includes(section ListFilter) bool {
	return f == ListAll || f == section
}

// TicketSummary is one line of a ticket listing
type TicketSummary struct {
	BlockReason   string
	CheckedOut    bool
	HasBranch     bool
	ID            domain.TicketID
	SessionActive bool
	Status        domain.TicketStatus
}

// TicketListing is the result of ListService.List
type TicketListing struct {
	Active  []TicketSummary
	Blocked []TicketSummary
	Filter  ListFilter
	Open    []TicketSummary
}

// SetupOptions configures SetupService.Setup
type SetupOptions struct {
	// Force replaces an existing backup of the workspace
	Force     bool
	Upstream  string
	Workspace string
}
