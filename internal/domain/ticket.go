package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BranchPrefix is prepended to a ticket ID to form its branch and session name.
// Existing repositories depend on this exact form, so it is not configurable.
const BranchPrefix = "#"

// TicketID identifies a unit of work
type TicketID int

// ParseTicketID parses a decimal ticket ID as typed by the operator
func ParseTicketID(s string) (TicketID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTicketID, s)
	}
	id := TicketID(n)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate reports whether the ID is a positive integer
func (id TicketID) Validate() error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTicketID, int(id))
	}
	return nil
}

// BranchName returns the branch name for the ticket, e.g. "#42"
func (id TicketID) BranchName() string {
	return BranchPrefix + strconv.Itoa(int(id))
}

// SessionName returns the session host name for the ticket.
// It is identical to the branch name so resume can map one to the other.
func (id TicketID) SessionName() string {
	return id.BranchName()
}

func (id TicketID) String() string {
	return id.BranchName()
}

// ParseBranchName extracts the ticket ID from a ticket branch name.
// Returns false for anything that is not exactly "#" followed by a positive
// decimal number without leading zeros.
func ParseBranchName(branch string) (TicketID, bool) {
	digits, ok := strings.CutPrefix(branch, BranchPrefix)
	if !ok || digits == "" || digits[0] == '0' {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return TicketID(n), true
}

// TicketStatus is the journal status of a ticket
type TicketStatus string

const (
	StatusBlocked TicketStatus = "blocked"
	StatusOpen    TicketStatus = "open"
)

// Ticket is the journal view of a ticket. The journal is advisory: the
// lifecycle never reads it to decide which VCS commands to run.
type Ticket struct {
	BlockReason  string
	ID           TicketID
	LastActiveAt *time.Time
	StartedAt    time.Time
	Status       TicketStatus
	StopCount    int
}

// IsBlocked reports whether the ticket is marked blocked
func (t Ticket) IsBlocked() bool {
	return t.Status == StatusBlocked
}
