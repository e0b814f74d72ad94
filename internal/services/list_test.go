package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ticket/internal/domain"
	portsmocks "ticket/internal/ports/mocks"
)

func newListMocks(t *testing.T, sessions, branches []string, current string) (*portsmocks.MockVersionControl, *portsmocks.MockSessionHost) {
	t.Helper()
	vcs := portsmocks.NewMockVersionControl(t)
	vcs.EXPECT().ListBranches(mock.Anything, "#*").Return(branches, nil)
	vcs.EXPECT().CurrentBranch(mock.Anything).Return(current, nil)
	host := portsmocks.NewMockSessionHost(t)
	host.EXPECT().ListSessions(mock.Anything).Return(sessions, nil)
	return vcs, host
}

func summaryIDs(summaries []TicketSummary) []domain.TicketID {
	var out []domain.TicketID
	for _, s := range summaries {
		out = append(out, s.ID)
	}
	return out
}

func TestList_SortsTicketsIntoSections(t *testing.T) {
	vcs, host := newListMocks(t,
		[]string{"#7", "scratch", "#12"},
		[]string{"#3", "#7", "#12", "#20"},
		"#7",
	)
	journal := portsmocks.NewMockTicketRepository(t)
	journal.EXPECT().List(mock.Anything).Return([]domain.Ticket{
		{ID: 3, Status: domain.StatusOpen},
		{ID: 12, Status: domain.StatusBlocked, BlockReason: "needs design"},
		{ID: 20, Status: domain.StatusBlocked, BlockReason: "waiting on vendor"},
		{ID: 31, Status: domain.StatusOpen},
	}, nil)

	service := NewListService(vcs, host, journal)

	listing, err := service.List(context.Background(), ListAll)

	require.NoError(t, err)
	assert.Equal(t, []domain.TicketID{7, 12}, summaryIDs(listing.Active))
	assert.Equal(t, []domain.TicketID{3, 31}, summaryIDs(listing.Open))
	assert.Equal(t, []domain.TicketID{20}, summaryIDs(listing.Blocked))

	assert.True(t, listing.Active[0].CheckedOut)
	assert.False(t, listing.Active[1].CheckedOut)
	assert.Equal(t, "waiting on vendor", listing.Blocked[0].BlockReason)
	assert.True(t, listing.Open[0].HasBranch)
	assert.False(t, listing.Open[1].HasBranch)
}

func TestList_Filter(t *testing.T) {
	vcs, host := newListMocks(t, []string{"#1"}, []string{"#1", "#2"}, "master")

	service := NewListService(vcs, host, nil)

	listing, err := service.List(context.Background(), ListOpen)

	require.NoError(t, err)
	assert.Empty(t, listing.Active)
	assert.Empty(t, listing.Blocked)
	assert.Equal(t, []domain.TicketID{2}, summaryIDs(listing.Open))
}

func TestList_JournalErrorIsNotFatal(t *testing.T) {
	vcs, host := newListMocks(t, nil, []string{"#4"}, "#4")
	journal := portsmocks.NewMockTicketRepository(t)
	journal.EXPECT().List(mock.Anything).Return(nil, errors.New("database is locked"))

	service := NewListService(vcs, host, journal)

	listing, err := service.List(context.Background(), ListAll)

	require.NoError(t, err)
	require.Len(t, listing.Open, 1)
	assert.True(t, listing.Open[0].CheckedOut)
}

func TestList_SessionHostErrorFails(t *testing.T) {
	vcs := portsmocks.NewMockVersionControl(t)
	vcs.EXPECT().ListBranches(mock.Anything, "#*").Return(nil, nil).Maybe()
	vcs.EXPECT().CurrentBranch(mock.Anything).Return("master", nil).Maybe()
	host := portsmocks.NewMockSessionHost(t)
	host.EXPECT().ListSessions(mock.Anything).Return(nil, &domain.CommandError{Command: "tmux list-sessions", ExitCode: 2})

	service := NewListService(vcs, host, nil)

	_, err := service.List(context.Background(), ListAll)

	require.Error(t, err)
	assert.Equal(t, 2, domain.ExitCode(err))
}
