package tmux

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket/internal/domain"
	portsmocks "ticket/internal/ports/mocks"
)

func TestClient_ListSessions(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().
		Run(context.Background(), domain.NewCommand("tmux", "list-sessions", "-F", "#{session_name}").AllowExitCodes(1)).
		Return(domain.CommandResult{Output: "#7\nscratch\n#12\n"}, nil)

	sessions, err := NewClient(runner).ListSessions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"#7", "scratch", "#12"}, sessions)
}

func TestClient_ListSessions_NoServer(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(context.Background(), domain.NewCommand("tmux", "list-sessions", "-F", "#{session_name}").AllowExitCodes(1)).
		Return(domain.CommandResult{ExitCode: 1, Output: "no server running on /tmp/tmux-1000/default\n"}, nil)

	sessions, err := NewClient(runner).ListSessions(context.Background())

	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestClient_KillSession(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(context.Background(), domain.NewCommand("tmux", "kill-session", "-t", "=#7").AllowExitCodes(1)).
		Return(domain.CommandResult{}, nil)

	require.NoError(t, NewClient(runner).KillSession(context.Background(), "#7"))
}

func TestClient_KillSession_NotRunning(t *testing.T) {
	runner := portsmocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(context.Background(), domain.NewCommand("tmux", "kill-session", "-t", "=#7").AllowExitCodes(1)).
		Return(domain.CommandResult{ExitCode: 1, Output: "can't find session: #7\n"}, nil)

	err := NewClient(runner).KillSession(context.Background(), "#7")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestClient_AttachCommand(t *testing.T) {
	client := NewClient(portsmocks.NewMockCommandRunner(t))

	assert.Equal(t,
		domain.NewCommand("tmux", "new-session", "-A", "-s", "#7"),
		client.AttachCommand(domain.Attachment{Session: "#7", Create: true}))
	assert.Equal(t,
		domain.NewCommand("tmux", "attach-session", "-t", "=#7"),
		client.AttachCommand(domain.Attachment{Session: "#7"}))
}

func TestClient_Exec_RequiresSession(t *testing.T) {
	err := NewClient(portsmocks.NewMockCommandRunner(t)).Exec(domain.Attachment{})
	assert.Error(t, err)
}
