package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket/internal/adapters/git"
	"ticket/internal/adapters/shell"
	"ticket/internal/domain"
	"ticket/internal/testutil"
)

func newGitLifecycle(t *testing.T) (*testutil.GitRepo, *LifecycleService) {
	t.Helper()
	fixture := testutil.NewGitRepo(t, "master")
	repo := git.NewCLIRepository(shell.NewRunner(fixture.Dir), "master", git.SyncPull)
	service := NewLifecycleService(repo, newFakeSessions(), nil, LifecycleOptions{
		Getwd:     func() (string, error) { return fixture.Dir, nil },
		Trunk:     "master",
		Workspace: fixture.Dir,
	})
	return fixture, service
}

func TestLifecycle_SwitchingTicketsKeepsWorkApart(t *testing.T) {
	fixture, service := newGitLifecycle(t)
	ctx := context.Background()

	_, err := service.Start(ctx, 7)
	require.NoError(t, err)
	fixture.WriteFile("README.md", "# seven\n")
	fixture.WriteFile("seven.txt", "7\n")

	_, err = service.Start(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, fixture.Status(), "#9 starts from a clean trunk")
	assert.Equal(t, "# Test Repo\n", fixture.ReadFile("README.md"))
	fixture.WriteFile("nine.txt", "9\n")

	attachment, err := service.Start(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, &domain.Attachment{Create: true, Session: "#7"}, attachment)

	assert.Equal(t, "# seven\n", fixture.ReadFile("README.md"))
	assert.Equal(t, "7\n", fixture.ReadFile("seven.txt"))
	assert.Empty(t, fixture.ReadFile("nine.txt"))
	assert.ElementsMatch(t, []string{" M README.md", "?? seven.txt"}, fixture.Status())
	require.Len(t, fixture.StashSubjects(), 1)
	assert.Contains(t, fixture.StashSubjects()[0], "WIP on #9:")
}

func TestLifecycle_ResumeAfterStop(t *testing.T) {
	fixture, service := newGitLifecycle(t)
	ctx := context.Background()

	_, err := service.Start(ctx, 12)
	require.NoError(t, err)

	attachment, err := service.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#12", attachment.Session)
	assert.False(t, attachment.Create)

	fixture.WriteFile("work.txt", "wip\n")
	require.NoError(t, service.Stop(ctx))
	assert.Empty(t, fixture.Status())
	assert.Equal(t, "master", fixture.Git("rev-parse", "--abbrev-ref", "HEAD"))

	_, err = service.Resume(ctx)
	assert.ErrorIs(t, err, domain.ErrNoActiveTicket)
}

func TestLifecycle_KillRemovesBranchAndStashes(t *testing.T) {
	fixture, service := newGitLifecycle(t)
	ctx := context.Background()

	_, err := service.Start(ctx, 3)
	require.NoError(t, err)
	fixture.WriteFile("three.txt", "3\n")
	_, err = service.Start(ctx, 7)
	require.NoError(t, err)
	fixture.WriteFile("a.txt", "a\n")
	require.NoError(t, service.Stop(ctx))

	// A second #7 stash, as left behind by a failed restore
	fixture.Git("checkout", "--quiet", "#7")
	fixture.WriteFile("b.txt", "b\n")
	fixture.Git("add", "-A")
	fixture.Git("stash", "push", "--quiet")
	fixture.Git("checkout", "--quiet", "master")

	result, err := service.Kill(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, result.DroppedStashes)

	assert.Empty(t, fixture.Git("branch", "--list", "#7"))
	require.Len(t, fixture.StashSubjects(), 1)
	assert.Contains(t, fixture.StashSubjects()[0], "WIP on #3:")

	_, err = service.Start(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "3\n", fixture.ReadFile("three.txt"))
}
