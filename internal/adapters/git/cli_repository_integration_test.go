package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket/internal/adapters/shell"
	"ticket/internal/testutil"
)

func TestCLIRepository_StashRoundTrip(t *testing.T) {
	fixture := testutil.NewGitRepo(t, "master")
	repo := NewCLIRepository(shell.NewRunner(fixture.Dir), "master", SyncPull)
	ctx := context.Background()

	require.NoError(t, repo.CreateBranch(ctx, "#7", "master"))
	fixture.WriteFile("README.md", "# changed on #7\n")
	fixture.WriteFile("new.txt", "brand new\n")

	require.NoError(t, repo.StageAll(ctx))
	require.NoError(t, repo.PushStash(ctx))
	require.NoError(t, repo.Checkout(ctx, "master"))
	require.NoError(t, repo.SyncTrunk(ctx))

	assert.Empty(t, fixture.Status())
	branch, err := repo.CurrentBranch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "master", branch)

	stashes, err := repo.ListStashes(ctx)
	require.NoError(t, err)
	require.Len(t, stashes, 1)
	assert.Equal(t, "#7", stashes[0].Branch)
	assert.Equal(t, "stash@{0}", stashes[0].Ref)

	require.NoError(t, repo.Checkout(ctx, "#7"))
	require.NoError(t, repo.PopStash(ctx, stashes[0].Ref))
	require.NoError(t, repo.UnstageAll(ctx))

	assert.Equal(t, "# changed on #7\n", fixture.ReadFile("README.md"))
	assert.Equal(t, "brand new\n", fixture.ReadFile("new.txt"))
	assert.ElementsMatch(t, []string{" M README.md", "?? new.txt"}, fixture.Status())

	stashes, err = repo.ListStashes(ctx)
	require.NoError(t, err)
	assert.Empty(t, stashes)
}

func TestCLIRepository_PushStash_CleanTree(t *testing.T) {
	fixture := testutil.NewGitRepo(t, "master")
	repo := NewCLIRepository(shell.NewRunner(fixture.Dir), "master", SyncNone)

	require.NoError(t, repo.StageAll(context.Background()))
	require.NoError(t, repo.PushStash(context.Background()))

	assert.Empty(t, fixture.StashSubjects())
}

func TestCLIRepository_BranchLifecycle(t *testing.T) {
	fixture := testutil.NewGitRepo(t, "master")
	repo := NewCLIRepository(shell.NewRunner(fixture.Dir), "master", SyncNone)
	ctx := context.Background()

	exists, err := repo.BranchExists(ctx, "#3")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.CreateBranch(ctx, "#3", "master"))
	require.NoError(t, repo.Checkout(ctx, "master"))

	branches, err := repo.ListBranches(ctx, "#*")
	require.NoError(t, err)
	assert.Equal(t, []string{"#3"}, branches)

	require.NoError(t, repo.ForceDeleteBranch(ctx, "#3"))
	exists, err = repo.BranchExists(ctx, "#3")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Error(t, repo.ForceDeleteBranch(ctx, "#3"), "deleting a missing branch must fail")
}
