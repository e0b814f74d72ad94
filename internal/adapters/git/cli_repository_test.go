package git

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket/internal/domain"
	portsmocks "ticket/internal/ports/mocks"
)

func gitCmd(args ...string) domain.Command {
	return domain.NewCommand("git", args...)
}

func newTestRepository(t *testing.T, sync SyncStrategy) (*CLIRepository, *portsmocks.MockCommandRunner) {
	runner := portsmocks.NewMockCommandRunner(t)
	return NewCLIRepository(runner, "master", sync), runner
}

func TestCLIRepository_Checkout(t *testing.T) {
	repo, runner := newTestRepository(t, SyncNone)
	runner.EXPECT().Run(context.Background(), gitCmd("checkout", "#7", "--")).
		Return(domain.CommandResult{}, nil)

	require.NoError(t, repo.Checkout(context.Background(), "#7"))
}

func TestCLIRepository_CreateBranch(t *testing.T) {
	repo, runner := newTestRepository(t, SyncNone)
	runner.EXPECT().Run(context.Background(), gitCmd("checkout", "-b", "#7", "master", "--")).
		Return(domain.CommandResult{}, nil)

	require.NoError(t, repo.CreateBranch(context.Background(), "#7", "master"))
}

func TestCLIRepository_BranchExists(t *testing.T) {
	cmd := gitCmd("rev-parse", "--verify", "--quiet", "refs/heads/#7").AllowExitCodes(1)

	t.Run("exists", func(t *testing.T) {
		repo, runner := newTestRepository(t, SyncNone)
		runner.EXPECT().Run(context.Background(), cmd).Return(domain.CommandResult{Output: "abc\n"}, nil)

		exists, err := repo.BranchExists(context.Background(), "#7")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing", func(t *testing.T) {
		repo, runner := newTestRepository(t, SyncNone)
		runner.EXPECT().Run(context.Background(), cmd).Return(domain.CommandResult{ExitCode: 1}, nil)

		exists, err := repo.BranchExists(context.Background(), "#7")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCLIRepository_CurrentBranch(t *testing.T) {
	cmd := gitCmd("symbolic-ref", "--quiet", "--short", "HEAD").AllowExitCodes(1)

	t.Run("on branch", func(t *testing.T) {
		repo, runner := newTestRepository(t, SyncNone)
		runner.EXPECT().Run(context.Background(), cmd).Return(domain.CommandResult{Output: "#12\n"}, nil)

		branch, err := repo.CurrentBranch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "#12", branch)
	})

	t.Run("detached", func(t *testing.T) {
		repo, runner := newTestRepository(t, SyncNone)
		runner.EXPECT().Run(context.Background(), cmd).Return(domain.CommandResult{ExitCode: 1}, nil)

		branch, err := repo.CurrentBranch(context.Background())
		require.NoError(t, err)
		assert.Empty(t, branch)
	})
}

func TestCLIRepository_ListBranches(t *testing.T) {
	repo, runner := newTestRepository(t, SyncNone)
	runner.EXPECT().Run(context.Background(), gitCmd("branch", "--list", "--format=%(refname:short)", "#*")).
		Return(domain.CommandResult{Output: "#12\n#7\n\n"}, nil)

	branches, err := repo.ListBranches(context.Background(), "#*")

	require.NoError(t, err)
	assert.Equal(t, []string{"#12", "#7"}, branches)
}

func TestCLIRepository_ListStashes(t *testing.T) {
	repo, runner := newTestRepository(t, SyncNone)
	runner.EXPECT().Run(context.Background(), gitCmd("stash", "list", "--format=%gd%x1f%H%x1f%gs")).
		Return(domain.CommandResult{Output: stashLine("stash@{0}", "aaa", "WIP on #7: 1 x") + "\n"}, nil)

	stashes, err := repo.ListStashes(context.Background())

	require.NoError(t, err)
	require.Len(t, stashes, 1)
	assert.Equal(t, "#7", stashes[0].Branch)
}

func TestCLIRepository_PushStash_NothingToSave(t *testing.T) {
	repo, runner := newTestRepository(t, SyncNone)
	runner.EXPECT().Run(context.Background(), gitCmd("stash", "push")).
		Return(domain.CommandResult{Output: "No local changes to save\n"}, nil)

	require.NoError(t, repo.PushStash(context.Background()))
}

func TestCLIRepository_PopStash_ConflictIsSurfaced(t *testing.T) {
	repo, runner := newTestRepository(t, SyncNone)
	conflict := &domain.CommandError{Command: "git stash pop 'stash@{0}'", ExitCode: 1, Output: "CONFLICT"}
	runner.EXPECT().Run(context.Background(), gitCmd("stash", "pop", "stash@{0}")).
		Return(domain.CommandResult{ExitCode: 1, Output: "CONFLICT"}, conflict)

	err := repo.PopStash(context.Background(), "stash@{0}")

	var cmdErr *domain.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 1, cmdErr.ExitCode)
}

func TestCLIRepository_SyncTrunk(t *testing.T) {
	tests := []struct {
		strategy SyncStrategy
		args     []string
	}{
		{SyncSVN, []string{"svn", "rebase"}},
		{SyncPull, []string{"pull", "--rebase"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			repo, runner := newTestRepository(t, tt.strategy)
			runner.EXPECT().Run(context.Background(), gitCmd(tt.args...)).Return(domain.CommandResult{}, nil)

			require.NoError(t, repo.SyncTrunk(context.Background()))
		})
	}
}

func TestCLIRepository_SyncTrunk_None(t *testing.T) {
	repo, _ := newTestRepository(t, SyncNone)

	require.NoError(t, repo.SyncTrunk(context.Background()))
}

func TestCLIRepository_SyncTrunk_FailureWrapsCommandError(t *testing.T) {
	repo, runner := newTestRepository(t, SyncPull)
	runner.EXPECT().Run(context.Background(), gitCmd("pull", "--rebase")).
		Return(domain.CommandResult{ExitCode: 128}, &domain.CommandError{Command: "git pull --rebase", ExitCode: 128})

	err := repo.SyncTrunk(context.Background())

	assert.Equal(t, 128, domain.ExitCode(err))
}

func TestCLIRepository_Clone(t *testing.T) {
	tests := []struct {
		name string
		sync SyncStrategy
		args []string
	}{
		{name: "svn", sync: SyncSVN, args: []string{"svn", "clone", "https://svn.example.com/repo", "-s", "/home/me/.Code-clone/Code"}},
		{name: "pull", sync: SyncPull, args: []string{"clone", "https://svn.example.com/repo", "/home/me/.Code-clone/Code"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, runner := newTestRepository(t, tt.sync)
			cmd := gitCmd(tt.args...)
			cmd.Dir = "/home/me/.Code-clone"
			runner.EXPECT().Run(context.Background(), cmd).Return(domain.CommandResult{}, nil)

			require.NoError(t, repo.Clone(context.Background(), "https://svn.example.com/repo", "/home/me/.Code-clone/Code"))
		})
	}
}

func TestCLIRepository_Clone_Failure(t *testing.T) {
	repo, runner := newTestRepository(t, SyncPull)
	cmd := gitCmd("clone", "bad-url", "/tmp/x/Code")
	cmd.Dir = "/tmp/x"
	runner.EXPECT().Run(context.Background(), cmd).
		Return(domain.CommandResult{ExitCode: 128}, &domain.CommandError{Command: cmd.String(), ExitCode: 128})

	err := repo.Clone(context.Background(), "bad-url", "/tmp/x/Code")

	require.Error(t, err)
	assert.Equal(t, 128, domain.ExitCode(err))
}
