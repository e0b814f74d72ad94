package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket/internal/adapters/git"
	"ticket/internal/adapters/shell"
	"ticket/internal/testutil"
)

// clonerFunc adapts a function to ports.RepositoryCloner
type clonerFunc func(ctx context.Context, url, dir string) error

func (f clonerFunc) Clone(ctx context.Context, url, dir string) error { return f(ctx, url, dir) }

func fakeClone(content string) clonerFunc {
	return func(_ context.Context, _ string, dir string) error {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, "origin.txt"), []byte(content), 0644)
	}
}

func readMarker(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "origin.txt"))
	require.NoError(t, err)
	return string(data)
}

func TestSetup_FreshWorkspace(t *testing.T) {
	workspace := filepath.Join(t.TempDir(), "Code")

	result, err := NewSetupService(fakeClone("fresh")).Setup(context.Background(), SetupOptions{
		Upstream:  "https://example.com/repo.git",
		Workspace: workspace,
	})

	require.NoError(t, err)
	assert.Equal(t, workspace, result.Workspace)
	assert.Empty(t, result.BackupPath)
	assert.Equal(t, "fresh", readMarker(t, workspace))

	entries, err := os.ReadDir(filepath.Dir(workspace))
	require.NoError(t, err)
	require.Len(t, entries, 1, "staging directory is cleaned up")
}

func TestSetup_BacksUpExistingWorkspace(t *testing.T) {
	workspace := filepath.Join(t.TempDir(), "Code")
	require.NoError(t, fakeClone("old")(context.Background(), "", workspace))

	result, err := NewSetupService(fakeClone("new")).Setup(context.Background(), SetupOptions{
		Upstream:  "https://example.com/repo.git",
		Workspace: workspace,
	})

	require.NoError(t, err)
	assert.Equal(t, workspace+".bak", result.BackupPath)
	assert.Equal(t, "new", readMarker(t, workspace))
	assert.Equal(t, "old", readMarker(t, workspace+".bak"))
}

func TestSetup_ExistingBackupNeedsForce(t *testing.T) {
	workspace := filepath.Join(t.TempDir(), "Code")
	require.NoError(t, fakeClone("current")(context.Background(), "", workspace))
	require.NoError(t, fakeClone("older")(context.Background(), "", workspace+".bak"))

	cloned := false
	cloner := clonerFunc(func(ctx context.Context, url, dir string) error {
		cloned = true
		return fakeClone("new")(ctx, url, dir)
	})
	service := NewSetupService(cloner)

	_, err := service.Setup(context.Background(), SetupOptions{Upstream: "u", Workspace: workspace})
	assert.ErrorIs(t, err, ErrBackupExists)
	assert.False(t, cloned, "nothing is cloned when the backup is in the way")
	assert.Equal(t, "current", readMarker(t, workspace))

	result, err := service.Setup(context.Background(), SetupOptions{Force: true, Upstream: "u", Workspace: workspace})
	require.NoError(t, err)
	assert.Equal(t, workspace+".bak", result.BackupPath)
	assert.Equal(t, "new", readMarker(t, workspace))
	assert.Equal(t, "current", readMarker(t, workspace+".bak"))
}

func TestSetup_CloneFailureLeavesWorkspaceAlone(t *testing.T) {
	workspace := filepath.Join(t.TempDir(), "Code")
	require.NoError(t, fakeClone("current")(context.Background(), "", workspace))
	cloneErr := errors.New("authentication failed")

	_, err := NewSetupService(clonerFunc(func(context.Context, string, string) error {
		return cloneErr
	})).Setup(context.Background(), SetupOptions{Upstream: "u", Workspace: workspace})

	assert.ErrorIs(t, err, cloneErr)
	assert.Equal(t, "current", readMarker(t, workspace))
	assert.NoDirExists(t, workspace+".bak")
}

func TestSetup_RequiresUpstream(t *testing.T) {
	_, err := NewSetupService(fakeClone("x")).Setup(context.Background(), SetupOptions{Workspace: t.TempDir()})

	assert.ErrorContains(t, err, "no upstream configured")
}

func TestSetup_ClonesRealRepository(t *testing.T) {
	fixture := testutil.NewGitRepo(t, "master")
	workspace := filepath.Join(t.TempDir(), "Code")
	repo := git.NewCLIRepository(shell.NewRunner(""), "master", git.SyncPull)

	_, err := NewSetupService(repo).Setup(context.Background(), SetupOptions{
		Upstream:  fixture.Origin,
		Workspace: workspace,
	})

	require.NoError(t, err)
	assert.Equal(t, "master", testutil.Git(t, workspace, "rev-parse", "--abbrev-ref", "HEAD"))
	data, err := os.ReadFile(filepath.Join(workspace, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Test Repo\n", string(data))
}
