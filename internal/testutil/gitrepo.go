// Package testutil builds throwaway git repositories for tests that need a
// real working copy.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// GitRepo is a working copy with a bare "origin" it pushes to
type GitRepo struct {
	Dir    string
	Origin string
	Trunk  string
	tb     testing.TB
}

// RequireGit skips the test when git is not installed
func RequireGit(tb testing.TB) {
	tb.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		tb.Skip("git not available")
	}
}

// NewGitRepo creates a clone of a fresh bare repository with one commit on
// trunk, pushed to origin so `git pull --rebase` works.
//
//	tb.TempDir()/
//	├── origin.git/   <- bare
//	└── work/         <- clone, trunk checked out
func NewGitRepo(tb testing.TB, trunk string) *GitRepo {
	tb.Helper()
	RequireGit(tb)

	base := tb.TempDir()
	origin := filepath.Join(base, "origin.git")
	dir := filepath.Join(base, "work")

	Git(tb, base, "init", "--bare", "--quiet", origin)
	Git(tb, origin, "symbolic-ref", "HEAD", "refs/heads/"+trunk)
	Git(tb, base, "clone", "--quiet", origin, dir)
	Git(tb, dir, "symbolic-ref", "HEAD", "refs/heads/"+trunk)
	Git(tb, dir, "config", "user.email", "test@example.com")
	Git(tb, dir, "config", "user.name", "Test User")

	repo := &GitRepo{Dir: dir, Origin: origin, Trunk: trunk, tb: tb}
	repo.WriteFile("README.md", "# Test Repo\n")
	Git(tb, dir, "add", "README.md")
	Git(tb, dir, "commit", "--quiet", "-m", "Initial commit")
	Git(tb, dir, "push", "--quiet", "-u", "origin", trunk)

	return repo
}

// WriteFile writes a file relative to the working copy
func (r *GitRepo) WriteFile(name, content string) {
	r.tb.Helper()
	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.tb.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		r.tb.Fatalf("failed to write %s: %v", name, err)
	}
}

// ReadFile reads a file relative to the working copy, "" when missing
func (r *GitRepo) ReadFile(name string) string {
	r.tb.Helper()
	data, err := os.ReadFile(filepath.Join(r.Dir, name))
	if err != nil {
		return ""
	}
	return string(data)
}

// Git runs git in the working copy and returns its trimmed output
func (r *GitRepo) Git(args ...string) string {
	r.tb.Helper()
	return Git(r.tb, r.Dir, args...)
}

// Status returns `git status --porcelain` lines
func (r *GitRepo) Status() []string {
	r.tb.Helper()
	out := r.Git("status", "--porcelain")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// StashSubjects returns the stash reflog subjects, newest first
func (r *GitRepo) StashSubjects() []string {
	r.tb.Helper()
	out := r.Git("stash", "list", "--format=%gs")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// Git runs git in dir and fails the test on error
func Git(tb testing.TB, dir string, args ...string) string {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
		"GIT_CONFIG_NOSYSTEM=1",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
	return strings.TrimRight(string(output), "\n")
}
