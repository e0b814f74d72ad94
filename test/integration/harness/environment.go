package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ticket/internal/testutil"
)

// TestEnvironment provides an isolated test environment with its own
// TICKET_HOME and, optionally, a git repository as the workspace.
type TestEnvironment struct {
	// Dir is the directory commands run from
	Dir        string
	Repo       *testutil.GitRepo
	TicketHome string
	extraEnv   map[string]string
	tb         testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp
// TICKET_HOME. Without a workspace, commands run from a temp directory and
// TICKET_WORKSPACE points at a path that does not exist.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	home := tb.TempDir()
	return &TestEnvironment{
		Dir:        tb.TempDir(),
		TicketHome: home,
		extraEnv: map[string]string{
			"TICKET_SESSION_HOST": "tmux",
			"TICKET_SYNC":         "none",
			"TICKET_TRUNK":        "master",
			"TICKET_WORKSPACE":    filepath.Join(home, "no-workspace"),
		},
		tb: tb,
	}
}

// NewWorkspaceEnvironment creates a test environment whose workspace is a
// fresh git repository with trunk "master". Commands run from inside it.
func NewWorkspaceEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	env := NewTestEnvironment(tb)
	env.Repo = testutil.NewGitRepo(tb, "master")
	env.Dir = env.Repo.Dir
	env.SetEnv("TICKET_WORKSPACE", env.Repo.Dir)
	return env
}

// Environ returns environment variables configured for test isolation.
// It filters out TICKET_* and TMUX variables and sets:
//   - TICKET_HOME to the temp directory
//   - TICKET_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "TICKET_") || strings.HasPrefix(key, "TMUX") || e.extraEnv[key] != "" {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"TICKET_HOME="+e.TicketHome,
		"TICKET_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test journal.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.TicketHome, "state.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.TicketHome, "settings.json")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
