package integration_test

import (
	"testing"

	"ticket/test/integration/harness"
)

func TestList(t *testing.T) {
	harness.RequireTool(t, "tmux")

	tests := []struct {
		name       string
		args       []string
		contains   []string
		notContain []string
	}{
		{
			name:     "all sections",
			args:     []string{"list"},
			contains: []string{"Active", "Open", "Blocked", "#3", "#4", "waiting on review"},
		},
		{
			name:       "blocked only",
			args:       []string{"list", "blocked"},
			contains:   []string{"Blocked", "#4"},
			notContain: []string{"Open", "#3"},
		},
		{
			name:       "alias",
			args:       []string{"ls", "open"},
			contains:   []string{"Open", "#3"},
			notContain: []string{"Blocked", "#4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewWorkspaceEnvironment(t)
			env.Repo.Git("branch", "#3")
			env.Repo.Git("branch", "#4")
			harness.AssertSuccess(t, harness.RunCommand(t, env, "block", "4", "-r", "waiting on review"))

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			for _, want := range tt.contains {
				harness.AssertStdoutContains(t, result, want)
			}
			for _, unwanted := range tt.notContain {
				harness.AssertStdoutNotContains(t, result, unwanted)
			}
		})
	}
}
