package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ticket/test/integration/harness"
)

func TestSettings(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name: "table format (default)",
			args: []string{"settings"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file: "+env.SettingsPath())
				harness.AssertStdoutContains(t, result, "Example settings.json:")
				harness.AssertStdoutContains(t, result, "session_host")
				harness.AssertStdoutContains(t, result, "workspace")
			},
		},
		{
			name: "json format",
			args: []string{"settings", "--format", "json"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var output map[string]any
				harness.AssertValidJSON(t, result, &output)
				assert.Equal(t, env.SettingsPath(), output["settings_file"])
				assert.Contains(t, output, "format")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, env, result)
		})
	}
}

func TestSettings_InvalidFormat(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "--format", "yaml")

	harness.AssertFailure(t, result)
}
