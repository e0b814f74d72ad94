package harness

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// String renders the result for assertion failure messages
func (r CommandResult) String() string {
	return "exit code: " + strconv.Itoa(r.ExitCode) + "\nstdout:\n" + r.Stdout + "\nstderr:\n" + r.Stderr
}

// AssertSuccess verifies the command exited with 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	AssertExitCode(tb, result, 0)
}

// AssertFailure verifies the command exited with any non-zero code
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode, "expected failure\n%s", result)
}

// AssertExitCode verifies the command exited with a specific code
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode, "unexpected exit code\n%s", result)
}

// AssertStdoutContains verifies stdout contains the expected string
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "stdout is missing %q\n%s", expected, result)
}

// AssertStdoutNotContains verifies stdout does not contain the string
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "stdout has %q\n%s", unexpected, result)
}

// AssertStderrContains verifies stderr contains the expected string
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "stderr is missing %q\n%s", expected, result)
}

// AssertValidJSON verifies stdout is valid JSON and unmarshals it into target
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), "stdout is not JSON\n%s", result)
}
