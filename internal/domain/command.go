package domain

import (
	"slices"
	"strings"
)

// Command is an external command to run. Args are passed to the program
// verbatim, no shell is involved.
type Command struct {
	Args []string
	Dir  string
	// ExpectedCodes lists the exit codes treated as success.
	// Empty means only 0.
	ExpectedCodes []int
	Name          string
}

// NewCommand builds a Command for name with args
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// AllowExitCodes returns a copy of the command that also accepts codes
func (c Command) AllowExitCodes(codes ...int) Command {
	expected := slices.Clone(c.ExpectedCodes)
	if len(expected) == 0 {
		expected = []int{0}
	}
	c.ExpectedCodes = append(expected, codes...)
	return c
}

// Accepts reports whether code counts as success for this command
func (c Command) Accepts(code int) bool {
	if len(c.ExpectedCodes) == 0 {
		return code == 0
	}
	for _, expected := range c.ExpectedCodes {
		if code == expected {
			return true
		}
	}
	return false
}

// String renders the command for error messages and logs, quoting arguments
// that would otherwise be ambiguous.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, arg := range c.Args {
		if arg == "" || strings.ContainsAny(arg, " \t\n'\"#$&;|<>*?()[]{}\\") {
			arg = "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// CommandResult is the outcome of a command that ran to completion
type CommandResult struct {
	ExitCode int
	// Output is stdout and stderr interleaved
	Output string
}
