package support

import (
	"bytes"
	"context"
	"strings"

	"github.com/alexbrand/livingdoc/internal/cli"
)

// CommandResult holds the result of executing a CLI command.
type CommandResult struct {
	// Stdout is the captured standard output
	Stdout string
	// Stderr is the captured standard error
	Stderr string
	// ExitCode is the exit code of the command
	ExitCode int
	// Command is the full command that was executed
	Command string
}

// CLIRunner executes livingdoc commands in-process and captures their output.
type CLIRunner struct {
	// LastResult stores the result of the last command execution
	LastResult *CommandResult
}

// NewCLIRunner creates a new CLI runner.
func NewCLIRunner() *CLIRunner {
	return &CLIRunner{}
}

// Run executes a command string and captures the result.
// The command string is parsed as shell-like arguments and a leading
// "livingdoc" is stripped.
// Example: Run("livingdoc generate --features specs -f json")
func (r *CLIRunner) Run(commandStr string) *CommandResult {
	args := parseArgs(commandStr)
	if len(args) > 0 && args[0] == "livingdoc" {
		args = args[1:]
	}
	return r.RunArgs(args...)
}

// RunArgs executes a command with explicit arguments and captures the result.
func (r *CLIRunner) RunArgs(args ...string) *CommandResult {
	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), args, &stdout, &stderr)

	result := &CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: code,
		Command:  "livingdoc " + strings.Join(args, " "),
	}
	r.LastResult = result
	return result
}

// parseArgs parses a command string into arguments.
// Handles quoted strings and basic shell-like parsing.
func parseArgs(commandStr string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := rune(0)

	for _, char := range commandStr {
		switch {
		case char == '"' || char == '\'':
			if !inQuote {
				inQuote, quoteChar = true, char
			} else if char == quoteChar {
				inQuote, quoteChar = false, 0
			} else {
				current.WriteRune(char)
			}
		case char == ' ' && !inQuote:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(char)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

// Success returns true if the command exited with code 0.
func (r *CommandResult) Success() bool {
	return r.ExitCode == 0
}

// StdoutTrimmed returns stdout with leading and trailing whitespace removed.
func (r *CommandResult) StdoutTrimmed() string {
	return strings.TrimSpace(r.Stdout)
}
