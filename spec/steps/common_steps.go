// Package steps provides step definitions for the livingdoc Gherkin specs.
package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/alexbrand/livingdoc/spec/support"
)

// contextKey is a type for context keys to avoid collisions.
type contextKey string

const (
	testEnvKey    contextKey = "testEnv"
	cliRunnerKey  contextKey = "cliRunner"
	lastResultKey contextKey = "lastResult"
)

// getTestEnv retrieves the TestEnv from context.
func getTestEnv(ctx context.Context) *support.TestEnv {
	if env, ok := ctx.Value(testEnvKey).(*support.TestEnv); ok {
		return env
	}
	return nil
}

// getCLIRunner retrieves the CLIRunner from context.
func getCLIRunner(ctx context.Context) *support.CLIRunner {
	if runner, ok := ctx.Value(cliRunnerKey).(*support.CLIRunner); ok {
		return runner
	}
	return nil
}

// getLastResult retrieves the last command result from context.
func getLastResult(ctx context.Context) *support.CommandResult {
	if result, ok := ctx.Value(lastResultKey).(*support.CommandResult); ok {
		return result
	}
	return nil
}

// InitializeCommonSteps registers the project setup and command steps.
func InitializeCommonSteps(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		env, err := support.NewTestEnv()
		if err != nil {
			return ctx, fmt.Errorf("failed to create test environment: %w", err)
		}

		ctx = context.WithValue(ctx, testEnvKey, env)
		ctx = context.WithValue(ctx, cliRunnerKey, support.NewCLIRunner())
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if env := getTestEnv(ctx); env != nil {
			if cleanupErr := env.Cleanup(); cleanupErr != nil {
				// Log but don't fail on cleanup errors
				fmt.Printf("Warning: cleanup failed: %v\n", cleanupErr)
			}
		}
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a feature file "([^"]*)" with:$`, aFileWith)
	ctx.Step(`^a results file "([^"]*)" with:$`, aFileWith)
	ctx.Step(`^a config file with the following content:$`, aConfigFileWithTheFollowingContent)
	ctx.Step(`^the environment variable "([^"]*)" is "([^"]*)"$`, theEnvironmentVariableIs)

	// When steps
	ctx.Step(`^I run "([^"]*)"$`, iRun)
	ctx.Step(`^I run livingdoc with:$`, iRunWithArgs)

	// Then steps
	ctx.Step(`^the exit code should be (\d+)$`, theExitCodeShouldBe)
	ctx.Step(`^stdout should contain "([^"]*)"$`, stdoutShouldContain)
	ctx.Step(`^stdout should not contain "([^"]*)"$`, stdoutShouldNotContain)
	ctx.Step(`^stderr should contain "([^"]*)"$`, stderrShouldContain)
	ctx.Step(`^stdout should be:$`, stdoutShouldBe)
	ctx.Step(`^the JSON output should have "([^"]*)" equal to "([^"]*)"$`, theJSONOutputShouldHaveEqualTo)
	ctx.Step(`^the file "([^"]*)" should exist$`, theFileShouldExist)
}

func aFileWith(ctx context.Context, path string, content *godog.DocString) (context.Context, error) {
	env := getTestEnv(ctx)
	if env == nil {
		return ctx, fmt.Errorf("test environment not initialized")
	}
	if err := env.CreateFile(path, content.Content); err != nil {
		return ctx, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return ctx, nil
}

func aConfigFileWithTheFollowingContent(ctx context.Context, content *godog.DocString) (context.Context, error) {
	env := getTestEnv(ctx)
	if env == nil {
		return ctx, fmt.Errorf("test environment not initialized")
	}
	if err := env.CreateConfig(content.Content); err != nil {
		return ctx, fmt.Errorf("failed to create config file: %w", err)
	}
	return ctx, nil
}

func theEnvironmentVariableIs(ctx context.Context, key, value string) (context.Context, error) {
	env := getTestEnv(ctx)
	if env == nil {
		return ctx, fmt.Errorf("test environment not initialized")
	}
	env.SetEnv(key, value)
	return ctx, nil
}

func iRun(ctx context.Context, command string) (context.Context, error) {
	runner := getCLIRunner(ctx)
	if runner == nil {
		return ctx, fmt.Errorf("CLI runner not initialized")
	}
	return context.WithValue(ctx, lastResultKey, runner.Run(command)), nil
}

// iRunWithArgs runs livingdoc with one argument per table row, for arguments
// that hold quotes or backslashes.
func iRunWithArgs(ctx context.Context, table *godog.Table) (context.Context, error) {
	runner := getCLIRunner(ctx)
	if runner == nil {
		return ctx, fmt.Errorf("CLI runner not initialized")
	}
	args := make([]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		args = append(args, row.Cells[0].Value)
	}
	return context.WithValue(ctx, lastResultKey, runner.RunArgs(args...)), nil
}

func theExitCodeShouldBe(ctx context.Context, expected int) error {
	result := getLastResult(ctx)
	if result == nil {
		return fmt.Errorf("no command has been run")
	}
	if result.ExitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d\nstdout: %s\nstderr: %s",
			expected, result.ExitCode, result.Stdout, result.Stderr)
	}
	return nil
}

func stdoutShouldContain(ctx context.Context, expected string) error {
	result := getLastResult(ctx)
	if result == nil {
		return fmt.Errorf("no command has been run")
	}
	if !strings.Contains(result.Stdout, expected) {
		return fmt.Errorf("expected stdout to contain %q, got:\n%s", expected, result.Stdout)
	}
	return nil
}

func stdoutShouldNotContain(ctx context.Context, unexpected string) error {
	result := getLastResult(ctx)
	if result == nil {
		return fmt.Errorf("no command has been run")
	}
	if strings.Contains(result.Stdout, unexpected) {
		return fmt.Errorf("expected stdout to not contain %q, but it does:\n%s", unexpected, result.Stdout)
	}
	return nil
}

func stderrShouldContain(ctx context.Context, expected string) error {
	result := getLastResult(ctx)
	if result == nil {
		return fmt.Errorf("no command has been run")
	}
	if !strings.Contains(result.Stderr, expected) {
		return fmt.Errorf("expected stderr to contain %q, got:\n%s", expected, result.Stderr)
	}
	return nil
}

func stdoutShouldBe(ctx context.Context, expected *godog.DocString) error {
	result := getLastResult(ctx)
	if result == nil {
		return fmt.Errorf("no command has been run")
	}
	if got := result.StdoutTrimmed(); got != strings.TrimSpace(expected.Content) {
		return fmt.Errorf("expected stdout:\n%s\ngot:\n%s", expected.Content, got)
	}
	return nil
}

func theJSONOutputShouldHaveEqualTo(ctx context.Context, path, expected string) error {
	result := getLastResult(ctx)
	if result == nil {
		return fmt.Errorf("no command has been run")
	}

	jsonResult := support.ParseJSON(result.Stdout)
	if !jsonResult.Valid() {
		return fmt.Errorf("stdout is not valid JSON: %v\nstdout:\n%s", jsonResult.ParseErr, result.Stdout)
	}
	if actual := jsonResult.GetString(path); actual != expected {
		return fmt.Errorf("expected JSON path %q to be %q, got %q", path, expected, actual)
	}
	return nil
}

func theFileShouldExist(ctx context.Context, path string) error {
	env := getTestEnv(ctx)
	if env == nil {
		return fmt.Errorf("test environment not initialized")
	}
	if !env.FileExists(path) {
		return fmt.Errorf("expected file %s to exist", path)
	}
	return nil
}
