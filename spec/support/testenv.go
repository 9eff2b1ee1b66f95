// Package support provides test helpers for the livingdoc specs.
package support

import (
	"os"
	"path/filepath"
)

// TestEnv holds the test environment state for a scenario.
type TestEnv struct {
	// TempDir is the project directory for this scenario
	TempDir string
	// OriginalDir is the directory we were in before the test
	OriginalDir string
	// OriginalEnv stores original environment variables to restore
	OriginalEnv map[string]string
}

// NewTestEnv creates a new isolated test environment.
// It creates a temporary directory, changes into it and points HOME at it so
// no user configuration leaks into the scenario.
func NewTestEnv() (*TestEnv, error) {
	originalDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	tempDir, err := os.MkdirTemp("", "livingdoc-test-*")
	if err != nil {
		return nil, err
	}
	// Resolve symlinks (macOS /var -> /private/var) so paths compare equal.
	if resolved, err := filepath.EvalSymlinks(tempDir); err == nil {
		tempDir = resolved
	}

	if err := os.Chdir(tempDir); err != nil {
		os.RemoveAll(tempDir)
		return nil, err
	}

	env := &TestEnv{
		TempDir:     tempDir,
		OriginalDir: originalDir,
		OriginalEnv: make(map[string]string),
	}
	env.SetEnv("HOME", tempDir)
	return env, nil
}

// Cleanup removes the temporary directory and restores the original state.
func (e *TestEnv) Cleanup() error {
	if err := os.Chdir(e.OriginalDir); err != nil {
		return err
	}

	for key, value := range e.OriginalEnv {
		if value == "" {
			os.Unsetenv(key)
		} else {
			os.Setenv(key, value)
		}
	}

	return os.RemoveAll(e.TempDir)
}

// SetEnv sets an environment variable and stores the original value for restoration.
func (e *TestEnv) SetEnv(key, value string) {
	if _, exists := e.OriginalEnv[key]; !exists {
		e.OriginalEnv[key] = os.Getenv(key)
	}
	os.Setenv(key, value)
}

// CreateConfig writes the project configuration to .livingdoc/config.yaml.
func (e *TestEnv) CreateConfig(content string) error {
	return e.CreateFile(filepath.Join(".livingdoc", "config.yaml"), content)
}

// CreateFile creates a file with the given content within the temp directory.
func (e *TestEnv) CreateFile(relativePath, content string) error {
	fullPath := e.Path(relativePath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// ReadFile reads a file from the temp directory.
func (e *TestEnv) ReadFile(relativePath string) (string, error) {
	content, err := os.ReadFile(e.Path(relativePath))
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// FileExists checks if a file exists within the temp directory.
func (e *TestEnv) FileExists(relativePath string) bool {
	_, err := os.Stat(e.Path(relativePath))
	return err == nil
}

// Path returns the full path for a relative path within the temp directory.
func (e *TestEnv) Path(relativePath string) string {
	return filepath.Join(e.TempDir, relativePath)
}
