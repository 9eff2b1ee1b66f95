package support

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewTestEnv(t *testing.T) {
	originalDir, _ := os.Getwd()

	env, err := NewTestEnv()
	if err != nil {
		t.Fatalf("NewTestEnv() error = %v", err)
	}
	defer env.Cleanup()

	if !strings.Contains(env.TempDir, "livingdoc-test-") {
		t.Errorf("TempDir should contain 'livingdoc-test-', got %s", env.TempDir)
	}

	currentDir, _ := os.Getwd()
	if currentDir != env.TempDir {
		t.Errorf("Should be in temp directory, got %s, want %s", currentDir, env.TempDir)
	}
	if env.OriginalDir != originalDir {
		t.Errorf("OriginalDir = %s, want %s", env.OriginalDir, originalDir)
	}
	if home := os.Getenv("HOME"); home != env.TempDir {
		t.Errorf("HOME = %s, want %s", home, env.TempDir)
	}
}

func TestTestEnv_Cleanup(t *testing.T) {
	originalDir, _ := os.Getwd()
	originalHome := os.Getenv("HOME")

	env, err := NewTestEnv()
	if err != nil {
		t.Fatalf("NewTestEnv() error = %v", err)
	}
	tempDir := env.TempDir

	if err := env.Cleanup(); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}

	currentDir, _ := os.Getwd()
	if currentDir != originalDir {
		t.Errorf("After cleanup, should be in %s, got %s", originalDir, currentDir)
	}
	if os.Getenv("HOME") != originalHome {
		t.Errorf("HOME not restored, got %s", os.Getenv("HOME"))
	}
	if _, err := os.Stat(tempDir); !os.IsNotExist(err) {
		t.Errorf("Temp directory should be removed after cleanup")
	}
}

func TestTestEnv_Files(t *testing.T) {
	env, err := NewTestEnv()
	if err != nil {
		t.Fatalf("NewTestEnv() error = %v", err)
	}
	defer env.Cleanup()

	if err := env.CreateFile("features/a/eating.feature", "Feature: Eating\n"); err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}
	if !env.FileExists("features/a/eating.feature") {
		t.Error("expected created file to exist")
	}
	content, err := env.ReadFile("features/a/eating.feature")
	if err != nil || content != "Feature: Eating\n" {
		t.Errorf("ReadFile() = %q, %v", content, err)
	}

	if err := env.CreateConfig("title: Specs\n"); err != nil {
		t.Fatalf("CreateConfig() error = %v", err)
	}
	if !env.FileExists(filepath.Join(".livingdoc", "config.yaml")) {
		t.Error("expected project config to exist")
	}
	if env.FileExists("missing.txt") {
		t.Error("FileExists() should be false for missing files")
	}
}
