// internal/cli/recipe_commands_test.go
package balbis

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/balbis/internal/logging"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	fn()
	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	_ = r.Close()
	return buf.String()
}

// installFakeTool puts an executable llama-benchy stub on PATH so
// normalization's dependency check passes for enabled recipes.
func installFakeTool(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "llama-benchy")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write fake tool: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func writeRecipeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write recipe: %v", err)
	}
	return path
}

// prepareCommandTest resets the persistent flags touched by these tests
// and registers cleanups so state does not leak between them.
func prepareCommandTest(t *testing.T) {
	t.Helper()
	for _, name := range []string{"debug", "warmup", "recipesDir", "logFile"} {
		resetFlag(name)
	}
	t.Cleanup(func() {
		for _, name := range []string{"debug", "warmup", "recipesDir", "logFile"} {
			resetFlag(name)
		}
	})
	t.Cleanup(func() { rootCmd.SetArgs([]string{}) })
	t.Cleanup(func() { _ = logging.Close() })
}

func TestValidateRecipeCommand(t *testing.T) {
	prepareCommandTest(t)
	dir := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "balbis.log")
	writeRecipeFile(t, dir, "demo.yaml", "defaults:\n  port: 8080\nbenchmark:\n  enabled: false\n  args:\n    temperature: 0.5\n")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--recipesDir", dir, "--logFile", logPath, "validate", "recipe", "demo"})

	if _, err := rootCmd.ExecuteC(); err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Recipe:    demo",
		"Framework: llama-benchy",
		"Enabled:   false",
		"Args:      1",
		"Recipe is valid.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %s", want, out)
		}
	}
}

func TestValidateRecipeCommandUnsupportedFramework(t *testing.T) {
	prepareCommandTest(t)
	dir := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "balbis.log")
	writeRecipeFile(t, dir, "bad.yaml", "benchmark:\n  enabled: false\n  framework: bogus\n")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--recipesDir", dir, "--logFile", logPath, "validate", "recipe", "bad"})

	_, err := rootCmd.ExecuteC()
	if err == nil || !strings.Contains(err.Error(), "unsupported benchmark framework") {
		t.Fatalf("expected unsupported framework error, got %v", err)
	}
}

func TestShowRecipeCommand(t *testing.T) {
	prepareCommandTest(t)
	dir := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "balbis.log")
	writeRecipeFile(t, dir, "demo.yaml", "defaults:\n  port: 8080\nbenchmark:\n  enabled: false\n  args:\n    temperature: 0.5\n")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--recipesDir", dir, "--logFile", logPath, "show", "recipe", "demo"})

	if _, err := rootCmd.ExecuteC(); err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Base URL:  http://localhost:8080/v1",
		"  pp: [2048]",
		"  temperature: 0.5",
		"llama-benchy --base-url http://localhost:8080/v1 --model __from_v1_models__ --pp 2048 --depth 0 --save-result test.md --enable-prefix-caching --temperature 0.5",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %s", want, out)
		}
	}
}

func TestListRecipesCommand(t *testing.T) {
	prepareCommandTest(t)
	dir := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "balbis.log")
	writeRecipeFile(t, dir, "alpha.yaml", "benchmark:\n  enabled: true\n")
	writeRecipeFile(t, dir, "beta.yml", "benchmark:\n  enabled: false\n")
	writeRecipeFile(t, dir, "broken.yaml", "benchmark: [\n")
	writeRecipeFile(t, dir, "notes.txt", "not a recipe\n")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--recipesDir", dir, "--logFile", logPath, "list", "recipes"})

	out := captureOutput(t, func() {
		if _, err := rootCmd.ExecuteC(); err != nil {
			t.Errorf("ExecuteC error: %v", err)
		}
	})

	for _, want := range []string{
		"alpha.yaml (ENABLED)",
		"beta.yml (DISABLED)",
		"broken.yaml (INVALID)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %s", want, out)
		}
	}
	if strings.Contains(out, "notes.txt") {
		t.Fatalf("expected non-YAML files to be skipped, got %s", out)
	}
}

func TestListCommandsCommand(t *testing.T) {
	prepareCommandTest(t)
	logPath := filepath.Join(t.TempDir(), "balbis.log")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--logFile", logPath, "list", "commands"})

	if _, err := rootCmd.ExecuteC(); err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Commands and Subcommands:") {
		t.Fatalf("expected header in output, got %s", out)
	}
	for _, want := range []string{"balbis run benchmark", "balbis validate recipe", "balbis list recipes"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %s", want, out)
		}
	}
	if strings.Contains(out, "completion") {
		t.Fatalf("expected completion commands to be filtered, got %s", out)
	}
}

func TestRunBenchmarkCommandDryRun(t *testing.T) {
	prepareCommandTest(t)
	installFakeTool(t)
	dir := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "balbis.log")
	writeRecipeFile(t, dir, "demo.yaml", "defaults:\n  port: 8080\nbenchmark:\n  enabled: true\n  args:\n    temperature: 0.5\n")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--recipesDir", dir, "--logFile", logPath, "run", "benchmark", "demo", "--dry-run", "--save-result", "custom.md"})

	var execErr error
	out := captureOutput(t, func() {
		_, execErr = rootCmd.ExecuteC()
	})
	if execErr != nil {
		t.Fatalf("ExecuteC error: %v", execErr)
	}

	if !strings.Contains(out, "=== Running Benchmark ===") {
		t.Fatalf("expected dry-run banner, got %s", out)
	}
	if !strings.Contains(out, "--save-result custom.md") {
		t.Fatalf("expected save-result override in command, got %s", out)
	}
	if strings.Contains(out, "--save-result test.md") {
		t.Fatalf("expected default save_result to be overridden, got %s", out)
	}
}

func TestRunBenchmarkCommandRecipeNotFound(t *testing.T) {
	prepareCommandTest(t)
	dir := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "balbis.log")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--recipesDir", dir, "--logFile", logPath, "run", "benchmark", "nope"})

	var execErr error
	out := captureOutput(t, func() {
		_, execErr = rootCmd.ExecuteC()
	})

	var exitErr *ExitError
	if !errors.As(execErr, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("expected ExitError with code 1, got %v", execErr)
	}
	if !strings.Contains(out, "recipe not found") {
		t.Fatalf("expected resolution failure in output, got %s", out)
	}
}
