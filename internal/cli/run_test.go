package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/ebmdatalab/nbgate/internal/exitcode"
	"github.com/ebmdatalab/nbgate/internal/runner"
)

// fakeTool writes an executable script that ignores its arguments and exits
// with the given code, standing in for the validation tool.
func fakeTool(t *testing.T, code int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on shell scripts")
	}
	path := filepath.Join(t.TempDir(), "fake-pytest")
	script := fmt.Sprintf("#!/bin/sh\nexit %d\n", code)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write fake tool: %v", err)
	}
	return path
}

// useConfig points the CLI at a temp config file for the duration of a test.
func useConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".nbgate.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	prev := configPath
	configPath = path
	t.Cleanup(func() { configPath = prev })
}

func gateConfig(t *testing.T, tool string, extra string) string {
	t.Helper()
	return fmt.Sprintf("tool: %s\nnotebook_dir: %s\nsanitize_config: \"\"\n%s", tool, t.TempDir(), extra)
}

func TestRunGate_AllPass(t *testing.T) {
	useConfig(t, gateConfig(t, fakeTool(t, 0), ""))
	if err := runGate(context.Background()); err != nil {
		t.Errorf("runGate() error = %v, want nil", err)
	}
}

func TestRunGate_EmptySuiteIsSuccess(t *testing.T) {
	useConfig(t, gateConfig(t, fakeTool(t, 5), ""))
	if err := runGate(context.Background()); err != nil {
		t.Errorf("runGate() error = %v, want nil", err)
	}
}

func TestRunGate_FailurePassesThrough(t *testing.T) {
	useConfig(t, gateConfig(t, fakeTool(t, 1), ""))
	err := runGate(context.Background())
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("runGate() error = %v, want *ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("ExitError.Code = %d, want 1", exitErr.Code)
	}
	if exitErr.Err != nil {
		t.Errorf("ExitError.Err = %v, want nil for a plain validation failure", exitErr.Err)
	}
}

func TestRunGate_CustomEmptySuiteCode(t *testing.T) {
	useConfig(t, gateConfig(t, fakeTool(t, 4), "empty_suite_code: 4\n"))
	if err := runGate(context.Background()); err != nil {
		t.Errorf("runGate() error = %v, want nil", err)
	}
}

func TestRunGate_MissingTool(t *testing.T) {
	useConfig(t, gateConfig(t, "/nonexistent/nbgate-test-tool", ""))
	err := runGate(context.Background())
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("runGate() error = %v, want *ExitError", err)
	}
	if exitErr.Code != exitcode.LaunchFailure {
		t.Errorf("ExitError.Code = %d, want %d", exitErr.Code, exitcode.LaunchFailure)
	}
	var launchErr *runner.LaunchError
	if !errors.As(err, &launchErr) {
		t.Errorf("runGate() error = %v, want it to wrap *runner.LaunchError", err)
	}
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "analysis.ipynb"), []byte("{}"), 0o644); err != nil {
		t.Fatalf("failed to write notebook: %v", err)
	}
	useConfig(t, fmt.Sprintf("notebook_dir: %s\n", dir))

	var out bytes.Buffer
	listCmd.SetOut(&out)
	defer listCmd.SetOut(nil)

	if err := listCmd.RunE(listCmd, nil); err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out.String(), "analysis.ipynb") {
		t.Errorf("list output = %q, want it to contain analysis.ipynb", out.String())
	}
}

func TestDoctorCommand_MissingTool(t *testing.T) {
	useConfig(t, gateConfig(t, "/nonexistent/nbgate-test-tool", ""))

	var out bytes.Buffer
	doctorCmd.SetOut(&out)
	defer doctorCmd.SetOut(nil)

	err := doctorCmd.RunE(doctorCmd, nil)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("doctor error = %v, want *ExitError", err)
	}
	if exitErr.Code != exitcode.LaunchFailure {
		t.Errorf("ExitError.Code = %d, want %d", exitErr.Code, exitcode.LaunchFailure)
	}
	if !strings.Contains(out.String(), "NOT FOUND") {
		t.Errorf("doctor output = %q, want it to report the missing tool", out.String())
	}
}

func TestDoctorCommand_Healthy(t *testing.T) {
	useConfig(t, gateConfig(t, fakeTool(t, 0), ""))

	var out bytes.Buffer
	doctorCmd.SetOut(&out)
	defer doctorCmd.SetOut(nil)

	if err := doctorCmd.RunE(doctorCmd, nil); err != nil {
		t.Errorf("doctor error = %v, want nil", err)
	}
}
