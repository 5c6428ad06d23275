package zellij

import (
	"context"
	"os/exec"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunnerOutput(t *testing.T) {
	requireShell(t)
	runner := NewExecRunner()
	ctx := context.Background()

	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantCode int
	}{
		{name: "success", args: []string{"-c", "echo dev"}, wantOut: "dev\n"},
		{name: "non-zero exit keeps stdout", args: []string{"-c", "echo No active zellij sessions found.; exit 1"}, wantOut: "No active zellij sessions found.\n", wantCode: 1},
		{name: "shell text is passed through", args: []string{"-c", `printf '%s' "$0"`, "cd ~/x && ls | grep 'a b'; echo $HOME"}, wantOut: "cd ~/x && ls | grep 'a b'; echo $HOME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, code, err := runner.Output(ctx, "sh", tt.args...)
			if err != nil {
				t.Fatalf("Output() error = %v", err)
			}
			if out != tt.wantOut || code != tt.wantCode {
				t.Errorf("Output() = %q, %d; want %q, %d", out, code, tt.wantOut, tt.wantCode)
			}
		})
	}
}

func TestExecRunnerOutputMissingBinary(t *testing.T) {
	_, _, err := NewExecRunner().Output(context.Background(), "zellij-definitely-not-installed", "list-sessions")
	if err == nil {
		t.Error("Expected error when the binary cannot run")
	}
}

func TestExecRunnerStartWait(t *testing.T) {
	requireShell(t)
	runner := NewExecRunner()

	proc, err := runner.Start(context.Background(), false, "sh", "-c", "echo rejected >&2; exit 2")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	err = proc.Wait()
	if !isExitStatus(err) {
		t.Fatalf("Wait() = %v, want an exit status", err)
	}
	if got := err.Error(); got != "exit status 2, output: rejected" {
		t.Errorf("Wait() error = %q", got)
	}
}
