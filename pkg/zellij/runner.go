package zellij

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/grovetools/core/command"
)

// Process is a handle to a started zellij invocation.
type Process interface {
	Wait() error
}

// Runner abstracts subprocess execution for testing.
type Runner interface {
	// Start launches the command without waiting for it. An interactive
	// command inherits the caller's terminal.
	Start(ctx context.Context, interactive bool, name string, args ...string) (Process, error)

	// Output runs the command to completion and captures stdout.
	// err is non-nil only if the command failed to run (e.g., binary not found);
	// exitCode carries the actual exit status.
	Output(ctx context.Context, name string, args ...string) (stdout string, exitCode int, err error)
}

// ExecRunner implements Runner on grove-core's command package. Actions and
// list-sessions go through the SafeBuilder; the attached session is created
// by the executor directly since the builder bounds every command with a
// timeout and the session lives as long as the user keeps it open.
type ExecRunner struct {
	builder  *command.SafeBuilder
	executor *command.RealExecutor
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		builder:  command.NewSafeBuilder(),
		executor: &command.RealExecutor{},
	}
}

func (r *ExecRunner) Start(ctx context.Context, interactive bool, name string, args ...string) (Process, error) {
	var cmd *exec.Cmd
	proc := &execProcess{}
	if interactive {
		cmd = r.executor.CommandContext(ctx, name, args...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		built, err := r.builder.Build(ctx, name, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to build command: %w", err)
		}
		cmd = built.Exec()
		cmd.Stderr = &proc.stderr
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	proc.cmd = cmd
	return proc, nil
}

func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, int, error) {
	built, err := r.builder.Build(ctx, name, args...)
	if err != nil {
		return "", -1, fmt.Errorf("failed to build command: %w", err)
	}
	cmd := built.Exec()

	var stdout strings.Builder
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), exitErr.ExitCode(), nil
		}
		return stdout.String(), -1, err
	}
	return stdout.String(), 0, nil
}

type execProcess struct {
	cmd    *exec.Cmd
	stderr bytes.Buffer
}

func (p *execProcess) Wait() error {
	err := p.cmd.Wait()
	if err != nil && p.stderr.Len() > 0 {
		return fmt.Errorf("%w, output: %s", err, strings.TrimSpace(p.stderr.String()))
	}
	return err
}
