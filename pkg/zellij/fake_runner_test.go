package zellij

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// fakeCall records a single invocation seen by fakeRunner.
type fakeCall struct {
	Name        string
	Args        []string
	Interactive bool
}

func (c fakeCall) String() string {
	return strings.Join(c.Args, " ")
}

// fakeOutput is the response to one Output call.
type fakeOutput struct {
	Stdout   string
	ExitCode int
	Err      error
}

// exitStatus mimics *exec.ExitError for a process that ran and failed.
type exitStatus int

func (e exitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }
func (e exitStatus) ExitCode() int { return int(e) }

// fakeRunner is a test double for Runner. It records every call in order,
// including the final wait on the attached session as "wait <session>".
type fakeRunner struct {
	mu    sync.Mutex
	calls []fakeCall

	// outputs are returned by Output in order; the last one repeats.
	// With none set, Output reports that no session is running.
	outputs []fakeOutput
	outputN int

	// startErr and waitErr are consulted with the joined argument vector.
	startErr map[string]error
	waitErr  map[string]error

	// sessionErr is returned when the attached session is waited on.
	sessionErr error
}

func newFakeRunner(outputs ...fakeOutput) *fakeRunner {
	return &fakeRunner{outputs: outputs}
}

func (r *fakeRunner) Start(ctx context.Context, interactive bool, name string, args ...string) (Process, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	call := fakeCall{Name: name, Args: args, Interactive: interactive}
	r.calls = append(r.calls, call)
	if err := r.startErr[call.String()]; err != nil {
		return nil, err
	}
	if interactive {
		return &fakeProcess{runner: r, err: r.sessionErr, record: "wait " + args[len(args)-1]}, nil
	}
	return &fakeProcess{runner: r, err: r.waitErr[call.String()]}, nil
}

func (r *fakeRunner) Output(ctx context.Context, name string, args ...string) (string, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, fakeCall{Name: name, Args: args})
	if len(r.outputs) == 0 {
		return "No active zellij sessions found.\n", 1, nil
	}
	out := r.outputs[len(r.outputs)-1]
	if r.outputN < len(r.outputs) {
		out = r.outputs[r.outputN]
	}
	r.outputN++
	return out.Stdout, out.ExitCode, out.Err
}

// trace returns the recorded calls as joined argument strings.
func (r *fakeRunner) trace() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]string, len(r.calls))
	for i, c := range r.calls {
		lines[i] = c.String()
	}
	return lines
}

func (r *fakeRunner) count(prefix string) int {
	n := 0
	for _, line := range r.trace() {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

type fakeProcess struct {
	runner *fakeRunner
	err    error
	record string
}

func (p *fakeProcess) Wait() error {
	if p.record != "" {
		p.runner.mu.Lock()
		p.runner.calls = append(p.runner.calls, fakeCall{Args: strings.Fields(p.record)})
		p.runner.mu.Unlock()
	}
	return p.err
}

// sleepRecorder is a Sleeper that returns immediately.
type sleepRecorder struct {
	sleeps []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.sleeps = append(s.sleeps, d)
	return ctx.Err()
}

func (s *sleepRecorder) count(d time.Duration) int {
	n := 0
	for _, got := range s.sleeps {
		if got == d {
			n++
		}
	}
	return n
}

func slicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
