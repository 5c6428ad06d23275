package zellij

import (
	"context"
	"errors"
	"os/exec"
	"testing"
)

const listing = "ework [Created 3m ago]\nscratch [Created 1h ago] (EXITED - attach to resurrect)\n"

func TestMatchSession(t *testing.T) {
	tests := []struct {
		name    string
		listing string
		session string
		mode    MatchMode
		want    bool
	}{
		{name: "substring finds exact name", listing: listing, session: "ework", mode: MatchSubstring, want: true},
		{name: "substring false positive on suffix", listing: listing, session: "work", mode: MatchSubstring, want: true},
		{name: "substring miss", listing: listing, session: "dev", mode: MatchSubstring, want: false},
		{name: "exact finds name", listing: listing, session: "ework", mode: MatchExact, want: true},
		{name: "exact rejects suffix", listing: listing, session: "work", mode: MatchExact, want: false},
		{name: "exact finds exited session", listing: listing, session: "scratch", mode: MatchExact, want: true},
		{name: "exact ignores empty banner", listing: "No active zellij sessions found.\n", session: "No", mode: MatchExact, want: false},
		{name: "empty listing", listing: "", session: "dev", mode: MatchSubstring, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchSession(tt.listing, tt.session, tt.mode); got != tt.want {
				t.Errorf("MatchSession(%q, %s) = %v, want %v", tt.session, tt.mode, got, tt.want)
			}
		})
	}
}

func TestSessionNames(t *testing.T) {
	got := SessionNames(listing + "\n  \n")
	want := []string{"ework", "scratch"}
	if !slicesEqual(got, want) {
		t.Errorf("SessionNames() = %q, want %q", got, want)
	}
}

func TestClientSessionExists(t *testing.T) {
	tests := []struct {
		name      string
		output    fakeOutput
		mode      MatchMode
		wantExist bool
		wantErr   bool
	}{
		{
			name:      "listed session",
			output:    fakeOutput{Stdout: "\x1b[32;1mdev\x1b[m [Created 1s ago]\n"},
			wantExist: true,
		},
		{
			name:   "no sessions running exits 1",
			output: fakeOutput{Stdout: "No active zellij sessions found.\n", ExitCode: 1},
		},
		{
			name:      "substring collision",
			output:    fakeOutput{Stdout: "devbox [Created 1s ago]\n"},
			wantExist: true,
		},
		{
			name:   "exact mode avoids substring collision",
			output: fakeOutput{Stdout: "devbox [Created 1s ago]\n"},
			mode:   MatchExact,
		},
		{
			name:    "binary not found",
			output:  fakeOutput{Err: errors.New("exec: \"zellij\": executable file not found in $PATH")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := newFakeRunner(tt.output)
			client := NewClientWithRunner(runner, WithMatchMode(tt.mode))

			exists, err := client.SessionExists(context.Background(), "dev")
			if exists != tt.wantExist {
				t.Errorf("SessionExists() = %v, want %v", exists, tt.wantExist)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("SessionExists() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrLaunch) {
				t.Errorf("expected ErrLaunch, got %v", err)
			}

			calls := runner.trace()
			if len(calls) != 1 || calls[0] != "list-sessions" {
				t.Errorf("calls = %q, want a single list-sessions", calls)
			}
			if runner.calls[0].Name != DefaultBinary {
				t.Errorf("binary = %q, want %q", runner.calls[0].Name, DefaultBinary)
			}
		})
	}
}

func TestSessionExistsIntegration(t *testing.T) {
	if _, err := exec.LookPath(DefaultBinary); err != nil {
		t.Skip("zellij not available in PATH, skipping integration tests")
	}

	client, err := NewClient(WithMatchMode(MatchExact))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	exists, err := client.SessionExists(context.Background(), "zelp-non-existent-session-name")
	if err != nil {
		t.Errorf("SessionExists should not return error for non-existent session: %v", err)
	}
	if exists {
		t.Error("Expected non-existent session to return false")
	}
}
