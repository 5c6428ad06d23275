package zellij

import (
	"context"
	"strings"
)

// MatchMode selects how a session name is looked up in the list-sessions output.
type MatchMode int

const (
	// MatchSubstring reports a session as present when its name occurs anywhere
	// in the listing. "work" is found when only "ework" runs.
	MatchSubstring MatchMode = iota
	// MatchExact compares against the first field of each listed line.
	MatchExact
)

func (m MatchMode) String() string {
	switch m {
	case MatchExact:
		return "exact"
	default:
		return "substring"
	}
}

const noSessionsBanner = "No active zellij sessions"

// ListSessions returns the list-sessions output with escape sequences removed.
// zellij exits non-zero when no session is running; its output is still returned.
func (c *Client) ListSessions(ctx context.Context) (string, error) {
	args := ListSessions{}.Args()
	stdout, exitCode, err := c.runner.Output(ctx, c.binary, args...)
	if err != nil {
		c.logger.WithError(err).Error("failed to list zellij sessions")
		return "", &LaunchError{Args: args, Err: err}
	}
	if exitCode != 0 {
		c.logger.WithField("exit_code", exitCode).Debug("list-sessions exited non-zero")
	}
	return StripANSI(stdout), nil
}

func (c *Client) SessionExists(ctx context.Context, sessionName string) (bool, error) {
	listing, err := c.ListSessions(ctx)
	if err != nil {
		return false, err
	}
	return MatchSession(listing, sessionName, c.match), nil
}

// SessionNames parses a list-sessions listing into session names.
func SessionNames(listing string) []string {
	var names []string
	for _, line := range strings.Split(listing, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, noSessionsBanner) {
			continue
		}
		names = append(names, strings.Fields(line)[0])
	}
	return names
}

func MatchSession(listing, sessionName string, mode MatchMode) bool {
	if mode != MatchExact {
		return strings.Contains(listing, sessionName)
	}
	for _, name := range SessionNames(listing) {
		if name == sessionName {
			return true
		}
	}
	return false
}
