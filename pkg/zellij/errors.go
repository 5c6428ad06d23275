package zellij

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSessionExists is returned when the target session is already listed
	// before launch.
	ErrSessionExists = errors.New("session already exists")

	// ErrLaunch matches every *LaunchError.
	ErrLaunch = errors.New("zellij launch failed")
)

// LaunchError reports a zellij invocation that could not be started or waited on.
type LaunchError struct {
	Args []string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("zellij %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *LaunchError) Unwrap() []error {
	return []error{ErrLaunch, e.Err}
}

// SessionExitError reports how the attached session ended. It is not a
// bootstrap failure: the user's own session ended with an error status.
type SessionExitError struct {
	Session string
	Err     error
}

func (e *SessionExitError) Error() string {
	return fmt.Sprintf("session %q exited: %v", e.Session, e.Err)
}

func (e *SessionExitError) Unwrap() error {
	return e.Err
}

// exitCoder is satisfied by *exec.ExitError.
type exitCoder interface {
	ExitCode() int
}

func isExitStatus(err error) bool {
	var ec exitCoder
	return errors.As(err, &ec)
}
