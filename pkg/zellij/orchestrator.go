package zellij

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// State is a phase of a session bootstrap.
type State int

const (
	StateIdle State = iota
	StateLaunching
	StateWaitingForSession
	StateCreatingTabs
	StateConfiguringTabs
	StateRestoringFocus
	StateAttached
	StateExited
)

var stateNames = [...]string{
	StateIdle:              "idle",
	StateLaunching:         "launching",
	StateWaitingForSession: "waiting-for-session",
	StateCreatingTabs:      "creating-tabs",
	StateConfiguringTabs:   "configuring-tabs",
	StateRestoringFocus:    "restoring-focus",
	StateAttached:          "attached",
	StateExited:            "exited",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the default Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// StateHook is called after every transition.
type StateHook func(from, to State)

// Orchestrator bootstraps a zellij session one command at a time. zellij's
// action channel does not tolerate concurrent submissions against a session,
// so every command is waited on before the next one is issued.
type Orchestrator struct {
	client *Client
	timing Timing
	sleep  Sleeper
	logger logrus.FieldLogger
	hook   StateHook
}

type Option func(*Orchestrator)

func WithTiming(timing Timing) Option {
	return func(o *Orchestrator) {
		o.timing = timing
	}
}

func WithSleeper(sleep Sleeper) Option {
	return func(o *Orchestrator) {
		o.sleep = sleep
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

func WithStateHook(hook StateHook) Option {
	return func(o *Orchestrator) {
		o.hook = hook
	}
}

func NewOrchestrator(client *Client, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		client: client,
		timing: DefaultTiming(),
		sleep:  SleepContext,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// bootstrap carries the state of a single Launch call.
type bootstrap struct {
	opts    LaunchOptions
	session Process
	exitErr error
	log     logrus.FieldLogger
}

// Launch creates the session described by opts, configures its tabs and then
// blocks until the attached zellij process exits.
//
// Failures are not rolled back: a partially configured session stays running.
// When the session itself ends with an error, Launch returns a *SessionExitError.
func (o *Orchestrator) Launch(ctx context.Context, opts LaunchOptions) error {
	if opts.SessionName == "" {
		return fmt.Errorf("session name is required")
	}

	b := &bootstrap{
		opts: opts,
		log:  o.logger.WithField("session", opts.SessionName),
	}

	state := StateIdle
	for state != StateExited {
		next, err := o.step(ctx, state, b)
		if err != nil {
			b.log.WithError(err).WithField("state", state.String()).Error("bootstrap aborted")
			return err
		}
		b.log.WithFields(logrus.Fields{"from": state.String(), "to": next.String()}).Debug("state transition")
		if o.hook != nil {
			o.hook(state, next)
		}
		state = next
	}
	return b.exitErr
}

func (o *Orchestrator) step(ctx context.Context, state State, b *bootstrap) (State, error) {
	switch state {
	case StateIdle:
		return o.checkCollision(ctx, b)
	case StateLaunching:
		return o.launchSession(ctx, b)
	case StateWaitingForSession:
		return o.waitForSession(ctx, b)
	case StateCreatingTabs:
		return o.createTabs(ctx, b)
	case StateConfiguringTabs:
		return o.configureTabs(ctx, b)
	case StateRestoringFocus:
		return o.restoreFocus(ctx, b)
	case StateAttached:
		return o.waitForExit(b)
	}
	return StateExited, fmt.Errorf("unknown state %s", state)
}

func (o *Orchestrator) checkCollision(ctx context.Context, b *bootstrap) (State, error) {
	exists, err := o.client.SessionExists(ctx, b.opts.SessionName)
	if err != nil {
		return StateIdle, fmt.Errorf("failed to check session existence: %w", err)
	}
	if exists {
		return StateIdle, fmt.Errorf("%w: %s", ErrSessionExists, b.opts.SessionName)
	}
	return StateLaunching, nil
}

func (o *Orchestrator) launchSession(ctx context.Context, b *bootstrap) (State, error) {
	b.log.Info("launching zellij session")
	proc, err := o.client.Start(ctx, AttachSession{Session: b.opts.SessionName, Create: true})
	if err != nil {
		return StateLaunching, fmt.Errorf("failed to start session: %w", err)
	}
	b.session = proc
	return StateWaitingForSession, nil
}

// waitForSession polls list-sessions until the session shows up or the retry
// budget runs out. Running out is not an error; later actions may race zellij's
// startup.
func (o *Orchestrator) waitForSession(ctx context.Context, b *bootstrap) (State, error) {
	retries := o.timing.ProbeRetries
	for attempt := 1; attempt <= retries; attempt++ {
		exists, err := o.client.SessionExists(ctx, b.opts.SessionName)
		if err != nil {
			return StateWaitingForSession, fmt.Errorf("failed to probe session: %w", err)
		}
		if exists {
			b.log.WithField("attempt", attempt).Debug("session is visible")
			return StateCreatingTabs, nil
		}
		if attempt < retries {
			if err := o.sleep(ctx, o.timing.ProbeInterval); err != nil {
				return StateWaitingForSession, err
			}
		}
	}

	b.log.WithField("attempts", retries).Warn("session not visible yet, continuing")
	return StateCreatingTabs, nil
}

// createTabs adds the tabs beyond the one zellij opens with the session.
func (o *Orchestrator) createTabs(ctx context.Context, b *bootstrap) (State, error) {
	for i := 1; i < len(b.opts.Tabs); i++ {
		if err := o.client.Run(ctx, NewTab{Session: b.opts.SessionName}); err != nil {
			return StateCreatingTabs, fmt.Errorf("failed to create tab %d: %w", i+1, err)
		}
	}
	if err := o.sleep(ctx, o.timing.SettleDelay); err != nil {
		return StateCreatingTabs, err
	}
	return StateConfiguringTabs, nil
}

// configureTabs addresses tab i by index i+1, which relies on createTabs having
// opened the tabs in configuration order.
func (o *Orchestrator) configureTabs(ctx context.Context, b *bootstrap) (State, error) {
	session := b.opts.SessionName
	for i, tab := range b.opts.Tabs {
		index := i + 1
		b.log.WithFields(logrus.Fields{"tab": tab.Name, "index": index}).Info("configuring tab")

		cmds := []Command{
			GoToTab{Session: session, Index: index},
			RenameTab{Session: session, Name: tab.Name},
		}
		if b.opts.ShellCommandBefore != "" {
			cmds = append(cmds, WriteChars{Session: session, Text: b.opts.ShellCommandBefore})
		}
		for _, line := range tab.Commands {
			cmds = append(cmds, WriteChars{Session: session, Text: line})
		}

		for _, cmd := range cmds {
			if err := o.client.Run(ctx, cmd); err != nil {
				return StateConfiguringTabs, fmt.Errorf("failed to configure tab %q: %w", tab.Name, err)
			}
			if err := o.sleep(ctx, o.timing.SettleDelay); err != nil {
				return StateConfiguringTabs, err
			}
		}
	}
	return StateRestoringFocus, nil
}

func (o *Orchestrator) restoreFocus(ctx context.Context, b *bootstrap) (State, error) {
	index := b.opts.FocusIndex()
	b.log.WithField("index", index).Debug("restoring focus")
	if err := o.client.Run(ctx, GoToTab{Session: b.opts.SessionName, Index: index}); err != nil {
		return StateRestoringFocus, fmt.Errorf("failed to restore focus: %w", err)
	}
	return StateAttached, nil
}

func (o *Orchestrator) waitForExit(b *bootstrap) (State, error) {
	b.log.Info("session configured, waiting for zellij to exit")
	if err := b.session.Wait(); err != nil {
		b.log.WithError(err).Warn("zellij session exited with error")
		b.exitErr = &SessionExitError{Session: b.opts.SessionName, Err: err}
	}
	return StateExited, nil
}
