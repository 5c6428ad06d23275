package zellij

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultBinary is the executable name resolved from PATH.
const DefaultBinary = "zellij"

type Client struct {
	binary string
	runner Runner
	match  MatchMode
	logger logrus.FieldLogger
}

type ClientOption func(*Client)

// WithBinary overrides the zellij executable.
func WithBinary(binary string) ClientOption {
	return func(c *Client) {
		c.binary = binary
	}
}

// WithMatchMode selects how SessionExists compares names.
func WithMatchMode(mode MatchMode) ClientOption {
	return func(c *Client) {
		c.match = mode
	}
}

func WithClientLogger(logger logrus.FieldLogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(opts ...ClientOption) (*Client, error) {
	c := NewClientWithRunner(NewExecRunner(), opts...)
	path, err := exec.LookPath(c.binary)
	if err != nil {
		return nil, fmt.Errorf("%s command not found in PATH: %w", c.binary, err)
	}
	c.binary = path
	return c, nil
}

// NewClientWithRunner creates a client that executes through runner.
// It does not check that the binary exists.
func NewClientWithRunner(runner Runner, opts ...ClientOption) *Client {
	c := &Client{
		binary: DefaultBinary,
		runner: runner,
		match:  MatchSubstring,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start launches cmd and returns without waiting for it.
func (c *Client) Start(ctx context.Context, cmd Command) (Process, error) {
	args := cmd.Args()
	_, interactive := cmd.(AttachSession)

	c.logger.WithField("args", strings.Join(args, " ")).Debug("starting zellij")
	proc, err := c.runner.Start(ctx, interactive, c.binary, args...)
	if err != nil {
		c.logger.WithError(err).WithField("args", strings.Join(args, " ")).Error("failed to start zellij")
		return nil, &LaunchError{Args: args, Err: err}
	}
	return proc, nil
}

// Run launches cmd and waits for it to finish. A non-zero exit is logged and
// otherwise ignored; zellij reports rejected actions that way.
func (c *Client) Run(ctx context.Context, cmd Command) error {
	proc, err := c.Start(ctx, cmd)
	if err != nil {
		return err
	}

	if err := proc.Wait(); err != nil {
		args := cmd.Args()
		if isExitStatus(err) {
			c.logger.WithError(err).WithField("args", strings.Join(args, " ")).Warn("zellij action exited with error status")
			return nil
		}
		return &LaunchError{Args: args, Err: fmt.Errorf("wait: %w", err)}
	}
	return nil
}
