package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/grovetools/core/tui/theme"
	"github.com/grovetools/zelp/internal/config"
	"github.com/grovetools/zelp/pkg/zellij"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var ulogLoad = grovelogging.NewUnifiedLogger("zelp.load")

var (
	loadExactMatch    bool
	loadProbeRetries  int
	loadProbeInterval time.Duration
	loadSettleDelay   time.Duration
)

var loadCmd = &cobra.Command{
	Use:   "load [config_path]",
	Short: "Create a zellij session from a config file",
	Long: `Create the zellij session described by a config file and attach to it.

Without a path, .zelp.yml, .zelp.yaml or .zelp.toml is read from the current
directory. The command fails if a session with the same name is already listed
by 'zellij list-sessions'. It returns once you leave the zellij session.

Examples:
  # Use the config in the current directory
  zelp load

  # Use an explicit file and compare session names exactly
  zelp load ~/work/api.zelp.toml --exact-match

  # Give a slow machine more time between actions
  zelp load --settle-delay 400ms`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if loadProbeRetries < 0 || loadProbeInterval < 0 || loadSettleDelay < 0 {
			return fmt.Errorf("probe retries and delays must not be negative")
		}

		path, err := resolveConfigPath(args)
		if err != nil {
			return err
		}

		logrus.WithField("path", path).Info("Loading config")
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"session": cfg.SessionName, "tabs": len(cfg.Tabs)}).Debug("Config loaded")
		warnConfig("zelp.load", cfg)

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			ulogLoad.Warn("Stdin is not a terminal").
				Pretty(theme.IconWarning + " stdin is not a terminal; zellij may refuse to attach").
				PrettyOnly().
				Emit()
		}

		mode := zellij.MatchSubstring
		if loadExactMatch {
			mode = zellij.MatchExact
		}
		client, err := zellij.NewClient(zellij.WithMatchMode(mode))
		if err != nil {
			return fmt.Errorf("failed to create zellij client: %w", err)
		}

		timing := zellij.Timing{
			ProbeRetries:  loadProbeRetries,
			ProbeInterval: loadProbeInterval,
			SettleDelay:   loadSettleDelay,
		}
		orch := zellij.NewOrchestrator(client, zellij.WithTiming(timing))

		ulogLoad.Progress("Starting session").
			Field("session", cfg.SessionName).
			Field("config", path).
			Pretty(fmt.Sprintf("%s Starting zellij session '%s' with %d tab(s)...", theme.IconRunning, cfg.SessionName, len(cfg.Tabs))).
			PrettyOnly().
			Emit()

		err = orch.Launch(context.Background(), cfg.LaunchOptions())

		var exitErr *zellij.SessionExitError
		switch {
		case errors.As(err, &exitErr):
			ulogLoad.Warn("Session exited with error").
				Field("session", cfg.SessionName).
				Field("error", exitErr.Err.Error()).
				Pretty(fmt.Sprintf("%s Session '%s' ended: %v", theme.IconWarning, cfg.SessionName, exitErr.Err)).
				PrettyOnly().
				Emit()
			return nil
		case errors.Is(err, zellij.ErrSessionExists):
			return fmt.Errorf("%w\n\nTo attach to it, run:\n  zellij attach %s", err, cfg.SessionName)
		case err != nil:
			return fmt.Errorf("failed to launch session: %w", err)
		}

		ulogLoad.Success("Session closed").
			Field("session", cfg.SessionName).
			Pretty(fmt.Sprintf("%s Session '%s' closed", theme.IconSuccess, cfg.SessionName)).
			PrettyOnly().
			Emit()
		return nil
	},
}

func init() {
	defaults := zellij.DefaultTiming()
	loadCmd.Flags().BoolVar(&loadExactMatch, "exact-match", false, "Match session names exactly instead of by substring")
	loadCmd.Flags().IntVar(&loadProbeRetries, "probe-retries", defaults.ProbeRetries, "How many times to look for the new session before continuing")
	loadCmd.Flags().DurationVar(&loadProbeInterval, "probe-interval", defaults.ProbeInterval, "Delay between session probes")
	loadCmd.Flags().DurationVar(&loadSettleDelay, "settle-delay", defaults.SettleDelay, "Delay after each tab action")
}
