package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/core/version"
	"github.com/grovetools/zelp/internal/config"
	"github.com/grovetools/zelp/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	debugLevel int
	logFile    string
	logCloser  io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "zelp",
	Short: "Zellij session bootstrap tool",
	Long: `A CLI tool that creates a zellij session from a config file: it names the
session, opens and names its tabs, types each tab's commands and restores focus.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		closer, err := logging.Setup(logrus.StandardLogger(), logFile, debugLevel)
		if err != nil {
			return err
		}
		logCloser = closer
		logrus.WithField("command", cmd.Name()).Info("Starting zelp")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

// resolveConfigPath returns the explicit path argument or the default session
// file in the current directory.
func resolveConfigPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return config.FindDefault(wd)
}

func init() {
	vInfo := version.GetInfo()
	rootCmd.Version = vInfo.Version
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().CountVarP(&debugLevel, "debug", "d", "Increase log verbosity (-d debug, -dd trace)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logging.DefaultPath(), "Log file path")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("zelp failed")
		if logCloser != nil {
			logCloser.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
