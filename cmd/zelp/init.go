package main

import (
	"fmt"
	"os"
	"path/filepath"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/grovetools/core/tui/theme"
	"github.com/grovetools/zelp/internal/config"
	"github.com/spf13/cobra"
)

var ulogInit = grovelogging.NewUnifiedLogger("zelp.init")

var (
	initFormat string
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter session config to the current directory",
	Long: `Write a default session config to .zelp.yml (or .zelp.toml with --format toml)
in the current directory. An existing file is left untouched unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		switch config.Format(initFormat) {
		case config.FormatYAML:
			name = config.DefaultFileName
		case config.FormatTOML:
			name = ".zelp.toml"
		default:
			return fmt.Errorf("unsupported format %q (use yaml or toml)", initFormat)
		}

		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		path := filepath.Join(wd, name)

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := config.Save(path, config.Default()); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		ulogInit.Success("Config written").
			Field("path", path).
			Field("format", initFormat).
			Pretty(fmt.Sprintf("%s Wrote %s\n\nEdit it, then run:\n  zelp load", theme.IconSuccess, path)).
			PrettyOnly().
			Emit()
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initFormat, "format", string(config.FormatYAML), "Config format: yaml or toml")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}
