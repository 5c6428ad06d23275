package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	grovelogging "github.com/grovetools/core/logging"
	"github.com/grovetools/core/tui/theme"
	"github.com/grovetools/zelp/internal/config"
	"github.com/spf13/cobra"
)

var ulogCheck = grovelogging.NewUnifiedLogger("zelp.check")

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check [config_path]",
	Short: "Validate a config file and show the session it describes",
	Long:  "Parse and validate a session config without starting zellij.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath(args)
		if err != nil {
			return err
		}

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		if checkJSON {
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal config to JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Println(renderConfig(cfg))
		warnConfig("zelp.check", cfg)

		ulogCheck.Success("Config is valid").
			Field("path", path).
			Field("session", cfg.SessionName).
			Pretty(fmt.Sprintf("%s %s is valid", theme.IconSuccess, path)).
			PrettyOnly().
			Emit()
		return nil
	},
}

// renderConfig shows the session header and its tabs in creation order.
func renderConfig(cfg *config.SessionConfig) string {
	re := lipgloss.DefaultRenderer()
	baseStyle := re.NewStyle().Padding(0, 1)
	headerStyle := baseStyle.Bold(true).Foreground(lipgloss.Color("255"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4")).Bold(true)
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")).Bold(true)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Session:"), cfg.SessionName)
	if cfg.ShellCommandBefore != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Before each tab:"), cfg.ShellCommandBefore)
	}

	rows := make([][]string, 0, len(cfg.Tabs))
	focusIndex := cfg.LaunchOptions().FocusIndex()
	for i, tab := range cfg.Tabs {
		focus := ""
		if i+1 == focusIndex {
			focus = focusStyle.Render("*")
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), tab.Name, focus, strings.Join(tab.Commands, "\n")})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "Tab", "Focus", "Commands").
		Rows(rows...)

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return baseStyle
	})

	b.WriteString(t.String())
	return b.String()
}

// warnConfig reports legal but suspicious settings.
func warnConfig(component string, cfg *config.SessionConfig) {
	ulog := grovelogging.NewUnifiedLogger(component)
	for _, w := range cfg.Warnings() {
		ulog.Warn("Config warning").
			Field("session", cfg.SessionName).
			Field("warning", w).
			Pretty(theme.IconWarning + " " + w).
			PrettyOnly().
			Emit()
	}
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the parsed config as JSON")
}
