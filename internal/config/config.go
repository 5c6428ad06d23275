// Package config loads and writes zelp session files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/grovetools/zelp/pkg/zellij"
	"gopkg.in/yaml.v3"
)

//go:generate sh -c "cd ../.. && go run ./tools/schema-generator/"

// DefaultFileName is the session file written by `zelp init` and read by
// `zelp load` when no path is given.
const DefaultFileName = ".zelp.yml"

// defaultFileNames are tried in order by FindDefault.
var defaultFileNames = []string{DefaultFileName, ".zelp.yaml", ".zelp.toml"}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid session config")

// Format is the on-disk encoding of a session file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the encoding from the file extension; anything that is not
// .toml is read as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// SessionConfig describes the zellij session to bootstrap.
type SessionConfig struct {
	SessionName        string      `yaml:"session_name" toml:"session_name" json:"session_name" jsonschema:"description=Name of the zellij session to create"`
	ShellCommandBefore string      `yaml:"shell_command_before,omitempty" toml:"shell_command_before,omitempty" json:"shell_command_before,omitempty" jsonschema:"description=Command typed into every tab before its own commands"`
	Tabs               []TabConfig `yaml:"tabs" toml:"tabs" json:"tabs" jsonschema:"description=Tabs in creation order"`
}

// TabConfig describes a single tab. Commands run in order, one line each.
type TabConfig struct {
	Name     string   `yaml:"name" toml:"name" json:"name"`
	Focus    bool     `yaml:"focus,omitempty" toml:"focus,omitempty" json:"focus,omitempty" jsonschema:"description=Focus this tab once the session is ready"`
	Commands []string `yaml:"commands,omitempty" toml:"commands,omitempty" json:"commands,omitempty"`
}

// Default returns the starter configuration written by `zelp init`.
func Default() *SessionConfig {
	return &SessionConfig{
		SessionName:        "default",
		ShellCommandBefore: "ls",
		Tabs: []TabConfig{
			{Name: "pane1", Focus: true, Commands: []string{"nano"}},
		},
	}
}

// Load reads a session file from path and returns a validated SessionConfig.
func Load(path string) (*SessionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the given format into a validated SessionConfig.
func Parse(data []byte, format Format) (*SessionConfig, error) {
	var cfg SessionConfig
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Marshal encodes cfg in the given format.
func Marshal(cfg *SessionConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("failed to marshal toml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unsupported config format %q", format)
}

// Save writes cfg to path, encoded according to the path's extension.
func Save(path string, cfg *SessionConfig) error {
	data, err := Marshal(cfg, FormatFor(path))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// FindDefault returns the first default session file present in dir.
func FindDefault(dir string) (string, error) {
	for _, name := range defaultFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no %s found in %s: %w", strings.Join(defaultFileNames, ", "), dir, fs.ErrNotExist)
}

// normalize drops empty lists so decoded files compare equal regardless of
// whether `commands: []` or `tabs: []` was spelled out.
func (c *SessionConfig) normalize() {
	if len(c.Tabs) == 0 {
		c.Tabs = nil
	}
	for i := range c.Tabs {
		if len(c.Tabs[i].Commands) == 0 {
			c.Tabs[i].Commands = nil
		}
	}
}

func (c *SessionConfig) Validate() error {
	var problems []string
	if strings.TrimSpace(c.SessionName) == "" {
		problems = append(problems, "session_name is required")
	}
	for i, tab := range c.Tabs {
		if strings.TrimSpace(tab.Name) == "" {
			problems = append(problems, fmt.Sprintf("tabs[%d].name is required", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Warnings lists legal but probably unintended settings.
func (c *SessionConfig) Warnings() []string {
	var warnings []string
	if len(c.Tabs) == 0 {
		warnings = append(warnings, "no tabs configured; the session opens with a single default tab")
	}

	var focused []string
	for _, tab := range c.Tabs {
		if tab.Focus {
			focused = append(focused, tab.Name)
		}
	}
	if len(focused) > 1 {
		warnings = append(warnings, fmt.Sprintf("%d tabs set focus (%s); the last one wins", len(focused), strings.Join(focused, ", ")))
	}

	if strings.ContainsAny(c.SessionName, " \t") {
		warnings = append(warnings, "session_name contains whitespace; exact session matching compares the first word only")
	}
	return warnings
}

// LaunchOptions converts the config into orchestrator input.
func (c *SessionConfig) LaunchOptions() zellij.LaunchOptions {
	opts := zellij.LaunchOptions{
		SessionName:        c.SessionName,
		ShellCommandBefore: c.ShellCommandBefore,
		Tabs:               make([]zellij.TabOptions, len(c.Tabs)),
	}
	for i, tab := range c.Tabs {
		opts.Tabs[i] = zellij.TabOptions{
			Name:     tab.Name,
			Focus:    tab.Focus,
			Commands: append([]string(nil), tab.Commands...),
		}
	}
	return opts
}
