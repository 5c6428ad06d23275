package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

const sampleConfig = `session_name: e2e
shell_command_before: echo ready
tabs:
  - name: editor
    focus: true
    commands: ["vim"]
  - name: logs
    commands: ["tail -f /dev/null"]
`

// setupWorkDir creates an empty directory for the scenario and records it.
func setupWorkDir(ctx *harness.Context) error {
	dir := ctx.NewDir("work")
	if err := fs.CreateDir(dir); err != nil {
		return fmt.Errorf("failed to create work directory: %w", err)
	}
	ctx.Set("work_dir", dir)
	return nil
}

// setupSampleConfig writes sampleConfig as the default session file.
func setupSampleConfig(ctx *harness.Context) error {
	if err := setupWorkDir(ctx); err != nil {
		return err
	}
	path := filepath.Join(ctx.GetString("work_dir"), ".zelp.yml")
	if err := fs.WriteString(path, sampleConfig); err != nil {
		return fmt.Errorf("failed to write .zelp.yml: %w", err)
	}
	return nil
}

// ZelpInitScenario tests the 'zelp init' command
func ZelpInitScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "zelp-init-command",
		Steps: []harness.Step{
			harness.NewStep("Setup empty directory", setupWorkDir),
			harness.NewStep("Run 'zelp init'", func(ctx *harness.Context) error {
				dir := ctx.GetString("work_dir")
				result, err := runZelp(ctx, dir, "init")
				if err != nil {
					return err
				}
				if err := assert.Equal(0, result.ExitCode, "zelp init should exit successfully"); err != nil {
					return err
				}

				data, err := os.ReadFile(filepath.Join(dir, ".zelp.yml"))
				if err != nil {
					return fmt.Errorf("init should write .zelp.yml: %w", err)
				}
				content := string(data)
				if err := assert.Contains(content, "session_name: default", "Should write the default session name"); err != nil {
					return err
				}
				return assert.Contains(content, "pane1", "Should write the default tab")
			}),
			harness.NewStep("Refuse to overwrite", func(ctx *harness.Context) error {
				result, err := runZelp(ctx, ctx.GetString("work_dir"), "init")
				if err != nil {
					return err
				}
				if err := assert.Equal(1, result.ExitCode, "zelp init should fail when the file exists"); err != nil {
					return err
				}
				return assert.Contains(result.Stderr, "already exists", "Should explain why init failed")
			}),
			harness.NewStep("Overwrite with --force", func(ctx *harness.Context) error {
				result, err := runZelp(ctx, ctx.GetString("work_dir"), "init", "--force")
				if err != nil {
					return err
				}
				return assert.Equal(0, result.ExitCode, "zelp init --force should overwrite")
			}),
		},
	}
}

// ZelpInitTomlScenario tests 'zelp init --format toml' followed by 'zelp check'
func ZelpInitTomlScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "zelp-init-toml",
		Steps: []harness.Step{
			harness.NewStep("Setup empty directory", setupWorkDir),
			harness.NewStep("Run 'zelp init --format toml' and check it", func(ctx *harness.Context) error {
				dir := ctx.GetString("work_dir")
				result, err := runZelp(ctx, dir, "init", "--format", "toml")
				if err != nil {
					return err
				}
				if err := assert.Equal(0, result.ExitCode, "zelp init --format toml should exit successfully"); err != nil {
					return err
				}

				result, err = runZelp(ctx, dir, "check")
				if err != nil {
					return err
				}
				if err := assert.Equal(0, result.ExitCode, "zelp check should accept the scaffolded toml"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "pane1", "Should show the default tab")
			}),
		},
	}
}

// ZelpCheckScenario tests the 'zelp check' command
func ZelpCheckScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "zelp-check-command",
		Steps: []harness.Step{
			harness.NewStep("Setup sample config", setupSampleConfig),
			harness.NewStep("Run 'zelp check'", func(ctx *harness.Context) error {
				result, err := runZelp(ctx, ctx.GetString("work_dir"), "check")
				if err != nil {
					return err
				}
				if err := assert.Equal(0, result.ExitCode, "zelp check should exit successfully"); err != nil {
					return err
				}
				for _, want := range []string{"e2e", "editor", "logs", "echo ready", "tail -f /dev/null"} {
					if err := assert.Contains(result.Stdout, want, "Should show "+want); err != nil {
						return err
					}
				}
				return nil
			}),
			harness.NewStep("Run 'zelp check --json'", func(ctx *harness.Context) error {
				dir := ctx.GetString("work_dir")
				result, err := runZelp(ctx, dir, "check", filepath.Join(dir, ".zelp.yml"), "--json")
				if err != nil {
					return err
				}
				if err := assert.Equal(0, result.ExitCode, "zelp check --json should exit successfully"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, `"session_name": "e2e"`, "Should print the parsed config as JSON")
			}),
		},
	}
}

// ZelpCheckInvalidScenario tests that 'zelp check' rejects an invalid config
func ZelpCheckInvalidScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "zelp-check-invalid",
		Steps: []harness.Step{
			harness.NewStep("Setup invalid config", func(ctx *harness.Context) error {
				if err := setupWorkDir(ctx); err != nil {
					return err
				}
				path := filepath.Join(ctx.GetString("work_dir"), ".zelp.yml")
				return fs.WriteString(path, "tabs:\n  - name: orphan\n")
			}),
			harness.NewStep("Run 'zelp check'", func(ctx *harness.Context) error {
				result, err := runZelp(ctx, ctx.GetString("work_dir"), "check")
				if err != nil {
					return err
				}
				if err := assert.Equal(1, result.ExitCode, "zelp check should fail on an invalid config"); err != nil {
					return err
				}
				return assert.Contains(result.Stderr, "session_name is required", "Should name the missing field")
			}),
		},
	}
}

// ZelpLoadMissingConfigScenario tests 'zelp load' without any config file
func ZelpLoadMissingConfigScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "zelp-load-missing-config",
		Steps: []harness.Step{
			harness.NewStep("Setup empty directory", setupWorkDir),
			harness.NewStep("Run 'zelp load'", func(ctx *harness.Context) error {
				result, err := runZelp(ctx, ctx.GetString("work_dir"), "load")
				if err != nil {
					return err
				}
				if err := assert.Equal(1, result.ExitCode, "zelp load should fail without a config"); err != nil {
					return err
				}
				return assert.Contains(result.Stderr, ".zelp.yml", "Should mention the expected file name")
			}),
		},
	}
}
