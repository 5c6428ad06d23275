package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/tend/pkg/command"
	"github.com/grovetools/tend/pkg/harness"
)

// FindProjectBinary locates the zelp binary under test: $ZELP_BINARY when set,
// otherwise bin/zelp at the module root.
func FindProjectBinary() (string, error) {
	if bin := os.Getenv("ZELP_BINARY"); bin != "" {
		return bin, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			bin := filepath.Join(dir, "bin", "zelp")
			if _, err := os.Stat(bin); err != nil {
				return "", fmt.Errorf("zelp binary not found at %s (run 'go build -o bin/zelp ./cmd/zelp' or set ZELP_BINARY)", bin)
			}
			return bin, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("module root not found from working directory")
		}
		dir = parent
	}
}

// zelpResult is the outcome of one zelp invocation.
type zelpResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// runZelp runs the binary in dir with a per-scenario log file.
func runZelp(ctx *harness.Context, dir string, args ...string) (zelpResult, error) {
	bin, err := FindProjectBinary()
	if err != nil {
		return zelpResult{}, err
	}

	args = append(args, "--log-file", filepath.Join(dir, "zelp.log"))
	cmd := command.New(bin, args...).Dir(dir)
	result := cmd.Run()
	ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
	return zelpResult{Stdout: result.Stdout, Stderr: result.Stderr, ExitCode: result.ExitCode}, nil
}
