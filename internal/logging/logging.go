// Package logging configures the logrus file logger used by zelp.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// DefaultFileName is created in the user's home directory.
const DefaultFileName = ".zelp.log"

// DefaultPath returns ~/.zelp.log, falling back to the temp dir when the home
// directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), DefaultFileName)
	}
	return filepath.Join(home, DefaultFileName)
}

// LevelFor maps the number of -d flags to a log level.
func LevelFor(verbosity int) logrus.Level {
	switch {
	case verbosity <= 0:
		return logrus.InfoLevel
	case verbosity == 1:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// Setup points logger at path, truncating any previous run's log.
// The returned closer releases the file.
func Setup(logger *logrus.Logger, path string, verbosity int) (io.Closer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger.SetOutput(file)
	logger.SetLevel(LevelFor(verbosity))
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return file, nil
}
