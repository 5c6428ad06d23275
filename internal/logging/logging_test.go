package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      logrus.Level
	}{
		{-1, logrus.InfoLevel},
		{0, logrus.InfoLevel},
		{1, logrus.DebugLevel},
		{2, logrus.TraceLevel},
		{5, logrus.TraceLevel},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.verbosity); got != tt.want {
			t.Errorf("LevelFor(%d) = %s, want %s", tt.verbosity, got, tt.want)
		}
	}
}

func TestSetup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", DefaultFileName)
	logger := logrus.New()

	closer, err := Setup(logger, path, 1)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	logger.WithField("session", "dev").Debug("probing session")
	logger.Trace("hidden at debug level")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "probing session") || !strings.Contains(content, "session=dev") {
		t.Errorf("log should contain the debug entry, got: %s", content)
	}
	if strings.Contains(content, "hidden at debug level") {
		t.Error("trace entry should be filtered at debug level")
	}
}

func TestDefaultPath(t *testing.T) {
	if got := filepath.Base(DefaultPath()); got != DefaultFileName {
		t.Errorf("DefaultPath() base = %q, want %q", got, DefaultFileName)
	}
}
