package observability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWritesComponent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := NewLogger("fetcher", path, "info")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.With("client").Infof("fetched %s", "bulbasaur")
	logger.Debugf("hidden %d", 1)
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"logger":"fetcher.client"`) {
		t.Fatalf("expected logger name, got %q", out)
	}
	if !strings.Contains(out, "fetched bulbasaur") {
		t.Fatalf("expected info message, got %q", out)
	}
	if strings.Contains(out, "hidden 1") {
		t.Fatalf("expected debug message to be filtered, got %q", out)
	}
}

func TestNewLoggerEmptyPathIsNop(t *testing.T) {
	logger, err := NewLogger("ui", "", "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Errorf("nothing %d", 1)
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if _, err := NewLogger("ui", path, "loud"); err == nil {
		t.Fatalf("expected error for bad level")
	}
}

func TestZeroLoggerIsUsable(t *testing.T) {
	var l Logger
	l.Warnf("ignored")
	l.With("x").Infof("ignored")
}
