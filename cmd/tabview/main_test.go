package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggerDisabled(t *testing.T) {
	logger, closeLog, err := setupLogger("")
	if err != nil {
		t.Fatalf("setupLogger(\"\") error = %v", err)
	}
	defer closeLog()
	if logger == nil {
		t.Fatal("setupLogger(\"\") returned nil logger")
	}
	// Must not panic with no destination.
	logger.Error("dropped")
}

func TestSetupLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabview.log")
	logger, closeLog, err := setupLogger(path)
	if err != nil {
		t.Fatalf("setupLogger(%q) error = %v", path, err)
	}
	logger.Error("something broke", "err", "boom")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "something broke") {
		t.Errorf("log file %q missing entry", string(data))
	}
}

func TestSetupLoggerBadPath(t *testing.T) {
	if _, _, err := setupLogger(filepath.Join(t.TempDir(), "missing", "tabview.log")); err == nil {
		t.Error("setupLogger() with unwritable path should error")
	}
}
