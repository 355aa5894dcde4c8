package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestManager(t *testing.T, level string) (*Manager, string) {
	t.Helper()
	logFile := filepath.Join(t.TempDir(), "logs", "cleandeps.log")
	mgr, err := NewManager(Config{FilePath: logFile, Level: level})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return mgr, logFile
}

func TestNewManager_RequiresPath(t *testing.T) {
	if _, err := NewManager(Config{}); err == nil {
		t.Fatal("NewManager() with empty FilePath should fail")
	}
}

func TestNewManager_CreatesDirectory(t *testing.T) {
	mgr, logFile := newTestManager(t, "info")
	defer func() { _ = mgr.Close() }()

	if _, err := os.Stat(filepath.Dir(logFile)); err != nil {
		t.Errorf("log directory not created: %v", err)
	}
	if mgr.Path() != logFile {
		t.Errorf("Path() = %q, want %q", mgr.Path(), logFile)
	}
}

func TestManager_For(t *testing.T) {
	mgr, _ := newTestManager(t, "debug")
	defer func() { _ = mgr.Close() }()

	logger := mgr.For("scan")
	if logger == nil {
		t.Fatal("For() returned nil")
	}
	if logger.Scope() != "scan" {
		t.Errorf("Scope() = %q, want %q", logger.Scope(), "scan")
	}
	if mgr.For("scan") != logger {
		t.Error("For() should return cached logger for same scope")
	}
	if mgr.For("remove") == logger {
		t.Error("For() should return different logger for different scope")
	}
}

func TestManager_LoggingToFile(t *testing.T) {
	mgr, logFile := newTestManager(t, "debug")

	mgr.For("remove").With("target", "/r/a/node_modules").Error("delete failed", "error", errors.New("permission denied"))
	_ = mgr.Close()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	content := string(data)
	for _, want := range []string{"delete failed", `"logger":"remove"`, "/r/a/node_modules", "permission denied"} {
		if !strings.Contains(content, want) {
			t.Errorf("log file should contain %q, got: %s", want, content)
		}
	}
}

func TestManager_LevelFilter(t *testing.T) {
	mgr, logFile := newTestManager(t, "warn")

	logger := mgr.For("scan")
	logger.Debug("debug line")
	logger.Info("info line")
	logger.Warn("warn line")
	_ = mgr.Close()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	content := string(data)
	if strings.Contains(content, "debug line") || strings.Contains(content, "info line") {
		t.Errorf("entries below warn should be filtered, got: %s", content)
	}
	if !strings.Contains(content, "warn line") {
		t.Errorf("warn entry missing, got: %s", content)
	}
}

func TestParseZapLevel_Fallback(t *testing.T) {
	if got := parseZapLevel("verbose"); got.String() != "info" {
		t.Errorf("parseZapLevel(verbose) = %s, want info", got)
	}
	if got := parseZapLevel(""); got.String() != "info" {
		t.Errorf("parseZapLevel(\"\") = %s, want info", got)
	}
	if got := parseZapLevel("error"); got.String() != "error" {
		t.Errorf("parseZapLevel(error) = %s, want error", got)
	}
}
