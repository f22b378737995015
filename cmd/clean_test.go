package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhubert/caesar/internal/logger"
)

// useLogFile points the logger at path for the duration of the test.
func useLogFile(t *testing.T, path string) {
	t.Helper()
	logger.Reset()
	if err := logger.Init(path); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		logger.Reset()
		logger.Init(os.DevNull)
	})
}

func TestClean_RemovesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caesar.log")
	useLogFile(t, path)
	logger.Info("something worth clearing")

	out, err := execute(t, "", "clean")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Removed "+path) {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("log file still exists: %v", err)
	}

	out, err = execute(t, "", "clean")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No log files") {
		t.Errorf("second clean output = %q", out)
	}
}

func TestClean_RejectsArgs(t *testing.T) {
	if _, err := execute(t, "", "clean", "extra"); err == nil {
		t.Error("clean should not accept arguments")
	}
}

func TestLogFileFlag(t *testing.T) {
	isolate(t)
	logger.Reset()
	t.Cleanup(func() {
		logger.Reset()
		logger.Init(os.DevNull)
	})

	path := filepath.Join(t.TempDir(), "run.log")
	if _, err := execute(t, "", "encrypt", "--log-file", path, "abc"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("--log-file was not used: %v", err)
	}
	if !strings.Contains(string(data), "Logger initialized") || !strings.Contains(string(data), "run=") {
		t.Errorf("log content = %q", data)
	}

	// The headless path closes the log when it finishes.
	logger.Info("written after encrypt returned")
	data, _ = os.ReadFile(path)
	if strings.Contains(string(data), "written after encrypt returned") {
		t.Error("log file should be closed once encrypt returns")
	}
}
