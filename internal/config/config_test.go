package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zhubert/caesar/internal/controller"
	"github.com/zhubert/caesar/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Shift != 6 || cfg.Direction != "encrypt" || cfg.Theme != DefaultTheme {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath = %q, want %q", cfg.FilePath(), path)
	}
}

func TestLoadFrom_File(t *testing.T) {
	path := writeConfig(t, "shift: 13\ndirection: decrypt\ntheme: nord\n")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Shift != 13 {
		t.Errorf("Shift = %d, want 13", cfg.Shift)
	}
	if cfg.InitialDirection() != controller.Decrypt {
		t.Errorf("direction = %v, want decrypt", cfg.InitialDirection())
	}
	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q, want nord", cfg.Theme)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "theme: dracula\n")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Shift != 6 || cfg.InitialDirection() != controller.Encrypt {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind errors.Kind
	}{
		{"shift too large", "shift: 26\n", errors.KindInvalid},
		{"shift zero", "shift: 0\n", errors.KindInvalid},
		{"bad direction", "direction: sideways\n", errors.KindInvalid},
		{"malformed yaml", "shift: [1, 2\n", errors.KindConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("kind = %v, want %v (%v)", errors.GetKind(err), tt.kind, err)
			}
		})
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "shift: 3\ndirection: encrypt\n")
	t.Setenv(EnvShift, "20")
	t.Setenv(EnvDirection, "decrypt")
	t.Setenv(EnvTheme, "gruvbox")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Shift != 20 || cfg.InitialDirection() != controller.Decrypt || cfg.Theme != "gruvbox" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadFrom_EnvShiftNotInteger(t *testing.T) {
	t.Setenv(EnvShift, "many")
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, errors.KindInvalid) {
		t.Errorf("expected invalid error, got %v", err)
	}
}

func TestLoad_UsesHomeDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".caesar")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("shift: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Shift != 9 {
		t.Errorf("Shift = %d, want 9", cfg.Shift)
	}
}
