package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/caesar/internal/cipher"
	"github.com/zhubert/caesar/internal/controller"
	"github.com/zhubert/caesar/internal/errors"
)

const (
	configDirName  = ".caesar"
	configFileName = "config.yaml"

	// DefaultTheme mirrors ui.DefaultTheme; config does not import ui.
	DefaultTheme = "dark-purple"
)

// Environment overrides, applied after the file.
const (
	EnvShift     = "CAESAR_SHIFT"
	EnvDirection = "CAESAR_DIRECTION"
	EnvTheme     = "CAESAR_THEME"
)

// Config holds the startup settings. It is read-only: caesar never writes
// it back, and nothing typed into the cipher fields is stored.
type Config struct {
	Shift     int    `yaml:"shift"`     // Initial shift, 1-25
	Direction string `yaml:"direction"` // "encrypt" or "decrypt"
	Theme     string `yaml:"theme"`     // UI theme name (e.g., "dark-purple", "nord")

	filePath string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Shift:     cipher.DefaultShift,
		Direction: controller.Encrypt.String(),
		Theme:     DefaultTheme,
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/"+configDirName, err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields the defaults.
// Keys absent from the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.ConfigLoadFailed(path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvShift); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("%s=%q is not an integer", EnvShift, v))
		}
		c.Shift = n
	}
	if v, ok := os.LookupEnv(EnvDirection); ok && v != "" {
		c.Direction = v
	}
	if v, ok := os.LookupEnv(EnvTheme); ok && v != "" {
		c.Theme = v
	}
	return nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.Shift < cipher.MinShift || c.Shift > cipher.MaxShift {
		return errors.ConfigInvalid(fmt.Sprintf("shift %d out of range %d-%d", c.Shift, cipher.MinShift, cipher.MaxShift))
	}
	if _, err := controller.ParseDirection(c.Direction); err != nil {
		return errors.ConfigInvalid(fmt.Sprintf("direction %q must be encrypt or decrypt", c.Direction))
	}
	return nil
}

// InitialDirection returns the parsed direction, defaulting to Encrypt.
func (c *Config) InitialDirection() controller.Direction {
	d, err := controller.ParseDirection(c.Direction)
	if err != nil {
		return controller.Encrypt
	}
	return d
}

// FilePath returns the path the config was loaded from.
func (c *Config) FilePath() string {
	return c.filePath
}
