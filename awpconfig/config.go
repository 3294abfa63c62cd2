// Package awpconfig loads and saves settings for the emawp command-line
// tools from a TOML file, following the same per-OS config directory
// convention and BurntSushi/toml encoding used throughout the emulator
// family this kernel was lifted from.
package awpconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the settings read by cmd/emawp and cmd/emawp-inspect.
type Config struct {
	Display struct {
		NumberFormat string `toml:"number_format"` // hex, dec, bin
		Precision    int    `toml:"precision"`      // not read by cmd/emawp or cmd/emawp-inspect; both print ToDouble results with 10 digits
	} `toml:"display"`

	Arithmetic struct {
		DefaultRound bool `toml:"default_round"` // applied by FromDouble when -round isn't given
	} `toml:"arithmetic"`

	Trace struct {
		Enabled    bool   `toml:"enabled"`
		OutputFile string `toml:"output_file"`
	} `toml:"trace"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Display.NumberFormat = "hex"
	cfg.Display.Precision = 10
	cfg.Arithmetic.DefaultRound = true
	cfg.Trace.Enabled = false
	cfg.Trace.OutputFile = "emawp-trace.log"
	return cfg
}

// GetConfigPath returns the platform-specific config file path, creating
// its parent directory if needed.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "mera-awp")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "emawp.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "mera-awp")

	default:
		return "emawp.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "emawp.toml"
	}

	return filepath.Join(configDir, "emawp.toml")
}

// Load reads configuration from the default config path. A missing file
// is not an error: Load returns DefaultConfig() instead.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads configuration from path, starting from DefaultConfig()
// so a partial TOML file only overrides the fields it sets.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("awpconfig: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes c to the default config path.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes c to path in TOML form, creating its parent directory if
// needed.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("awpconfig: create dir %s: %w", dir, err)
	}

	f, err := os.Create(path) // #nosec G304 -- user-supplied config path
	if err != nil {
		return fmt.Errorf("awpconfig: create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("awpconfig: encode %s: %w", path, err)
	}

	return nil
}
