// Package config loads and watches the fontsized configuration.
package config

import (
	"os"
	"path/filepath"
)

// Config represents the complete configuration for fontsized.
type Config struct {
	Host      HostConfig      `mapstructure:"host" toml:"host" json:"host"`
	Resources ResourcesConfig `mapstructure:"resources" toml:"resources" json:"resources"`
	Resize    ResizeConfig    `mapstructure:"resize" toml:"resize" json:"resize"`
	DPI       DPIConfig       `mapstructure:"dpi" toml:"dpi" json:"dpi"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging" json:"logging"`
}

// HostConfig identifies the terminal host being driven.
type HostConfig struct {
	// Prefix is the resource name prefix the host reads font settings
	// under (e.g. "URxvt" for "URxvt.font").
	Prefix string `mapstructure:"prefix" toml:"prefix" json:"prefix"`
	// TTY is the terminal device control sequences are written to.
	TTY string `mapstructure:"tty" toml:"tty" json:"tty"`
}

// ResourcesConfig locates the file-based resource database.
type ResourcesConfig struct {
	// BaseFile is the resource file xrdb loads from and edits back to.
	BaseFile string `mapstructure:"base_file" toml:"base_file" json:"base_file"`
}

// ResizeConfig controls size stepping.
type ResizeConfig struct {
	// RestrictedFamily is the font family limited to a fixed size ladder,
	// matched as a case-insensitive prefix of the descriptor family.
	RestrictedFamily string `mapstructure:"restricted_family" toml:"restricted_family" json:"restricted_family"`
	// RestrictSizes enables ladder stepping for the restricted family.
	RestrictSizes bool `mapstructure:"restrict_sizes" toml:"restrict_sizes" json:"restrict_sizes"`
	// Sizes is the increasing ladder of supported pixel sizes.
	Sizes []int `mapstructure:"sizes" toml:"sizes" json:"sizes"`
}

// DPIConfig controls automatic per-monitor font scaling.
type DPIConfig struct {
	// Scale enables rescaling fonts when the window changes monitors.
	Scale bool `mapstructure:"scale" toml:"scale" json:"scale"`
	// Baseline is the DPI at which configured pixel sizes apply as-is.
	Baseline int `mapstructure:"baseline" toml:"baseline" json:"baseline"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" toml:"format" json:"format"`
}

// Default configuration constants
const (
	defaultPrefix   = "URxvt"
	defaultTTY      = "/dev/tty"
	defaultBaseline = 75 // DPI

	defaultRestrictedFamily = "Monaco"

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// defaultSizes is the Monaco bitmap size ladder.
var defaultSizes = []int{8, 9, 10, 11, 13, 15, 16, 18, 21, 22, 28}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Host: HostConfig{
			Prefix: defaultPrefix,
			TTY:    defaultTTY,
		},
		Resources: ResourcesConfig{
			BaseFile: defaultBaseFile(),
		},
		Resize: ResizeConfig{
			RestrictedFamily: defaultRestrictedFamily,
			RestrictSizes:    true,
			Sizes:            append([]int(nil), defaultSizes...),
		},
		DPI: DPIConfig{
			Scale:    true,
			Baseline: defaultBaseline,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

func defaultBaseFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".Xdefaults"
	}
	return filepath.Join(home, ".Xdefaults")
}

// GetConfigDir returns the directory the config file is looked up in.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "fontsized"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fontsized"), nil
}
