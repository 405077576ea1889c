// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidDirName is returned when a configured name is empty or contains
	// a path separator. Both inventory_dir_name and manifest_name must be
	// single path components.
	ErrInvalidDirName = errors.New("invalid directory or file name")
)

type (
	// ColorScheme selects the terminal color scheme for styled output.
	ColorScheme string

	// UIConfig groups user-interface related settings.
	UIConfig struct {
		// ColorScheme selects auto, dark, or light rendering.
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		// Verbose enables per-item diagnostics (copy/skip lines). Default true;
		// the --quiet flag overrides it.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the root pbinv configuration.
	Config struct {
		// InventoryDirName is the name of the inventory directory created next
		// to the scan root (one level up).
		InventoryDirName string `mapstructure:"inventory_dir_name"`
		// ManifestName is the file name of the CSV manifest inside the
		// inventory directory.
		ManifestName string `mapstructure:"manifest_name"`
		// UI holds presentation settings.
		UI UIConfig `mapstructure:"ui"`
	}
)

// Validate checks that the ColorScheme is one of the recognized values.
func (s ColorScheme) Validate() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be auto, dark, or light)", ErrInvalidColorScheme, string(s))
	}
}

// StylePath maps the scheme to a glamour style name. Auto falls back to dark
// since glamour has no "auto" style.
func (s ColorScheme) StylePath() string {
	if s == ColorSchemeLight {
		return "light"
	}
	return "dark"
}

// Validate checks the configuration for values that the CUE schema cannot
// express: single-component names and a recognized color scheme.
func (c *Config) Validate() error {
	if err := validateName("inventory_dir_name", c.InventoryDirName); err != nil {
		return err
	}
	if err := validateName("manifest_name", c.ManifestName); err != nil {
		return err
	}
	return c.UI.ColorScheme.Validate()
}

// validateName rejects empty names and names containing path separators.
func validateName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidDirName, field)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %s %q must not contain path separators", ErrInvalidDirName, field, name)
	}
	return nil
}

// DefaultConfig returns the built-in configuration defaults.
func DefaultConfig() *Config {
	return &Config{
		InventoryDirName: "inventory",
		ManifestName:     "manifest.csv",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     true,
		},
	}
}
