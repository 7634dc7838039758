// Package prefs persists the local user preferences of the command line
// client, such as the dark mode toggle, as a YAML file in the XDG config
// directory.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	// AppName names the per-user directories of the application.
	AppName = "dorker"
	// FileName is the preferences file inside ConfigDir.
	FileName = "preferences.yaml"
)

// Preferences are the persisted user settings.
type Preferences struct {
	// DarkMode selects the dark color scheme.
	DarkMode bool `yaml:"darkMode"`
}

// ConfigDir returns the XDG config directory of the application.
// On Linux: ~/.config/dorker
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DataDir returns the XDG data directory of the application, where the
// default SQLite database lives.
// On Linux: ~/.local/share/dorker
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// DefaultPath returns the location of the preferences file.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), FileName)
}

// Load reads the preferences stored at path. A missing file yields the
// defaults.
func Load(path string) (*Preferences, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user preferences path
	if errors.Is(err, os.ErrNotExist) {
		return &Preferences{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read preferences: %w", err)
	}

	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("could not parse preferences: %w", err)
	}

	return &p, nil
}

// Save writes p to path, creating the parent directory when needed. The file
// is replaced atomically.
func Save(path string, p *Preferences) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("could not encode preferences: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("could not create preferences directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, FileName+".*")
	if err != nil {
		return fmt.Errorf("could not create preferences file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("could not write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace preferences: %w", err)
	}

	return nil
}
