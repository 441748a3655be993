// Package config handles citation workspace configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents workspace configuration stored in .cbib/config.yml.
type Config struct {
	Bibliography string `yaml:"bibliography,omitempty"` // Output path for the exported .bib file
	DefaultApp   string `yaml:"default_app,omitempty"`  // App recorded on entries added without one
	Contact      string `yaml:"contact,omitempty"`      // Mailto for polite doi.org requests
}

const (
	CbibDir    = ".cbib"
	ConfigFile = "config.yml"
	DBFile     = "citations.db"

	// DefaultBibliography is used when no output path is configured.
	DefaultBibliography = "bibliography.bib"
)

// CbibPath returns the path to the .cbib directory from a workspace root.
func CbibPath(root string) string {
	return filepath.Join(root, CbibDir)
}

// ConfigPath returns the path to config.yml from a workspace root.
func ConfigPath(root string) string {
	return filepath.Join(root, CbibDir, ConfigFile)
}

// DBPath returns the path to citations.db from a workspace root.
func DBPath(root string) string {
	return filepath.Join(root, CbibDir, DBFile)
}

// BibliographyPath returns the configured bibliography output path, resolved
// against the workspace root when relative.
func (c *Config) BibliographyPath(root string) string {
	path := c.Bibliography
	if path == "" {
		path = DefaultBibliography
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// IsWorkspace checks if the given path contains a cbib workspace.
func IsWorkspace(root string) bool {
	info, err := os.Stat(CbibPath(root))
	return err == nil && info.IsDir()
}

// FindWorkspace walks up from the given path to find a cbib workspace.
// Returns the workspace root path or an error if not found.
func FindWorkspace(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsWorkspace(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a cbib workspace (no .cbib directory found)")
		}
		abs = parent
	}
}

// Load reads configuration from the workspace at the given root. A missing
// config file yields an empty config, not an error.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the workspace at the given root.
func (c *Config) Save(root string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
