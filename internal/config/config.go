// Package config handles configuration loading and defaults for the todo CLI.
// Configuration is loaded from XDG-compliant paths (typically
// ~/.config/todo/config.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"todo/internal/fsutil"

	"gopkg.in/yaml.v3"
)

// TasksFileName is the backing document inside the data directory.
const TasksFileName = "tasks.json"

// Config represents the application configuration.
type Config struct {
	// DataDir overrides the default data directory (~/.todo)
	DataDir string `yaml:"data_dir,omitempty"`

	// NoColor disables all colored output
	NoColor bool `yaml:"no_color,omitempty"`

	// Theme customizes the output colors
	Theme ThemeConfig `yaml:"theme,omitempty"`
}

// ThemeConfig defines output color settings. Values are hex colors,
// e.g. "#10B981"; empty values fall back to built-in defaults.
type ThemeConfig struct {
	Success string `yaml:"success,omitempty"`
	Error   string `yaml:"error,omitempty"`
	Info    string `yaml:"info,omitempty"`
	Warning string `yaml:"warning,omitempty"`
	Accent  string `yaml:"accent,omitempty"`
	Muted   string `yaml:"muted,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir: defaultDataDir(),
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".todo"
	}
	return filepath.Join(home, ".todo")
}

// configDir returns the configuration directory path (XDG compliant).
func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "todo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "todo")
}

func configPath() string {
	dir := configDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads configuration from disk, merging with defaults.
// If no config file exists, returns default configuration.
func Load() (*Config, error) {
	cfg := Default()

	path := configPath()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var userCfg Config
	if err := yaml.Unmarshal(data, &userCfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.merge(&userCfg)
	return cfg, nil
}

// merge applies values set in other on top of the defaults.
func (c *Config) merge(other *Config) {
	if other.DataDir != "" {
		c.DataDir = other.DataDir
	}
	if other.NoColor {
		c.NoColor = true
	}
	if other.Theme.Success != "" {
		c.Theme.Success = other.Theme.Success
	}
	if other.Theme.Error != "" {
		c.Theme.Error = other.Theme.Error
	}
	if other.Theme.Info != "" {
		c.Theme.Info = other.Theme.Info
	}
	if other.Theme.Warning != "" {
		c.Theme.Warning = other.Theme.Warning
	}
	if other.Theme.Accent != "" {
		c.Theme.Accent = other.Theme.Accent
	}
	if other.Theme.Muted != "" {
		c.Theme.Muted = other.Theme.Muted
	}
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	path := configPath()
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(path, data, 0600)
}

// TasksPath returns the resolved path of the tasks file.
func (c *Config) TasksPath() string {
	return filepath.Join(c.ResolveDataDir(), TasksFileName)
}

// ResolveDataDir returns the data directory with ~ expanded.
func (c *Config) ResolveDataDir() string {
	dir := c.DataDir
	if dir == "" {
		return defaultDataDir()
	}
	if dir == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return dir
	}
	if strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(dir, "~/"))
		}
	}
	return dir
}
