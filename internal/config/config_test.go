package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DataDir == "" {
		t.Error("default DataDir should not be empty")
	}
	if !strings.HasSuffix(cfg.DataDir, ".todo") {
		t.Errorf("DataDir = %q, want path ending in .todo", cfg.DataDir)
	}
	if cfg.NoColor {
		t.Error("NoColor should default to false")
	}
}

func TestTasksPath(t *testing.T) {
	cfg := &Config{DataDir: "/var/lib/todo"}

	want := filepath.Join("/var/lib/todo", TasksFileName)
	if got := cfg.TasksPath(); got != want {
		t.Errorf("TasksPath() = %q, want %q", got, want)
	}
}

func TestResolveDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name    string
		dataDir string
		want    string
	}{
		{name: "absolute path", dataDir: "/data/todo", want: "/data/todo"},
		{name: "bare tilde", dataDir: "~", want: home},
		{name: "tilde prefix", dataDir: "~/tasks", want: filepath.Join(home, "tasks")},
		{name: "empty falls back to default", dataDir: "", want: filepath.Join(home, ".todo")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{DataDir: tt.dataDir}
			if got := cfg.ResolveDataDir(); got != tt.want {
				t.Errorf("ResolveDataDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != Default().DataDir {
		t.Errorf("DataDir = %q, want default", cfg.DataDir)
	}
}

func TestLoad_MergesUserConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "todo")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("mkdir fixture: %v", err)
	}
	doc := `
data_dir: /custom/data
no_color: true
theme:
  success: "#00FF00"
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(doc), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != "/custom/data" {
		t.Errorf("DataDir = %q, want /custom/data", cfg.DataDir)
	}
	if !cfg.NoColor {
		t.Error("NoColor should be true from config")
	}
	if cfg.Theme.Success != "#00FF00" {
		t.Errorf("Theme.Success = %q, want #00FF00", cfg.Theme.Success)
	}
	// Unset theme keys stay empty so built-in defaults apply downstream.
	if cfg.Theme.Error != "" {
		t.Errorf("Theme.Error = %q, want empty", cfg.Theme.Error)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "todo")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("mkdir fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.DataDir = "/custom/data"
	cfg.Theme.Accent = "#ABCDEF"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DataDir != "/custom/data" {
		t.Errorf("DataDir = %q, want /custom/data", loaded.DataDir)
	}
	if loaded.Theme.Accent != "#ABCDEF" {
		t.Errorf("Theme.Accent = %q, want #ABCDEF", loaded.Theme.Accent)
	}
}
