package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// useConfigPath points ConfigPath at path for the duration of the test
func useConfigPath(t *testing.T, path string) {
	t.Helper()
	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return path
	}
	t.Cleanup(func() {
		ConfigPath = originalConfigPath
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ContentDir == "" {
		t.Error("Expected ContentDir to be set")
	}
	if cfg.PublicDir == "" {
		t.Error("Expected PublicDir to be set")
	}
	if cfg.Template == "" {
		t.Error("Expected Template to be set")
	}
	if cfg.BasePath != "/" {
		t.Errorf("Expected BasePath to be /, got %q", cfg.BasePath)
	}
	if !cfg.Clean {
		t.Error("Expected Clean to default to true")
	}
	if cfg.Interval != 2*time.Second {
		t.Errorf("Expected Interval to be 2s, got %v", cfg.Interval)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ContentDir: "/site/content",
			StaticDir:  "/site/static",
			PublicDir:  "/site/public",
			Template:   "/site/template.html",
			BasePath:   "/",
			Interval:   time.Second,
			Clean:      true,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "default config",
			mutate:  func(c *Config) { *c = *DefaultConfig() },
			wantErr: false,
		},
		{
			name:    "empty content_dir",
			mutate:  func(c *Config) { c.ContentDir = "" },
			wantErr: true,
		},
		{
			name:    "empty public_dir",
			mutate:  func(c *Config) { c.PublicDir = "" },
			wantErr: true,
		},
		{
			name:    "empty template",
			mutate:  func(c *Config) { c.Template = "" },
			wantErr: true,
		},
		{
			name:    "zero interval",
			mutate:  func(c *Config) { c.Interval = 0 },
			wantErr: true,
		},
		{
			name:    "base path without trailing slash",
			mutate:  func(c *Config) { c.BasePath = "/blog" },
			wantErr: true,
		},
		{
			name:    "sub path",
			mutate:  func(c *Config) { c.BasePath = "/blog/" },
			wantErr: false,
		},
		{
			name:    "clean build over static dir",
			mutate:  func(c *Config) { c.PublicDir = "/site/static/" },
			wantErr: true,
		},
		{
			name: "no clean allows shared dir",
			mutate: func(c *Config) {
				c.PublicDir = "/site/static"
				c.Clean = false
			},
			wantErr: false,
		},
		{
			name:    "bad exclude pattern",
			mutate:  func(c *Config) { c.ExcludePatterns = []string{"[abc"} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")
	useConfigPath(t, testConfigPath)

	testCfg := &Config{
		ContentDir:      filepath.Join(tmpDir, "content"),
		StaticDir:       filepath.Join(tmpDir, "static"),
		PublicDir:       filepath.Join(tmpDir, "public"),
		Template:        filepath.Join(tmpDir, "template.html"),
		BasePath:        "/docs/",
		LogFile:         filepath.Join(tmpDir, "sitegen.log"),
		Interval:        45 * time.Second,
		Clean:           false,
		Sanitize:        true,
		ExcludePatterns: []string{"drafts/*"},
	}

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(testConfigPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	data, err := os.ReadFile(testConfigPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	if !strings.Contains(string(data), `"interval": "45s"`) {
		t.Errorf("Interval should be stored as a duration string:\n%s", data)
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedCfg.Interval != testCfg.Interval {
		t.Errorf("Interval mismatch: got %v, want %v", loadedCfg.Interval, testCfg.Interval)
	}
	if loadedCfg.ContentDir != testCfg.ContentDir {
		t.Errorf("ContentDir mismatch: got %s, want %s", loadedCfg.ContentDir, testCfg.ContentDir)
	}
	if loadedCfg.BasePath != "/docs/" {
		t.Errorf("BasePath mismatch: got %s", loadedCfg.BasePath)
	}
	if loadedCfg.Clean {
		t.Error("Clean should round trip as false")
	}
	if !loadedCfg.Sanitize {
		t.Error("Sanitize should round trip as true")
	}
	if len(loadedCfg.ExcludePatterns) != 1 || loadedCfg.ExcludePatterns[0] != "drafts/*" {
		t.Errorf("ExcludePatterns mismatch: got %v", loadedCfg.ExcludePatterns)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")
	useConfigPath(t, testConfigPath)

	if err := os.WriteFile(testConfigPath, []byte(`{"public_dir": "out"}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if filepath.Base(cfg.PublicDir) != "out" {
		t.Errorf("PublicDir = %s, want .../out", cfg.PublicDir)
	}
	if filepath.Base(cfg.ContentDir) != "content" {
		t.Errorf("ContentDir = %s, want .../content", cfg.ContentDir)
	}
	if !cfg.Clean {
		t.Error("Clean should keep its default")
	}
	if cfg.Interval != 2*time.Second {
		t.Errorf("Interval = %v, want default 2s", cfg.Interval)
	}
}

func TestLoadInvalidInterval(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")
	useConfigPath(t, testConfigPath)

	if err := os.WriteFile(testConfigPath, []byte(`{"interval": "soon"}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should fail on an invalid interval")
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	tmpDir := t.TempDir()
	useConfigPath(t, filepath.Join(tmpDir, "nonexistent.json"))

	// Load should return default config when file doesn't exist
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}

	if cfg.Interval != 2*time.Second {
		t.Errorf("Expected default interval 2s, got %v", cfg.Interval)
	}
	if !filepath.IsAbs(cfg.ContentDir) {
		t.Errorf("ContentDir should be absolute, got %s", cfg.ContentDir)
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		contains string // The output should contain this
	}{
		{
			name:     "tilde expansion",
			input:    "~/test",
			contains: homeDir,
		},
		{
			name:     "tilde only",
			input:    "~",
			contains: homeDir,
		},
		{
			name:     "absolute path",
			input:    "/tmp/test",
			contains: "/tmp/test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if err != nil {
				t.Fatalf("expandPath() error = %v", err)
			}
			if !strings.Contains(result, tt.contains) {
				t.Errorf("expandPath(%q) = %q, want it to contain %q", tt.input, result, tt.contains)
			}
		})
	}
}
