package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// ProjectFile is the name of a per-project config file in the working directory
const ProjectFile = "sitegen.json"

// Config represents the sitegen configuration
type Config struct {
	ContentDir      string        `json:"content_dir"`
	StaticDir       string        `json:"static_dir"`
	PublicDir       string        `json:"public_dir"`
	Template        string        `json:"template"`
	BasePath        string        `json:"base_path"`
	LogFile         string        `json:"log_file"`
	Interval        time.Duration `json:"-"` // Custom JSON handling below
	Clean           bool          `json:"clean"`
	Sanitize        bool          `json:"sanitize"`
	ExcludePatterns []string      `json:"exclude_patterns,omitempty"`
}

// rawConfig is the on-disk form with the interval encoded as a duration string
type rawConfig struct {
	ContentDir      string   `json:"content_dir"`
	StaticDir       string   `json:"static_dir"`
	PublicDir       string   `json:"public_dir"`
	Template        string   `json:"template"`
	BasePath        string   `json:"base_path,omitempty"`
	LogFile         string   `json:"log_file,omitempty"`
	Interval        string   `json:"interval"`
	Clean           *bool    `json:"clean,omitempty"`
	Sanitize        bool     `json:"sanitize,omitempty"`
	ExcludePatterns []string `json:"exclude_patterns,omitempty"`
}

// DefaultConfig returns default configuration, relative to the working directory
func DefaultConfig() *Config {
	return &Config{
		ContentDir:      "content",
		StaticDir:       "static",
		PublicDir:       "public",
		Template:        "template.html",
		BasePath:        "/",
		LogFile:         "",
		Interval:        2 * time.Second,
		Clean:           true,
		Sanitize:        false,
		ExcludePatterns: []string{},
	}
}

// ConfigPath returns the path to the config file.
// A sitegen.json in the working directory wins over the XDG location.
// Can be overridden for testing
var ConfigPath = func() string {
	if _, err := os.Stat(ProjectFile); err == nil {
		return ProjectFile
	}
	return filepath.Join(xdg.ConfigHome, "sitegen", "config.json")
}

// StateFilePath returns the path to the build state file
// Uses platform-specific XDG data directory
// Can be overridden for testing
var StateFilePath = func() string {
	return filepath.Join(xdg.DataHome, "sitegen", "state.json")
}

// Load reads configuration from ConfigPath
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := cfg.ExpandPaths(); err != nil {
				return nil, fmt.Errorf("failed to expand paths: %w", err)
			}
			return cfg, nil
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := DefaultConfig()
	if raw.ContentDir != "" {
		cfg.ContentDir = raw.ContentDir
	}
	if raw.StaticDir != "" {
		cfg.StaticDir = raw.StaticDir
	}
	if raw.PublicDir != "" {
		cfg.PublicDir = raw.PublicDir
	}
	if raw.Template != "" {
		cfg.Template = raw.Template
	}
	if raw.BasePath != "" {
		cfg.BasePath = raw.BasePath
	}
	if raw.Clean != nil {
		cfg.Clean = *raw.Clean
	}
	if raw.ExcludePatterns != nil {
		cfg.ExcludePatterns = raw.ExcludePatterns
	}
	cfg.LogFile = raw.LogFile
	cfg.Sanitize = raw.Sanitize

	// Parse interval duration
	if raw.Interval != "" {
		interval, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return nil, fmt.Errorf("invalid interval format '%s': %w", raw.Interval, err)
		}
		cfg.Interval = interval
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Expand paths
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to ConfigPath
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes configuration to configPath
func (c *Config) SaveTo(configPath string) error {
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	clean := c.Clean
	raw := rawConfig{
		ContentDir:      c.ContentDir,
		StaticDir:       c.StaticDir,
		PublicDir:       c.PublicDir,
		Template:        c.Template,
		BasePath:        c.BasePath,
		LogFile:         c.LogFile,
		Interval:        c.Interval.String(),
		Clean:           &clean,
		Sanitize:        c.Sanitize,
		ExcludePatterns: c.ExcludePatterns,
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir cannot be empty")
	}
	if c.PublicDir == "" {
		return fmt.Errorf("public_dir cannot be empty")
	}
	if c.Template == "" {
		return fmt.Errorf("template cannot be empty")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	if !strings.HasPrefix(c.BasePath, "/") || !strings.HasSuffix(c.BasePath, "/") {
		return fmt.Errorf("invalid base_path '%s': must start and end with /", c.BasePath)
	}

	// The public dir is wiped on clean builds
	if c.Clean && c.StaticDir != "" && filepath.Clean(c.PublicDir) == filepath.Clean(c.StaticDir) {
		return fmt.Errorf("public_dir and static_dir must differ")
	}
	if c.Clean && filepath.Clean(c.PublicDir) == filepath.Clean(c.ContentDir) {
		return fmt.Errorf("public_dir and content_dir must differ")
	}

	for _, pattern := range c.ExcludePatterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid exclude pattern '%s': %w", pattern, err)
		}
	}

	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	c.ContentDir, err = expandPath(c.ContentDir)
	if err != nil {
		return fmt.Errorf("failed to expand content_dir: %w", err)
	}

	c.StaticDir, err = expandPath(c.StaticDir)
	if err != nil {
		return fmt.Errorf("failed to expand static_dir: %w", err)
	}

	c.PublicDir, err = expandPath(c.PublicDir)
	if err != nil {
		return fmt.Errorf("failed to expand public_dir: %w", err)
	}

	c.Template, err = expandPath(c.Template)
	if err != nil {
		return fmt.Errorf("failed to expand template: %w", err)
	}

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
