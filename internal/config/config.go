package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// LocalConfigName is the per-repository config file searched for upwards
// from the working directory.
const LocalConfigName = ".forge.toml"

// Config holds all application configuration
type Config struct {
	General       GeneralConfig       `toml:"general"`
	Banner        BannerConfig        `toml:"banner"`
	LinkCheck     LinkCheckConfig     `toml:"linkcheck"`
	Scaffold      ScaffoldConfig      `toml:"scaffold"`
	Notifications NotificationsConfig `toml:"notifications"`
	Web           WebConfig           `toml:"web"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	DatabasePath string   `toml:"database_path"`
	IgnoreDirs   []string `toml:"ignore_dirs"`
}

// BannerConfig holds default banner rendering settings
type BannerConfig struct {
	Theme  string `toml:"theme"`
	Border string `toml:"border"`
	Width  int    `toml:"width"`
}

// LinkCheckConfig holds link validation settings
type LinkCheckConfig struct {
	TimeoutSeconds int  `toml:"timeout_seconds"`
	Concurrency    int  `toml:"concurrency"`
	SkipExternal   bool `toml:"skip_external"`
}

// ScaffoldConfig holds repository scaffolding settings
type ScaffoldConfig struct {
	Author   string   `toml:"author"`
	License  string   `toml:"license"`
	Projects []string `toml:"projects"`
}

// NotificationsConfig holds notification settings
type NotificationsConfig struct {
	Desktop bool `toml:"desktop"`
}

// WebConfig holds dashboard server settings
type WebConfig struct {
	Port         int    `toml:"port"`
	Host         string `toml:"host"`
	SnapshotCron string `toml:"snapshot_cron"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		General: GeneralConfig{
			DatabasePath: filepath.Join(home, ".forge", "forge.db"),
			IgnoreDirs:   []string{"node_modules", "target", "__pycache__", ".git"},
		},
		Banner: BannerConfig{
			Theme:  "default",
			Border: "single",
			Width:  60,
		},
		LinkCheck: LinkCheckConfig{
			TimeoutSeconds: 10,
			Concurrency:    8,
			SkipExternal:   false,
		},
		Scaffold: ScaffoldConfig{
			License:  "MIT",
			Projects: []string{"go", "python", "rust"},
		},
		Notifications: NotificationsConfig{
			Desktop: true,
		},
		Web: WebConfig{
			Port:         8080,
			Host:         "127.0.0.1",
			SnapshotCron: "0 * * * *",
		},
	}
}

// Load reads configuration from a TOML file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.General.DatabasePath = ExpandPath(cfg.General.DatabasePath)

	return cfg, nil
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// DefaultConfigPath returns the default config file location
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "forge", "config.toml")
}

// FindLocalConfig walks up from the working directory looking for a
// .forge.toml file. Returns "" when none is found.
func FindLocalConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, LocalConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
