// Package config loads runtime settings for the versekeeper CLI by layering
// defaults, an optional JSON file and command-line flags, later sources
// winning.
package config

import "time"

// Config holds runtime settings for the versekeeper CLI.
//
// Fields:
//   - VaultPath: path of the local SQLite store.
//   - BackupDir: directory auto-backup snapshots are written to.
//   - AutoBackupInterval: how often the auto-backup task runs.
type Config struct {
	VaultPath          string
	BackupDir          string
	AutoBackupInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.VaultPath = "journal.db"
	c.BackupDir = "backups"
	c.AutoBackupInterval = 10 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
