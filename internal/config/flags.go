package config

import (
	"flag"
	"os"
	"time"

	"github.com/hecreatescode/versekeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local SQLite store
//	-b string   backup directory
//	-i int      auto-backup interval in minutes
//
// Arguments are filtered through flagx.FilterArgs so flags owned by other
// components do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.VaultPath, "d", cfg.VaultPath, "path of the local database")
	fs.StringVar(&cfg.BackupDir, "b", cfg.BackupDir, "backup directory")
	interval := fs.Int("i", int(cfg.AutoBackupInterval.Minutes()), "auto-backup interval (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AutoBackupInterval = time.Duration(*interval) * time.Minute
}
