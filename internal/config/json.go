package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/hecreatescode/versekeeper/internal/flagx"
	"github.com/hecreatescode/versekeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the backup interval either as a string
// like "10m" or as integer nanoseconds.
type JsonConfig struct {
	VaultPath          string         `json:"vault_path"`
	BackupDir          string         `json:"backup_dir"`
	AutoBackupInterval timex.Duration `json:"auto_backup_interval"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. When no flag is given, nothing is loaded. Read or parse
// errors panic; the config file is operator input and a broken one should
// stop startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.VaultPath != "" {
		cfg.VaultPath = jc.VaultPath
	}
	if jc.BackupDir != "" {
		cfg.BackupDir = jc.BackupDir
	}
	if jc.AutoBackupInterval.Duration != 0 {
		cfg.AutoBackupInterval = time.Duration(jc.AutoBackupInterval.Duration)
	}
}
