// Package config loads and validates the service configuration from
// environment variables. The resulting Config is immutable and passed
// explicitly into the server; nothing reads the environment after Load
// returns.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	defaultPort           = 9090
	defaultUploadSubdir   = "data"
	defaultMaxUploadBytes = 15 * 1024 * 1024 // 15 MiB
)

// Config carries every tunable the service reads at startup.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int

	// UploadSubdir is the directory name, under TargetBaseDir, that
	// receives files with routed extensions (.json/.xml/.csv).
	UploadSubdir string

	// TargetBaseDir is the absolute base directory for all writes.
	// Empty after Load is impossible; an unset variable resolves to
	// the process working directory.
	TargetBaseDir string

	// MaxUploadBytes caps the declared Content-Length of an upload.
	MaxUploadBytes int64

	// LogFormat is "text" or "json".
	LogFormat string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads PORT, UPLOAD_SUBDIR, TARGET_BASE_DIR, MAX_UPLOAD_BYTES,
// LOG_FORMAT and LOG_LEVEL, applying defaults for anything unset, and
// validates the result.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("port", defaultPort)
	v.SetDefault("upload_subdir", defaultUploadSubdir)
	v.SetDefault("target_base_dir", "")
	v.SetDefault("max_upload_bytes", int64(defaultMaxUploadBytes))
	v.SetDefault("log_format", "text")
	v.SetDefault("log_level", "info")
	v.AutomaticEnv()

	cfg := Config{
		Port:           v.GetInt("port"),
		UploadSubdir:   v.GetString("upload_subdir"),
		TargetBaseDir:  v.GetString("target_base_dir"),
		MaxUploadBytes: v.GetInt64("max_upload_bytes"),
		LogFormat:      v.GetString("log_format"),
		LogLevel:       v.GetString("log_level"),
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	if cfg.TargetBaseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, errors.Wrap(err, "resolve working directory")
		}
		cfg.TargetBaseDir = wd
	}
	cfg.TargetBaseDir = filepath.Clean(cfg.TargetBaseDir)

	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// DataDir returns the directory routed extensions are stored in.
func (c Config) DataDir() string {
	return filepath.Join(c.TargetBaseDir, c.UploadSubdir)
}
