// validate.go - startup configuration validation.
//
// Every violation is collected and reported in one pass so an operator
// fixes a broken environment once instead of replaying the process.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidationError describes a single rejected configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation failed for %s: %s", e.Field, e.Message)
}

type validator struct {
	errs []ValidationError
}

func (v *validator) add(field, message string) {
	v.errs = append(v.errs, ValidationError{Field: field, Message: message})
}

func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration validation failed with %d error(s):\n", len(v.errs))
	for i, e := range v.errs {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, e.Error())
	}
	return fmt.Errorf("%s", sb.String())
}

// Validate checks a Config for operator mistakes. It reports every
// violation, not just the first.
func Validate(cfg Config) error {
	v := &validator{}

	if cfg.Port < 1 || cfg.Port > 65535 {
		v.add("PORT", "must be a number between 1 and 65535")
	}

	if cfg.MaxUploadBytes <= 0 {
		v.add("MAX_UPLOAD_BYTES", "must be a positive integer")
	}

	switch {
	case cfg.UploadSubdir == "":
		v.add("UPLOAD_SUBDIR", "must not be empty")
	case strings.ContainsAny(cfg.UploadSubdir, `/\`):
		v.add("UPLOAD_SUBDIR", "must be a single directory name without path separators")
	case cfg.UploadSubdir == "." || cfg.UploadSubdir == "..":
		v.add("UPLOAD_SUBDIR", "must not be a relative path component")
	}

	if cfg.TargetBaseDir != "" && !filepath.IsAbs(cfg.TargetBaseDir) {
		v.add("TARGET_BASE_DIR", "must be an absolute path")
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		v.add("LOG_FORMAT", "must be one of: text, json")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		v.add("LOG_LEVEL", "must be one of: debug, info, warn, error")
	}

	return v.err()
}
