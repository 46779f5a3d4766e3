package server

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// routedExts lists the suffixes stored under the configured
// subdirectory instead of the base directory. Matching is
// case-sensitive and exact.
var routedExts = []string{".json", ".xml", ".csv"}

// Store writes uploaded files beneath a fixed base directory, routing
// structured-data extensions into a subdirectory.
type Store struct {
	BaseDir string
	Subdir  string
}

// TargetDir returns the directory a sanitized filename belongs in.
func (s Store) TargetDir(filename string) string {
	for _, ext := range routedExts {
		if strings.HasSuffix(filename, ext) {
			return filepath.Join(s.BaseDir, s.Subdir)
		}
	}
	return s.BaseDir
}

// Save writes data to the routed location for filename, creating
// missing parent directories. An existing file of the same name is
// overwritten in place; there is no temp-file rename step.
func (s Store) Save(filename string, data []byte) (string, error) {
	dir := s.TargetDir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create target directory %s", dir)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, nil
}
