// Package exporter writes query results to uniquely named JSON files on
// local disk and resolves them back for download.
package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"companyexport/internal/domain/models"

	"github.com/google/uuid"
)

// maxSafeLen caps the sanitized target name before the uniqueness suffix.
const maxSafeLen = 80

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Exporter writes export artifacts under a single directory. Files are
// never updated or deleted after creation.
type Exporter struct {
	dir string
}

// New creates the export directory if absent and returns an Exporter over it.
func New(dir string) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir %s: %w", dir, err)
	}
	return &Exporter{dir: dir}, nil
}

// SafeFilename reduces a target name to an ASCII-safe token: runs of
// characters outside [A-Za-z0-9._-] collapse to a single underscore,
// leading/trailing underscores are stripped, length is capped.
func SafeFilename(s string) string {
	safe := unsafeChars.ReplaceAllString(s, "_")
	safe = strings.Trim(safe, "_")
	if len(safe) > maxSafeLen {
		safe = safe[:maxSafeLen]
	}
	return safe
}

// Write serializes the documents as indented JSON to
// {sanitized_target}_{uuid}.json and returns the filename. The random ID
// makes collisions between repeated exports of the same target impossible.
func (e *Exporter) Write(docs []models.Company, target string) (string, error) {
	filename := fmt.Sprintf("%s_%s.json", SafeFilename(target), uuid.New().String())

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}

	if err := os.WriteFile(filepath.Join(e.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write export %s: %w", filename, err)
	}

	return filename, nil
}

// Path resolves a previously written filename to its on-disk path. It
// reports false for names that escape the export directory or were never
// written.
func (e *Exporter) Path(filename string) (string, bool) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", false
	}

	p := filepath.Join(e.dir, filename)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", false
	}
	return p, true
}
