// Package ioutils provides file system utilities for mb-seeder.
//
// This package contains functions for:
//   - Writing seed pages to a fixed or temporary location
//   - Filename sanitization
//   - Directory creation
//
// Every function takes the afero.Fs to operate on, so callers can swap the
// real file system for an in-memory one.
package ioutils

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

var (
	invalidChars    = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots    = regexp.MustCompile(`\.+$`)
	repeatedSpacing = regexp.MustCompile(`\s+`)
)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing. Parent directories are not created; see
// EnsureDir.
//
// Example:
//
//	err := WriteFile(fs, "/tmp/seed/Abbey Road.html", page)
func WriteFile(fs afero.Fs, path string, data []byte) error {
	return afero.WriteFile(fs, path, data, 0o644)
}

// WriteTempFile creates a new file in dir and fills it by calling write.
//
// The file name is built from pattern the same way os.CreateTemp does: a
// "*" in pattern is replaced by a random string. An empty dir means the
// system temporary directory.
//
// Returns the path of the file. On error, the partially written file is
// removed.
//
// Example:
//
//	path, err := WriteTempFile(fs, "", "mb-seeder-*.html", page.Render)
//	// path == "/tmp/mb-seeder-1234567.html"
func WriteTempFile(fs afero.Fs, dir, pattern string, write func(io.Writer) error) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := EnsureDir(fs, dir); err != nil {
		return "", err
	}

	f, err := afero.TempFile(fs, dir, pattern)
	if err != nil {
		return "", err
	}
	path := f.Name()

	if err := write(f); err != nil {
		f.Close()
		fs.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		fs.Remove(path)
		return "", err
	}

	return path, nil
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// This function ensures filenames are valid across different operating systems,
// particularly Windows which has the most restrictive naming rules.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("AC/DC - Back in Black") // Returns "AC_DC - Back in Black"
//	SanitizeFileName("Add Release...")        // Returns "Add Release"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpacing.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

// PagePath returns the path for a named page in dir: the sanitized name with
// an ".html" extension.
func PagePath(dir, name string) string {
	return filepath.Join(dir, SanitizeFileName(name)+".html")
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(fs afero.Fs, path string) error {
	return fs.MkdirAll(path, 0o755)
}
