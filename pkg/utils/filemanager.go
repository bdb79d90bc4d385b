// =============================================================================
// Make Data - File Manager Utility
// =============================================================================
//
// This module provides the file management utilities used when writing the
// generated data:
//   - Output directory management
//   - Output file naming (placeholder expansion)
//   - Collision-free path resolution
//
// COLLISION STRATEGY:
//   An existing file is never overwritten. If the desired name is taken, a
//   numeric suffix is inserted before the extension: output.csv, output_1.csv,
//   output_2.csv, ... The first free name wins.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectory creates dir and any missing parents.
//
// RETURNS:
//   - An error if the directory cannot be created. Callers may treat this as
//     non-fatal; the failure resurfaces when the output file is opened.
func EnsureDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// ExpandFileName replaces naming placeholders in name.
//
// PLACEHOLDERS:
//   {uuid}      - A random UUID
//   {timestamp} - Timestamp (YYYYMMDD_HHMMSS)
//   {date}      - Date (YYYYMMDD)
//   {time}      - Time (HHMMSS)
//
// A name without placeholders is returned unchanged.
//
// EXAMPLE:
//   "people_{date}.csv" -> "people_20240115.csv"
func ExpandFileName(name string, now time.Time) string {
	if !strings.Contains(name, "{") {
		return name
	}

	replacements := []string{
		"{timestamp}", now.Format("20060102_150405"),
		"{date}", now.Format("20060102"),
		"{time}", now.Format("150405"),
	}
	if strings.Contains(name, "{uuid}") {
		replacements = append(replacements, "{uuid}", uuid.New().String())
	}

	return strings.NewReplacer(replacements...).Replace(name)
}

// =============================================================================
// COLLISION-FREE PATHS
// =============================================================================

// SplitFileName splits a file name into stem and extension. The extension
// keeps its leading dot and is empty when the name has none.
//
// EXAMPLES:
//   "output.csv"     -> "output", ".csv"
//   "archive.tar.gz" -> "archive.tar", ".gz"
//   "README"         -> "README", ""
//   ".env"           -> ".env", ""
func SplitFileName(filename string) (stem, ext string) {
	base := filepath.Base(filename)
	ext = filepath.Ext(base)
	if ext == base {
		// Dotfiles have no extension.
		return base, ""
	}
	return strings.TrimSuffix(base, ext), ext
}

// UniqueFilePath returns a path inside dir that does not collide with an
// existing file.
//
// PARAMETERS:
//   - dir: The output directory.
//   - filename: The desired file name.
//   - exists: Reports whether a path is taken. FileExists in production.
//
// RETURNS:
//   - dir/filename when it is free.
//   - Otherwise dir/{stem}_{n}{ext} for the smallest free n >= 1.
func UniqueFilePath(dir, filename string, exists func(string) bool) string {
	path := filepath.Join(dir, filename)
	if !exists(path) {
		return path
	}

	sub := filepath.Dir(filename)
	stem, ext := SplitFileName(filename)
	for counter := 1; ; counter++ {
		path = filepath.Join(dir, sub, fmt.Sprintf("%s_%d%s", stem, counter, ext))
		if !exists(path) {
			return path
		}
	}
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists reports whether something is present at path. Symlinks count
// even when dangling. A path that cannot be inspected reports false; opening
// it later surfaces the real error.
func FileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
