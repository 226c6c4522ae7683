// =============================================================================
// glue_sql to JSON Converter - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the converter:
//   - Query-map file discovery (non-recursive glob matching)
//   - Input archival after successful conversion
//   - Small path helpers
//
// ARCHIVAL STRATEGY:
//   - Input files are moved to the archive directory after successful
//     conversion (directory mode only, opt-in)
//   - A name collision in the archive is resolved with a UUID suffix rather
//     than overwriting an earlier archived file
//   - Failed files remain in their original location
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverFiles scans a directory (non-recursively) for files matching any
// of the glob patterns. Directories that happen to match a pattern are
// filtered out. filepath.Glob returns sorted names, so the result is
// deterministic: each pattern's matches in lexical order.
func DiscoverFiles(dir string, patterns []string) ([]string, error) {
	var result []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", dir, err)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				continue
			}
			if !info.IsDir() {
				result = append(result, match)
			}
		}
	}

	return result, nil
}

// =============================================================================
// FILE ARCHIVAL
// =============================================================================

// ArchiveInputFile moves an input file into the archive directory, creating
// the directory if needed. If a file with the same name is already archived,
// the new file gets a short UUID suffix instead of overwriting it.
//
// Returns the path the file was archived to.
func ArchiveInputFile(filePath, archiveDir string) (string, error) {
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	archivePath := filepath.Join(archiveDir, filepath.Base(filePath))
	if FileExists(archivePath) {
		archivePath = filepath.Join(archiveDir, collisionSafeName(filepath.Base(filePath)))
	}

	if err := os.Rename(filePath, archivePath); err != nil {
		// Rename fails across devices; fall back to copy and delete.
		if err := copyFile(filePath, archivePath); err != nil {
			return "", fmt.Errorf("failed to copy file to archive: %w", err)
		}
		if err := os.Remove(filePath); err != nil {
			return "", fmt.Errorf("failed to remove original file: %w", err)
		}
	}

	return archivePath, nil
}

// collisionSafeName inserts a short UUID between the base name and the
// extension. Example: "B47SA508.glue_sql" -> "B47SA508_a1b2c3d4.glue_sql".
func collisionSafeName(fileName string) string {
	ext := filepath.Ext(fileName)
	base := strings.TrimSuffix(fileName, ext)
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s_%s%s", base, suffix, ext)
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}

// FileExists checks if a path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsDir reports whether the path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsRegularFile reports whether the path exists and is a regular file.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
