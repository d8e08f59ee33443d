// Package fileutils provides common file operations used throughout the
// application.
package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// BackupTimestampLayout is the timestamp embedded in backup file names.
const BackupTimestampLayout = "2006-01-02_15-04-05"

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(dirPath, 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// CopyFile copies src to dst byte for byte.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer func() {
		if err := in.Close(); err != nil {
			log.WithError(err).Warn("Failed to close source file")
		}
	}()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to flush destination file: %w", err)
	}
	return nil
}

// BackupPath returns the sibling backup name for a file at the given
// instant: <stem>_backup_<YYYY-MM-DD_HH-MM-SS><ext>.
func BackupPath(path string, at time.Time) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	name := fmt.Sprintf("%s_backup_%s%s", stem, at.Format(BackupTimestampLayout), ext)
	return filepath.Join(dir, name)
}

// BackupFile copies path to its timestamped sibling backup and returns the
// backup path.
func BackupFile(path string, at time.Time) (string, error) {
	backup := BackupPath(path, at)
	if err := CopyFile(path, backup); err != nil {
		return "", err
	}

	log.WithFields(logrus.Fields{
		"source": path,
		"backup": backup,
	}).Info("Created backup")
	return backup, nil
}
