// Package parsererror defines the typed errors surfaced by the loading and
// rewriting layers.
package parsererror

import (
	"fmt"
	"strings"
)

// NotFoundError indicates the input spreadsheet does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file does not exist: %s", e.Path)
}

// SchemaError indicates required columns are missing from the header row.
// The recommended recovery is to run the remake command to normalize
// columns; that is left to the caller.
type SchemaError struct {
	Path    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns in %s: %s",
		e.Path, strings.Join(e.Missing, ", "))
}

// ParseError represents a per-row parsing failure. These are absorbed
// locally during loading (row dropped or value coerced) and only reported
// through counters, never returned from Load.
type ParseError struct {
	Field string
	Value string
	Row   int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: failed to parse %s='%s': %v",
		e.Row, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// BackupError indicates the pre-rewrite backup copy failed. The rewrite
// aborts before any mutation, so the original file is untouched.
type BackupError struct {
	Path string
	Err  error
}

func (e *BackupError) Error() string {
	return fmt.Sprintf("backup failed for %s: %v", e.Path, e.Err)
}

func (e *BackupError) Unwrap() error {
	return e.Err
}

// RewriteError indicates a rewrite phase after backup failed. The original
// is protected by the already-created backup; nothing was saved.
type RewriteError struct {
	Phase string
	Err   error
}

func (e *RewriteError) Error() string {
	return fmt.Sprintf("rewrite phase %s failed: %v", e.Phase, e.Err)
}

func (e *RewriteError) Unwrap() error {
	return e.Err
}
