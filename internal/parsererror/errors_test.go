package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Path: "data/purchases.xlsx"}
	assert.Equal(t, "file does not exist: data/purchases.xlsx", err.Error())
}

func TestSchemaError(t *testing.T) {
	err := &SchemaError{
		Path:    "data/purchases.xlsx",
		Missing: []string{"Cost", "Date"},
	}
	assert.Contains(t, err.Error(), "Cost, Date")
	assert.Contains(t, err.Error(), "data/purchases.xlsx")
}

func TestParseErrorUnwrap(t *testing.T) {
	inner := errors.New("bad digit")
	err := &ParseError{Field: "Cost", Value: "abc", Row: 7, Err: inner}

	assert.Contains(t, err.Error(), "row 7")
	assert.Contains(t, err.Error(), "Cost='abc'")
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestBackupErrorUnwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := &BackupError{Path: "purchases.xlsx", Err: inner}

	assert.Contains(t, err.Error(), "purchases.xlsx")
	assert.True(t, errors.Is(err, inner))
}

func TestRewriteErrorWrapping(t *testing.T) {
	inner := errors.New("sheet missing")
	err := &RewriteError{Phase: "sort", Err: inner}
	wrapped := fmt.Errorf("remake failed: %w", err)

	var target *RewriteError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "sort", target.Phase)
}
