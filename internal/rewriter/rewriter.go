// Package rewriter rebuilds the purchases workbook in place: backup,
// column normalization, date sort, category validation and cosmetic
// formatting. The five phases run in fixed order and the whole operation
// is idempotent apart from producing a fresh backup each run.
//
// The transform itself operates on an in-memory workbook and performs no
// file I/O; Rewrite wraps it with the backup-then-save shell. Nothing is
// saved unless every phase succeeds, so a failure after backup leaves the
// original file untouched and the backup intact.
package rewriter

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/dragonstonehafiz/budgeting-analysis/internal/categories"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/fileutils"
	"github.com/dragonstonehafiz/budgeting-analysis/internal/parsererror"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Report summarizes one rewrite run.
type Report struct {
	ID            string        `json:"id" yaml:"id"`
	BackupPath    string        `json:"backup_path" yaml:"backup_path"`
	DataRows      int           `json:"data_rows" yaml:"data_rows"`
	UnparsedDates int           `json:"unparsed_dates" yaml:"unparsed_dates"`
	Duration      time.Duration `json:"duration" yaml:"duration"`
}

// Rewriter performs the five-phase workbook rewrite using a category
// registry for the validation list and row colors.
type Rewriter struct {
	reg *categories.Registry
}

// New creates a Rewriter backed by the given registry.
func New(reg *categories.Registry) *Rewriter {
	return &Rewriter{reg: reg}
}

// Rewrite runs all five phases against the workbook at path. Not safe to
// run concurrently on the same path; callers must serialize invocations.
func (rw *Rewriter) Rewrite(path string) (*Report, error) {
	started := time.Now()

	if !fileutils.FileExists(path) {
		return nil, &parsererror.NotFoundError{Path: path}
	}

	// Phase 1: backup before any mutation. Failure here aborts the whole
	// operation.
	backup, err := fileutils.BackupFile(path, started)
	if err != nil {
		return nil, &parsererror.BackupError{Path: path, Err: err}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &parsererror.RewriteError{Phase: "open", Err: err}
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	report, err := rw.Transform(f)
	if err != nil {
		// Abort without saving: the workbook on disk stays as it was.
		return nil, err
	}

	if err := f.SaveAs(path); err != nil {
		return nil, &parsererror.RewriteError{Phase: "save", Err: err}
	}

	report.BackupPath = backup
	report.Duration = time.Since(started)

	log.WithFields(logrus.Fields{
		"id":       report.ID,
		"file":     path,
		"backup":   backup,
		"rows":     report.DataRows,
		"unparsed": report.UnparsedDates,
	}).Info("Workbook rewrite complete")

	return report, nil
}

// Transform applies phases 2-5 to an in-memory workbook. Exposed
// separately so the rewrite algorithm can be tested without touching the
// filesystem.
func (rw *Rewriter) Transform(f *excelize.File) (*Report, error) {
	report := &Report{ID: uuid.NewString()}
	sheet := f.GetSheetName(0)

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &parsererror.RewriteError{Phase: "read", Err: fmt.Errorf("reading worksheet %s: %w", sheet, err)}
	}

	// Phase 2: column normalization
	if err := rw.normalizeColumns(f, sheet); err != nil {
		return nil, &parsererror.RewriteError{Phase: "columns", Err: err}
	}

	// Phase 3: stable date sort, dates rewritten as genuine date values
	sorted, err := rw.sortRows(f, sheet, rows)
	if err != nil {
		return nil, &parsererror.RewriteError{Phase: "sort", Err: err}
	}
	report.DataRows = len(sorted)
	for _, r := range sorted {
		if !r.dateOK {
			report.UnparsedDates++
		}
	}

	limit := validationLimit(len(rows))

	// Phase 4: category dropdown validation
	if err := rw.applyValidation(f, sheet, limit); err != nil {
		return nil, &parsererror.RewriteError{Phase: "validation", Err: err}
	}

	// Phase 5: formatting (conditional rules + static fills)
	if err := rw.applyConditionalFormatting(f, sheet, limit); err != nil {
		return nil, &parsererror.RewriteError{Phase: "formatting", Err: err}
	}
	if err := rw.formatRows(f, sheet, sorted); err != nil {
		return nil, &parsererror.RewriteError{Phase: "formatting", Err: err}
	}

	return report, nil
}

// validationLimit extends the constrained range well beyond current data
// so future manual additions stay validated without a re-run.
func validationLimit(currentRows int) int {
	limit := currentRows * 2
	if limit < 200 {
		limit = 200
	}
	return limit
}
