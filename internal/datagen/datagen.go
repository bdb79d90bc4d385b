// =============================================================================
// Make Data - Generation Pipeline
// =============================================================================
//
// This module runs one generation job from an already-resolved set of options
// to a finished CSV file.
//
// PIPELINE:
//   1. Ensure the output directory exists (failure is only a warning)
//   2. Expand naming placeholders and resolve a collision-free path
//   3. Open the CSV writer (fatal if the file cannot be created)
//   4. Write the header row
//   5. Generate and write each data row
//   6. Flush and close
//
// The pipeline is linear and single-threaded. The output file is owned by Run
// for the whole call.
//
// =============================================================================

package datagen

import (
	"fmt"
	"time"

	"github.com/ginjaninja78/make-data/internal/csvwriter"
	"github.com/ginjaninja78/make-data/internal/generator"
	"github.com/ginjaninja78/make-data/internal/types"
	"github.com/ginjaninja78/make-data/pkg/utils"
)

// =============================================================================
// OPTIONS AND RESULT
// =============================================================================

// Options describes a single generation run.
type Options struct {
	// Columns is the parsed column layout.
	Columns []types.ColumnType

	// Rows is the number of data rows to write.
	Rows int

	// Range is the exclusive upper bound for numeric columns.
	Range int

	// OutputDir is the directory the file is written into.
	OutputDir string

	// OutputName is the desired file name, possibly with placeholders.
	OutputName string

	// Source supplies random values. Required.
	Source generator.Source

	// Logger receives progress and warnings. Nil discards them.
	Logger Logger

	// Now returns the current time for naming placeholders. Nil means time.Now.
	Now func() time.Time
}

// Result represents the outcome of a run.
type Result struct {
	// OutputPath is the file that was written.
	OutputPath string

	// Rows is the number of data rows written.
	Rows int

	// Columns is the number of columns per row.
	Columns int

	// Bytes is the size of the written file.
	Bytes int64

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// Logger is the logging interface used by the pipeline.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// =============================================================================
// PATH RESOLUTION
// =============================================================================

// ResolveOutputPath ensures the output directory and returns a collision-free
// path for the expanded output name. A directory creation failure is logged
// as a warning and does not stop resolution.
func ResolveOutputPath(dir, name string, now time.Time, logger Logger) string {
	if logger == nil {
		logger = nopLogger{}
	}

	if err := utils.EnsureDirectory(dir); err != nil {
		logger.Warn("Error creating directory %s: %v", dir, err)
	}

	return utils.UniqueFilePath(dir, utils.ExpandFileName(name, now), utils.FileExists)
}

// =============================================================================
// MAIN FUNCTION
// =============================================================================

// Run executes the generation pipeline.
//
// RETURNS:
//   - A Result describing the written file.
//   - An error if the file cannot be created or written. Nothing is left
//     behind when creation fails; a write failure leaves a partial file.
func Run(opts Options) (Result, error) {
	start := time.Now()

	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	if opts.Rows < 0 {
		return Result{}, fmt.Errorf("invalid row count %d", opts.Rows)
	}

	gen, err := generator.New(opts.Source, opts.Columns, opts.Range)
	if err != nil {
		return Result{}, err
	}

	// =========================================================================
	// STEP 1-2: RESOLVE OUTPUT PATH
	// =========================================================================

	outputPath := ResolveOutputPath(opts.OutputDir, opts.OutputName, now(), logger)
	logger.Info("Output will be written to: %s", outputPath)

	// =========================================================================
	// STEP 3: OPEN WRITER
	// =========================================================================

	w, err := csvwriter.Create(outputPath)
	if err != nil {
		return Result{}, err
	}

	// =========================================================================
	// STEP 4-5: HEADER AND ROWS
	// =========================================================================

	if err := writeAll(w, gen, opts.Rows); err != nil {
		logger.Error("Stopped after %d records in %s: %v", w.Records(), w.Path(), err)
		w.Close()
		return Result{}, err
	}

	// =========================================================================
	// STEP 6: FLUSH AND CLOSE
	// =========================================================================

	if err := w.Close(); err != nil {
		return Result{}, err
	}

	result := Result{
		OutputPath: w.Path(),
		Rows:       w.Records() - 1,
		Columns:    len(opts.Columns),
		Bytes:      w.BytesWritten(),
		Elapsed:    time.Since(start),
	}
	logger.Debug("Wrote %d rows (%d bytes) to %s", result.Rows, result.Bytes, outputPath)

	return result, nil
}

// writeAll writes the header followed by rows generated rows.
func writeAll(w *csvwriter.Writer, gen *generator.Generator, rows int) error {
	if err := w.Write(gen.Header()); err != nil {
		return err
	}
	for i := 0; i < rows; i++ {
		if err := w.Write(gen.Row()); err != nil {
			return err
		}
	}
	return nil
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
