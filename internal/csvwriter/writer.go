// =============================================================================
// Make Data - CSV Writer
// =============================================================================
//
// This module serializes the header and the generated rows to the output
// file. The file is created with O_EXCL so a path that appeared between name
// resolution and opening is reported rather than overwritten.
//
// =============================================================================

package csvwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Writer writes CSV records to a file it owns.
type Writer struct {
	path    string
	file    *os.File
	counter *countingWriter
	csv     *csv.Writer
	records int
}

// Create opens a new CSV file at path. It fails if the file already exists.
func Create(path string) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("cannot create file %s: %w", path, err)
	}

	counter := &countingWriter{w: file}
	return &Writer{
		path:    path,
		file:    file,
		counter: counter,
		csv:     csv.NewWriter(counter),
	}, nil
}

// Path returns the file path being written.
func (w *Writer) Path() string {
	return w.path
}

// Write writes a single record.
func (w *Writer) Write(record []string) error {
	if err := w.csv.Write(record); err != nil {
		return fmt.Errorf("failed to write record %d: %w", w.records+1, err)
	}
	w.records++
	return nil
}

// Records returns the number of records written so far, header included.
func (w *Writer) Records() int {
	return w.records
}

// BytesWritten returns the number of bytes flushed to the file.
func (w *Writer) BytesWritten() int64 {
	return w.counter.n
}

// Close flushes buffered records and closes the file. The first error wins.
func (w *Writer) Close() error {
	w.csv.Flush()
	flushErr := w.csv.Error()
	closeErr := w.file.Close()

	if flushErr != nil {
		return fmt.Errorf("failed to flush %s: %w", w.path, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", w.path, closeErr)
	}
	return nil
}

// countingWriter tracks bytes that reached the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
