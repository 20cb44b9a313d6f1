package rows

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Header is written once at the start of every run.
var Header = []string{"oh_clean", "valid/invalid", "open", "oh_list"}

type Writer struct {
	csv    *csv.Writer
	closer io.Closer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// OpenAppend opens path for appending, creating it if needed. Earlier runs
// written to the same file are kept.
func OpenAppend(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output: %w", err)
	}
	w := NewWriter(f)
	w.closer = f
	return w, nil
}

func (w *Writer) WriteHeader() error {
	return w.Write(Header)
}

// Write writes one record and flushes it.
func (w *Writer) Write(record []string) error {
	if err := w.csv.Write(record); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	w.csv.Flush()
	flushErr := w.csv.Error()
	if w.closer != nil {
		if err := w.closer.Close(); err != nil {
			return fmt.Errorf("failed to close output: %w", err)
		}
	}
	return flushErr
}
