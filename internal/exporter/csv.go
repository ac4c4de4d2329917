package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"bracketboard/internal/predictions"
)

// utf8BOM helps Excel recognize UTF-8
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	baseDir string
	logger  *slog.Logger
}

// NewCSVWriter creates a writer that resolves relative file paths against
// baseDir.
func NewCSVWriter(baseDir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{
		baseDir: baseDir,
		logger:  logger.With(slog.String("component", "csv_writer")),
	}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
	NoHeader  bool
}

// WriteTable writes the table as CSV to out and returns the number of data
// rows written.
func (w *CSVWriter) WriteTable(out io.Writer, table predictions.DisplayTable, options WriteOptions) (int, error) {
	if options.BOMPrefix {
		if _, err := out.Write(utf8BOM); err != nil {
			return 0, fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(out)

	if !options.NoHeader && len(table.Columns) > 0 {
		if err := writer.Write(table.Columns); err != nil {
			return 0, fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for i, record := range table.Rows {
		if err := writer.Write(record); err != nil {
			return i, fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return len(table.Rows), fmt.Errorf("failed to flush csv: %w", err)
	}
	return len(table.Rows), nil
}

// WriteFile writes the table to filePath, creating parent directories. The
// file is replaced if it exists.
func (w *CSVWriter) WriteFile(filePath string, table predictions.DisplayTable, options WriteOptions) (int, error) {
	fullPath := w.resolvePath(filePath)

	w.logger.Info("Writing CSV file",
		slog.String("file_path", filePath),
		slog.String("full_path", fullPath),
		slog.Int("record_count", table.Len()))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	n, err := w.WriteTable(file, table, options)
	if err != nil {
		file.Close()
		return n, err
	}
	if err := file.Close(); err != nil {
		return n, fmt.Errorf("failed to close file: %w", err)
	}
	return n, nil
}

// resolvePath keeps absolute paths and joins relative ones to the base
// directory
func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) || w.baseDir == "" {
		return filePath
	}
	return filepath.Join(w.baseDir, filePath)
}
