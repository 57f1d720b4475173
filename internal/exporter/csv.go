package exporter

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"timegapcli/internal/errors"
	"timegapcli/pkg/contracts/domain"
)

// CSVWriter provides CSV export of time gap summaries.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// Write writes the summaries as a CSV file with the standard header. A UTF-8
// BOM is prefixed so Excel recognizes the encoding.
func (w *CSVWriter) Write(ctx context.Context, path string, summaries []domain.TimeGapSummary) error {
	w.logger.InfoContext(ctx, "writing summary CSV",
		slog.String("path", path),
		slog.Int("summary_count", len(summaries)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for CSV output", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create CSV file", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return errors.NewStorageError("failed to write BOM", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(SummaryHeader()); err != nil {
		return errors.NewStorageError("failed to write CSV header row", err)
	}
	for _, summary := range summaries {
		if err := writer.Write(SummaryRow(summary)); err != nil {
			return errors.NewStorageError("failed to write CSV data row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("failed to flush CSV writer", err)
	}

	return nil
}
