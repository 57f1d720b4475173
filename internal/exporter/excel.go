package exporter

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"timegapcli/internal/errors"
	"timegapcli/pkg/contracts/domain"
)

const (
	// SummarySheetName is the single sheet of the exported workbook.
	SummarySheetName = "Time Gap Summary"
	// DefaultWorkbookName is the fixed download file name.
	DefaultWorkbookName = "time_gap_summary.xlsx"
)

// SummaryHeader returns the export column headers, in order.
func SummaryHeader() []string {
	return []string{
		"Employee Name", "Employee Code", "Date",
		"In Time", "Out Time", "Total Gap", "Record Count",
	}
}

// SummaryRow reshapes one summary into its export row. Date is the calendar
// day of the first scan; In Time and Out Time are the time-of-day portions of
// the first and last scans.
func SummaryRow(s domain.TimeGapSummary) []string {
	return []string{
		s.EmployeeName,
		s.EmployeeCode,
		domain.CalendarDay(s.FirstTime),
		domain.TimeOfDay(s.FirstTime),
		domain.TimeOfDay(s.LastTime),
		s.TotalGap,
		strconv.Itoa(s.RecordCount),
	}
}

// ExcelWriter encodes summaries into a workbook.
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates a new workbook writer.
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger}
}

// Encode serializes summaries into workbook bytes with a single sheet. An
// empty summary list still produces a workbook with the header row.
func (w *ExcelWriter) Encode(ctx context.Context, summaries []domain.TimeGapSummary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheetName); err != nil {
		return nil, errors.NewStorageError("failed to name summary sheet", err)
	}

	header := toCellRow(SummaryHeader())
	if err := f.SetSheetRow(SummarySheetName, "A1", &header); err != nil {
		return nil, errors.NewStorageError("failed to write header row", err)
	}

	for i, summary := range summaries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.NewStorageError("failed to compute row coordinates", err)
		}
		row := toCellRow(SummaryRow(summary))
		if err := f.SetSheetRow(SummarySheetName, cell, &row); err != nil {
			return nil, errors.NewStorageError("failed to write summary row", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.NewStorageError("failed to encode workbook", err)
	}

	w.logger.InfoContext(ctx, "summary workbook encoded",
		slog.String("sheet_name", SummarySheetName),
		slog.Int("summary_count", len(summaries)),
		slog.Int("byte_count", buf.Len()))

	return buf, nil
}

// Write encodes summaries and writes the workbook to path, creating the
// directory if needed.
func (w *ExcelWriter) Write(ctx context.Context, path string, summaries []domain.TimeGapSummary) error {
	buf, err := w.Encode(ctx, summaries)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for workbook output", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.NewStorageError("failed to write workbook file", err)
	}

	w.logger.InfoContext(ctx, "summary workbook written",
		slog.String("path", path))

	return nil
}

func toCellRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
