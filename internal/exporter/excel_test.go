package exporter

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"timegapcli/pkg/contracts/domain"
)

func sampleSummaries() []domain.TimeGapSummary {
	return []domain.TimeGapSummary{
		{
			EmployeeName: "Alice",
			EmployeeCode: "101",
			FirstTime:    "25-Jun-2025 08:00:00",
			LastTime:     "25-Jun-2025 17:30:15",
			TotalGap:     "9h 30m 15s",
			RecordCount:  2,
		},
		{
			EmployeeName: "Bob",
			EmployeeCode: "202",
			FirstTime:    "25-Jun-2025 09:15:00",
			LastTime:     "25-Jun-2025 09:15:00",
			TotalGap:     "0h 0m 0s",
			RecordCount:  1,
		},
	}
}

func TestExcelWriterEncode(t *testing.T) {
	w := NewExcelWriter(slog.Default())

	buf, err := w.Encode(context.Background(), sampleSummaries())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{SummarySheetName}, f.GetSheetList())

	rows, err := f.GetRows(SummarySheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, SummaryHeader(), rows[0])
	assert.Equal(t, []string{"Alice", "101", "25-Jun-2025", "08:00:00", "17:30:15", "9h 30m 15s", "2"}, rows[1])
	assert.Equal(t, []string{"Bob", "202", "25-Jun-2025", "09:15:00", "09:15:00", "0h 0m 0s", "1"}, rows[2])
}

func TestExcelWriterEncodeEmpty(t *testing.T) {
	w := NewExcelWriter(slog.Default())

	buf, err := w.Encode(context.Background(), nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SummarySheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, SummaryHeader(), rows[0])
}

func TestExcelWriterWrite(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "reports", DefaultWorkbookName)

	w := NewExcelWriter(slog.Default())
	require.NoError(t, w.Write(context.Background(), path, sampleSummaries()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(SummarySheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestSummaryRow(t *testing.T) {
	row := SummaryRow(domain.TimeGapSummary{
		EmployeeName: "Alice",
		EmployeeCode: "101",
		FirstTime:    "25-Jun-2025 08:00:00",
		LastTime:     "25-Jun-2025 17:30:15",
		TotalGap:     "9h 30m 15s",
		RecordCount:  2,
	})
	assert.Equal(t, []string{"Alice", "101", "25-Jun-2025", "08:00:00", "17:30:15", "9h 30m 15s", "2"}, row)
}
