package exporter

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriterWrite(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "reports", "time_gap_summary.csv")

	w := NewCSVWriter(slog.Default())
	require.NoError(t, w.Write(context.Background(), path, sampleSummaries()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	// UTF-8 BOM for Excel compatibility.
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, SummaryHeader(), records[0])
	assert.Equal(t, "Alice", records[1][0])
	assert.Equal(t, "9h 30m 15s", records[1][5])
	assert.Equal(t, "1", records[2][6])
}

func TestCSVWriterWriteEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "empty.csv")

	w := NewCSVWriter(slog.Default())
	require.NoError(t, w.Write(context.Background(), path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, SummaryHeader(), records[0])
}
