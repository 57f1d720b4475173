package dataprocessing

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"timegapcli/internal/errors"
	"timegapcli/pkg/contracts/domain"
)

// HeaderSentinel is the literal header label that marks the real header row
// inside a grid that may start with arbitrary banner or title rows.
const HeaderSentinel = "Log Date"

// RawRow is one decoded data row, keyed by the trimmed header labels.
// Cells missing from the source row are present with an empty string value.
type RawRow map[string]string

// LocateHeader scans rows from the top and returns the index of the first row
// containing a cell whose trimmed value equals HeaderSentinel, together with
// the trimmed header labels of that row.
func LocateHeader(rows [][]string) (int, []string, error) {
	for i, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != HeaderSentinel {
				continue
			}
			headers := make([]string, len(row))
			for j, label := range row {
				headers[j] = strings.TrimSpace(label)
			}
			return i, headers, nil
		}
	}
	return -1, nil, errors.NewDecodeError(
		fmt.Sprintf("no header row containing %q found", HeaderSentinel), nil)
}

// DecodeGrid decodes a raw 2D cell grid into row maps. It is a two-pass
// decode: the first pass locates the header row, the second decodes every row
// strictly below it against the resolved headers. A missing header row yields
// an empty result and a DECODE error; it never panics.
func DecodeGrid(ctx context.Context, logger *slog.Logger, rows [][]string) ([]RawRow, error) {
	if logger == nil {
		logger = slog.Default()
	}

	headerIdx, headers, err := LocateHeader(rows)
	if err != nil {
		logger.WarnContext(ctx, "header row not found in grid",
			slog.String("sentinel", HeaderSentinel),
			slog.Int("rows_scanned", len(rows)))
		return nil, err
	}

	logger.DebugContext(ctx, "header row located",
		slog.Int("row_index", headerIdx),
		slog.Int("column_count", len(headers)))

	decoded := make([]RawRow, 0, len(rows)-headerIdx-1)
	for _, row := range rows[headerIdx+1:] {
		raw := make(RawRow, len(headers))
		for j, name := range headers {
			if name == "" {
				continue
			}
			if j < len(row) {
				raw[name] = row[j]
			} else {
				raw[name] = ""
			}
		}
		decoded = append(decoded, raw)
	}

	return decoded, nil
}

// Decode decodes workbook bytes into event records. Only the first sheet is
// read. Decoding identical bytes yields identical records, ids included.
func Decode(ctx context.Context, logger *slog.Logger, raw []byte) ([]domain.EventRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.NewDecodeError("failed to open workbook", err)
	}
	defer f.Close()

	return decodeFirstSheet(ctx, logger, f)
}

// DecodeWorkbook decodes a workbook file into event records.
func DecodeWorkbook(ctx context.Context, logger *slog.Logger, filePath string) ([]domain.EventRecord, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, errors.NewDecodeError("failed to open workbook", err).
			WithContext("file", filePath)
	}
	defer f.Close()

	return decodeFirstSheet(ctx, logger, f)
}

func decodeFirstSheet(ctx context.Context, logger *slog.Logger, f *excelize.File) ([]domain.EventRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewDecodeError("workbook has no sheets", nil)
	}
	sheetName := sheets[0]

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, errors.NewDecodeError("failed to read sheet rows", err).
			WithContext("sheet", sheetName)
	}

	logger.InfoContext(ctx, "decoding workbook sheet",
		slog.String("sheet_name", sheetName),
		slog.Int("total_rows", len(rows)))

	raws, err := DecodeGrid(ctx, logger, rows)
	if err != nil {
		return nil, err
	}

	records := NormalizeRows(raws)

	logger.InfoContext(ctx, "workbook decoded",
		slog.Int("record_count", len(records)))

	return records, nil
}
