// Package exporter serializes time gap summaries for download.
//
// ExcelWriter encodes the summary list into a single-sheet workbook named
// "Time Gap Summary" (default file name time_gap_summary.xlsx). CSVWriter
// writes the same rows as a CSV file with a UTF-8 BOM so spreadsheet
// applications detect the encoding. Neither writer aggregates anything;
// both are pure reshaping of already-computed summaries.
package exporter
