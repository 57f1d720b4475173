// Package dataprocessing implements the badge-scan processing pipeline:
// decoding a time clock workbook into typed event records, filtering them,
// and aggregating per-employee per-day time gaps.
//
// # Architecture
//
// The package is organized into four components:
//
// 1. Decoder: locates the header row in a raw cell grid and decodes the rows below it
// 2. Normalizer: turns decoded rows into EventRecord values with stable ids
// 3. Filter engine: distinct value sets and AND-combined criteria filtering
// 4. Aggregator: groups records by (employee, code, day) and derives time gaps
//
// A Store ties the components together and owns the single in-memory dataset;
// loading a new file replaces all records and clears the active filters.
//
// # Data Flow
//
//	Workbook bytes → Decoder → raw rows → Normalizer → EventRecords →
//	Filter engine → Aggregator → TimeGapSummaries → exporter
//
// Everything downstream of the decode is pure and synchronous and is
// recomputed in full whenever the dataset or the criteria change.
package dataprocessing
