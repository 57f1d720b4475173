// Command processor runs the full time gap pipeline over one workbook:
// decode badge scans, apply filter criteria, aggregate per-employee per-day
// gaps and write the summary workbook (optionally a CSV twin).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"timegapcli/internal/config"
	"timegapcli/internal/dataprocessing"
	"timegapcli/internal/exporter"
	"timegapcli/internal/infrastructure"
	"timegapcli/pkg/contracts/domain"
)

func main() {
	inFile := flag.String("in", "", "input workbook (.xlsx/.xls) of badge scan events")
	outDir := flag.String("out", "", "output directory for the summary export (defaults to configured reports dir)")
	date := flag.String("date", "", "filter: calendar day, e.g. 25-Jun-2025")
	employee := flag.String("employee", "", "filter: exact employee name")
	code := flag.String("code", "", "filter: exact numeric employee code")
	writeCSV := flag.Bool("csv", false, "also write a CSV copy of the summary")
	listOnly := flag.Bool("list", false, "print the distinct filter choices for the input and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		def := config.Default()
		cfg = &def
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())

	if *inFile == "" {
		logger.ErrorContext(ctx, "no input workbook given, use -in")
		os.Exit(2)
	}
	if *outDir == "" {
		*outDir = cfg.Paths.ReportsDir
	}

	criteria := domain.FilterCriteria{
		Date:         strings.TrimSpace(*date),
		EmployeeName: strings.TrimSpace(*employee),
		EmployeeCode: strings.TrimSpace(*code),
	}
	if err := validateCriteria(criteria); err != nil {
		logger.ErrorContext(ctx, "invalid filter criteria", slog.String("error", err.Error()))
		os.Exit(2)
	}

	if err := run(ctx, logger, cfg, *inFile, *outDir, criteria, *writeCSV || cfg.Export.WriteCSV, *listOnly); err != nil {
		logger.ErrorContext(ctx, "processing failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// validateCriteria rejects criteria the pipeline would silently never match,
// like a non-numeric employee code.
func validateCriteria(criteria domain.FilterCriteria) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(criteria); err != nil {
		return fmt.Errorf("criteria validation: %w", err)
	}
	return nil
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Config, inFile, outDir string, criteria domain.FilterCriteria, writeCSV, listOnly bool) error {
	logger.InfoContext(ctx, "starting time gap processing",
		slog.String("input_file", inFile),
		slog.String("output_dir", outDir))

	store := dataprocessing.NewStore(logger)
	if err := store.Load(ctx, inFile); err != nil {
		return err
	}
	meta := store.Metadata()
	logger.InfoContext(ctx, "workbook imported",
		slog.String("import_id", meta.ID),
		slog.Int("record_count", meta.RecordCount))

	if listOnly {
		printChoices(store.Records())
		return nil
	}

	store.SetCriteria(criteria)
	filtered := store.Filtered()
	logger.InfoContext(ctx, "filters applied",
		slog.Int("matched", len(filtered)),
		slog.Int("total", len(store.Records())))

	aggregator := dataprocessing.NewAggregator(logger, dataprocessing.AggregatorConfig{})
	summaries := aggregator.Aggregate(ctx, filtered, criteria.Date)

	workbookPath := filepath.Join(outDir, cfg.Export.WorkbookName)
	csvPath := strings.TrimSuffix(workbookPath, filepath.Ext(workbookPath)) + ".csv"

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return exporter.NewExcelWriter(logger).Write(gctx, workbookPath, summaries)
	})
	if writeCSV {
		g.Go(func() error {
			return exporter.NewCSVWriter(logger).Write(gctx, csvPath, summaries)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.InfoContext(ctx, "time gap processing complete",
		slog.Int("summary_count", len(summaries)),
		slog.String("workbook_path", workbookPath))

	fmt.Printf("Wrote %d summaries to %s\n", len(summaries), workbookPath)
	return nil
}

// printChoices lists the distinct filter values the dataset offers, the same
// sets a front end would use to populate its dropdowns.
func printChoices(records []domain.EventRecord) {
	fmt.Println("Dates:")
	for _, d := range dataprocessing.DistinctDates(records) {
		fmt.Printf("  %s\n", d)
	}
	fmt.Println("Employees:")
	for _, n := range dataprocessing.DistinctEmployeeNames(records) {
		fmt.Printf("  %s\n", n)
	}
	fmt.Println("Employee codes:")
	for _, c := range dataprocessing.DistinctEmployeeCodes(records) {
		fmt.Printf("  %s\n", c)
	}
}
