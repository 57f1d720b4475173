package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"timegapcli/pkg/contracts/domain"
)

// Aggregator derives per-employee per-day time gap summaries from event
// records. It is the single source of truth for gap arithmetic so the CLI,
// the exporter and any embedding caller agree on the numbers.
type Aggregator struct {
	logger *slog.Logger
	clock  func() time.Time
}

// AggregatorConfig holds configuration options for the Aggregator.
type AggregatorConfig struct {
	// Clock supplies the substitute timestamp for unparsable log dates.
	// Defaults to time.Now; tests inject a fixed clock.
	Clock func() time.Time
}

// NewAggregator creates a new time gap aggregator.
func NewAggregator(logger *slog.Logger, cfg AggregatorConfig) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Aggregator{logger: logger, clock: cfg.Clock}
}

// validEmployeeCode matches codes usable as a grouping key. Non-numeric codes
// are a data-quality signal and are excluded from aggregation entirely.
var validEmployeeCode = regexp.MustCompile(`^[0-9]+$`)

// monthIndex maps the three-letter month abbreviations used by time clock
// exports. Kept as an explicit table so parsing is independent of host locale.
var monthIndex = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// groupKey identifies one (employee, calendar day) aggregation group. A
// struct key avoids the separator collisions a concatenated string key would
// have when a field itself contains the delimiter.
type groupKey struct {
	employeeName string
	employeeCode string
	day          string
}

// timedRecord pairs a record with its parsed timestamp for in-group sorting.
type timedRecord struct {
	record   domain.EventRecord
	ts       time.Time
	fallback bool
}

// Aggregate groups the records by (employee name, employee code, calendar
// day) and computes each group's first scan, last scan and elapsed gap. An
// optional date criterion is applied first with the same substring semantics
// as ApplyFilters. Records with non-numeric employee codes are dropped.
//
// The reference behavior leaves summaries in grouping order; Aggregate sorts
// them by (name, code, day) for deterministic output.
func (a *Aggregator) Aggregate(ctx context.Context, records []domain.EventRecord, dateCriterion string) []domain.TimeGapSummary {
	if dateCriterion != "" {
		records = ApplyFilters(records, domain.FilterCriteria{Date: dateCriterion})
	}

	groups := make(map[groupKey][]timedRecord)
	var skipped int
	for _, r := range records {
		if !validEmployeeCode.MatchString(r.EmployeeCode) {
			skipped++
			continue
		}
		ts, ok := a.parseLogDate(r.LogDate)
		key := groupKey{
			employeeName: r.EmployeeName,
			employeeCode: r.EmployeeCode,
			day:          domain.CalendarDay(r.LogDate),
		}
		groups[key] = append(groups[key], timedRecord{record: r, ts: ts, fallback: !ok})
	}

	if skipped > 0 {
		a.logger.InfoContext(ctx, "records excluded from aggregation",
			slog.Int("non_numeric_codes", skipped))
	}

	summaries := make([]domain.TimeGapSummary, 0, len(groups))
	for key, group := range groups {
		summary := a.summarizeGroup(key, group)
		if summary.ParseFallbacks > 0 {
			a.logger.WarnContext(ctx, "group contains unparsable log dates, gap is best-effort",
				slog.String("employee_name", key.employeeName),
				slog.String("employee_code", key.employeeCode),
				slog.String("day", key.day),
				slog.Int("parse_fallbacks", summary.ParseFallbacks))
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].EmployeeName != summaries[j].EmployeeName {
			return summaries[i].EmployeeName < summaries[j].EmployeeName
		}
		if summaries[i].EmployeeCode != summaries[j].EmployeeCode {
			return summaries[i].EmployeeCode < summaries[j].EmployeeCode
		}
		return domain.CalendarDay(summaries[i].FirstTime) < domain.CalendarDay(summaries[j].FirstTime)
	})

	a.logger.InfoContext(ctx, "time gap aggregation complete",
		slog.Int("record_count", len(records)),
		slog.Int("group_count", len(summaries)))

	return summaries
}

// summarizeGroup reduces one group to its summary. FirstTime and LastTime are
// the original log date strings of the chronological extremes, not
// reformatted timestamps.
func (a *Aggregator) summarizeGroup(key groupKey, group []timedRecord) domain.TimeGapSummary {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].ts.Before(group[j].ts)
	})

	var fallbacks int
	for _, tr := range group {
		if tr.fallback {
			fallbacks++
		}
	}

	first := group[0]
	last := group[len(group)-1]

	summary := domain.TimeGapSummary{
		EmployeeName:   key.employeeName,
		EmployeeCode:   key.employeeCode,
		FirstTime:      first.record.LogDate,
		LastTime:       last.record.LogDate,
		RecordCount:    len(group),
		ParseFallbacks: fallbacks,
	}

	if len(group) == 1 {
		summary.LastTime = summary.FirstTime
		summary.TotalGap = FormatGap(0)
		return summary
	}

	summary.TotalGap = FormatGap(last.ts.Sub(first.ts))
	return summary
}

// parseLogDate converts a "DD-MMM-YYYY HH:MM:SS" value to a timestamp. On any
// mismatch it soft-fails to the injected clock's current time and reports
// ok=false, so a handful of malformed rows cannot abort a whole report.
func (a *Aggregator) parseLogDate(value string) (time.Time, bool) {
	dayPart := domain.CalendarDay(value)
	timePart := domain.TimeOfDay(value)

	dateFields := strings.Split(dayPart, "-")
	timeFields := strings.Split(timePart, ":")
	if len(dateFields) != 3 || len(timeFields) != 3 {
		return a.clock(), false
	}

	month, ok := monthIndex[dateFields[1]]
	if !ok {
		return a.clock(), false
	}

	day, err1 := strconv.Atoi(dateFields[0])
	year, err2 := strconv.Atoi(dateFields[2])
	hour, err3 := strconv.Atoi(timeFields[0])
	minute, err4 := strconv.Atoi(timeFields[1])
	second, err5 := strconv.Atoi(timeFields[2])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
		return a.clock(), false
	}

	return time.Date(year, month, day, hour, minute, second, 0, time.UTC), true
}

// FormatGap renders an elapsed duration as "{h}h {m}m {s}s" in whole seconds.
// Hours are unbounded: gaps spanning more than a day render as an hours count
// of 24 or more.
func FormatGap(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = -total
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
