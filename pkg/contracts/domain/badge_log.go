package domain

import (
	"strings"
	"time"
)

// EventRecord represents a single badge scan from a time clock log.
// This is the primary data structure for imported attendance entries.
type EventRecord struct {
	ID           int    `json:"id" validate:"min=1"`
	LogDate      string `json:"log_date"` // "DD-MMM-YYYY HH:MM:SS", kept as source text
	Direction    string `json:"direction"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Company      string `json:"company"`
	Department   string `json:"department"`
}

// TimeGapSummary represents the aggregate for one employee on one calendar day:
// the span between the first and last scan in the group.
type TimeGapSummary struct {
	EmployeeName string `json:"employee_name"`
	EmployeeCode string `json:"employee_code"`
	FirstTime    string `json:"first_time"` // original LogDate text of the earliest scan
	LastTime     string `json:"last_time"`  // original LogDate text of the latest scan
	TotalGap     string `json:"total_gap"`  // "{h}h {m}m {s}s"
	RecordCount  int    `json:"record_count" validate:"min=1"`

	// ParseFallbacks counts records in the group whose LogDate could not be
	// parsed and fell back to the clock. A non-zero value marks the gap as
	// best-effort.
	ParseFallbacks int `json:"parse_fallbacks,omitempty"`
}

// FilterCriteria represents the filter state applied over an imported record
// set. Empty fields impose no constraint.
type FilterCriteria struct {
	Date         string `json:"date,omitempty" validate:"omitempty,max=32"`
	EmployeeName string `json:"employee_name,omitempty" validate:"omitempty,max=128"`
	EmployeeCode string `json:"employee_code,omitempty" validate:"omitempty,numeric"`
}

// IsEmpty reports whether no criterion is set.
func (c FilterCriteria) IsEmpty() bool {
	return c.Date == "" && c.EmployeeName == "" && c.EmployeeCode == ""
}

// ImportMetadata represents bookkeeping for one completed import.
// Each import fully replaces the previous one; there is no cross-import identity.
type ImportMetadata struct {
	ID          string    `json:"id" validate:"required,uuid"`
	FileName    string    `json:"file_name"`
	RecordCount int       `json:"record_count" validate:"min=0"`
	ImportedAt  time.Time `json:"imported_at"`
}

// CalendarDay returns the date portion of a LogDate value, the substring
// preceding the first space. It is the grouping key for one calendar day.
func CalendarDay(logDate string) string {
	if i := strings.IndexByte(logDate, ' '); i >= 0 {
		return logDate[:i]
	}
	return logDate
}

// TimeOfDay returns the portion of a LogDate value after the first space,
// or "" when the value carries no time component.
func TimeOfDay(logDate string) string {
	if i := strings.IndexByte(logDate, ' '); i >= 0 {
		return logDate[i+1:]
	}
	return ""
}
