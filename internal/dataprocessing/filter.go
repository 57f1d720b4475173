package dataprocessing

import (
	"sort"
	"strings"

	"timegapcli/pkg/contracts/domain"
)

// DistinctDates returns the deduplicated, ascending set of calendar days
// present in the records. Empty values are excluded.
func DistinctDates(records []domain.EventRecord) []string {
	return distinct(records, func(r domain.EventRecord) string {
		return domain.CalendarDay(r.LogDate)
	})
}

// DistinctEmployeeNames returns the deduplicated, ascending set of employee
// names present in the records. Empty values are excluded.
func DistinctEmployeeNames(records []domain.EventRecord) []string {
	return distinct(records, func(r domain.EventRecord) string {
		return r.EmployeeName
	})
}

// DistinctEmployeeCodes returns the deduplicated, ascending set of employee
// codes present in the records. Empty values are excluded.
func DistinctEmployeeCodes(records []domain.EventRecord) []string {
	return distinct(records, func(r domain.EventRecord) string {
		return r.EmployeeCode
	})
}

func distinct(records []domain.EventRecord, field func(domain.EventRecord) string) []string {
	seen := make(map[string]struct{}, len(records))
	values := make([]string, 0, len(records))
	for _, r := range records {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// ApplyFilters returns the subset of records matching every non-empty
// criterion. The date criterion matches by substring containment against the
// log date, so a day token matches any timestamp on that day; name and code
// match by exact equality. Original record order is preserved. Empty criteria
// return the input unchanged.
func ApplyFilters(records []domain.EventRecord, criteria domain.FilterCriteria) []domain.EventRecord {
	if criteria.IsEmpty() {
		return records
	}

	filtered := make([]domain.EventRecord, 0, len(records))
	for _, r := range records {
		if criteria.Date != "" && !strings.Contains(r.LogDate, criteria.Date) {
			continue
		}
		if criteria.EmployeeName != "" && r.EmployeeName != criteria.EmployeeName {
			continue
		}
		if criteria.EmployeeCode != "" && r.EmployeeCode != criteria.EmployeeCode {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
