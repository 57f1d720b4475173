package dataprocessing

import (
	"timegapcli/pkg/contracts/domain"
)

// Column labels expected in the header row. Matching is case-sensitive and
// exact after trimming; there is no alias fallback.
const (
	ColLogDate      = "Log Date"
	ColDirection    = "Direction"
	ColEmployeeCode = "Employee Code"
	ColEmployeeName = "Employee Name"
	ColCompany      = "Company"
	ColDepartment   = "Department"
)

// NormalizeRows converts decoded row maps into event records. Ids are
// assigned sequentially from 1 in row order and are stable within one import.
// Unresolved columns yield empty strings, never an error: sparse trailing
// cells are routine in real spreadsheets.
func NormalizeRows(raws []RawRow) []domain.EventRecord {
	records := make([]domain.EventRecord, 0, len(raws))
	for i, raw := range raws {
		records = append(records, domain.EventRecord{
			ID:           i + 1,
			LogDate:      raw[ColLogDate],
			Direction:    raw[ColDirection],
			EmployeeCode: raw[ColEmployeeCode],
			EmployeeName: raw[ColEmployeeName],
			Company:      raw[ColCompany],
			Department:   raw[ColDepartment],
		})
	}
	return records
}
