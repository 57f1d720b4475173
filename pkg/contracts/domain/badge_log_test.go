package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalendarDay(t *testing.T) {
	assert.Equal(t, "25-Jun-2025", CalendarDay("25-Jun-2025 11:35:45"))
	assert.Equal(t, "25-Jun-2025", CalendarDay("25-Jun-2025"))
	assert.Equal(t, "", CalendarDay(""))
}

func TestTimeOfDay(t *testing.T) {
	assert.Equal(t, "11:35:45", TimeOfDay("25-Jun-2025 11:35:45"))
	assert.Equal(t, "", TimeOfDay("25-Jun-2025"))
	assert.Equal(t, "", TimeOfDay(""))
}

func TestFilterCriteriaIsEmpty(t *testing.T) {
	assert.True(t, FilterCriteria{}.IsEmpty())
	assert.False(t, FilterCriteria{Date: "25-Jun-2025"}.IsEmpty())
	assert.False(t, FilterCriteria{EmployeeName: "Alice"}.IsEmpty())
	assert.False(t, FilterCriteria{EmployeeCode: "101"}.IsEmpty())
}
