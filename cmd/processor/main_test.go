package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"timegapcli/pkg/contracts/domain"
)

func TestValidateCriteria(t *testing.T) {
	tests := []struct {
		name     string
		criteria domain.FilterCriteria
		wantErr  bool
	}{
		{name: "empty criteria", criteria: domain.FilterCriteria{}},
		{name: "numeric code", criteria: domain.FilterCriteria{EmployeeCode: "101"}},
		{name: "non-numeric code rejected", criteria: domain.FilterCriteria{EmployeeCode: "AB1"}, wantErr: true},
		{name: "day token", criteria: domain.FilterCriteria{Date: "25-Jun-2025"}},
		{name: "name", criteria: domain.FilterCriteria{EmployeeName: "Alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCriteria(tt.criteria)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
