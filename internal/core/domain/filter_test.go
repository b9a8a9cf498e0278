package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		input domain.Filter
		want  domain.Filter
		byDay bool
	}{
		{
			name:  "empty values mean all",
			input: domain.Filter{},
			want:  domain.Filter{TruckNumber: "all", Year: "all", Month: "all"},
		},
		{
			name:  "year all drops a selected month",
			input: domain.Filter{TruckNumber: "70-1234", Year: "all", Month: "5"},
			want:  domain.Filter{TruckNumber: "70-1234", Year: "all", Month: "all"},
		},
		{
			name:  "missing year drops a selected month",
			input: domain.Filter{Month: "5"},
			want:  domain.Filter{TruckNumber: "all", Year: "all", Month: "all"},
		},
		{
			name:  "zero padded month is canonicalised",
			input: domain.Filter{Year: "2024", Month: "03"},
			want:  domain.Filter{TruckNumber: "all", Year: "2024", Month: "3"},
			byDay: true,
		},
		{
			name:  "ALL is case insensitive and trimmed",
			input: domain.Filter{TruckNumber: " ALL ", Year: "2025", Month: "All"},
			want:  domain.Filter{TruckNumber: "all", Year: "2025", Month: "all"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Normalize()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.byDay, got.ByDay())
		})
	}
}

func TestFilter_NormalizeRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		name  string
		input domain.Filter
	}{
		{"month zero", domain.Filter{Year: "2024", Month: "0"}},
		{"month thirteen", domain.Filter{Year: "2024", Month: "13"}},
		{"month text", domain.Filter{Year: "2024", Month: "may"}},
		{"year text", domain.Filter{Year: "twenty"}},
		{"negative year", domain.Filter{Year: "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.input.Normalize()
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestFilter_Accessors(t *testing.T) {
	f, err := domain.NewFilter("", "2024", "2")
	require.NoError(t, err)

	year, ok := f.YearValue()
	assert.True(t, ok)
	assert.Equal(t, 2024, year)

	month, ok := f.MonthValue()
	assert.True(t, ok)
	assert.Equal(t, 2, month)
	assert.True(t, f.AllTrucks())
}

func TestParseInvoiceMonth(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2024-03", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{" 2024-12-17 ", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), false},
		{"2024-13", time.Time{}, true},
		{"03/2024", time.Time{}, true},
		{"", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseInvoiceMonth(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}
