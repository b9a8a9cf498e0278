package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBaht(t *testing.T) {
	tests := map[string]string{
		"0":           "0.00",
		"12.5":        "12.50",
		"999.999":     "1,000.00",
		"1234567.891": "1,234,567.89",
		"-4500":       "-4,500.00",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatBaht(decimal.RequireFromString(in)), in)
	}
}

func TestPosthogClientWrapper_NilSafe(t *testing.T) {
	var w *PosthogClientWrapper
	assert.False(t, w.IsInitialized())
	w.Enqueue("127.0.0.1", "noop", nil)
	w.Close()
}
