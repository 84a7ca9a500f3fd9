package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDate(t *testing.T) {
	valid := []string{"2026-08-31", "2024-02-29", "1900-01-01", "2100-12-31"}
	for _, s := range valid {
		assert.True(t, ValidateDate(s), s)
	}

	invalid := []string{
		"",
		"2026-8-31",
		"31-08-2026",
		"2026-13-01",
		"2026-00-10",
		"2026-04-31",
		"2026-02-29", // not a leap year
		"1900-02-29", // century rule
		"1899-12-31",
		"2101-01-01",
		"2026/08/31",
		"2026-08-aa",
	}
	for _, s := range invalid {
		assert.False(t, ValidateDate(s), s)
	}

	assert.True(t, ValidateDate("2000-02-29")) // divisible by 400
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, "2026-08", MonthOf("2026-08-31"))
	assert.Equal(t, "2026-08", MonthOf("2026-08"))
	assert.Equal(t, "short", MonthOf("short"))
}
