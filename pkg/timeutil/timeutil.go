// Package timeutil provides the date conventions used throughout the school
// records files: ISO dates for attendance and payroll stamps, YYYY-MM month
// keys for fee status and payroll idempotency, and MM-YYYY challan months.
// No external dependencies - uses only standard library.
package timeutil

import (
	"strconv"
	"time"
)

// Common date formats.
const (
	// FormatDate is the standard date format (YYYY-MM-DD) used in ledger
	// section headers and payroll lines.
	FormatDate = "2006-01-02"
	// FormatMonth is the month key format (YYYY-MM) used for fee status
	// and the payroll idempotency guard.
	FormatMonth = "2006-01"
	// FormatChallanMonth is the month format (MM-YYYY) used in fee challan
	// section headers.
	FormatChallanMonth = "01-2006"
)

// Today returns the current date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(FormatDate)
}

// CurrentMonth returns the current month key as YYYY-MM.
func CurrentMonth() string {
	return time.Now().Format(FormatMonth)
}

// CurrentChallanMonth returns the current month as MM-YYYY.
func CurrentChallanMonth() string {
	return time.Now().Format(FormatChallanMonth)
}

// MonthOf extracts the YYYY-MM month key from a YYYY-MM-DD date string.
// The input is not validated; callers validate dates before storing them.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// ValidateDate reports whether s is a well-formed YYYY-MM-DD calendar date
// between 1900 and 2100, including month lengths and leap years.
func ValidateDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}

	year, err := strconv.Atoi(s[0:4])
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(s[5:7])
	if err != nil {
		return false
	}
	day, err := strconv.Atoi(s[8:10])
	if err != nil {
		return false
	}

	if year < 1900 || year > 2100 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}

	switch month {
	case 4, 6, 9, 11:
		if day > 30 {
			return false
		}
	case 2:
		isLeap := year%400 == 0 || (year%100 != 0 && year%4 == 0)
		if isLeap && day > 29 {
			return false
		}
		if !isLeap && day > 28 {
			return false
		}
	}

	return true
}
