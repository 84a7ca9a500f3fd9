// Package payroll computes monthly pay for teachers and staff and guards
// against a payee being processed twice in the same calendar month.
package payroll

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

// Pay policy.
const (
	// RatePerPeriod is the teacher rate per weekly period.
	RatePerPeriod = 2000
	// WeeksPerMonth converts the weekly period load into a monthly base.
	WeeksPerMonth = 4
	// AllowedLeaves is the number of leaves per month without deduction.
	AllowedLeaves = 2
	// TeacherLeaveDeduction is deducted per excess leave for teachers.
	TeacherLeaveDeduction = 500
	// StaffLeaveDeductionPct is the salary percentage deducted per excess
	// leave for staff.
	StaffLeaveDeductionPct = 1
)

// TeacherBasePay is the teacher's monthly base before deductions:
// periodsPerWeek * 2000 * 4.
func TeacherBasePay(periodsPerWeek int) decimal.Decimal {
	return decimal.NewFromInt(int64(periodsPerWeek) * RatePerPeriod * WeeksPerMonth)
}

// TeacherMonthlyPay is the teacher's pay after leave deductions, floored
// at zero.
func TeacherMonthlyPay(t records.TeacherRecord) decimal.Decimal {
	pay := TeacherBasePay(t.PeriodsPerWeek).
		Sub(decimal.NewFromInt(int64(excessLeaves(t.LeavesTaken)) * TeacherLeaveDeduction))
	if pay.IsNegative() {
		return decimal.Zero
	}
	return pay
}

// StaffMonthlyPay is the staff member's salary reduced by one percent per
// excess leave, floored at zero. The salary field is decimal text; a value
// that fails to parse is a malformed field.
func StaffMonthlyPay(s records.StaffRecord) (decimal.Decimal, error) {
	salary, err := ParseSalary(s.Salary)
	if err != nil {
		return decimal.Zero, err
	}

	deductionPct := decimal.NewFromInt(int64(excessLeaves(s.LeavesTaken)) * StaffLeaveDeductionPct).
		Div(decimal.NewFromInt(100))
	pay := salary.Sub(salary.Mul(deductionPct))
	if pay.IsNegative() {
		return decimal.Zero, nil
	}
	return pay, nil
}

// ParseSalary parses the stored salary text.
func ParseSalary(text string) (decimal.Decimal, error) {
	salary, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, shared.WrapError("payroll", "ParseSalary",
			shared.ErrMalformedField, "salary is not a decimal", err)
	}
	return salary, nil
}

func excessLeaves(taken int) int {
	if taken <= AllowedLeaves {
		return 0
	}
	return taken - AllowedLeaves
}

// Line is one processed payment.
type Line struct {
	PayeeID   string
	PayeeName string
	Amount    decimal.Decimal
	Date      string
}

// Encode renders the payment detail line: "payeeId|name|amount|date".
func (l Line) Encode() string {
	return l.PayeeID + "|" + l.PayeeName + "|" + l.Amount.String() + "|" + l.Date
}

// Group selects which payees a payroll run covers.
type Group string

const (
	Teachers Group = "teachers"
	Staff    Group = "staff"
)

// SectionHeader builds the payroll batch header for a group and run date.
func SectionHeader(group Group, date string) ledger.Header {
	if group == Teachers {
		return ledger.NewHeader(ledger.TagTeacherSalaries, date)
	}
	return ledger.NewHeader(ledger.TagStaffSalaries, date)
}

// MatchesProcessed reports whether an existing ledger line proves the payee
// was already paid in the given YYYY-MM month. The check is substring
// containment of both the payee id and the month prefix, matching how the
// ledger has always been queried.
func MatchesProcessed(line, payeeID, monthKey string) bool {
	return strings.Contains(line, payeeID) && strings.Contains(line, monthKey)
}
