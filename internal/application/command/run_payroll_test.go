package command

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhub/school-records-hub/internal/domain/payroll"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/infrastructure/persistence/flatfile"
)

func TestRunPayrollIdempotentWithinMonth(t *testing.T) {
	dir := t.TempDir()
	teachers := flatfile.NewTeacherStore(filepath.Join(dir, "teachers.txt"), nil)
	staff := flatfile.NewStaffStore(filepath.Join(dir, "staff.txt"), nil)
	paymentsPath := filepath.Join(dir, "salaries.txt")
	payments := flatfile.NewLedger(paymentsPath)

	assert.NoError(t, teachers.SaveAll([]records.TeacherRecord{
		{ID: "T01", Name: "Meiram", AssignedClasses: []string{"10-A"}, PeriodsPerWeek: 10},
	}))

	h := NewRunPayrollHandler(teachers, staff, payments, testLogger())
	cmd := RunPayrollCommand{Group: payroll.Teachers, Date: "2026-08-31"}

	first, err := h.Handle(context.Background(), cmd)
	assert.NoError(t, err)
	assert.Len(t, first.Paid, 1)
	assert.Equal(t, "80000", first.Paid[0].Amount.String())

	// Same month again: header appended, payee skipped.
	second, err := h.Handle(context.Background(), cmd)
	assert.NoError(t, err)
	assert.Empty(t, second.Paid)
	assert.Equal(t, 1, second.AlreadyProcessed)

	raw, err := os.ReadFile(paymentsPath)
	assert.NoError(t, err)
	content := string(raw)
	assert.Equal(t, 2, strings.Count(content, "[TEACHER SALARIES 2026-08-31]"))
	assert.Equal(t, 1, strings.Count(content, "T01|Meiram|80000|2026-08-31"))
}

func TestRunPayrollNewMonthPaysAgain(t *testing.T) {
	dir := t.TempDir()
	teachers := flatfile.NewTeacherStore(filepath.Join(dir, "teachers.txt"), nil)
	staff := flatfile.NewStaffStore(filepath.Join(dir, "staff.txt"), nil)
	payments := flatfile.NewLedger(filepath.Join(dir, "salaries.txt"))

	assert.NoError(t, teachers.SaveAll([]records.TeacherRecord{
		{ID: "T01", Name: "Meiram", PeriodsPerWeek: 10},
	}))

	h := NewRunPayrollHandler(teachers, staff, payments, testLogger())

	_, err := h.Handle(context.Background(), RunPayrollCommand{Group: payroll.Teachers, Date: "2026-08-31"})
	assert.NoError(t, err)

	result, err := h.Handle(context.Background(), RunPayrollCommand{Group: payroll.Teachers, Date: "2026-09-01"})
	assert.NoError(t, err)
	assert.Len(t, result.Paid, 1)
	assert.Zero(t, result.AlreadyProcessed)
}

func TestRunPayrollStaffSkipsMalformedSalary(t *testing.T) {
	dir := t.TempDir()
	teachers := flatfile.NewTeacherStore(filepath.Join(dir, "teachers.txt"), nil)
	staff := flatfile.NewStaffStore(filepath.Join(dir, "staff.txt"), nil)
	payments := flatfile.NewLedger(filepath.Join(dir, "salaries.txt"))

	assert.NoError(t, staff.SaveAll([]records.StaffRecord{
		{ID: "ST01", Name: "Dana", Role: "Librarian", Salary: "10000", LeavesTaken: 4},
		{ID: "ST02", Name: "Erlan", Role: "Guard", Salary: "not-a-number"},
	}))

	h := NewRunPayrollHandler(teachers, staff, payments, testLogger())
	result, err := h.Handle(context.Background(), RunPayrollCommand{Group: payroll.Staff, Date: "2026-08-31"})
	assert.NoError(t, err)
	assert.Len(t, result.Paid, 1)
	assert.Equal(t, "9800", result.Paid[0].Amount.String())
	assert.Equal(t, 1, result.SkippedMalformed)
}

func TestRunPayrollValidation(t *testing.T) {
	h := NewRunPayrollHandler(nil, nil, nil, testLogger())

	_, err := h.Handle(context.Background(), RunPayrollCommand{Group: "contractors"})
	assert.Error(t, err)

	_, err = h.Handle(context.Background(), RunPayrollCommand{Group: payroll.Teachers, Date: "2026-13-01"})
	assert.Error(t, err)
}
