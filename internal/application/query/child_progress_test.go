package query

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhub/school-records-hub/internal/domain/attendance"
	"github.com/schoolhub/school-records-hub/internal/domain/grading"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/internal/infrastructure/persistence/flatfile"
)

func TestVerdictBands(t *testing.T) {
	assert.Equal(t, VerdictExcellent, verdict(85, 100))
	assert.Equal(t, VerdictGood, verdict(70, 100))
	assert.Equal(t, VerdictGood, verdict(84.9, 100))
	assert.Equal(t, VerdictNeedsImprovement, verdict(69.9, 100))
	// Low attendance overrides every grade band.
	assert.Equal(t, VerdictLowAttendance, verdict(95, 74.9))
	assert.Equal(t, VerdictExcellent, verdict(95, 75))
}

func TestGetChildProgress(t *testing.T) {
	dir := t.TempDir()
	students := flatfile.NewStudentStore(filepath.Join(dir, "students.txt"), nil)
	grades := flatfile.NewLedger(filepath.Join(dir, "grades.txt"))
	att := flatfile.NewLedger(filepath.Join(dir, "attendance.txt"))

	assert.NoError(t, students.SaveAll([]records.StudentRecord{
		{ID: "S001", Name: "Aliya", ClassName: "10-A", RollNo: "1", ParentContact: "parent1", FeeStatus: "Unpaid"},
	}))

	assert.NoError(t, grades.AppendSection(grading.NewSectionHeader(grading.Quiz, "Math", "T01")))
	assert.NoError(t, grades.AppendLine("S001|90"))
	assert.NoError(t, grades.AppendSection(grading.NewSectionHeader(grading.Midterm, "Math", "T01")))
	assert.NoError(t, grades.AppendLine("S001|90"))
	assert.NoError(t, grades.AppendSection(grading.NewSectionHeader(grading.Final, "Math", "T01")))
	assert.NoError(t, grades.AppendLine("S001|90"))

	assert.NoError(t, att.AppendSection(attendance.NewSectionHeader("2026-08-28", "10-A")))
	assert.NoError(t, att.AppendLine(attendance.FormatLine("S001", true)))

	h := NewGetChildProgressHandler(students, grades, att)
	progress, err := h.Handle(context.Background(), "S001")
	assert.NoError(t, err)
	assert.Equal(t, "Aliya", progress.Child.Name)
	assert.Len(t, progress.Subjects, 1)
	assert.InDelta(t, 90.0, progress.OverallAverage, 1e-9)
	assert.InDelta(t, 100.0, progress.Attendance.Percent(), 1e-9)
	assert.Equal(t, VerdictExcellent, progress.Verdict)
}

func TestGetChildProgressNoGrades(t *testing.T) {
	dir := t.TempDir()
	students := flatfile.NewStudentStore(filepath.Join(dir, "students.txt"), nil)
	grades := flatfile.NewLedger(filepath.Join(dir, "grades.txt"))
	att := flatfile.NewLedger(filepath.Join(dir, "attendance.txt"))

	assert.NoError(t, students.SaveAll([]records.StudentRecord{
		{ID: "S001", Name: "Aliya", ClassName: "10-A", RollNo: "1", ParentContact: "parent1", FeeStatus: "Unpaid"},
	}))
	assert.NoError(t, att.AppendSection(attendance.NewSectionHeader("2026-08-28", "10-A")))
	assert.NoError(t, att.AppendLine(attendance.FormatLine("S001", true)))

	h := NewGetChildProgressHandler(students, grades, att)
	progress, err := h.Handle(context.Background(), "S001")
	assert.NoError(t, err)
	assert.Empty(t, progress.Subjects)
	assert.Zero(t, progress.OverallAverage)
	assert.Equal(t, VerdictNeedsImprovement, progress.Verdict)
}

func TestGetChildProgressUnknownChild(t *testing.T) {
	dir := t.TempDir()
	students := flatfile.NewStudentStore(filepath.Join(dir, "students.txt"), nil)
	grades := flatfile.NewLedger(filepath.Join(dir, "grades.txt"))
	att := flatfile.NewLedger(filepath.Join(dir, "attendance.txt"))

	h := NewGetChildProgressHandler(students, grades, att)
	_, err := h.Handle(context.Background(), "S404")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
