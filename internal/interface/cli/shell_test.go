package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhub/school-records-hub/internal/application/query"
	"github.com/schoolhub/school-records-hub/internal/domain/attendance"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/infrastructure/persistence/flatfile"
	"github.com/schoolhub/school-records-hub/pkg/logger"
)

func TestParentViewsChildAttendance(t *testing.T) {
	dir := t.TempDir()
	quiet := logger.New(logger.Options{Output: io.Discard, Level: logger.LevelError})

	students := flatfile.NewStudentStore(filepath.Join(dir, "students.txt"), nil)
	teachers := flatfile.NewTeacherStore(filepath.Join(dir, "teachers.txt"), nil)
	att := flatfile.NewLedger(filepath.Join(dir, "attendance.txt"))

	assert.NoError(t, students.SaveAll([]records.StudentRecord{
		{ID: "S001", Name: "Aliya", ClassName: "10-A", RollNo: "1", ParentContact: "parent1", FeeStatus: "Unpaid"},
	}))
	assert.NoError(t, att.AppendSection(attendance.NewSectionHeader("2026-08-31", "10-A")))
	assert.NoError(t, att.AppendLine(attendance.FormatLine("S001", true)))

	handlers := Handlers{
		Login:      query.NewLoginHandler(students, teachers, quiet),
		Attendance: query.NewGetAttendanceHandler(att),
	}

	// Parent login, then the child attendance entry; the only child is
	// picked without a prompt. Two zeroes log out and exit.
	in := strings.NewReader("4\nparent1\n2\n0\n0\n")
	var out strings.Builder
	shell := NewShell(handlers, in, &out, quiet)

	assert.NoError(t, shell.Run(context.Background()))
	assert.Contains(t, out.String(), "Child attendance")
	assert.Contains(t, out.String(), "Attendance: 1/1 (100%)")
	assert.Contains(t, out.String(), "2026-08-31")
	assert.Contains(t, out.String(), "Present")
}
