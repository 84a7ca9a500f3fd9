package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/internal/infrastructure/persistence/flatfile"
)

func TestMarkAttendanceAppendsBatch(t *testing.T) {
	dir := t.TempDir()
	teachers := flatfile.NewTeacherStore(filepath.Join(dir, "teachers.txt"), nil)
	attendancePath := filepath.Join(dir, "attendance.txt")
	att := flatfile.NewLedger(attendancePath)

	assert.NoError(t, teachers.SaveAll([]records.TeacherRecord{
		{ID: "T01", Name: "Meiram", AssignedClasses: []string{"10-A"}, PeriodsPerWeek: 10},
	}))

	h := NewMarkAttendanceHandler(teachers, att, testLogger())
	result, err := h.Handle(context.Background(), MarkAttendanceCommand{
		TeacherID: "T01",
		ClassName: "10-A",
		Date:      "2026-08-31",
		Marks: []StudentMark{
			{StudentID: "S001", Present: true},
			{StudentID: "S002", Present: false},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Marked)

	raw, err := os.ReadFile(attendancePath)
	assert.NoError(t, err)
	assert.Equal(t,
		"\n[ATTENDANCE 2026-08-31 CLASS 10-A]\n"+
			"S001: Present\n"+
			"S002: Absent\n",
		string(raw))
}

func TestMarkAttendanceUnassignedTeacherUsesDefaultClass(t *testing.T) {
	dir := t.TempDir()
	teachers := flatfile.NewTeacherStore(filepath.Join(dir, "teachers.txt"), nil)
	att := flatfile.NewLedger(filepath.Join(dir, "attendance.txt"))

	assert.NoError(t, teachers.SaveAll([]records.TeacherRecord{
		{ID: "T01", Name: "Meiram", PeriodsPerWeek: 10},
	}))

	h := NewMarkAttendanceHandler(teachers, att, testLogger())
	result, err := h.Handle(context.Background(), MarkAttendanceCommand{
		TeacherID: "T01",
		ClassName: records.DefaultClass,
		Date:      "2026-08-31",
		Marks:     []StudentMark{{StudentID: "S001", Present: true}},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Marked)
}

func TestMarkAttendanceGuards(t *testing.T) {
	dir := t.TempDir()
	teachers := flatfile.NewTeacherStore(filepath.Join(dir, "teachers.txt"), nil)
	att := flatfile.NewLedger(filepath.Join(dir, "attendance.txt"))

	assert.NoError(t, teachers.SaveAll([]records.TeacherRecord{
		{ID: "T01", Name: "Meiram", AssignedClasses: []string{"10-A"}, PeriodsPerWeek: 10},
	}))
	h := NewMarkAttendanceHandler(teachers, att, testLogger())

	_, err := h.Handle(context.Background(), MarkAttendanceCommand{
		TeacherID: "T01", ClassName: "10-A", Date: "2026-02-30",
	})
	assert.ErrorIs(t, err, shared.ErrInvalidDate)

	_, err = h.Handle(context.Background(), MarkAttendanceCommand{
		TeacherID: "T01", ClassName: "11-B", Date: "2026-08-31",
	})
	assert.ErrorIs(t, err, shared.ErrNotAssigned)

	_, err = h.Handle(context.Background(), MarkAttendanceCommand{
		TeacherID: "T99", ClassName: "10-A", Date: "2026-08-31",
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
