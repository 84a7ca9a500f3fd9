package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhub/school-records-hub/internal/domain/grading"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/internal/infrastructure/persistence/flatfile"
)

func TestEnterGradesSkipsOutOfRange(t *testing.T) {
	dir := t.TempDir()
	teachers := flatfile.NewTeacherStore(filepath.Join(dir, "teachers.txt"), nil)
	gradesPath := filepath.Join(dir, "grades.txt")
	grades := flatfile.NewLedger(gradesPath)

	assert.NoError(t, teachers.SaveAll([]records.TeacherRecord{
		{ID: "T01", Name: "Meiram", AssignedClasses: []string{"10-A"}, PeriodsPerWeek: 10},
	}))

	h := NewEnterGradesHandler(teachers, grades, testLogger())
	result, err := h.Handle(context.Background(), EnterGradesCommand{
		TeacherID: "T01",
		ClassName: "10-A",
		Type:      grading.Midterm,
		Grades: []StudentGrade{
			{StudentID: "S001", Grade: 87},
			{StudentID: "S002", Grade: 150},
			{StudentID: "S003", Grade: 0},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Recorded)
	assert.Equal(t, 1, result.Skipped)

	raw, err := os.ReadFile(gradesPath)
	assert.NoError(t, err)
	assert.Equal(t,
		"\n[GRADES midterm CLASS 10-A TEACHER T01]\n"+
			"S001|87\n"+
			"S003|0\n",
		string(raw))
}

func TestEnterGradesGuards(t *testing.T) {
	dir := t.TempDir()
	teachers := flatfile.NewTeacherStore(filepath.Join(dir, "teachers.txt"), nil)
	grades := flatfile.NewLedger(filepath.Join(dir, "grades.txt"))

	assert.NoError(t, teachers.SaveAll([]records.TeacherRecord{
		{ID: "T01", Name: "Meiram", AssignedClasses: []string{"10-A"}, PeriodsPerWeek: 10},
	}))
	h := NewEnterGradesHandler(teachers, grades, testLogger())

	_, err := h.Handle(context.Background(), EnterGradesCommand{
		TeacherID: "T01", ClassName: "10-A", Type: "homework",
	})
	assert.ErrorIs(t, err, shared.ErrValueOutOfRange)

	_, err = h.Handle(context.Background(), EnterGradesCommand{
		TeacherID: "T99", ClassName: "10-A", Type: grading.Quiz,
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = h.Handle(context.Background(), EnterGradesCommand{
		TeacherID: "T01", ClassName: "11-B", Type: grading.Quiz,
	})
	assert.ErrorIs(t, err, shared.ErrNotAssigned)
}
