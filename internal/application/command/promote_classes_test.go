package command

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/infrastructure/persistence/flatfile"
)

func TestPromoteClasses(t *testing.T) {
	students := flatfile.NewStudentStore(filepath.Join(t.TempDir(), "students.txt"), nil)
	assert.NoError(t, students.SaveAll([]records.StudentRecord{
		{ID: "S001", Name: "Aliya", ClassName: "10-A", RollNo: "1", ParentContact: "p1", FeeStatus: "Unpaid"},
		{ID: "S002", Name: "Omar", ClassName: "12-B", RollNo: "2", ParentContact: "p2", FeeStatus: "Unpaid"},
		{ID: "S003", Name: "Dana", ClassName: "Prep", RollNo: "3", ParentContact: "p3", FeeStatus: "Unpaid"},
	}))

	h := NewPromoteClassesHandler(students, testLogger())
	result, err := h.Handle(context.Background(), PromoteClassesCommand{})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Promoted)
	assert.Equal(t, 2, result.Unchanged)

	loaded, err := students.LoadAll()
	assert.NoError(t, err)
	assert.Equal(t, "11-A", loaded[0].ClassName)
	assert.Equal(t, "12-B", loaded[1].ClassName)
	assert.Equal(t, "Prep", loaded[2].ClassName)
}
