package command

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/infrastructure/persistence/flatfile"
)

func TestProcessFeesStampsUnsettledOnly(t *testing.T) {
	students := flatfile.NewStudentStore(filepath.Join(t.TempDir(), "students.txt"), nil)
	assert.NoError(t, students.SaveAll([]records.StudentRecord{
		{ID: "S001", Name: "Aliya", ClassName: "10-A", RollNo: "1", ParentContact: "p1", FeeStatus: "Unpaid"},
		{ID: "S002", Name: "Omar", ClassName: "10-B", RollNo: "2", ParentContact: "p2", FeeStatus: "Paid till 2026-07"},
	}))

	h := NewProcessFeesHandler(students, testLogger())
	result, err := h.Handle(context.Background(), ProcessFeesCommand{MonthKey: "2026-08"})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Settled)
	assert.Equal(t, 1, result.AlreadySettled)

	loaded, err := students.LoadAll()
	assert.NoError(t, err)
	assert.Equal(t, "Paid till 2026-08", loaded[0].FeeStatus)
	// An older settled stamp is left alone rather than refreshed.
	assert.Equal(t, "Paid till 2026-07", loaded[1].FeeStatus)
}
