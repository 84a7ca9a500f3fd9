package flatfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhub/school-records-hub/internal/domain/records"
)

func studentPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "students.txt")
}

func TestStoreMissingFileLoadsEmpty(t *testing.T) {
	store := NewStudentStore(studentPath(t), nil)

	items, err := store.LoadAll()
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestStoreSaveAndLoadRoundTrip(t *testing.T) {
	path := studentPath(t)
	store := NewStudentStore(path, nil)

	in := []records.StudentRecord{
		{ID: "S001", Name: "Aliya", ClassName: "10-A", RollNo: "1", ParentContact: "parent1", FeeStatus: "Unpaid"},
		{ID: "S002", Name: "Omar", ClassName: "10-B", RollNo: "2", ParentContact: "parent2", FeeStatus: "Paid till 2026-08"},
	}
	assert.NoError(t, store.SaveAll(in))

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t,
		"[STUDENT RECORD]\n"+
			"S001|Aliya|10-A|1|parent1|Unpaid\n"+
			"S002|Omar|10-B|2|parent2|Paid till 2026-08\n",
		string(raw))

	out, err := store.LoadAll()
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStoreLoadTolerance(t *testing.T) {
	path := studentPath(t)
	content := "[STUDENT RECORD]\n" +
		"\n" +
		"S001|Aliya|10-A|1|parent1|Unpaid\n" +
		"short|line\n" + // under arity, dropped
		"  S002 | Omar | 10-B | 2 | parent2 | Unpaid \n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := NewStudentStore(path, nil).LoadAll()
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "Omar", out[1].Name)
}

func TestStaffStoreSkipsMalformedLeaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staff.txt")
	content := "[STAFF RECORD]\n" +
		"ST01|Dana|Librarian|555|10000|two\n" + // non-numeric leaves, skipped with a warning
		"ST02|Erlan|Guard|556|9000|1\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := NewStaffStore(path, nil).LoadAll()
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "ST02", out[0].ID)
	assert.Equal(t, 1, out[0].LeavesTaken)
}

func TestSaveAllOverwrites(t *testing.T) {
	path := studentPath(t)
	store := NewStudentStore(path, nil)

	assert.NoError(t, store.SaveAll([]records.StudentRecord{
		{ID: "S001", Name: "Aliya", ClassName: "10-A", RollNo: "1", ParentContact: "p", FeeStatus: "Unpaid"},
	}))
	assert.NoError(t, store.SaveAll(nil))

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "[STUDENT RECORD]\n", string(raw))
}
