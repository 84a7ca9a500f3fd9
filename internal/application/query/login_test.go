package query

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/internal/infrastructure/persistence/flatfile"
	"github.com/schoolhub/school-records-hub/pkg/logger"
)

func newLoginHandler(t *testing.T) *LoginHandler {
	t.Helper()
	dir := t.TempDir()
	students := flatfile.NewStudentStore(filepath.Join(dir, "students.txt"), nil)
	teachers := flatfile.NewTeacherStore(filepath.Join(dir, "teachers.txt"), nil)

	assert.NoError(t, students.SaveAll([]records.StudentRecord{
		{ID: "S001", Name: "Aliya", ClassName: "10-A", RollNo: "1", ParentContact: "parent1", FeeStatus: "Unpaid"},
		{ID: "S002", Name: "Omar", ClassName: "10-B", RollNo: "2", ParentContact: "parent1", FeeStatus: "Unpaid"},
	}))
	assert.NoError(t, teachers.SaveAll([]records.TeacherRecord{
		{ID: "T01", Name: "Meiram", AssignedClasses: []string{"11-B", "10-A"}, PeriodsPerWeek: 10},
		{ID: "T02", Name: "Saule", PeriodsPerWeek: 8},
	}))

	quiet := logger.New(logger.Options{Output: io.Discard, Level: logger.LevelError})
	return NewLoginHandler(students, teachers, quiet)
}

func TestLoginManagementRoles(t *testing.T) {
	h := newLoginHandler(t)

	actor, err := h.Handle(context.Background(), LoginQuery{Role: RoleAdmin, Username: "admin"})
	assert.NoError(t, err)
	assert.Nil(t, actor.Teacher)
	assert.Nil(t, actor.Student)

	actor, err = h.Handle(context.Background(), LoginQuery{Role: RolePrincipal, Username: "principal"})
	assert.NoError(t, err)
	assert.Equal(t, RolePrincipal, actor.Role)
}

func TestLoginTeacherActiveClass(t *testing.T) {
	h := newLoginHandler(t)

	actor, err := h.Handle(context.Background(), LoginQuery{Role: RoleTeacher, Username: "Meiram"})
	assert.NoError(t, err)
	assert.Equal(t, "T01", actor.Teacher.ID)
	assert.Equal(t, "11-B", actor.ActiveClass) // first assigned class

	// No assignments: the default working class stands in.
	actor, err = h.Handle(context.Background(), LoginQuery{Role: RoleTeacher, Username: "Saule"})
	assert.NoError(t, err)
	assert.Equal(t, DefaultClass, actor.ActiveClass)

	_, err = h.Handle(context.Background(), LoginQuery{Role: RoleTeacher, Username: "Nobody"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestLoginParentCollectsChildren(t *testing.T) {
	h := newLoginHandler(t)

	actor, err := h.Handle(context.Background(), LoginQuery{Role: RoleParent, Username: "parent1"})
	assert.NoError(t, err)
	assert.Len(t, actor.Children, 2)

	_, err = h.Handle(context.Background(), LoginQuery{Role: RoleParent, Username: "parent9"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestLoginValidation(t *testing.T) {
	h := newLoginHandler(t)

	_, err := h.Handle(context.Background(), LoginQuery{Role: "janitor", Username: "x"})
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)

	_, err = h.Handle(context.Background(), LoginQuery{Role: RoleStudent, Username: ""})
	assert.ErrorIs(t, err, shared.ErrEmptyValue)
}
