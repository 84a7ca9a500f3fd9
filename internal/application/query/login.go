// Package query contains the read operations: login resolution, pending
// request listings and every per-role view.
package query

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// LOGIN QUERY
// Resolves a username into a role actor once, at login. Everything the
// session needs to know about the user, the teacher's working class, a
// parent's children, hangs off the resolved actor; the shell never inspects
// roles again after this.
// ══════════════════════════════════════════════════════════════════════════════

// Role is one of the five console roles.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleTeacher   Role = "teacher"
	RoleStudent   Role = "student"
	RoleParent    Role = "parent"
	RolePrincipal Role = "principal"
)

// DefaultClass is the working class of a teacher with no assignments yet.
const DefaultClass = records.DefaultClass

// Actor is a resolved login.
type Actor struct {
	Role     Role
	Username string

	// Teacher is set for RoleTeacher.
	Teacher *records.TeacherRecord
	// ActiveClass is the teacher's working class.
	ActiveClass string

	// Student is set for RoleStudent.
	Student *records.StudentRecord

	// Children is set for RoleParent.
	Children []records.StudentRecord
}

// LoginQuery contains the role choice and username.
type LoginQuery struct {
	Role     Role
	Username string
}

// Validate checks the query.
func (q LoginQuery) Validate() error {
	switch q.Role {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleParent, RolePrincipal:
	default:
		return shared.NewDomainError("query", "Login",
			shared.ErrInvalidSelection, "unknown role: "+string(q.Role))
	}
	if q.Username == "" {
		return shared.NewDomainError("query", "Login",
			shared.ErrEmptyValue, "username is required")
	}
	return nil
}

// LoginHandler handles LoginQuery.
type LoginHandler struct {
	students records.StudentRepository
	teachers records.TeacherRepository
	log      *logger.Logger
}

// NewLoginHandler creates the handler.
func NewLoginHandler(students records.StudentRepository, teachers records.TeacherRepository, log *logger.Logger) *LoginHandler {
	return &LoginHandler{students: students, teachers: teachers, log: log}
}

// Handle resolves the actor. Teachers and students log in by their recorded
// name, parents by the contact stored on their children; admin and principal
// accounts are not backed by entity records.
func (h *LoginHandler) Handle(ctx context.Context, q LoginQuery) (*Actor, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	actor := &Actor{Role: q.Role, Username: q.Username}

	switch q.Role {
	case RoleAdmin, RolePrincipal:
		// Management roles carry no entity record.

	case RoleTeacher:
		teachers, err := h.teachers.LoadAll()
		if err != nil {
			return nil, err
		}
		found := false
		for i := range teachers {
			if teachers[i].Name == q.Username {
				actor.Teacher = &teachers[i]
				found = true
				break
			}
		}
		if !found {
			return nil, shared.NewDomainError("query", "Login",
				shared.ErrNotFound, "no teacher named "+q.Username)
		}
		actor.ActiveClass = DefaultClass
		if len(actor.Teacher.AssignedClasses) > 0 {
			actor.ActiveClass = actor.Teacher.AssignedClasses[0]
		}

	case RoleStudent:
		students, err := h.students.LoadAll()
		if err != nil {
			return nil, err
		}
		found := false
		for i := range students {
			if students[i].Name == q.Username {
				actor.Student = &students[i]
				found = true
				break
			}
		}
		if !found {
			return nil, shared.NewDomainError("query", "Login",
				shared.ErrNotFound, "no student named "+q.Username)
		}

	case RoleParent:
		students, err := h.students.LoadAll()
		if err != nil {
			return nil, err
		}
		for _, s := range students {
			if s.ParentContact == q.Username {
				actor.Children = append(actor.Children, s)
			}
		}
		if len(actor.Children) == 0 {
			return nil, shared.NewDomainError("query", "Login",
				shared.ErrNotFound, "no children registered under "+q.Username)
		}
	}

	h.log.Info("login resolved", logger.Role(string(actor.Role)))
	return actor, nil
}
