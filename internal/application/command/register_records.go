package command

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/application/session"
	"github.com/schoolhub/school-records-hub/internal/domain/payroll"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER COMMANDS
// Enrollment of new students, teachers and staff into the entity files.
// Ids are supplied by the registrar, not generated; a duplicate is rejected.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterStudentCommand enrolls a new student.
type RegisterStudentCommand struct {
	Student records.StudentRecord
}

// Validate checks the command.
func (c RegisterStudentCommand) Validate() error {
	if c.Student.ID == "" || c.Student.Name == "" {
		return shared.NewDomainError("command", "RegisterStudent",
			shared.ErrEmptyValue, "student id and name are required")
	}
	return nil
}

// RegisterStudentHandler handles RegisterStudentCommand.
type RegisterStudentHandler struct {
	students records.StudentRepository
	log      *logger.Logger
}

// NewRegisterStudentHandler creates the handler.
func NewRegisterStudentHandler(students records.StudentRepository, log *logger.Logger) *RegisterStudentHandler {
	return &RegisterStudentHandler{students: students, log: log}
}

// Handle appends the student to the collection. A new student starts with
// unpaid fees unless a status was carried in.
func (h *RegisterStudentHandler) Handle(ctx context.Context, cmd RegisterStudentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sess, err := session.Begin(h.students, func(s records.StudentRecord) string { return s.ID })
	if err != nil {
		return err
	}
	student := cmd.Student
	if student.FeeStatus == "" {
		student.FeeStatus = "Unpaid"
	}
	if err := sess.Add(student); err != nil {
		return err
	}
	if err := sess.Commit(); err != nil {
		return err
	}

	h.log.Info("student registered",
		logger.StudentID(student.ID), logger.ClassName(student.ClassName))
	return nil
}

// RegisterTeacherCommand enrolls a new teacher.
type RegisterTeacherCommand struct {
	Teacher records.TeacherRecord
}

// Validate checks the command.
func (c RegisterTeacherCommand) Validate() error {
	if c.Teacher.ID == "" || c.Teacher.Name == "" {
		return shared.NewDomainError("command", "RegisterTeacher",
			shared.ErrEmptyValue, "teacher id and name are required")
	}
	if c.Teacher.PeriodsPerWeek < 0 {
		return shared.NewDomainError("command", "RegisterTeacher",
			shared.ErrValueOutOfRange, "periods per week cannot be negative")
	}
	return nil
}

// RegisterTeacherHandler handles RegisterTeacherCommand.
type RegisterTeacherHandler struct {
	teachers records.TeacherRepository
	log      *logger.Logger
}

// NewRegisterTeacherHandler creates the handler.
func NewRegisterTeacherHandler(teachers records.TeacherRepository, log *logger.Logger) *RegisterTeacherHandler {
	return &RegisterTeacherHandler{teachers: teachers, log: log}
}

// Handle appends the teacher to the collection.
func (h *RegisterTeacherHandler) Handle(ctx context.Context, cmd RegisterTeacherCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sess, err := session.Begin(h.teachers, func(t records.TeacherRecord) string { return t.ID })
	if err != nil {
		return err
	}
	if err := sess.Add(cmd.Teacher); err != nil {
		return err
	}
	if err := sess.Commit(); err != nil {
		return err
	}

	h.log.Info("teacher registered", logger.TeacherID(cmd.Teacher.ID))
	return nil
}

// RegisterStaffCommand enrolls a new staff member.
type RegisterStaffCommand struct {
	Staff records.StaffRecord
}

// Validate checks the command.
func (c RegisterStaffCommand) Validate() error {
	if c.Staff.ID == "" || c.Staff.Name == "" {
		return shared.NewDomainError("command", "RegisterStaff",
			shared.ErrEmptyValue, "staff id and name are required")
	}
	if _, err := payroll.ParseSalary(c.Staff.Salary); err != nil {
		return err
	}
	return nil
}

// RegisterStaffHandler handles RegisterStaffCommand.
type RegisterStaffHandler struct {
	staff records.StaffRepository
	log   *logger.Logger
}

// NewRegisterStaffHandler creates the handler.
func NewRegisterStaffHandler(staff records.StaffRepository, log *logger.Logger) *RegisterStaffHandler {
	return &RegisterStaffHandler{staff: staff, log: log}
}

// Handle appends the staff member to the collection.
func (h *RegisterStaffHandler) Handle(ctx context.Context, cmd RegisterStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sess, err := session.Begin(h.staff, func(s records.StaffRecord) string { return s.ID })
	if err != nil {
		return err
	}
	if err := sess.Add(cmd.Staff); err != nil {
		return err
	}
	if err := sess.Commit(); err != nil {
		return err
	}

	h.log.Info("staff member registered", logger.PayeeID(cmd.Staff.ID))
	return nil
}
