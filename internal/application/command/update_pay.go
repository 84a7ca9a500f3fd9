package command

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/schoolhub/school-records-hub/internal/application/session"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE PAY COMMANDS
// Salary administration: a teacher's weekly period load and a staff member's
// base salary are the two inputs of payroll that management edits.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateTeacherLoadCommand sets a teacher's periods per week.
type UpdateTeacherLoadCommand struct {
	TeacherID      string
	PeriodsPerWeek int
}

// Validate checks the command.
func (c UpdateTeacherLoadCommand) Validate() error {
	if c.TeacherID == "" {
		return shared.NewDomainError("command", "UpdateTeacherLoad",
			shared.ErrEmptyValue, "teacher id is required")
	}
	if c.PeriodsPerWeek < 0 {
		return shared.NewDomainError("command", "UpdateTeacherLoad",
			shared.ErrValueOutOfRange, "periods per week cannot be negative")
	}
	return nil
}

// UpdateTeacherLoadHandler handles UpdateTeacherLoadCommand.
type UpdateTeacherLoadHandler struct {
	teachers records.TeacherRepository
	log      *logger.Logger
}

// NewUpdateTeacherLoadHandler creates the handler.
func NewUpdateTeacherLoadHandler(teachers records.TeacherRepository, log *logger.Logger) *UpdateTeacherLoadHandler {
	return &UpdateTeacherLoadHandler{teachers: teachers, log: log}
}

// Handle updates the load in one load, edit, save session.
func (h *UpdateTeacherLoadHandler) Handle(ctx context.Context, cmd UpdateTeacherLoadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sess, err := session.Begin(h.teachers, func(t records.TeacherRecord) string { return t.ID })
	if err != nil {
		return err
	}
	i, ok := sess.Find(cmd.TeacherID)
	if !ok {
		return shared.NewDomainError("command", "UpdateTeacherLoad",
			shared.ErrNotFound, "no teacher with id "+cmd.TeacherID)
	}
	sess.All()[i].PeriodsPerWeek = cmd.PeriodsPerWeek

	if err := sess.Commit(); err != nil {
		return err
	}
	h.log.Info("teacher load updated",
		logger.TeacherID(cmd.TeacherID),
		logger.Int("periods_per_week", cmd.PeriodsPerWeek))
	return nil
}

// UpdateStaffSalaryCommand sets a staff member's base salary.
type UpdateStaffSalaryCommand struct {
	StaffID string
	Salary  decimal.Decimal
}

// Validate checks the command.
func (c UpdateStaffSalaryCommand) Validate() error {
	if c.StaffID == "" {
		return shared.NewDomainError("command", "UpdateStaffSalary",
			shared.ErrEmptyValue, "staff id is required")
	}
	if c.Salary.IsNegative() {
		return shared.NewDomainError("command", "UpdateStaffSalary",
			shared.ErrValueOutOfRange, "salary cannot be negative")
	}
	return nil
}

// UpdateStaffSalaryHandler handles UpdateStaffSalaryCommand.
type UpdateStaffSalaryHandler struct {
	staff records.StaffRepository
	log   *logger.Logger
}

// NewUpdateStaffSalaryHandler creates the handler.
func NewUpdateStaffSalaryHandler(staff records.StaffRepository, log *logger.Logger) *UpdateStaffSalaryHandler {
	return &UpdateStaffSalaryHandler{staff: staff, log: log}
}

// Handle updates the salary in one load, edit, save session.
func (h *UpdateStaffSalaryHandler) Handle(ctx context.Context, cmd UpdateStaffSalaryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sess, err := session.Begin(h.staff, func(s records.StaffRecord) string { return s.ID })
	if err != nil {
		return err
	}
	i, ok := sess.Find(cmd.StaffID)
	if !ok {
		return shared.NewDomainError("command", "UpdateStaffSalary",
			shared.ErrNotFound, "no staff member with id "+cmd.StaffID)
	}
	sess.All()[i].Salary = cmd.Salary.String()

	if err := sess.Commit(); err != nil {
		return err
	}
	h.log.Info("staff salary updated", logger.PayeeID(cmd.StaffID))
	return nil
}
