// Package command contains the write operations: every state change goes
// through a command with its own validation and handler.
package command

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/domain/attendance"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/pkg/logger"
	"github.com/schoolhub/school-records-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// MARK ATTENDANCE COMMAND
// Appends one attendance batch for a class: a dated section header followed
// by one line per student.
// ══════════════════════════════════════════════════════════════════════════════

// StudentMark is one student's mark within a batch.
type StudentMark struct {
	StudentID string
	Present   bool
}

// MarkAttendanceCommand contains one attendance batch to record.
type MarkAttendanceCommand struct {
	TeacherID string
	ClassName string
	Date      string // YYYY-MM-DD
	Marks     []StudentMark
}

// Validate checks the command.
func (c MarkAttendanceCommand) Validate() error {
	if c.TeacherID == "" || c.ClassName == "" {
		return shared.NewDomainError("command", "MarkAttendance",
			shared.ErrEmptyValue, "teacher id and class are required")
	}
	if !timeutil.ValidateDate(c.Date) {
		return shared.NewDomainError("command", "MarkAttendance",
			shared.ErrInvalidDate, "date must be a valid YYYY-MM-DD")
	}
	return nil
}

// MarkAttendanceResult reports how many marks were recorded.
type MarkAttendanceResult struct {
	Marked int
}

// MarkAttendanceHandler handles MarkAttendanceCommand.
type MarkAttendanceHandler struct {
	teachers   records.TeacherRepository
	attendance ledger.Log
	log        *logger.Logger
}

// NewMarkAttendanceHandler creates the handler.
func NewMarkAttendanceHandler(teachers records.TeacherRepository, att ledger.Log, log *logger.Logger) *MarkAttendanceHandler {
	return &MarkAttendanceHandler{teachers: teachers, attendance: att, log: log}
}

// Handle records the batch. The teacher must be assigned to the class;
// attendance for someone else's class is refused before anything is written.
func (h *MarkAttendanceHandler) Handle(ctx context.Context, cmd MarkAttendanceCommand) (*MarkAttendanceResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	teachers, err := h.teachers.LoadAll()
	if err != nil {
		return nil, err
	}
	i, ok := records.FindTeacher(teachers, cmd.TeacherID)
	if !ok {
		return nil, shared.NewDomainError("command", "MarkAttendance",
			shared.ErrNotFound, "no teacher with id "+cmd.TeacherID)
	}
	if !teachers[i].IsAssignedTo(cmd.ClassName) {
		return nil, shared.NewDomainError("command", "MarkAttendance",
			shared.ErrNotAssigned, "teacher "+cmd.TeacherID+" is not assigned to "+cmd.ClassName)
	}

	if err := h.attendance.AppendSection(attendance.NewSectionHeader(cmd.Date, cmd.ClassName)); err != nil {
		return nil, err
	}
	for _, m := range cmd.Marks {
		if err := h.attendance.AppendLine(attendance.FormatLine(m.StudentID, m.Present)); err != nil {
			return nil, err
		}
	}

	h.log.Info("attendance recorded",
		logger.TeacherID(cmd.TeacherID),
		logger.ClassName(cmd.ClassName),
		logger.String("date", cmd.Date),
		logger.LineCount(len(cmd.Marks)))
	return &MarkAttendanceResult{Marked: len(cmd.Marks)}, nil
}
