package command

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/domain/grading"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENTER GRADES COMMAND
// Appends one grade batch for a class and assignment type. A grade outside
// 0..100 skips that student, not the batch.
// ══════════════════════════════════════════════════════════════════════════════

// StudentGrade is one student's grade within a batch.
type StudentGrade struct {
	StudentID string
	Grade     int
}

// EnterGradesCommand contains one grade batch to record.
type EnterGradesCommand struct {
	TeacherID string
	ClassName string
	Type      grading.AssignmentType
	Grades    []StudentGrade
}

// Validate checks the command.
func (c EnterGradesCommand) Validate() error {
	if c.TeacherID == "" || c.ClassName == "" {
		return shared.NewDomainError("command", "EnterGrades",
			shared.ErrEmptyValue, "teacher id and class are required")
	}
	switch c.Type {
	case grading.Quiz, grading.Midterm, grading.Final:
		return nil
	default:
		return shared.NewDomainError("command", "EnterGrades",
			shared.ErrValueOutOfRange, "unknown assignment type: "+string(c.Type))
	}
}

// EnterGradesResult reports recorded and skipped grades.
type EnterGradesResult struct {
	Recorded int
	Skipped  int
}

// EnterGradesHandler handles EnterGradesCommand.
type EnterGradesHandler struct {
	teachers records.TeacherRepository
	grades   ledger.Log
	log      *logger.Logger
}

// NewEnterGradesHandler creates the handler.
func NewEnterGradesHandler(teachers records.TeacherRepository, grades ledger.Log, log *logger.Logger) *EnterGradesHandler {
	return &EnterGradesHandler{teachers: teachers, grades: grades, log: log}
}

// Handle records the batch under a typed section header.
func (h *EnterGradesHandler) Handle(ctx context.Context, cmd EnterGradesCommand) (*EnterGradesResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	teachers, err := h.teachers.LoadAll()
	if err != nil {
		return nil, err
	}
	i, ok := records.FindTeacher(teachers, cmd.TeacherID)
	if !ok {
		return nil, shared.NewDomainError("command", "EnterGrades",
			shared.ErrNotFound, "no teacher with id "+cmd.TeacherID)
	}
	if !teachers[i].IsAssignedTo(cmd.ClassName) {
		return nil, shared.NewDomainError("command", "EnterGrades",
			shared.ErrNotAssigned, "teacher "+cmd.TeacherID+" is not assigned to "+cmd.ClassName)
	}

	if err := h.grades.AppendSection(grading.NewSectionHeader(cmd.Type, cmd.ClassName, cmd.TeacherID)); err != nil {
		return nil, err
	}

	result := &EnterGradesResult{}
	for _, g := range cmd.Grades {
		if !grading.ValidGrade(g.Grade) {
			h.log.Warn("skipping out-of-range grade",
				logger.StudentID(g.StudentID), logger.Int("grade", g.Grade))
			result.Skipped++
			continue
		}
		if err := h.grades.AppendLine(grading.FormatLine(g.StudentID, g.Grade)); err != nil {
			return nil, err
		}
		result.Recorded++
	}

	h.log.Info("grades recorded",
		logger.TeacherID(cmd.TeacherID),
		logger.ClassName(cmd.ClassName),
		logger.String("type", string(cmd.Type)),
		logger.LineCount(result.Recorded))
	return result, nil
}
