package command

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/application/aggregate"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/reportcard"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// GENERATE REPORTS COMMAND
// Appends a term report section for a class: one free-text report card per
// student, aggregated from the grades and attendance ledgers at generation
// time.
// ══════════════════════════════════════════════════════════════════════════════

// GenerateReportsCommand contains the report batch parameters.
type GenerateReportsCommand struct {
	TeacherID string
	ClassName string
	Term      string
	Comments  string
}

// Validate checks the command.
func (c GenerateReportsCommand) Validate() error {
	if c.TeacherID == "" || c.ClassName == "" {
		return shared.NewDomainError("command", "GenerateReports",
			shared.ErrEmptyValue, "teacher id and class are required")
	}
	if c.Term == "" {
		return shared.NewDomainError("command", "GenerateReports",
			shared.ErrEmptyValue, "a report batch needs a term name")
	}
	return nil
}

// GenerateReportsResult reports how many cards were written.
type GenerateReportsResult struct {
	Generated int
}

// GenerateReportsHandler handles GenerateReportsCommand.
type GenerateReportsHandler struct {
	teachers   records.TeacherRepository
	students   records.StudentRepository
	grades     ledger.Log
	attendance ledger.Log
	reports    ledger.Log
	log        *logger.Logger
}

// NewGenerateReportsHandler creates the handler.
func NewGenerateReportsHandler(
	teachers records.TeacherRepository,
	students records.StudentRepository,
	grades ledger.Log,
	attendance ledger.Log,
	reports ledger.Log,
	log *logger.Logger,
) *GenerateReportsHandler {
	return &GenerateReportsHandler{
		teachers:   teachers,
		students:   students,
		grades:     grades,
		attendance: attendance,
		reports:    reports,
		log:        log,
	}
}

// Handle writes one report card per student of the class.
func (h *GenerateReportsHandler) Handle(ctx context.Context, cmd GenerateReportsCommand) (*GenerateReportsResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	teachers, err := h.teachers.LoadAll()
	if err != nil {
		return nil, err
	}
	i, ok := records.FindTeacher(teachers, cmd.TeacherID)
	if !ok {
		return nil, shared.NewDomainError("command", "GenerateReports",
			shared.ErrNotFound, "no teacher with id "+cmd.TeacherID)
	}
	if !teachers[i].IsAssignedTo(cmd.ClassName) {
		return nil, shared.NewDomainError("command", "GenerateReports",
			shared.ErrNotAssigned, "teacher "+cmd.TeacherID+" is not assigned to "+cmd.ClassName)
	}

	students, err := h.students.LoadAll()
	if err != nil {
		return nil, err
	}

	if err := h.reports.AppendSection(reportcard.NewSectionHeader(cmd.Term, cmd.ClassName)); err != nil {
		return nil, err
	}

	result := &GenerateReportsResult{}
	for _, s := range students {
		if s.ClassName != cmd.ClassName {
			continue
		}

		gradeSet, err := aggregate.GradesFor(h.grades, s.ID)
		if err != nil {
			return nil, err
		}
		summary, err := aggregate.AttendanceFor(h.attendance, s.ID)
		if err != nil {
			return nil, err
		}

		card := reportcard.Card{
			StudentID:   s.ID,
			StudentName: s.Name,
			ClassName:   s.ClassName,
			Term:        cmd.Term,
			Grades:      gradeSet,
			Attendance:  summary,
			Comments:    cmd.Comments,
		}
		for _, line := range card.Lines() {
			if err := h.reports.AppendLine(line); err != nil {
				return nil, err
			}
		}
		result.Generated++
	}

	h.log.Info("term reports generated",
		logger.ClassName(cmd.ClassName),
		logger.String("term", cmd.Term),
		logger.Int("reports", result.Generated))
	return result, nil
}
