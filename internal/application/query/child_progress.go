package query

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/application/aggregate"
	"github.com/schoolhub/school-records-hub/internal/domain/attendance"
	"github.com/schoolhub/school-records-hub/internal/domain/grading"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// CHILD PROGRESS QUERY
// The parent's progress report: per-subject weighted grades, the overall
// average, attendance, and a verdict. Low attendance overrides the grade
// bands, a child below 75% needs improvement whatever the average says.
// ══════════════════════════════════════════════════════════════════════════════

// Verdict bands.
const (
	VerdictExcellent        = "Excellent"
	VerdictGood             = "Good"
	VerdictNeedsImprovement = "Needs improvement"
	VerdictLowAttendance    = "Needs improvement (Low attendance)"

	attendanceGate = 75.0
	excellentFloor = 85.0
	goodFloor      = 70.0
)

// ChildProgress is the assembled progress report.
type ChildProgress struct {
	Child          records.StudentRecord
	Subjects       []SubjectReport
	OverallAverage float64
	Attendance     attendance.Summary
	Verdict        string
}

// GetChildProgressHandler assembles a child's progress report.
type GetChildProgressHandler struct {
	students   records.StudentRepository
	grades     ledger.Log
	attendance ledger.Log
}

// NewGetChildProgressHandler creates the handler.
func NewGetChildProgressHandler(students records.StudentRepository, grades, att ledger.Log) *GetChildProgressHandler {
	return &GetChildProgressHandler{students: students, grades: grades, attendance: att}
}

// Handle builds the report for one child.
func (h *GetChildProgressHandler) Handle(ctx context.Context, childID string) (*ChildProgress, error) {
	students, err := h.students.LoadAll()
	if err != nil {
		return nil, err
	}
	i, ok := records.FindStudent(students, childID)
	if !ok {
		return nil, shared.NewDomainError("query", "GetChildProgress",
			shared.ErrNotFound, "no student with id "+childID)
	}

	subjects, err := aggregate.GradesBySubjectFor(h.grades, childID)
	if err != nil {
		return nil, err
	}
	summary, err := aggregate.AttendanceFor(h.attendance, childID)
	if err != nil {
		return nil, err
	}

	progress := &ChildProgress{Child: students[i], Attendance: summary}
	var total float64
	for _, s := range subjects {
		weighted := grading.WeightedGrade(s.Grades)
		progress.Subjects = append(progress.Subjects, SubjectReport{
			Subject:  s.Subject,
			Grades:   s.Grades,
			Weighted: weighted,
		})
		total += weighted
	}
	if len(progress.Subjects) > 0 {
		progress.OverallAverage = total / float64(len(progress.Subjects))
	}
	progress.Verdict = verdict(progress.OverallAverage, summary.Percent())

	return progress, nil
}

func verdict(average, attendancePct float64) string {
	if attendancePct < attendanceGate {
		return VerdictLowAttendance
	}
	switch {
	case average >= excellentFloor:
		return VerdictExcellent
	case average >= goodFloor:
		return VerdictGood
	default:
		return VerdictNeedsImprovement
	}
}
