package query

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/application/aggregate"
	"github.com/schoolhub/school-records-hub/internal/domain/grading"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT GRADES QUERY
// A student's grades grouped by subject, each with the weighted term grade.
// ══════════════════════════════════════════════════════════════════════════════

// SubjectReport is one subject's grades and weighted result.
type SubjectReport struct {
	Subject  string
	Grades   grading.GradeSet
	Weighted float64
}

// GetStudentGradesHandler folds a student's grade view out of the ledger.
type GetStudentGradesHandler struct {
	grades ledger.Log
}

// NewGetStudentGradesHandler creates the handler.
func NewGetStudentGradesHandler(grades ledger.Log) *GetStudentGradesHandler {
	return &GetStudentGradesHandler{grades: grades}
}

// Handle lists subject reports in order of first appearance in the ledger.
func (h *GetStudentGradesHandler) Handle(ctx context.Context, studentID string) ([]SubjectReport, error) {
	subjects, err := aggregate.GradesBySubjectFor(h.grades, studentID)
	if err != nil {
		return nil, err
	}

	out := make([]SubjectReport, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, SubjectReport{
			Subject:  s.Subject,
			Grades:   s.Grades,
			Weighted: grading.WeightedGrade(s.Grades),
		})
	}
	return out, nil
}
