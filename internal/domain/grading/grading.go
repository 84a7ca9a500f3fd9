// Package grading holds grade entry and the weighted-grade aggregation used
// by term reports and progress views.
package grading

import (
	"strconv"
	"strings"

	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

// AssignmentType is the kind of graded assignment.
type AssignmentType string

const (
	Quiz    AssignmentType = "quiz"
	Midterm AssignmentType = "midterm"
	Final   AssignmentType = "final"
)

// Term weights. A missing component contributes zero; weights are NOT
// renormalized over the components actually present, so a student graded
// only on the final scores 0.30*final. Compatibility with existing report
// files depends on this.
const (
	QuizWeight    = 0.30
	MidtermWeight = 0.40
	FinalWeight   = 0.30
)

// GradeSet maps assignment type to the recorded grade.
type GradeSet map[AssignmentType]int

// WeightedGrade computes the term grade out of 100 with zero substitution
// for missing components.
func WeightedGrade(grades GradeSet) float64 {
	var total float64
	if g, ok := grades[Quiz]; ok {
		total += float64(g) * QuizWeight
	}
	if g, ok := grades[Midterm]; ok {
		total += float64(g) * MidtermWeight
	}
	if g, ok := grades[Final]; ok {
		total += float64(g) * FinalWeight
	}
	return total
}

// ValidGrade reports whether a grade is inside the recordable 0..100 range.
func ValidGrade(grade int) bool {
	return grade >= 0 && grade <= 100
}

// FormatLine renders a grade detail line: "studentId|grade".
func FormatLine(studentID string, grade int) string {
	return studentID + "|" + strconv.Itoa(grade)
}

// ParseLine decodes a grade detail line.
func ParseLine(line string) (studentID string, grade int, err error) {
	parts := strings.SplitN(line, "|", 2)
	if len(parts) < 2 {
		return "", 0, shared.NewDomainError("grading", "ParseLine",
			shared.ErrShortRecord, "grade line has too few fields")
	}
	grade, convErr := strconv.Atoi(strings.TrimSpace(parts[1]))
	if convErr != nil {
		return "", 0, shared.WrapError("grading", "ParseLine",
			shared.ErrMalformedField, "grade is not an integer", convErr)
	}
	return strings.TrimSpace(parts[0]), grade, nil
}

// NewSectionHeader builds the header of one grade batch:
// "[GRADES <type> CLASS <class> TEACHER <teacherId>]".
func NewSectionHeader(typ AssignmentType, className, teacherID string) ledger.Header {
	return ledger.NewHeader(ledger.TagGrades, string(typ), "CLASS", className, "TEACHER", teacherID)
}

// Section identifies one grade batch parsed from a section header.
type Section struct {
	Type      AssignmentType
	ClassName string
	TeacherID string
}

// ParseSection decodes the params of a GRADES header. Malformed headers
// return ok=false and their batches are skipped by readers.
func ParseSection(h ledger.Header) (Section, bool) {
	if !h.HasTag(ledger.TagGrades) {
		return Section{}, false
	}
	fields := strings.Fields(h.Params)
	if len(fields) < 5 || fields[1] != "CLASS" || fields[3] != "TEACHER" {
		return Section{}, false
	}
	return Section{
		Type:      AssignmentType(fields[0]),
		ClassName: fields[2],
		TeacherID: fields[4],
	}, true
}
