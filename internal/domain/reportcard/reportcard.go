// Package reportcard renders the free-text term report blocks appended to
// the term reports ledger, and recognizes them again when browsing.
package reportcard

import (
	"strconv"
	"strings"

	"github.com/schoolhub/school-records-hub/internal/domain/attendance"
	"github.com/schoolhub/school-records-hub/internal/domain/grading"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
)

// Separator closes one report block. Existing files end every report with
// this exact line, so browsing splits on it.
const Separator = "----------------------------------------"

// studentPrefix opens a report block and carries the student's name.
const studentPrefix = "STUDENT: "

// Card is one student's term report before rendering.
type Card struct {
	StudentID   string
	StudentName string
	ClassName   string
	Term        string
	Grades      grading.GradeSet
	Attendance  attendance.Summary
	Comments    string
}

// Lines renders the report block, one ledger line per element, ending with
// the separator. Grade lines appear in quiz, midterm, final order and only
// for the types actually recorded.
func (c Card) Lines() []string {
	lines := []string{
		studentPrefix + c.StudentName + " (" + c.StudentID + ")",
		"CLASS: " + c.ClassName,
		"TERM: " + c.Term,
		"GRADES:",
	}
	for _, typ := range []grading.AssignmentType{grading.Quiz, grading.Midterm, grading.Final} {
		if g, ok := c.Grades[typ]; ok {
			lines = append(lines, "  "+string(typ)+": "+strconv.Itoa(g)+"/100")
		}
	}
	lines = append(lines,
		"WEIGHTED GRADE: "+FormatScore(grading.WeightedGrade(c.Grades))+"/100",
		"ATTENDANCE: "+strconv.Itoa(c.Attendance.PresentCount)+"/"+
			strconv.Itoa(c.Attendance.TotalBatches)+" ("+FormatScore(c.Attendance.Percent())+"%)",
		"COMMENTS: "+c.Comments,
		Separator,
	)
	return lines
}

// FormatScore renders a computed score the shortest way that round-trips:
// whole numbers print without a decimal point.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// NewSectionHeader builds the header of one report batch:
// "[TERM REPORTS <term> CLASS <class>]".
func NewSectionHeader(term, className string) ledger.Header {
	return ledger.NewHeader(ledger.TagTermReports, term, "CLASS", className)
}

// BlockMentions reports whether a rendered report block belongs to the named
// student. Only the opening STUDENT line is consulted.
func BlockMentions(block []string, studentName string) bool {
	if len(block) == 0 {
		return false
	}
	first := block[0]
	return strings.HasPrefix(first, studentPrefix) &&
		strings.Contains(first[len(studentPrefix):], studentName)
}
