// Package attendance holds attendance marking and the percentage
// aggregation over attendance batches.
package attendance

import (
	"strings"

	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
)

// Status of a student in one attendance batch.
type Status string

const (
	Present Status = "Present"
	Absent  Status = "Absent"
)

// FormatLine renders an attendance detail line. Attendance lines use a
// colon separator rather than pipes: "studentId: Present".
func FormatLine(studentID string, present bool) string {
	if present {
		return studentID + ": " + string(Present)
	}
	return studentID + ": " + string(Absent)
}

// ParseLine decodes an attendance detail line.
func ParseLine(line string) (studentID string, status Status, ok bool) {
	sep := strings.Index(line, ":")
	if sep < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:sep]), Status(strings.TrimSpace(line[sep+1:])), true
}

// LineMentions reports whether a detail line refers to the student. The
// historical files are matched by substring, exactly as they always were.
func LineMentions(line, studentID string) bool {
	return strings.Contains(line, studentID)
}

// LineMarksPresent reports whether a detail line records a presence.
func LineMarksPresent(line string) bool {
	return strings.Contains(line, string(Present))
}

// NewSectionHeader builds the header of one attendance batch:
// "[ATTENDANCE <date> CLASS <class>]".
func NewSectionHeader(date, className string) ledger.Header {
	return ledger.NewHeader(ledger.TagAttendance, date, "CLASS", className)
}

// Section identifies one attendance batch parsed from a section header.
type Section struct {
	Date      string
	ClassName string
}

// ParseSection decodes the params of an ATTENDANCE header.
func ParseSection(h ledger.Header) (Section, bool) {
	if !h.HasTag(ledger.TagAttendance) {
		return Section{}, false
	}
	fields := strings.Fields(h.Params)
	if len(fields) < 3 || fields[1] != "CLASS" {
		return Section{}, false
	}
	return Section{Date: fields[0], ClassName: fields[2]}, true
}

// Summary is a student's attendance count over scanned batches.
//
// Total counts every attendance section header scanned, not only batches for
// the student's class: a batch with no line for the student still inflates
// the denominator. This matches how the files have always been aggregated
// and existing percentages depend on it.
type Summary struct {
	PresentCount int
	TotalBatches int
}

// Percent returns the attendance percentage, guarding an empty ledger with
// a denominator of at least one.
func (s Summary) Percent() float64 {
	total := s.TotalBatches
	if total < 1 {
		total = 1
	}
	return float64(s.PresentCount) * 100 / float64(total)
}
