// Package schedule holds the read-only timetable and assignment views. Both
// files are maintained externally; this system only reads them.
package schedule

import (
	"strings"

	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

// TimetableArity is the persisted field count of a timetable line.
const TimetableArity = 5

// TimetableRow is one scheduled period.
type TimetableRow struct {
	Day       string
	Period    string
	TeacherID string
	ClassName string
	Room      string
}

// DecodeTimetableRow builds a timetable row from decoded fields.
func DecodeTimetableRow(fields []string) (TimetableRow, error) {
	if len(fields) < TimetableArity {
		return TimetableRow{}, shared.NewDomainError("schedule", "DecodeTimetableRow",
			shared.ErrShortRecord, "timetable line has too few fields")
	}
	return TimetableRow{
		Day:       fields[0],
		Period:    fields[1],
		TeacherID: fields[2],
		ClassName: fields[3],
		Room:      fields[4],
	}, nil
}

// AssignmentArity is the persisted field count of an assignment line.
const AssignmentArity = 4

// Assignment is one assignment due for a class.
type Assignment struct {
	Subject   string
	ClassName string
	Title     string
	DueDate   string
}

// DecodeAssignment builds an assignment from decoded fields.
func DecodeAssignment(fields []string) (Assignment, error) {
	if len(fields) < AssignmentArity {
		return Assignment{}, shared.NewDomainError("schedule", "DecodeAssignment",
			shared.ErrShortRecord, "assignment line has too few fields")
	}
	return Assignment{
		Subject:   fields[0],
		ClassName: fields[1],
		Title:     fields[2],
		DueDate:   fields[3],
	}, nil
}

// ForClass reports whether the assignment targets the class. The match is
// case-insensitive, as class names in the assignments file are entered by
// hand.
func (a Assignment) ForClass(className string) bool {
	return strings.EqualFold(a.ClassName, className)
}
