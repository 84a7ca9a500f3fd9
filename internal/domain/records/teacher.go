package records

import (
	"strconv"
	"strings"

	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

// TeacherMinArity is the minimum persisted field count of a teacher record.
// The trailing leavesTaken column was added later; lines written before it
// existed carry seven fields and load with zero leaves taken.
const TeacherMinArity = 7

// ListSeparator joins list-valued sub-fields (subjects, assigned classes)
// inside a single pipe-delimited field.
const ListSeparator = ","

// TeacherRecord is one teaching staff member.
type TeacherRecord struct {
	ID              string
	Name            string
	Subjects        []string
	Qualification   string
	Contact         string
	AssignedClasses []string
	PeriodsPerWeek  int
	LeavesTaken     int
}

// Fields returns the persisted field values in file order.
func (t TeacherRecord) Fields() []string {
	return []string{
		t.ID,
		t.Name,
		strings.Join(t.Subjects, ListSeparator),
		t.Qualification,
		t.Contact,
		strings.Join(t.AssignedClasses, ListSeparator),
		strconv.Itoa(t.PeriodsPerWeek),
		strconv.Itoa(t.LeavesTaken),
	}
}

// DecodeTeacher builds a teacher from decoded fields.
func DecodeTeacher(fields []string) (TeacherRecord, error) {
	if len(fields) < TeacherMinArity {
		return TeacherRecord{}, shared.NewDomainError("records", "DecodeTeacher",
			shared.ErrShortRecord, "teacher line has too few fields")
	}

	periods, err := strconv.Atoi(fields[6])
	if err != nil {
		return TeacherRecord{}, shared.WrapError("records", "DecodeTeacher",
			shared.ErrMalformedField, "periods per week is not an integer", err)
	}

	leaves := 0
	if len(fields) > TeacherMinArity {
		leaves, err = strconv.Atoi(fields[7])
		if err != nil {
			return TeacherRecord{}, shared.WrapError("records", "DecodeTeacher",
				shared.ErrMalformedField, "leaves taken is not an integer", err)
		}
	}

	return TeacherRecord{
		ID:              fields[0],
		Name:            fields[1],
		Subjects:        SplitList(fields[2]),
		Qualification:   fields[3],
		Contact:         fields[4],
		AssignedClasses: SplitList(fields[5]),
		PeriodsPerWeek:  periods,
		LeavesTaken:     leaves,
	}, nil
}

// DefaultClass is the working class of a teacher with no assignments yet.
const DefaultClass = "10-A"

// IsAssignedTo reports whether the teacher covers the given class. A teacher
// with no recorded assignments covers the default class, so a fresh record
// can mark attendance and enter grades before any class is assigned.
func (t TeacherRecord) IsAssignedTo(className string) bool {
	if len(t.AssignedClasses) == 0 {
		return className == DefaultClass
	}
	for _, c := range t.AssignedClasses {
		if c == className {
			return true
		}
	}
	return false
}

// FindTeacher scans a collection for the given id and returns its index.
func FindTeacher(teachers []TeacherRecord, id string) (int, bool) {
	for i := range teachers {
		if teachers[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// SplitList splits a comma-joined list sub-field, trimming whitespace and
// dropping empty elements.
func SplitList(s string) []string {
	parts := strings.Split(s, ListSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
