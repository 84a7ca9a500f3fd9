// Package records contains the rewritable entity collections of the school:
// students, teachers and staff. Entities carry externally supplied ids (no
// generated identity) and are persisted as whole collections.
package records

import (
	"strings"

	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

// FeeSettledMarker is the substring of feeStatus that marks a student's fees
// as settled for the current period. The status is free text by convention,
// "Unpaid" or "Paid till YYYY-MM".
const FeeSettledMarker = "Paid till"

// StudentArity is the number of persisted fields of a student record.
const StudentArity = 6

// StudentRecord is one enrolled student.
type StudentRecord struct {
	ID            string
	Name          string
	ClassName     string
	RollNo        string
	ParentContact string
	FeeStatus     string
}

// Fields returns the persisted field values in file order.
func (s StudentRecord) Fields() []string {
	return []string{s.ID, s.Name, s.ClassName, s.RollNo, s.ParentContact, s.FeeStatus}
}

// DecodeStudent builds a student from decoded fields. The caller has already
// checked the field count against StudentArity.
func DecodeStudent(fields []string) (StudentRecord, error) {
	if len(fields) < StudentArity {
		return StudentRecord{}, shared.NewDomainError("records", "DecodeStudent",
			shared.ErrShortRecord, "student line has too few fields")
	}
	return StudentRecord{
		ID:            fields[0],
		Name:          fields[1],
		ClassName:     fields[2],
		RollNo:        fields[3],
		ParentContact: fields[4],
		FeeStatus:     fields[5],
	}, nil
}

// IsFeeSettled reports whether the fee status marks the student as paid up.
// Settled students are skipped by fee payment processing.
func (s StudentRecord) IsFeeSettled() bool {
	return strings.Contains(s.FeeStatus, FeeSettledMarker)
}

// MarkFeePaid stamps the fee status with the given YYYY-MM month key.
func (s *StudentRecord) MarkFeePaid(monthKey string) {
	s.FeeStatus = FeeSettledMarker + " " + monthKey
}

// FindStudent scans a collection for the given id and returns its index.
// A miss is a normal result, not an error.
func FindStudent(students []StudentRecord, id string) (int, bool) {
	for i := range students {
		if students[i].ID == id {
			return i, true
		}
	}
	return -1, false
}
