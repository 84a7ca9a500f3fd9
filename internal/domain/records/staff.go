package records

import (
	"strconv"

	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

// StaffArity is the number of persisted fields of a staff record.
const StaffArity = 6

// StaffRecord is one non-teaching staff member. Salary is stored as decimal
// text and only interpreted numerically by payroll.
type StaffRecord struct {
	ID          string
	Name        string
	Role        string
	Contact     string
	Salary      string
	LeavesTaken int
}

// Fields returns the persisted field values in file order.
func (s StaffRecord) Fields() []string {
	return []string{s.ID, s.Name, s.Role, s.Contact, s.Salary, strconv.Itoa(s.LeavesTaken)}
}

// DecodeStaff builds a staff member from decoded fields.
func DecodeStaff(fields []string) (StaffRecord, error) {
	if len(fields) < StaffArity {
		return StaffRecord{}, shared.NewDomainError("records", "DecodeStaff",
			shared.ErrShortRecord, "staff line has too few fields")
	}

	leaves, err := strconv.Atoi(fields[5])
	if err != nil {
		return StaffRecord{}, shared.WrapError("records", "DecodeStaff",
			shared.ErrMalformedField, "leaves taken is not an integer", err)
	}

	return StaffRecord{
		ID:          fields[0],
		Name:        fields[1],
		Role:        fields[2],
		Contact:     fields[3],
		Salary:      fields[4],
		LeavesTaken: leaves,
	}, nil
}

// FindStaff scans a collection for the given id and returns its index.
func FindStaff(staff []StaffRecord, id string) (int, bool) {
	for i := range staff {
		if staff[i].ID == id {
			return i, true
		}
	}
	return -1, false
}
