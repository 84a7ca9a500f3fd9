package query

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/domain/records"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST RECORDS QUERY
// The admin's flat listings of the three entity collections.
// ══════════════════════════════════════════════════════════════════════════════

// ListRecordsHandler lists the entity collections.
type ListRecordsHandler struct {
	students records.StudentRepository
	teachers records.TeacherRepository
	staff    records.StaffRepository
}

// NewListRecordsHandler creates the handler.
func NewListRecordsHandler(students records.StudentRepository, teachers records.TeacherRepository, staff records.StaffRepository) *ListRecordsHandler {
	return &ListRecordsHandler{students: students, teachers: teachers, staff: staff}
}

// Students lists every student in file order.
func (h *ListRecordsHandler) Students(ctx context.Context) ([]records.StudentRecord, error) {
	return h.students.LoadAll()
}

// Teachers lists every teacher in file order.
func (h *ListRecordsHandler) Teachers(ctx context.Context) ([]records.TeacherRecord, error) {
	return h.teachers.LoadAll()
}

// Staff lists every staff member in file order.
func (h *ListRecordsHandler) Staff(ctx context.Context) ([]records.StaffRecord, error) {
	return h.staff.LoadAll()
}

// StudentsOfClass lists the students of one class in file order.
func (h *ListRecordsHandler) StudentsOfClass(ctx context.Context, className string) ([]records.StudentRecord, error) {
	students, err := h.students.LoadAll()
	if err != nil {
		return nil, err
	}
	var out []records.StudentRecord
	for _, s := range students {
		if s.ClassName == className {
			out = append(out, s)
		}
	}
	return out, nil
}
