package query

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/application/aggregate"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/schedule"
)

// ══════════════════════════════════════════════════════════════════════════════
// TIMETABLE QUERY
// The externally maintained timetable, filtered per viewer: teachers see
// their own periods by id, students see their class's.
// ══════════════════════════════════════════════════════════════════════════════

// GetTimetableHandler filters the timetable file.
type GetTimetableHandler struct {
	timetable ledger.Log
}

// NewGetTimetableHandler creates the handler.
func NewGetTimetableHandler(timetable ledger.Log) *GetTimetableHandler {
	return &GetTimetableHandler{timetable: timetable}
}

// ForTeacher lists the teacher's periods in file order.
func (h *GetTimetableHandler) ForTeacher(ctx context.Context, teacherID string) ([]schedule.TimetableRow, error) {
	rows, err := aggregate.TimetableRows(h.timetable)
	if err != nil {
		return nil, err
	}
	var out []schedule.TimetableRow
	for _, r := range rows {
		if r.TeacherID == teacherID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ForClass lists the class's periods in file order.
func (h *GetTimetableHandler) ForClass(ctx context.Context, className string) ([]schedule.TimetableRow, error) {
	rows, err := aggregate.TimetableRows(h.timetable)
	if err != nil {
		return nil, err
	}
	var out []schedule.TimetableRow
	for _, r := range rows {
		if r.ClassName == className {
			out = append(out, r)
		}
	}
	return out, nil
}
