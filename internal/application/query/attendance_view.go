package query

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/application/aggregate"
	"github.com/schoolhub/school-records-hub/internal/domain/attendance"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ATTENDANCE QUERY
// A student's attendance percentage and dated history.
// ══════════════════════════════════════════════════════════════════════════════

// AttendanceView is the student's summary plus per-day history.
type AttendanceView struct {
	Summary attendance.Summary
	History []aggregate.AttendanceDay
}

// GetAttendanceHandler folds a student's attendance view out of the ledger.
type GetAttendanceHandler struct {
	attendance ledger.Log
}

// NewGetAttendanceHandler creates the handler.
func NewGetAttendanceHandler(att ledger.Log) *GetAttendanceHandler {
	return &GetAttendanceHandler{attendance: att}
}

// Handle builds the view.
func (h *GetAttendanceHandler) Handle(ctx context.Context, studentID string) (*AttendanceView, error) {
	summary, err := aggregate.AttendanceFor(h.attendance, studentID)
	if err != nil {
		return nil, err
	}
	history, err := aggregate.AttendanceHistoryFor(h.attendance, studentID)
	if err != nil {
		return nil, err
	}
	return &AttendanceView{Summary: summary, History: history}, nil
}
