package command

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/application/session"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/pkg/logger"
	"github.com/schoolhub/school-records-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// PROCESS FEES COMMAND
// Stamps every unsettled student's fee status with the month key. Students
// whose status already carries the settled marker are left alone.
// ══════════════════════════════════════════════════════════════════════════════

// ProcessFeesCommand selects the month to settle fees for.
type ProcessFeesCommand struct {
	MonthKey string // YYYY-MM, empty means the current month
}

// ProcessFeesResult reports how many students were settled.
type ProcessFeesResult struct {
	Settled        int
	AlreadySettled int
}

// ProcessFeesHandler handles ProcessFeesCommand.
type ProcessFeesHandler struct {
	students records.StudentRepository
	log      *logger.Logger
}

// NewProcessFeesHandler creates the handler.
func NewProcessFeesHandler(students records.StudentRepository, log *logger.Logger) *ProcessFeesHandler {
	return &ProcessFeesHandler{students: students, log: log}
}

// Handle settles fees in one load, stamp, save session.
func (h *ProcessFeesHandler) Handle(ctx context.Context, cmd ProcessFeesCommand) (*ProcessFeesResult, error) {
	monthKey := cmd.MonthKey
	if monthKey == "" {
		monthKey = timeutil.CurrentMonth()
	}

	sess, err := session.Begin(h.students, func(s records.StudentRecord) string { return s.ID })
	if err != nil {
		return nil, err
	}

	result := &ProcessFeesResult{}
	students := sess.All()
	for i := range students {
		if students[i].IsFeeSettled() {
			result.AlreadySettled++
			continue
		}
		students[i].MarkFeePaid(monthKey)
		result.Settled++
	}

	if err := sess.Commit(); err != nil {
		return nil, err
	}

	h.log.Info("fee payments processed",
		logger.Month(monthKey),
		logger.Int("settled", result.Settled),
		logger.Int("already_settled", result.AlreadySettled))
	return result, nil
}
