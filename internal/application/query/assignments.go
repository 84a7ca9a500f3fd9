package query

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/application/aggregate"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/schedule"
)

// ══════════════════════════════════════════════════════════════════════════════
// ASSIGNMENTS QUERY
// Assignments due for a class. Class names in the assignments file are
// entered by hand, so the match is case-insensitive.
// ══════════════════════════════════════════════════════════════════════════════

// GetAssignmentsHandler filters the assignments file.
type GetAssignmentsHandler struct {
	assignments ledger.Log
}

// NewGetAssignmentsHandler creates the handler.
func NewGetAssignmentsHandler(assignments ledger.Log) *GetAssignmentsHandler {
	return &GetAssignmentsHandler{assignments: assignments}
}

// Handle lists assignments due for the class in file order.
func (h *GetAssignmentsHandler) Handle(ctx context.Context, className string) ([]schedule.Assignment, error) {
	all, err := aggregate.Assignments(h.assignments)
	if err != nil {
		return nil, err
	}
	var out []schedule.Assignment
	for _, a := range all {
		if a.ForClass(className) {
			out = append(out, a)
		}
	}
	return out, nil
}
