package command

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/application/aggregate"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/record"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/request"
	"github.com/schoolhub/school-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// RESOLVE REQUEST COMMANDS
// Resolution never edits a ledger line: it appends a copy of the pending
// request carrying the terminal status. The pending set is re-derived from
// the ledger at resolution time, so a request resolved in another session
// cannot be picked again.
// ══════════════════════════════════════════════════════════════════════════════

// ResolveLeaveCommand picks one pending leave request by its 1-based
// position in the pending listing. Selection 0 cancels.
type ResolveLeaveCommand struct {
	Selection int
	Action    request.Action
}

// ResolveLeaveResult reports the resolution.
type ResolveLeaveResult struct {
	Cancelled        bool
	Resolved         *request.LeaveRequest
	RemainingPending int
}

// ResolveLeaveHandler handles ResolveLeaveCommand.
type ResolveLeaveHandler struct {
	leaves   ledger.Log
	teachers records.TeacherRepository
	staff    records.StaffRepository
	log      *logger.Logger
}

// NewResolveLeaveHandler creates the handler.
func NewResolveLeaveHandler(leaves ledger.Log, teachers records.TeacherRepository, staff records.StaffRepository, log *logger.Logger) *ResolveLeaveHandler {
	return &ResolveLeaveHandler{leaves: leaves, teachers: teachers, staff: staff, log: log}
}

// Handle resolves one pending leave request. Approval also charges the
// leave to the owner's record so the next payroll run sees it.
func (h *ResolveLeaveHandler) Handle(ctx context.Context, cmd ResolveLeaveCommand) (*ResolveLeaveResult, error) {
	lines, err := aggregate.LeaveLines(h.leaves)
	if err != nil {
		return nil, err
	}
	pending := request.PendingLeaves(lines)

	idx, err := request.ChooseIndex(cmd.Selection, len(pending))
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return &ResolveLeaveResult{Cancelled: true, RemainingPending: len(pending)}, nil
	}

	resolved := pending[idx].WithStatus(cmd.Action.Resolved())
	line, err := record.Encode(resolved.Fields())
	if err != nil {
		return nil, err
	}
	if err := h.leaves.AppendLine(line); err != nil {
		return nil, err
	}

	if resolved.Status == request.Approved {
		if err := h.chargeLeave(resolved.OwnerID); err != nil {
			return nil, err
		}
	}

	h.log.Info("leave request resolved",
		logger.String("owner_id", resolved.OwnerID),
		logger.String("status", string(resolved.Status)))
	return &ResolveLeaveResult{Resolved: &resolved, RemainingPending: len(pending) - 1}, nil
}

// chargeLeave increments the owner's leaves taken, whichever collection the
// owner belongs to. An owner found in neither is left uncharged; the
// resolution line already stands.
func (h *ResolveLeaveHandler) chargeLeave(ownerID string) error {
	teachers, err := h.teachers.LoadAll()
	if err != nil {
		return err
	}
	if i, ok := records.FindTeacher(teachers, ownerID); ok {
		teachers[i].LeavesTaken++
		return h.teachers.SaveAll(teachers)
	}

	staff, err := h.staff.LoadAll()
	if err != nil {
		return err
	}
	if i, ok := records.FindStaff(staff, ownerID); ok {
		staff[i].LeavesTaken++
		return h.staff.SaveAll(staff)
	}

	h.log.Warn("approved leave for unknown owner", logger.String("owner_id", ownerID))
	return nil
}

// ResolveParentRequestCommand picks one pending parent request by its
// 1-based position in the pending listing. Selection 0 cancels.
type ResolveParentRequestCommand struct {
	Selection int
	Action    request.Action
}

// ResolveParentRequestResult reports the resolution.
type ResolveParentRequestResult struct {
	Cancelled        bool
	Resolved         *request.ParentRequest
	RemainingPending int
}

// ResolveParentRequestHandler handles ResolveParentRequestCommand.
type ResolveParentRequestHandler struct {
	parents ledger.Log
	log     *logger.Logger
}

// NewResolveParentRequestHandler creates the handler.
func NewResolveParentRequestHandler(parents ledger.Log, log *logger.Logger) *ResolveParentRequestHandler {
	return &ResolveParentRequestHandler{parents: parents, log: log}
}

// Handle resolves one pending parent request.
func (h *ResolveParentRequestHandler) Handle(ctx context.Context, cmd ResolveParentRequestCommand) (*ResolveParentRequestResult, error) {
	lines, err := aggregate.ParentLines(h.parents)
	if err != nil {
		return nil, err
	}
	pending := request.PendingParents(lines)

	idx, err := request.ChooseIndex(cmd.Selection, len(pending))
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return &ResolveParentRequestResult{Cancelled: true, RemainingPending: len(pending)}, nil
	}

	resolved := pending[idx].WithStatus(cmd.Action.Resolved())
	line, err := record.Encode(resolved.Fields())
	if err != nil {
		return nil, err
	}
	if err := h.parents.AppendLine(line); err != nil {
		return nil, err
	}

	h.log.Info("parent request resolved",
		logger.StudentID(resolved.ChildID),
		logger.String("status", string(resolved.Status)))
	return &ResolveParentRequestResult{Resolved: &resolved, RemainingPending: len(pending) - 1}, nil
}
