package query

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/application/aggregate"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/request"
)

// ══════════════════════════════════════════════════════════════════════════════
// PENDING REQUEST QUERIES
// A request is pending only if its latest ledger line says so; an earlier
// Pending line superseded by a resolution never re-surfaces.
// ══════════════════════════════════════════════════════════════════════════════

// GetPendingLeavesHandler lists pending leave requests.
type GetPendingLeavesHandler struct {
	leaves ledger.Log
}

// NewGetPendingLeavesHandler creates the handler.
func NewGetPendingLeavesHandler(leaves ledger.Log) *GetPendingLeavesHandler {
	return &GetPendingLeavesHandler{leaves: leaves}
}

// Handle lists pending leave requests in order of first appearance.
func (h *GetPendingLeavesHandler) Handle(ctx context.Context) ([]request.LeaveRequest, error) {
	lines, err := aggregate.LeaveLines(h.leaves)
	if err != nil {
		return nil, err
	}
	return request.PendingLeaves(lines), nil
}

// GetPendingParentsHandler lists pending parent requests.
type GetPendingParentsHandler struct {
	parents ledger.Log
}

// NewGetPendingParentsHandler creates the handler.
func NewGetPendingParentsHandler(parents ledger.Log) *GetPendingParentsHandler {
	return &GetPendingParentsHandler{parents: parents}
}

// Handle lists pending parent requests in order of first appearance.
func (h *GetPendingParentsHandler) Handle(ctx context.Context) ([]request.ParentRequest, error) {
	lines, err := aggregate.ParentLines(h.parents)
	if err != nil {
		return nil, err
	}
	return request.PendingParents(lines), nil
}

// GetLeaveHistoryHandler lists the current status of one owner's leave
// requests, resolved lines included.
type GetLeaveHistoryHandler struct {
	leaves ledger.Log
}

// NewGetLeaveHistoryHandler creates the handler.
func NewGetLeaveHistoryHandler(leaves ledger.Log) *GetLeaveHistoryHandler {
	return &GetLeaveHistoryHandler{leaves: leaves}
}

// Handle lists the owner's requests with their current status.
func (h *GetLeaveHistoryHandler) Handle(ctx context.Context, ownerID string) ([]request.LeaveRequest, error) {
	lines, err := aggregate.LeaveLines(h.leaves)
	if err != nil {
		return nil, err
	}
	var out []request.LeaveRequest
	for _, r := range request.CurrentLeaves(lines) {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

// GetParentRequestHistoryHandler lists the current status of one parent's
// requests.
type GetParentRequestHistoryHandler struct {
	parents ledger.Log
}

// NewGetParentRequestHistoryHandler creates the handler.
func NewGetParentRequestHistoryHandler(parents ledger.Log) *GetParentRequestHistoryHandler {
	return &GetParentRequestHistoryHandler{parents: parents}
}

// Handle lists the parent's requests with their current status.
func (h *GetParentRequestHistoryHandler) Handle(ctx context.Context, parentUsername string) ([]request.ParentRequest, error) {
	lines, err := aggregate.ParentLines(h.parents)
	if err != nil {
		return nil, err
	}
	var out []request.ParentRequest
	for _, r := range request.CurrentParents(lines) {
		if r.ParentUsername == parentUsername {
			out = append(out, r)
		}
	}
	return out, nil
}
