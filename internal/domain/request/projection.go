package request

import "github.com/schoolhub/school-records-hub/internal/domain/shared"

// The ledger holds every line ever appended for a request, so "current
// state" is a projection: fold the lines in file order and let the latest
// status win per logical request.

// keyed is satisfied by both request kinds.
type keyed interface {
	Key() string
}

// project folds ledger lines in order, keeping the first occurrence's
// position and the last occurrence's status per logical request.
func project[T keyed](lines []T) []T {
	order := make([]string, 0, len(lines))
	latest := make(map[string]T, len(lines))

	for _, line := range lines {
		k := line.Key()
		if _, seen := latest[k]; !seen {
			order = append(order, k)
		}
		latest[k] = line
	}

	out := make([]T, 0, len(order))
	for _, k := range order {
		out = append(out, latest[k])
	}
	return out
}

// CurrentLeaves projects the current status of every logical leave request,
// in order of first appearance.
func CurrentLeaves(lines []LeaveRequest) []LeaveRequest {
	return project(lines)
}

// PendingLeaves returns the leave requests whose current status is Pending.
// A request with a later Approved or Rejected line is not pending even
// though its original Pending line is still in the ledger.
func PendingLeaves(lines []LeaveRequest) []LeaveRequest {
	var out []LeaveRequest
	for _, r := range CurrentLeaves(lines) {
		if r.Status == Pending {
			out = append(out, r)
		}
	}
	return out
}

// CurrentStatusOfLeave derives the current status of one logical leave
// request, or Pending if the ledger holds only the unresolved original.
func CurrentStatusOfLeave(lines []LeaveRequest, key string) (Status, bool) {
	status := Pending
	found := false
	for _, r := range lines {
		if r.Key() == key {
			status = r.Status
			found = true
		}
	}
	return status, found
}

// CurrentParents projects the current status of every logical parent
// request, in order of first appearance.
func CurrentParents(lines []ParentRequest) []ParentRequest {
	return project(lines)
}

// PendingParents returns the parent requests whose current status is Pending.
func PendingParents(lines []ParentRequest) []ParentRequest {
	var out []ParentRequest
	for _, r := range CurrentParents(lines) {
		if r.Status == Pending {
			out = append(out, r)
		}
	}
	return out
}

// CancelSelection is the menu input that abandons a resolution.
const CancelSelection = 0

// ChooseIndex maps a 1-based display selection onto an index into the
// pending set. Selection 0 cancels (index -1, nil error); anything outside
// 1..pendingCount is an invalid selection and a no-op for the caller.
func ChooseIndex(selection, pendingCount int) (int, error) {
	if selection == CancelSelection {
		return -1, nil
	}
	if selection < 1 || selection > pendingCount {
		return -1, shared.NewDomainError("request", "ChooseIndex",
			shared.ErrInvalidSelection, "no pending request at that position")
	}
	return selection - 1, nil
}
