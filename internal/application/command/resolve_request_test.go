package command

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhub/school-records-hub/internal/application/aggregate"
	"github.com/schoolhub/school-records-hub/internal/domain/record"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/request"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/internal/infrastructure/persistence/flatfile"
)

func appendLeave(t *testing.T, l *flatfile.Ledger, r request.LeaveRequest) {
	t.Helper()
	line, err := record.Encode(r.Fields())
	assert.NoError(t, err)
	assert.NoError(t, l.AppendLine(line))
}

func TestResolveLeaveApprovalChargesOwner(t *testing.T) {
	dir := t.TempDir()
	leaves := flatfile.NewLedger(filepath.Join(dir, "leaves.txt"))
	teachers := flatfile.NewTeacherStore(filepath.Join(dir, "teachers.txt"), nil)
	staff := flatfile.NewStaffStore(filepath.Join(dir, "staff.txt"), nil)

	assert.NoError(t, teachers.SaveAll([]records.TeacherRecord{
		{ID: "T01", Name: "Meiram", PeriodsPerWeek: 10, LeavesTaken: 2},
	}))
	appendLeave(t, leaves, request.LeaveRequest{
		OwnerID: "T01", OwnerName: "Meiram",
		StartDate: "2026-09-01", EndDate: "2026-09-02",
		Reason: "family", Status: request.Pending,
	})

	h := NewResolveLeaveHandler(leaves, teachers, staff, testLogger())
	result, err := h.Handle(context.Background(), ResolveLeaveCommand{Selection: 1, Action: request.Approve})
	assert.NoError(t, err)
	assert.False(t, result.Cancelled)
	assert.Equal(t, request.Approved, result.Resolved.Status)
	assert.Zero(t, result.RemainingPending)

	// The resolution is a new line; the original Pending line stays.
	lines, err := aggregate.LeaveLines(leaves)
	assert.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Empty(t, request.PendingLeaves(lines))

	loaded, err := teachers.LoadAll()
	assert.NoError(t, err)
	assert.Equal(t, 3, loaded[0].LeavesTaken)
}

func TestResolveLeaveRejectionDoesNotCharge(t *testing.T) {
	dir := t.TempDir()
	leaves := flatfile.NewLedger(filepath.Join(dir, "leaves.txt"))
	teachers := flatfile.NewTeacherStore(filepath.Join(dir, "teachers.txt"), nil)
	staff := flatfile.NewStaffStore(filepath.Join(dir, "staff.txt"), nil)

	assert.NoError(t, staff.SaveAll([]records.StaffRecord{
		{ID: "ST01", Name: "Dana", Role: "Librarian", Salary: "10000", LeavesTaken: 1},
	}))
	appendLeave(t, leaves, request.LeaveRequest{
		OwnerID: "ST01", OwnerName: "Dana",
		StartDate: "2026-09-01", EndDate: "2026-09-02",
		Reason: "medical", Status: request.Pending,
	})

	h := NewResolveLeaveHandler(leaves, teachers, staff, testLogger())
	result, err := h.Handle(context.Background(), ResolveLeaveCommand{Selection: 1, Action: request.Reject})
	assert.NoError(t, err)
	assert.Equal(t, request.Rejected, result.Resolved.Status)

	loaded, err := staff.LoadAll()
	assert.NoError(t, err)
	assert.Equal(t, 1, loaded[0].LeavesTaken)
}

func TestResolveLeaveSelectionZeroCancels(t *testing.T) {
	dir := t.TempDir()
	leaves := flatfile.NewLedger(filepath.Join(dir, "leaves.txt"))
	teachers := flatfile.NewTeacherStore(filepath.Join(dir, "teachers.txt"), nil)
	staff := flatfile.NewStaffStore(filepath.Join(dir, "staff.txt"), nil)

	appendLeave(t, leaves, request.LeaveRequest{
		OwnerID: "T01", OwnerName: "Meiram",
		StartDate: "2026-09-01", EndDate: "2026-09-02",
		Reason: "family", Status: request.Pending,
	})

	h := NewResolveLeaveHandler(leaves, teachers, staff, testLogger())
	result, err := h.Handle(context.Background(), ResolveLeaveCommand{Selection: 0, Action: request.Approve})
	assert.NoError(t, err)
	assert.True(t, result.Cancelled)
	assert.Equal(t, 1, result.RemainingPending)

	lines, err := aggregate.LeaveLines(leaves)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestResolveLeaveInvalidSelection(t *testing.T) {
	dir := t.TempDir()
	leaves := flatfile.NewLedger(filepath.Join(dir, "leaves.txt"))
	teachers := flatfile.NewTeacherStore(filepath.Join(dir, "teachers.txt"), nil)
	staff := flatfile.NewStaffStore(filepath.Join(dir, "staff.txt"), nil)

	h := NewResolveLeaveHandler(leaves, teachers, staff, testLogger())
	_, err := h.Handle(context.Background(), ResolveLeaveCommand{Selection: 1, Action: request.Approve})
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)
}

func TestResolveParentRequest(t *testing.T) {
	dir := t.TempDir()
	parents := flatfile.NewLedger(filepath.Join(dir, "parents.txt"))

	line, err := record.Encode(request.ParentRequest{
		ChildID: "S001", ParentUsername: "parent1",
		RequestType: "meeting", Note: "about grades", Status: request.Pending,
	}.Fields())
	assert.NoError(t, err)
	assert.NoError(t, parents.AppendLine(line))

	h := NewResolveParentRequestHandler(parents, testLogger())
	result, err := h.Handle(context.Background(), ResolveParentRequestCommand{Selection: 1, Action: request.Approve})
	assert.NoError(t, err)
	assert.Equal(t, request.Approved, result.Resolved.Status)

	lines, err := aggregate.ParentLines(parents)
	assert.NoError(t, err)
	assert.Empty(t, request.PendingParents(lines))
}
