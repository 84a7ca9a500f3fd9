package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

func leave(owner, start, status string) LeaveRequest {
	return LeaveRequest{
		OwnerID:   owner,
		OwnerName: "Meiram",
		StartDate: start,
		EndDate:   "2026-09-03",
		Reason:    "family",
		Status:    Status(status),
	}
}

func TestPendingLeavesLatestLineWins(t *testing.T) {
	lines := []LeaveRequest{
		leave("T01", "2026-09-01", "Pending"),
		leave("T02", "2026-09-02", "Pending"),
		leave("T01", "2026-09-01", "Approved"), // resolution of the first
	}

	pending := PendingLeaves(lines)
	assert.Len(t, pending, 1)
	assert.Equal(t, "T02", pending[0].OwnerID)

	current := CurrentLeaves(lines)
	assert.Len(t, current, 2)
	assert.Equal(t, Approved, current[0].Status) // first appearance keeps its slot
	assert.Equal(t, Pending, current[1].Status)
}

func TestCurrentStatusOfLeave(t *testing.T) {
	original := leave("T01", "2026-09-01", "Pending")
	lines := []LeaveRequest{original, original.WithStatus(Rejected)}

	status, found := CurrentStatusOfLeave(lines, original.Key())
	assert.True(t, found)
	assert.Equal(t, Rejected, status)

	_, found = CurrentStatusOfLeave(lines, "missing")
	assert.False(t, found)
}

func TestChooseIndex(t *testing.T) {
	idx, err := ChooseIndex(2, 3)
	assert.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = ChooseIndex(CancelSelection, 3)
	assert.NoError(t, err)
	assert.Equal(t, -1, idx)

	_, err = ChooseIndex(4, 3)
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)
	_, err = ChooseIndex(-1, 3)
	assert.ErrorIs(t, err, shared.ErrInvalidSelection)
}

func TestDecodeRoundTrip(t *testing.T) {
	r, err := DecodeLeave([]string{"T01", "Meiram", "2026-09-01", "2026-09-03", "family", "Pending"})
	assert.NoError(t, err)
	assert.Equal(t, leave("T01", "2026-09-01", "Pending"), r)

	_, err = DecodeLeave([]string{"T01", "Meiram"})
	assert.ErrorIs(t, err, shared.ErrShortRecord)

	p, err := DecodeParent([]string{"S001", "parent1", "meeting", "about grades", "Pending"})
	assert.NoError(t, err)
	assert.Equal(t, Pending, p.Status)
	assert.Equal(t, Approved, p.WithStatus(Approve.Resolved()).Status)
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, Pending.Terminal())
	assert.True(t, Approved.Terminal())
	assert.True(t, Rejected.Terminal())
}
