// Package request implements the three-state lifecycle of leave and parent
// requests over an append-only ledger. A request is never edited in place:
// resolving it appends a new line with the terminal status, and the current
// status of a request is the status of its last matching line.
package request

import (
	"strings"

	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

// Status of a request.
type Status string

const (
	Pending  Status = "Pending"
	Approved Status = "Approved"
	Rejected Status = "Rejected"
)

// Terminal reports whether the status ends the request's lifecycle.
func (s Status) Terminal() bool {
	return s == Approved || s == Rejected
}

// Action is the resolution chosen for a pending request.
type Action int

const (
	Approve Action = iota
	Reject
)

// Resolved maps an action onto the terminal status it produces.
func (a Action) Resolved() Status {
	if a == Approve {
		return Approved
	}
	return Rejected
}

// LeaveArity is the persisted field count of a leave request line.
const LeaveArity = 6

// LeaveRequest is one leave application by a teacher or staff member.
// Identity is the full tuple of the original pending line minus the status.
type LeaveRequest struct {
	OwnerID   string
	OwnerName string
	StartDate string
	EndDate   string
	Reason    string
	Status    Status
}

// Fields returns the persisted field values in file order.
func (r LeaveRequest) Fields() []string {
	return []string{r.OwnerID, r.OwnerName, r.StartDate, r.EndDate, r.Reason, string(r.Status)}
}

// Key identifies the logical request across its ledger lines.
func (r LeaveRequest) Key() string {
	return strings.Join([]string{r.OwnerID, r.StartDate, r.EndDate, r.Reason}, "\x1f")
}

// WithStatus returns a copy carrying the new status; all identifying fields
// are preserved so the appended line matches the original.
func (r LeaveRequest) WithStatus(s Status) LeaveRequest {
	r.Status = s
	return r
}

// DecodeLeave builds a leave request from decoded fields.
func DecodeLeave(fields []string) (LeaveRequest, error) {
	if len(fields) < LeaveArity {
		return LeaveRequest{}, shared.NewDomainError("request", "DecodeLeave",
			shared.ErrShortRecord, "leave request line has too few fields")
	}
	return LeaveRequest{
		OwnerID:   fields[0],
		OwnerName: fields[1],
		StartDate: fields[2],
		EndDate:   fields[3],
		Reason:    fields[4],
		Status:    Status(fields[5]),
	}, nil
}

// ParentArity is the persisted field count of a parent request line.
const ParentArity = 5

// ParentRequest is one request submitted by a parent about a child.
type ParentRequest struct {
	ChildID        string
	ParentUsername string
	RequestType    string
	Note           string
	Status         Status
}

// Fields returns the persisted field values in file order.
func (r ParentRequest) Fields() []string {
	return []string{r.ChildID, r.ParentUsername, r.RequestType, r.Note, string(r.Status)}
}

// Key identifies the logical request across its ledger lines.
func (r ParentRequest) Key() string {
	return strings.Join([]string{r.ChildID, r.ParentUsername, r.RequestType, r.Note}, "\x1f")
}

// WithStatus returns a copy carrying the new status.
func (r ParentRequest) WithStatus(s Status) ParentRequest {
	r.Status = s
	return r
}

// DecodeParent builds a parent request from decoded fields.
func DecodeParent(fields []string) (ParentRequest, error) {
	if len(fields) < ParentArity {
		return ParentRequest{}, shared.NewDomainError("request", "DecodeParent",
			shared.ErrShortRecord, "parent request line has too few fields")
	}
	return ParentRequest{
		ChildID:        fields[0],
		ParentUsername: fields[1],
		RequestType:    fields[2],
		Note:           fields[3],
		Status:         Status(fields[4]),
	}, nil
}
