package command

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/record"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/request"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// SUBMIT PARENT REQUEST COMMAND
// Appends one Pending parent request about a child. The child must exist and
// be registered under the submitting parent's contact.
// ══════════════════════════════════════════════════════════════════════════════

// SubmitParentRequestCommand contains one parent request.
type SubmitParentRequestCommand struct {
	ParentUsername string
	ChildID        string
	RequestType    string
	Note           string
}

// Validate checks the command.
func (c SubmitParentRequestCommand) Validate() error {
	if c.ParentUsername == "" || c.ChildID == "" {
		return shared.NewDomainError("command", "SubmitParentRequest",
			shared.ErrEmptyValue, "parent username and child id are required")
	}
	if c.RequestType == "" {
		return shared.NewDomainError("command", "SubmitParentRequest",
			shared.ErrEmptyValue, "a parent request needs a type")
	}
	return nil
}

// SubmitParentRequestResult carries the submitted request.
type SubmitParentRequestResult struct {
	Request request.ParentRequest
}

// SubmitParentRequestHandler handles SubmitParentRequestCommand.
type SubmitParentRequestHandler struct {
	students records.StudentRepository
	parents  ledger.Log
	log      *logger.Logger
}

// NewSubmitParentRequestHandler creates the handler.
func NewSubmitParentRequestHandler(students records.StudentRepository, parents ledger.Log, log *logger.Logger) *SubmitParentRequestHandler {
	return &SubmitParentRequestHandler{students: students, parents: parents, log: log}
}

// Handle appends the request in Pending state after checking the child
// belongs to the parent.
func (h *SubmitParentRequestHandler) Handle(ctx context.Context, cmd SubmitParentRequestCommand) (*SubmitParentRequestResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	students, err := h.students.LoadAll()
	if err != nil {
		return nil, err
	}
	i, ok := records.FindStudent(students, cmd.ChildID)
	if !ok || students[i].ParentContact != cmd.ParentUsername {
		return nil, shared.NewDomainError("command", "SubmitParentRequest",
			shared.ErrNotFound, "no child "+cmd.ChildID+" registered under this parent")
	}

	req := request.ParentRequest{
		ChildID:        cmd.ChildID,
		ParentUsername: cmd.ParentUsername,
		RequestType:    cmd.RequestType,
		Note:           cmd.Note,
		Status:         request.Pending,
	}
	line, err := record.Encode(req.Fields())
	if err != nil {
		return nil, err
	}
	if err := h.parents.AppendLine(line); err != nil {
		return nil, err
	}

	h.log.Info("parent request submitted",
		logger.StudentID(cmd.ChildID),
		logger.String("type", cmd.RequestType))
	return &SubmitParentRequestResult{Request: req}, nil
}
