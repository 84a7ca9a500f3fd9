package command

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/record"
	"github.com/schoolhub/school-records-hub/internal/domain/request"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/pkg/logger"
	"github.com/schoolhub/school-records-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// SUBMIT LEAVE COMMAND
// Appends one Pending leave request line. Request lines carry no section
// header of their own.
// ══════════════════════════════════════════════════════════════════════════════

// SubmitLeaveCommand contains one leave application.
type SubmitLeaveCommand struct {
	OwnerID   string
	OwnerName string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Reason    string
}

// Validate checks the command.
func (c SubmitLeaveCommand) Validate() error {
	if c.OwnerID == "" || c.OwnerName == "" {
		return shared.NewDomainError("command", "SubmitLeave",
			shared.ErrEmptyValue, "owner id and name are required")
	}
	if c.Reason == "" {
		return shared.NewDomainError("command", "SubmitLeave",
			shared.ErrEmptyValue, "a leave request needs a reason")
	}
	if !timeutil.ValidateDate(c.StartDate) || !timeutil.ValidateDate(c.EndDate) {
		return shared.NewDomainError("command", "SubmitLeave",
			shared.ErrInvalidDate, "leave dates must be valid YYYY-MM-DD")
	}
	return nil
}

// SubmitLeaveResult carries the submitted request.
type SubmitLeaveResult struct {
	Request request.LeaveRequest
}

// SubmitLeaveHandler handles SubmitLeaveCommand.
type SubmitLeaveHandler struct {
	leaves ledger.Log
	log    *logger.Logger
}

// NewSubmitLeaveHandler creates the handler.
func NewSubmitLeaveHandler(leaves ledger.Log, log *logger.Logger) *SubmitLeaveHandler {
	return &SubmitLeaveHandler{leaves: leaves, log: log}
}

// Handle appends the request in Pending state.
func (h *SubmitLeaveHandler) Handle(ctx context.Context, cmd SubmitLeaveCommand) (*SubmitLeaveResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	req := request.LeaveRequest{
		OwnerID:   cmd.OwnerID,
		OwnerName: cmd.OwnerName,
		StartDate: cmd.StartDate,
		EndDate:   cmd.EndDate,
		Reason:    cmd.Reason,
		Status:    request.Pending,
	}
	line, err := record.Encode(req.Fields())
	if err != nil {
		return nil, err
	}
	if err := h.leaves.AppendLine(line); err != nil {
		return nil, err
	}

	h.log.Info("leave request submitted",
		logger.String("owner_id", cmd.OwnerID),
		logger.String("from", cmd.StartDate),
		logger.String("to", cmd.EndDate))
	return &SubmitLeaveResult{Request: req}, nil
}
