package command

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/payroll"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/pkg/logger"
	"github.com/schoolhub/school-records-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// RUN PAYROLL COMMAND
// Appends one salary batch for teachers or staff. A payee already paid in
// the run's calendar month is skipped, so re-running in the same month adds
// a header but no duplicate payments.
// ══════════════════════════════════════════════════════════════════════════════

// RunPayrollCommand selects the payee group and run date.
type RunPayrollCommand struct {
	Group payroll.Group
	Date  string // YYYY-MM-DD, empty means today
}

// Validate checks the command.
func (c RunPayrollCommand) Validate() error {
	if c.Group != payroll.Teachers && c.Group != payroll.Staff {
		return shared.NewDomainError("command", "RunPayroll",
			shared.ErrValueOutOfRange, "unknown payroll group: "+string(c.Group))
	}
	if c.Date != "" && !timeutil.ValidateDate(c.Date) {
		return shared.NewDomainError("command", "RunPayroll",
			shared.ErrInvalidDate, "date must be a valid YYYY-MM-DD")
	}
	return nil
}

// RunPayrollResult reports the outcome of one payroll run.
type RunPayrollResult struct {
	Paid             []payroll.Line
	AlreadyProcessed int
	SkippedMalformed int
}

// RunPayrollHandler handles RunPayrollCommand.
type RunPayrollHandler struct {
	teachers records.TeacherRepository
	staff    records.StaffRepository
	payments ledger.Log
	log      *logger.Logger
}

// NewRunPayrollHandler creates the handler.
func NewRunPayrollHandler(teachers records.TeacherRepository, staff records.StaffRepository, payments ledger.Log, log *logger.Logger) *RunPayrollHandler {
	return &RunPayrollHandler{teachers: teachers, staff: staff, payments: payments, log: log}
}

// Handle runs payroll for the group. The batch header is appended before
// any payee is examined, so a run where everyone was already paid still
// leaves its header in the ledger; the files have always looked that way.
func (h *RunPayrollHandler) Handle(ctx context.Context, cmd RunPayrollCommand) (*RunPayrollResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	date := cmd.Date
	if date == "" {
		date = timeutil.Today()
	}
	monthKey := timeutil.MonthOf(date)

	// Snapshot existing detail lines before this run appends anything.
	var existing []string
	err := h.payments.Scan(func(ev ledger.Event) error {
		if !ev.IsHeader {
			existing = append(existing, ev.Line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	processed := func(payeeID string) bool {
		for _, line := range existing {
			if payroll.MatchesProcessed(line, payeeID, monthKey) {
				return true
			}
		}
		return false
	}

	if err := h.payments.AppendSection(payroll.SectionHeader(cmd.Group, date)); err != nil {
		return nil, err
	}

	result := &RunPayrollResult{}
	pay := func(line payroll.Line) error {
		if err := h.payments.AppendLine(line.Encode()); err != nil {
			return err
		}
		result.Paid = append(result.Paid, line)
		return nil
	}

	if cmd.Group == payroll.Teachers {
		teachers, err := h.teachers.LoadAll()
		if err != nil {
			return nil, err
		}
		for _, t := range teachers {
			if processed(t.ID) {
				h.log.Info("payee already processed this month",
					logger.PayeeID(t.ID), logger.Month(monthKey))
				result.AlreadyProcessed++
				continue
			}
			line := payroll.Line{
				PayeeID:   t.ID,
				PayeeName: t.Name,
				Amount:    payroll.TeacherMonthlyPay(t),
				Date:      date,
			}
			if err := pay(line); err != nil {
				return nil, err
			}
		}
	} else {
		staff, err := h.staff.LoadAll()
		if err != nil {
			return nil, err
		}
		for _, s := range staff {
			if processed(s.ID) {
				h.log.Info("payee already processed this month",
					logger.PayeeID(s.ID), logger.Month(monthKey))
				result.AlreadyProcessed++
				continue
			}
			amount, err := payroll.StaffMonthlyPay(s)
			if err != nil {
				h.log.Warn("skipping payee with unparseable salary",
					logger.PayeeID(s.ID), logger.Err(err))
				result.SkippedMalformed++
				continue
			}
			line := payroll.Line{PayeeID: s.ID, PayeeName: s.Name, Amount: amount, Date: date}
			if err := pay(line); err != nil {
				return nil, err
			}
		}
	}

	h.log.Info("payroll run complete",
		logger.String("group", string(cmd.Group)),
		logger.Month(monthKey),
		logger.Int("paid", len(result.Paid)),
		logger.Int("already_processed", result.AlreadyProcessed))
	return result, nil
}
