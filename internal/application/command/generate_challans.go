package command

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/schoolhub/school-records-hub/internal/domain/fees"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/record"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/pkg/logger"
	"github.com/schoolhub/school-records-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// GENERATE CHALLANS COMMAND
// Issues one unpaid fee challan per enrolled student under a monthly section
// header. Challans are ledger entries and are never rewritten.
// ══════════════════════════════════════════════════════════════════════════════

// GenerateChallansCommand contains the challan month and amount.
type GenerateChallansCommand struct {
	MonthYear string // MM-YYYY, empty means the current month
	Amount    decimal.Decimal
}

// Validate checks the command.
func (c GenerateChallansCommand) Validate() error {
	if !c.Amount.IsPositive() {
		return shared.NewDomainError("command", "GenerateChallans",
			shared.ErrValueOutOfRange, "challan amount must be positive")
	}
	return nil
}

// GenerateChallansResult reports how many challans were issued.
type GenerateChallansResult struct {
	Issued int
}

// GenerateChallansHandler handles GenerateChallansCommand.
type GenerateChallansHandler struct {
	students records.StudentRepository
	challans ledger.Log
	log      *logger.Logger
}

// NewGenerateChallansHandler creates the handler.
func NewGenerateChallansHandler(students records.StudentRepository, challans ledger.Log, log *logger.Logger) *GenerateChallansHandler {
	return &GenerateChallansHandler{students: students, challans: challans, log: log}
}

// Handle issues one challan per student.
func (h *GenerateChallansHandler) Handle(ctx context.Context, cmd GenerateChallansCommand) (*GenerateChallansResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	monthYear := cmd.MonthYear
	if monthYear == "" {
		monthYear = timeutil.CurrentChallanMonth()
	}

	students, err := h.students.LoadAll()
	if err != nil {
		return nil, err
	}

	if err := h.challans.AppendSection(fees.NewSectionHeader(monthYear)); err != nil {
		return nil, err
	}

	result := &GenerateChallansResult{}
	for _, s := range students {
		challan := fees.Challan{
			StudentID: s.ID,
			Name:      s.Name,
			ClassName: s.ClassName,
			MonthYear: monthYear,
			Amount:    cmd.Amount,
			Status:    fees.Unpaid,
		}
		line, err := record.Encode(challan.Fields())
		if err != nil {
			h.log.Warn("skipping challan with unencodable fields",
				logger.StudentID(s.ID), logger.Err(err))
			continue
		}
		if err := h.challans.AppendLine(line); err != nil {
			return nil, err
		}
		result.Issued++
	}

	h.log.Info("fee challans issued",
		logger.String("month", monthYear),
		logger.Int("issued", result.Issued))
	return result, nil
}
