package query

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/application/aggregate"
	"github.com/schoolhub/school-records-hub/internal/domain/fees"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// FEE STATUS QUERY
// A child's current fee status, the externally maintained payment ledger
// and every challan issued to the child.
// ══════════════════════════════════════════════════════════════════════════════

// FeeView is the assembled fee picture of one student.
type FeeView struct {
	FeeStatus string
	Settled   bool
	Ledger    []fees.LedgerEntry
	Challans  []fees.Challan
}

// GetFeeStatusHandler assembles the fee view.
type GetFeeStatusHandler struct {
	students   records.StudentRepository
	feesLedger ledger.Log
	challans   ledger.Log
}

// NewGetFeeStatusHandler creates the handler.
func NewGetFeeStatusHandler(students records.StudentRepository, feesLedger, challans ledger.Log) *GetFeeStatusHandler {
	return &GetFeeStatusHandler{students: students, feesLedger: feesLedger, challans: challans}
}

// Handle builds the fee view for one student.
func (h *GetFeeStatusHandler) Handle(ctx context.Context, studentID string) (*FeeView, error) {
	students, err := h.students.LoadAll()
	if err != nil {
		return nil, err
	}
	i, ok := records.FindStudent(students, studentID)
	if !ok {
		return nil, shared.NewDomainError("query", "GetFeeStatus",
			shared.ErrNotFound, "no student with id "+studentID)
	}

	entries, err := aggregate.FeeLedgerFor(h.feesLedger, studentID)
	if err != nil {
		return nil, err
	}
	challans, err := aggregate.ChallansFor(h.challans, studentID)
	if err != nil {
		return nil, err
	}

	return &FeeView{
		FeeStatus: students[i].FeeStatus,
		Settled:   students[i].IsFeeSettled(),
		Ledger:    entries,
		Challans:  challans,
	}, nil
}
