package query

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/schoolhub/school-records-hub/internal/domain/payroll"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
)

// ══════════════════════════════════════════════════════════════════════════════
// SALARIES QUERY
// The principal's payroll preview: what each teacher and staff member would
// be paid this month, before any ledger line is written.
// ══════════════════════════════════════════════════════════════════════════════

// TeacherPay pairs a teacher with the computed monthly amount.
type TeacherPay struct {
	Teacher records.TeacherRecord
	Monthly decimal.Decimal
}

// StaffPay pairs a staff member with the computed monthly amount. Malformed
// reports a salary field payroll cannot parse; such payees would be skipped
// by a run.
type StaffPay struct {
	Staff     records.StaffRecord
	Monthly   decimal.Decimal
	Malformed bool
}

// GetSalariesHandler computes the payroll preview.
type GetSalariesHandler struct {
	teachers records.TeacherRepository
	staff    records.StaffRepository
}

// NewGetSalariesHandler creates the handler.
func NewGetSalariesHandler(teachers records.TeacherRepository, staff records.StaffRepository) *GetSalariesHandler {
	return &GetSalariesHandler{teachers: teachers, staff: staff}
}

// Teachers previews teacher pay.
func (h *GetSalariesHandler) Teachers(ctx context.Context) ([]TeacherPay, error) {
	teachers, err := h.teachers.LoadAll()
	if err != nil {
		return nil, err
	}
	out := make([]TeacherPay, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, TeacherPay{Teacher: t, Monthly: payroll.TeacherMonthlyPay(t)})
	}
	return out, nil
}

// Staff previews staff pay.
func (h *GetSalariesHandler) Staff(ctx context.Context) ([]StaffPay, error) {
	staff, err := h.staff.LoadAll()
	if err != nil {
		return nil, err
	}
	out := make([]StaffPay, 0, len(staff))
	for _, s := range staff {
		amount, err := payroll.StaffMonthlyPay(s)
		if err != nil {
			out = append(out, StaffPay{Staff: s, Malformed: true})
			continue
		}
		out = append(out, StaffPay{Staff: s, Monthly: amount})
	}
	return out, nil
}
