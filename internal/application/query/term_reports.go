package query

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/reportcard"
)

// ══════════════════════════════════════════════════════════════════════════════
// TERM REPORTS QUERY
// Browses the free-text report ledger. Reports are blocks of lines closed by
// the separator line; section headers delimit batches but are not part of
// any block.
// ══════════════════════════════════════════════════════════════════════════════

// ReportBlock is one report card as stored, line by line without the
// trailing separator.
type ReportBlock []string

// GetTermReportsHandler browses the term reports ledger.
type GetTermReportsHandler struct {
	reports ledger.Log
}

// NewGetTermReportsHandler creates the handler.
func NewGetTermReportsHandler(reports ledger.Log) *GetTermReportsHandler {
	return &GetTermReportsHandler{reports: reports}
}

// Sections lists every report batch header in file order.
func (h *GetTermReportsHandler) Sections(ctx context.Context) ([]ledger.Header, error) {
	var headers []ledger.Header
	err := h.reports.Scan(func(ev ledger.Event) error {
		if ev.IsHeader && ev.Header.HasTag(ledger.TagTermReports) {
			headers = append(headers, ev.Header)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return headers, nil
}

// All lists every report block in file order.
func (h *GetTermReportsHandler) All(ctx context.Context) ([]ReportBlock, error) {
	return h.blocks(func(ReportBlock) bool { return true })
}

// ForStudent lists the report blocks of the named student.
func (h *GetTermReportsHandler) ForStudent(ctx context.Context, studentName string) ([]ReportBlock, error) {
	return h.blocks(func(b ReportBlock) bool {
		return reportcard.BlockMentions(b, studentName)
	})
}

func (h *GetTermReportsHandler) blocks(keep func(ReportBlock) bool) ([]ReportBlock, error) {
	var out []ReportBlock
	var current ReportBlock

	err := h.reports.Scan(func(ev ledger.Event) error {
		if ev.IsHeader {
			return nil
		}
		if ev.Line == reportcard.Separator {
			if len(current) > 0 && keep(current) {
				out = append(out, current)
			}
			current = nil
			return nil
		}
		current = append(current, ev.Line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	// A block missing its separator, the file was cut short, still counts.
	if len(current) > 0 && keep(current) {
		out = append(out, current)
	}
	return out, nil
}
