package query

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolhub/school-records-hub/internal/domain/attendance"
	"github.com/schoolhub/school-records-hub/internal/domain/grading"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/reportcard"
	"github.com/schoolhub/school-records-hub/internal/infrastructure/persistence/flatfile"
)

func writeReport(t *testing.T, l *flatfile.Ledger, card reportcard.Card) {
	t.Helper()
	for _, line := range card.Lines() {
		assert.NoError(t, l.AppendLine(line))
	}
}

func TestTermReportsBrowsing(t *testing.T) {
	reports := flatfile.NewLedger(filepath.Join(t.TempDir(), "reports.txt"))

	assert.NoError(t, reports.AppendSection(reportcard.NewSectionHeader("Term-1", "10-A")))
	writeReport(t, reports, reportcard.Card{
		StudentID: "S001", StudentName: "Aliya", ClassName: "10-A", Term: "Term-1",
		Grades:     grading.GradeSet{grading.Final: 90},
		Attendance: attendance.Summary{PresentCount: 4, TotalBatches: 4},
		Comments:   "Strong term",
	})
	writeReport(t, reports, reportcard.Card{
		StudentID: "S002", StudentName: "Omar", ClassName: "10-A", Term: "Term-1",
		Grades:     grading.GradeSet{grading.Final: 60},
		Attendance: attendance.Summary{PresentCount: 3, TotalBatches: 4},
		Comments:   "Keep working",
	})

	h := NewGetTermReportsHandler(reports)

	sections, err := h.Sections(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []ledger.Header{reportcard.NewSectionHeader("Term-1", "10-A")}, sections)

	all, err := h.All(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "STUDENT: Aliya (S001)", all[0][0])

	mine, err := h.ForStudent(context.Background(), "Omar")
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, "STUDENT: Omar (S002)", mine[0][0])
}

func TestTermReportsKeepsBlockCutShort(t *testing.T) {
	reports := flatfile.NewLedger(filepath.Join(t.TempDir(), "reports.txt"))

	assert.NoError(t, reports.AppendSection(reportcard.NewSectionHeader("Term-1", "10-A")))
	assert.NoError(t, reports.AppendLine("STUDENT: Aliya (S001)"))
	assert.NoError(t, reports.AppendLine("CLASS: 10-A"))
	// No closing separator: the file was cut short mid-report.

	all, err := NewGetTermReportsHandler(reports).All(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Len(t, all[0], 2)
}
