// Package aggregate derives read-side state from the append-only ledgers.
// Ledgers hold every line ever written, so grade sets, attendance summaries
// and request projections are folded out of a full scan, latest line wins.
package aggregate

import (
	"github.com/schoolhub/school-records-hub/internal/domain/attendance"
	"github.com/schoolhub/school-records-hub/internal/domain/fees"
	"github.com/schoolhub/school-records-hub/internal/domain/grading"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/payroll"
	"github.com/schoolhub/school-records-hub/internal/domain/record"
	"github.com/schoolhub/school-records-hub/internal/domain/request"
	"github.com/schoolhub/school-records-hub/internal/domain/schedule"
)

// GradesFor folds the student's grade set out of the grades ledger. Each
// detail line is attributed by the GRADES section it appears under; a later
// batch of the same assignment type overwrites the earlier grade.
func GradesFor(log ledger.Log, studentID string) (grading.GradeSet, error) {
	set := grading.GradeSet{}
	var section grading.Section
	var inSection bool

	err := log.Scan(func(ev ledger.Event) error {
		if ev.IsHeader {
			section, inSection = grading.ParseSection(ev.Header)
			return nil
		}
		if !inSection {
			return nil
		}
		id, grade, err := grading.ParseLine(ev.Line)
		if err != nil || id != studentID {
			return nil
		}
		set[section.Type] = grade
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// SubjectGrades is one subject's grade set for a student, in order of first
// appearance in the ledger. The subject key is the class token of the grade
// section header.
type SubjectGrades struct {
	Subject string
	Grades  grading.GradeSet
}

// GradesBySubjectFor folds the student's grades grouped by subject.
func GradesBySubjectFor(log ledger.Log, studentID string) ([]SubjectGrades, error) {
	var order []string
	bySubject := map[string]grading.GradeSet{}

	var section grading.Section
	var inSection bool
	err := log.Scan(func(ev ledger.Event) error {
		if ev.IsHeader {
			section, inSection = grading.ParseSection(ev.Header)
			return nil
		}
		if !inSection {
			return nil
		}
		id, grade, err := grading.ParseLine(ev.Line)
		if err != nil || id != studentID {
			return nil
		}
		set, seen := bySubject[section.ClassName]
		if !seen {
			set = grading.GradeSet{}
			bySubject[section.ClassName] = set
			order = append(order, section.ClassName)
		}
		set[section.Type] = grade
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]SubjectGrades, 0, len(order))
	for _, subject := range order {
		out = append(out, SubjectGrades{Subject: subject, Grades: bySubject[subject]})
	}
	return out, nil
}

// AttendanceFor folds the student's attendance summary. Every attendance
// section header counts toward the total, whatever class it covers; a detail
// line counts as present when it mentions the student and records a
// presence. Existing percentages in the files depend on both rules.
func AttendanceFor(log ledger.Log, studentID string) (attendance.Summary, error) {
	var sum attendance.Summary
	err := log.Scan(func(ev ledger.Event) error {
		if ev.IsHeader {
			if ev.Header.HasTag(ledger.TagAttendance) {
				sum.TotalBatches++
			}
			return nil
		}
		if attendance.LineMentions(ev.Line, studentID) && attendance.LineMarksPresent(ev.Line) {
			sum.PresentCount++
		}
		return nil
	})
	if err != nil {
		return attendance.Summary{}, err
	}
	return sum, nil
}

// AttendanceDay is one attendance entry of a student, dated by the section
// it was marked under.
type AttendanceDay struct {
	Date      string
	ClassName string
	Status    attendance.Status
}

// AttendanceHistoryFor lists the student's attendance entries in file order.
func AttendanceHistoryFor(log ledger.Log, studentID string) ([]AttendanceDay, error) {
	var days []AttendanceDay
	var section attendance.Section
	var inSection bool

	err := log.Scan(func(ev ledger.Event) error {
		if ev.IsHeader {
			section, inSection = attendance.ParseSection(ev.Header)
			return nil
		}
		if !inSection {
			return nil
		}
		id, status, ok := attendance.ParseLine(ev.Line)
		if !ok || id != studentID {
			return nil
		}
		days = append(days, AttendanceDay{
			Date:      section.Date,
			ClassName: section.ClassName,
			Status:    status,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return days, nil
}

// LeaveLines decodes every leave request line in the ledger, in file order.
// Headers and under-arity lines are skipped.
func LeaveLines(log ledger.Log) ([]request.LeaveRequest, error) {
	var lines []request.LeaveRequest
	err := log.Scan(func(ev ledger.Event) error {
		if ev.IsHeader {
			return nil
		}
		fields := record.Decode(ev.Line)
		if len(fields) < request.LeaveArity {
			return nil
		}
		r, err := request.DecodeLeave(fields)
		if err != nil {
			return nil
		}
		lines = append(lines, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// ParentLines decodes every parent request line in the ledger, in file order.
func ParentLines(log ledger.Log) ([]request.ParentRequest, error) {
	var lines []request.ParentRequest
	err := log.Scan(func(ev ledger.Event) error {
		if ev.IsHeader {
			return nil
		}
		fields := record.Decode(ev.Line)
		if len(fields) < request.ParentArity {
			return nil
		}
		r, err := request.DecodeParent(fields)
		if err != nil {
			return nil
		}
		lines = append(lines, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// ProcessedThisMonth reports whether the payments ledger already holds a line
// for the payee in the given YYYY-MM month.
func ProcessedThisMonth(log ledger.Log, payeeID, monthKey string) (bool, error) {
	found := false
	err := log.Scan(func(ev ledger.Event) error {
		if ev.IsHeader {
			return nil
		}
		if payroll.MatchesProcessed(ev.Line, payeeID, monthKey) {
			found = true
			return ledger.ErrStopScan
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// FeeLedgerFor lists the student's entries in the externally maintained fees
// ledger, in file order.
func FeeLedgerFor(log ledger.Log, studentID string) ([]fees.LedgerEntry, error) {
	var entries []fees.LedgerEntry
	err := log.Scan(func(ev ledger.Event) error {
		if ev.IsHeader {
			return nil
		}
		fields := record.Decode(ev.Line)
		if len(fields) < fees.LedgerEntryArity {
			return nil
		}
		e, err := fees.DecodeLedgerEntry(fields)
		if err != nil || e.StudentID != studentID {
			return nil
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ChallansFor lists the challans issued to a student, in file order.
func ChallansFor(log ledger.Log, studentID string) ([]fees.Challan, error) {
	var challans []fees.Challan
	err := log.Scan(func(ev ledger.Event) error {
		if ev.IsHeader {
			return nil
		}
		fields := record.Decode(ev.Line)
		if len(fields) < fees.ChallanArity {
			return nil
		}
		c, err := fees.DecodeChallan(fields)
		if err != nil || c.StudentID != studentID {
			return nil
		}
		challans = append(challans, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return challans, nil
}

// TimetableRows decodes every timetable line, in file order.
func TimetableRows(log ledger.Log) ([]schedule.TimetableRow, error) {
	var rows []schedule.TimetableRow
	err := log.Scan(func(ev ledger.Event) error {
		if ev.IsHeader {
			return nil
		}
		fields := record.Decode(ev.Line)
		if len(fields) < schedule.TimetableArity {
			return nil
		}
		row, err := schedule.DecodeTimetableRow(fields)
		if err != nil {
			return nil
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Assignments decodes every assignment line, in file order.
func Assignments(log ledger.Log) ([]schedule.Assignment, error) {
	var out []schedule.Assignment
	err := log.Scan(func(ev ledger.Event) error {
		if ev.IsHeader {
			return nil
		}
		fields := record.Decode(ev.Line)
		if len(fields) < schedule.AssignmentArity {
			return nil
		}
		a, err := schedule.DecodeAssignment(fields)
		if err != nil {
			return nil
		}
		out = append(out, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
