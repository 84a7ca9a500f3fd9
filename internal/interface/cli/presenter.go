package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/schoolhub/school-records-hub/internal/application/query"
	"github.com/schoolhub/school-records-hub/internal/domain/grading"
	"github.com/schoolhub/school-records-hub/internal/domain/payroll"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/reportcard"
	"github.com/schoolhub/school-records-hub/internal/domain/request"
	"github.com/schoolhub/school-records-hub/internal/domain/schedule"
)

// Presenter renders views to the console.
type Presenter struct {
	out io.Writer
}

// NewPresenter creates a presenter.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

func (p *Presenter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

func (p *Presenter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Presenter) table() *tabwriter.Writer {
	return tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
}

// Students renders the student collection.
func (p *Presenter) Students(students []records.StudentRecord) {
	if len(students) == 0 {
		p.Println("No students on record.")
		return
	}
	w := p.table()
	fmt.Fprintln(w, "ID\tNAME\tCLASS\tROLL\tPARENT\tFEES")
	for _, s := range students {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Name, s.ClassName, s.RollNo, s.ParentContact, s.FeeStatus)
	}
	w.Flush()
}

// Teachers renders the teacher collection.
func (p *Presenter) Teachers(teachers []records.TeacherRecord) {
	if len(teachers) == 0 {
		p.Println("No teachers on record.")
		return
	}
	w := p.table()
	fmt.Fprintln(w, "ID\tNAME\tSUBJECTS\tCLASSES\tPERIODS/WK\tLEAVES")
	for _, t := range teachers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			t.ID, t.Name,
			strings.Join(t.Subjects, ","),
			strings.Join(t.AssignedClasses, ","),
			t.PeriodsPerWeek, t.LeavesTaken)
	}
	w.Flush()
}

// Staff renders the staff collection.
func (p *Presenter) Staff(staff []records.StaffRecord) {
	if len(staff) == 0 {
		p.Println("No staff on record.")
		return
	}
	w := p.table()
	fmt.Fprintln(w, "ID\tNAME\tROLE\tSALARY\tLEAVES")
	for _, s := range staff {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", s.ID, s.Name, s.Role, s.Salary, s.LeavesTaken)
	}
	w.Flush()
}

// Timetable renders scheduled periods.
func (p *Presenter) Timetable(rows []schedule.TimetableRow) {
	if len(rows) == 0 {
		p.Println("No periods scheduled.")
		return
	}
	w := p.table()
	fmt.Fprintln(w, "DAY\tPERIOD\tTEACHER\tCLASS\tROOM")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Day, r.Period, r.TeacherID, r.ClassName, r.Room)
	}
	w.Flush()
}

// Assignments renders assignments due.
func (p *Presenter) Assignments(assignments []schedule.Assignment) {
	if len(assignments) == 0 {
		p.Println("Nothing due.")
		return
	}
	w := p.table()
	fmt.Fprintln(w, "SUBJECT\tASSIGNMENT\tDUE")
	for _, a := range assignments {
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.Subject, a.Title, a.DueDate)
	}
	w.Flush()
}

// PendingLeaves renders pending leave requests with 1-based positions.
func (p *Presenter) PendingLeaves(pending []request.LeaveRequest) {
	if len(pending) == 0 {
		p.Println("No pending leave requests.")
		return
	}
	w := p.table()
	fmt.Fprintln(w, "#\tOWNER\tFROM\tTO\tREASON")
	for i, r := range pending {
		fmt.Fprintf(w, "%d\t%s (%s)\t%s\t%s\t%s\n", i+1, r.OwnerName, r.OwnerID, r.StartDate, r.EndDate, r.Reason)
	}
	w.Flush()
}

// LeaveHistory renders an owner's requests with current statuses.
func (p *Presenter) LeaveHistory(history []request.LeaveRequest) {
	if len(history) == 0 {
		p.Println("No leave requests submitted.")
		return
	}
	w := p.table()
	fmt.Fprintln(w, "FROM\tTO\tREASON\tSTATUS")
	for _, r := range history {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.StartDate, r.EndDate, r.Reason, r.Status)
	}
	w.Flush()
}

// PendingParents renders pending parent requests with 1-based positions.
func (p *Presenter) PendingParents(pending []request.ParentRequest) {
	if len(pending) == 0 {
		p.Println("No pending parent requests.")
		return
	}
	w := p.table()
	fmt.Fprintln(w, "#\tCHILD\tPARENT\tTYPE\tNOTE")
	for i, r := range pending {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, r.ChildID, r.ParentUsername, r.RequestType, r.Note)
	}
	w.Flush()
}

// ParentHistory renders a parent's requests with current statuses.
func (p *Presenter) ParentHistory(history []request.ParentRequest) {
	if len(history) == 0 {
		p.Println("No requests submitted.")
		return
	}
	w := p.table()
	fmt.Fprintln(w, "CHILD\tTYPE\tNOTE\tSTATUS")
	for _, r := range history {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ChildID, r.RequestType, r.Note, r.Status)
	}
	w.Flush()
}

// SubjectReports renders a student's grades grouped by subject.
func (p *Presenter) SubjectReports(subjects []query.SubjectReport) {
	if len(subjects) == 0 {
		p.Println("No grades recorded.")
		return
	}
	w := p.table()
	fmt.Fprintln(w, "SUBJECT\tQUIZ\tMIDTERM\tFINAL\tWEIGHTED")
	for _, s := range subjects {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s/100\n",
			s.Subject,
			gradeCell(s.Grades, grading.Quiz),
			gradeCell(s.Grades, grading.Midterm),
			gradeCell(s.Grades, grading.Final),
			reportcard.FormatScore(s.Weighted))
	}
	w.Flush()
}

func gradeCell(set grading.GradeSet, typ grading.AssignmentType) string {
	if g, ok := set[typ]; ok {
		return fmt.Sprintf("%d", g)
	}
	return "-"
}

// Attendance renders a student's attendance view.
func (p *Presenter) Attendance(view *query.AttendanceView) {
	p.Printf("Attendance: %d/%d (%s%%)\n",
		view.Summary.PresentCount, view.Summary.TotalBatches,
		reportcard.FormatScore(view.Summary.Percent()))
	if len(view.History) == 0 {
		return
	}
	w := p.table()
	fmt.Fprintln(w, "DATE\tCLASS\tSTATUS")
	for _, d := range view.History {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Date, d.ClassName, d.Status)
	}
	w.Flush()
}

// ChildProgress renders the parent's progress report.
func (p *Presenter) ChildProgress(progress *query.ChildProgress) {
	p.Printf("Progress report for %s (%s), class %s\n",
		progress.Child.Name, progress.Child.ID, progress.Child.ClassName)
	p.SubjectReports(progress.Subjects)
	p.Printf("Overall average: %s/100\n", reportcard.FormatScore(progress.OverallAverage))
	p.Printf("Attendance: %d/%d (%s%%)\n",
		progress.Attendance.PresentCount, progress.Attendance.TotalBatches,
		reportcard.FormatScore(progress.Attendance.Percent()))
	p.Printf("Verdict: %s\n", progress.Verdict)
}

// FeeView renders a child's fee picture.
func (p *Presenter) FeeView(view *query.FeeView) {
	p.Printf("Fee status: %s\n", view.FeeStatus)
	if len(view.Ledger) > 0 {
		p.Println("Payment history:")
		w := p.table()
		fmt.Fprintln(w, "MONTH\tAMOUNT\tSTATUS")
		for _, e := range view.Ledger {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Month, e.Amount, e.Status)
		}
		w.Flush()
	}
	if len(view.Challans) > 0 {
		p.Println("Challans:")
		w := p.table()
		fmt.Fprintln(w, "MONTH\tAMOUNT\tSTATUS")
		for _, c := range view.Challans {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.MonthYear, c.Amount.String(), c.Status)
		}
		w.Flush()
	}
}

// PayrollRun renders the outcome of a payroll run.
func (p *Presenter) PayrollRun(result []payroll.Line, alreadyProcessed, skippedMalformed int) {
	if len(result) == 0 {
		p.Println("No payments made.")
	} else {
		w := p.table()
		fmt.Fprintln(w, "PAYEE\tNAME\tAMOUNT\tDATE")
		for _, l := range result {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.PayeeID, l.PayeeName, l.Amount.String(), l.Date)
		}
		w.Flush()
	}
	if alreadyProcessed > 0 {
		p.Printf("%d payee(s) already paid this month.\n", alreadyProcessed)
	}
	if skippedMalformed > 0 {
		p.Printf("%d payee(s) skipped: unreadable salary.\n", skippedMalformed)
	}
}

// TeacherPay renders the teacher payroll preview.
func (p *Presenter) TeacherPay(pay []query.TeacherPay) {
	if len(pay) == 0 {
		p.Println("No teachers on record.")
		return
	}
	w := p.table()
	fmt.Fprintln(w, "ID\tNAME\tPERIODS/WK\tLEAVES\tMONTHLY")
	for _, t := range pay {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			t.Teacher.ID, t.Teacher.Name, t.Teacher.PeriodsPerWeek,
			t.Teacher.LeavesTaken, t.Monthly.String())
	}
	w.Flush()
}

// StaffPay renders the staff payroll preview.
func (p *Presenter) StaffPay(pay []query.StaffPay) {
	if len(pay) == 0 {
		p.Println("No staff on record.")
		return
	}
	w := p.table()
	fmt.Fprintln(w, "ID\tNAME\tSALARY\tLEAVES\tMONTHLY")
	for _, s := range pay {
		monthly := s.Monthly.String()
		if s.Malformed {
			monthly = "unreadable salary"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			s.Staff.ID, s.Staff.Name, s.Staff.Salary, s.Staff.LeavesTaken, monthly)
	}
	w.Flush()
}

// ReportBlocks renders stored report cards, separator between blocks.
func (p *Presenter) ReportBlocks(blocks []query.ReportBlock) {
	if len(blocks) == 0 {
		p.Println("No term reports found.")
		return
	}
	for _, block := range blocks {
		for _, line := range block {
			p.Println(line)
		}
		p.Println(reportcard.Separator)
	}
}
