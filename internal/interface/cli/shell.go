package cli

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/schoolhub/school-records-hub/internal/application/command"
	"github.com/schoolhub/school-records-hub/internal/application/query"
	"github.com/schoolhub/school-records-hub/internal/domain/grading"
	"github.com/schoolhub/school-records-hub/internal/domain/payroll"
	"github.com/schoolhub/school-records-hub/internal/domain/records"
	"github.com/schoolhub/school-records-hub/internal/domain/request"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/pkg/logger"
)

// Handlers collects every command and query handler the shell dispatches to.
type Handlers struct {
	Login          *query.LoginHandler
	ListRecords    *query.ListRecordsHandler
	PendingLeaves  *query.GetPendingLeavesHandler
	PendingParents *query.GetPendingParentsHandler
	LeaveHistory   *query.GetLeaveHistoryHandler
	ParentHistory  *query.GetParentRequestHistoryHandler
	StudentGrades  *query.GetStudentGradesHandler
	Attendance     *query.GetAttendanceHandler
	ChildProgress  *query.GetChildProgressHandler
	FeeStatus      *query.GetFeeStatusHandler
	Timetable      *query.GetTimetableHandler
	Assignments    *query.GetAssignmentsHandler
	TermReports    *query.GetTermReportsHandler
	Salaries       *query.GetSalariesHandler

	RegisterStudent     *command.RegisterStudentHandler
	RegisterTeacher     *command.RegisterTeacherHandler
	RegisterStaff       *command.RegisterStaffHandler
	MarkAttendance      *command.MarkAttendanceHandler
	EnterGrades         *command.EnterGradesHandler
	RunPayroll          *command.RunPayrollHandler
	ProcessFees         *command.ProcessFeesHandler
	GenerateChallans    *command.GenerateChallansHandler
	PromoteClasses      *command.PromoteClassesHandler
	SubmitLeave         *command.SubmitLeaveHandler
	SubmitParentRequest *command.SubmitParentRequestHandler
	ResolveLeave        *command.ResolveLeaveHandler
	ResolveParent       *command.ResolveParentRequestHandler
	GenerateReports     *command.GenerateReportsHandler
	UpdateTeacherLoad   *command.UpdateTeacherLoadHandler
	UpdateStaffSalary   *command.UpdateStaffSalaryHandler
}

// Shell is the interactive console loop.
type Shell struct {
	handlers Handlers
	prompt   *Prompter
	present  *Presenter
	log      *logger.Logger
}

// NewShell creates a shell over the given streams.
func NewShell(handlers Handlers, in io.Reader, out io.Writer, log *logger.Logger) *Shell {
	return &Shell{
		handlers: handlers,
		prompt:   NewPrompter(in, out),
		present:  NewPresenter(out),
		log:      log,
	}
}

var roleChoices = []query.Role{
	query.RoleAdmin,
	query.RoleTeacher,
	query.RoleStudent,
	query.RoleParent,
	query.RolePrincipal,
}

var roleLabels = map[query.Role]string{
	query.RoleAdmin:     "Admin",
	query.RoleTeacher:   "Teacher",
	query.RoleStudent:   "Student",
	query.RoleParent:    "Parent",
	query.RolePrincipal: "Principal",
}

// Run loops on the role menu until exit. An input error (closed stdin) ends
// the loop cleanly.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.present.Println()
		s.present.Println("School Records Hub")
		for i, role := range roleChoices {
			s.present.Printf("%d. %s\n", i+1, roleLabels[role])
		}
		s.present.Println("0. Exit")

		choice, err := s.prompt.Int("Select role")
		if err != nil {
			return nil
		}
		if choice == 0 {
			return nil
		}
		if choice < 1 || choice > len(roleChoices) {
			s.present.Println("No such role.")
			continue
		}
		role := roleChoices[choice-1]

		username, err := s.prompt.Line("Username")
		if err != nil {
			return nil
		}
		actor, err := s.handlers.Login.Handle(ctx, query.LoginQuery{Role: role, Username: username})
		if err != nil {
			s.reportError(err)
			continue
		}

		sessionLog := s.log.With(
			logger.SessionID(uuid.NewString()),
			logger.Role(string(actor.Role)))
		sessionLog.Info("session started")
		if err := s.session(ctx, actor); err != nil {
			return nil
		}
		sessionLog.Info("session ended")
	}
}

// session loops on the role's capability menu until logout.
func (s *Shell) session(ctx context.Context, actor *query.Actor) error {
	menu := menuFor(actor.Role)
	for {
		s.present.Println()
		s.present.Printf("%s menu (%s)\n", roleLabels[actor.Role], actor.Username)
		for i, c := range menu {
			s.present.Printf("%d. %s\n", i+1, c.label)
		}
		s.present.Println("0. Logout")

		choice, err := s.prompt.Int("Select")
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}
		if choice < 1 || choice > len(menu) {
			s.present.Println("No such option.")
			continue
		}

		if err := menu[choice-1].run(s, ctx, actor); err != nil {
			if isInputError(err) {
				return err
			}
			s.reportError(err)
		}
	}
}

// isInputError distinguishes a dead input stream from a domain refusal.
func isInputError(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

func (s *Shell) reportError(err error) {
	switch {
	case shared.IsInvalidSelection(err):
		s.present.Println("Nothing pending at that position.")
	case shared.IsNotFound(err):
		s.present.Printf("Not found: %v\n", err)
	default:
		s.present.Printf("Error: %v\n", err)
		s.log.Error("operation failed", logger.Err(err))
	}
}

// ─── Admin ───────────────────────────────────────────────────────────────────

func (s *Shell) doRegisterStudent(ctx context.Context, _ *query.Actor) error {
	var st records.StudentRecord
	var err error
	if st.ID, err = s.prompt.Line("Student id"); err != nil {
		return err
	}
	if st.Name, err = s.prompt.Line("Name"); err != nil {
		return err
	}
	if st.ClassName, err = s.prompt.Line("Class"); err != nil {
		return err
	}
	if st.RollNo, err = s.prompt.Line("Roll number"); err != nil {
		return err
	}
	if st.ParentContact, err = s.prompt.Line("Parent contact"); err != nil {
		return err
	}
	if err := s.handlers.RegisterStudent.Handle(ctx, command.RegisterStudentCommand{Student: st}); err != nil {
		return err
	}
	s.present.Println("Student registered.")
	return nil
}

func (s *Shell) doRegisterTeacher(ctx context.Context, _ *query.Actor) error {
	var t records.TeacherRecord
	var err error
	if t.ID, err = s.prompt.Line("Teacher id"); err != nil {
		return err
	}
	if t.Name, err = s.prompt.Line("Name"); err != nil {
		return err
	}
	subjects, err := s.prompt.Line("Subjects (comma separated)")
	if err != nil {
		return err
	}
	t.Subjects = records.SplitList(subjects)
	if t.Qualification, err = s.prompt.Line("Qualification"); err != nil {
		return err
	}
	if t.Contact, err = s.prompt.Line("Contact"); err != nil {
		return err
	}
	classes, err := s.prompt.Line("Assigned classes (comma separated)")
	if err != nil {
		return err
	}
	t.AssignedClasses = records.SplitList(classes)
	if t.PeriodsPerWeek, err = s.prompt.Int("Periods per week"); err != nil {
		return err
	}
	if err := s.handlers.RegisterTeacher.Handle(ctx, command.RegisterTeacherCommand{Teacher: t}); err != nil {
		return err
	}
	s.present.Println("Teacher registered.")
	return nil
}

func (s *Shell) doRegisterStaff(ctx context.Context, _ *query.Actor) error {
	var st records.StaffRecord
	var err error
	if st.ID, err = s.prompt.Line("Staff id"); err != nil {
		return err
	}
	if st.Name, err = s.prompt.Line("Name"); err != nil {
		return err
	}
	if st.Role, err = s.prompt.Line("Role"); err != nil {
		return err
	}
	if st.Contact, err = s.prompt.Line("Contact"); err != nil {
		return err
	}
	salary, err := s.prompt.Decimal("Monthly salary")
	if err != nil {
		return err
	}
	st.Salary = salary.String()
	if err := s.handlers.RegisterStaff.Handle(ctx, command.RegisterStaffCommand{Staff: st}); err != nil {
		return err
	}
	s.present.Println("Staff member registered.")
	return nil
}

func (s *Shell) doViewStudents(ctx context.Context, _ *query.Actor) error {
	students, err := s.handlers.ListRecords.Students(ctx)
	if err != nil {
		return err
	}
	s.present.Students(students)
	return nil
}

func (s *Shell) doViewTeachers(ctx context.Context, _ *query.Actor) error {
	teachers, err := s.handlers.ListRecords.Teachers(ctx)
	if err != nil {
		return err
	}
	s.present.Teachers(teachers)
	return nil
}

func (s *Shell) doViewStaff(ctx context.Context, _ *query.Actor) error {
	staff, err := s.handlers.ListRecords.Staff(ctx)
	if err != nil {
		return err
	}
	s.present.Staff(staff)
	return nil
}

func (s *Shell) doProcessFees(ctx context.Context, _ *query.Actor) error {
	result, err := s.handlers.ProcessFees.Handle(ctx, command.ProcessFeesCommand{})
	if err != nil {
		return err
	}
	s.present.Printf("Settled %d student(s); %d already settled.\n",
		result.Settled, result.AlreadySettled)
	return nil
}

func (s *Shell) doGenerateChallans(ctx context.Context, _ *query.Actor) error {
	month, err := s.prompt.Line("Month (MM-YYYY, blank for current)")
	if err != nil {
		return err
	}
	amount, err := s.prompt.Decimal("Challan amount")
	if err != nil {
		return err
	}
	result, err := s.handlers.GenerateChallans.Handle(ctx, command.GenerateChallansCommand{
		MonthYear: month,
		Amount:    amount,
	})
	if err != nil {
		return err
	}
	s.present.Printf("Issued %d challan(s).\n", result.Issued)
	return nil
}

func (s *Shell) doRunTeacherPayroll(ctx context.Context, _ *query.Actor) error {
	return s.runPayroll(ctx, payroll.Teachers)
}

func (s *Shell) doRunStaffPayroll(ctx context.Context, _ *query.Actor) error {
	return s.runPayroll(ctx, payroll.Staff)
}

func (s *Shell) runPayroll(ctx context.Context, group payroll.Group) error {
	result, err := s.handlers.RunPayroll.Handle(ctx, command.RunPayrollCommand{Group: group})
	if err != nil {
		return err
	}
	s.present.PayrollRun(result.Paid, result.AlreadyProcessed, result.SkippedMalformed)
	return nil
}

func (s *Shell) doPromoteClasses(ctx context.Context, _ *query.Actor) error {
	confirmed, err := s.prompt.YesNo("Promote every class by one grade?")
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}
	result, err := s.handlers.PromoteClasses.Handle(ctx, command.PromoteClassesCommand{})
	if err != nil {
		return err
	}
	s.present.Printf("Promoted %d student(s); %d unchanged.\n",
		result.Promoted, result.Unchanged)
	return nil
}

// ─── Teacher ─────────────────────────────────────────────────────────────────

func (s *Shell) workingClass(actor *query.Actor) (string, error) {
	class, err := s.prompt.Line("Class (blank for " + actor.ActiveClass + ")")
	if err != nil {
		return "", err
	}
	if class == "" {
		class = actor.ActiveClass
	}
	return class, nil
}

func (s *Shell) doMyTimetable(ctx context.Context, actor *query.Actor) error {
	rows, err := s.handlers.Timetable.ForTeacher(ctx, actor.Teacher.ID)
	if err != nil {
		return err
	}
	s.present.Timetable(rows)
	return nil
}

func (s *Shell) doMarkAttendance(ctx context.Context, actor *query.Actor) error {
	class, err := s.workingClass(actor)
	if err != nil {
		return err
	}
	date, err := s.prompt.Line("Date (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	students, err := s.handlers.ListRecords.StudentsOfClass(ctx, class)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		s.present.Println("No students in " + class + ".")
		return nil
	}

	var marks []command.StudentMark
	for _, st := range students {
		present, err := s.prompt.YesNo("Present: " + st.Name + " (" + st.ID + ")")
		if err != nil {
			return err
		}
		marks = append(marks, command.StudentMark{StudentID: st.ID, Present: present})
	}

	result, err := s.handlers.MarkAttendance.Handle(ctx, command.MarkAttendanceCommand{
		TeacherID: actor.Teacher.ID,
		ClassName: class,
		Date:      date,
		Marks:     marks,
	})
	if err != nil {
		return err
	}
	s.present.Printf("Marked %d student(s).\n", result.Marked)
	return nil
}

func (s *Shell) doEnterGrades(ctx context.Context, actor *query.Actor) error {
	class, err := s.workingClass(actor)
	if err != nil {
		return err
	}
	typ, err := s.prompt.Line("Assignment type (quiz/midterm/final)")
	if err != nil {
		return err
	}
	students, err := s.handlers.ListRecords.StudentsOfClass(ctx, class)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		s.present.Println("No students in " + class + ".")
		return nil
	}

	var grades []command.StudentGrade
	for _, st := range students {
		grade, err := s.prompt.Int("Grade for " + st.Name + " (0-100)")
		if err != nil {
			return err
		}
		grades = append(grades, command.StudentGrade{StudentID: st.ID, Grade: grade})
	}

	result, err := s.handlers.EnterGrades.Handle(ctx, command.EnterGradesCommand{
		TeacherID: actor.Teacher.ID,
		ClassName: class,
		Type:      grading.AssignmentType(typ),
		Grades:    grades,
	})
	if err != nil {
		return err
	}
	s.present.Printf("Recorded %d grade(s); skipped %d out of range.\n",
		result.Recorded, result.Skipped)
	return nil
}

func (s *Shell) doGenerateReports(ctx context.Context, actor *query.Actor) error {
	class, err := s.workingClass(actor)
	if err != nil {
		return err
	}
	term, err := s.prompt.Line("Term")
	if err != nil {
		return err
	}
	comments, err := s.prompt.Line("Comments")
	if err != nil {
		return err
	}
	result, err := s.handlers.GenerateReports.Handle(ctx, command.GenerateReportsCommand{
		TeacherID: actor.Teacher.ID,
		ClassName: class,
		Term:      term,
		Comments:  comments,
	})
	if err != nil {
		return err
	}
	s.present.Printf("Generated %d report(s).\n", result.Generated)
	return nil
}

func (s *Shell) doApplyLeave(ctx context.Context, actor *query.Actor) error {
	start, err := s.prompt.Line("From (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	end, err := s.prompt.Line("To (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	reason, err := s.prompt.Line("Reason")
	if err != nil {
		return err
	}
	_, err = s.handlers.SubmitLeave.Handle(ctx, command.SubmitLeaveCommand{
		OwnerID:   actor.Teacher.ID,
		OwnerName: actor.Teacher.Name,
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
	})
	if err != nil {
		return err
	}
	s.present.Println("Leave request submitted.")
	return nil
}

func (s *Shell) doMyLeaves(ctx context.Context, actor *query.Actor) error {
	history, err := s.handlers.LeaveHistory.Handle(ctx, actor.Teacher.ID)
	if err != nil {
		return err
	}
	s.present.LeaveHistory(history)
	return nil
}

// ─── Student ─────────────────────────────────────────────────────────────────

func (s *Shell) doMyGrades(ctx context.Context, actor *query.Actor) error {
	subjects, err := s.handlers.StudentGrades.Handle(ctx, actor.Student.ID)
	if err != nil {
		return err
	}
	s.present.SubjectReports(subjects)
	return nil
}

func (s *Shell) doMyAttendance(ctx context.Context, actor *query.Actor) error {
	view, err := s.handlers.Attendance.Handle(ctx, actor.Student.ID)
	if err != nil {
		return err
	}
	s.present.Attendance(view)
	return nil
}

func (s *Shell) doClassTimetable(ctx context.Context, actor *query.Actor) error {
	rows, err := s.handlers.Timetable.ForClass(ctx, actor.Student.ClassName)
	if err != nil {
		return err
	}
	s.present.Timetable(rows)
	return nil
}

func (s *Shell) doAssignmentsDue(ctx context.Context, actor *query.Actor) error {
	assignments, err := s.handlers.Assignments.Handle(ctx, actor.Student.ClassName)
	if err != nil {
		return err
	}
	s.present.Assignments(assignments)
	return nil
}

// ─── Parent ──────────────────────────────────────────────────────────────────

// chooseChild picks one of the parent's children, skipping the prompt when
// there is only one.
func (s *Shell) chooseChild(actor *query.Actor) (records.StudentRecord, bool, error) {
	if len(actor.Children) == 1 {
		return actor.Children[0], true, nil
	}
	for i, c := range actor.Children {
		s.present.Printf("%d. %s (%s), class %s\n", i+1, c.Name, c.ID, c.ClassName)
	}
	choice, err := s.prompt.Int("Select child (0 to cancel)")
	if err != nil {
		return records.StudentRecord{}, false, err
	}
	if choice < 1 || choice > len(actor.Children) {
		return records.StudentRecord{}, false, nil
	}
	return actor.Children[choice-1], true, nil
}

func (s *Shell) doChildProgress(ctx context.Context, actor *query.Actor) error {
	child, ok, err := s.chooseChild(actor)
	if err != nil || !ok {
		return err
	}
	progress, err := s.handlers.ChildProgress.Handle(ctx, child.ID)
	if err != nil {
		return err
	}
	s.present.ChildProgress(progress)
	return nil
}

func (s *Shell) doChildAttendance(ctx context.Context, actor *query.Actor) error {
	child, ok, err := s.chooseChild(actor)
	if err != nil || !ok {
		return err
	}
	view, err := s.handlers.Attendance.Handle(ctx, child.ID)
	if err != nil {
		return err
	}
	s.present.Attendance(view)
	return nil
}

func (s *Shell) doChildFees(ctx context.Context, actor *query.Actor) error {
	child, ok, err := s.chooseChild(actor)
	if err != nil || !ok {
		return err
	}
	view, err := s.handlers.FeeStatus.Handle(ctx, child.ID)
	if err != nil {
		return err
	}
	s.present.FeeView(view)
	return nil
}

func (s *Shell) doSubmitParentRequest(ctx context.Context, actor *query.Actor) error {
	child, ok, err := s.chooseChild(actor)
	if err != nil || !ok {
		return err
	}
	reqType, err := s.prompt.Line("Request type")
	if err != nil {
		return err
	}
	note, err := s.prompt.Line("Note")
	if err != nil {
		return err
	}
	_, err = s.handlers.SubmitParentRequest.Handle(ctx, command.SubmitParentRequestCommand{
		ParentUsername: actor.Username,
		ChildID:        child.ID,
		RequestType:    reqType,
		Note:           note,
	})
	if err != nil {
		return err
	}
	s.present.Println("Request submitted.")
	return nil
}

func (s *Shell) doMyParentRequests(ctx context.Context, actor *query.Actor) error {
	history, err := s.handlers.ParentHistory.Handle(ctx, actor.Username)
	if err != nil {
		return err
	}
	s.present.ParentHistory(history)
	return nil
}

// ─── Principal ───────────────────────────────────────────────────────────────

func (s *Shell) doPendingLeaves(ctx context.Context, _ *query.Actor) error {
	pending, err := s.handlers.PendingLeaves.Handle(ctx)
	if err != nil {
		return err
	}
	s.present.PendingLeaves(pending)
	return nil
}

func (s *Shell) doResolveLeave(ctx context.Context, _ *query.Actor) error {
	pending, err := s.handlers.PendingLeaves.Handle(ctx)
	if err != nil {
		return err
	}
	s.present.PendingLeaves(pending)
	if len(pending) == 0 {
		return nil
	}

	selection, err := s.prompt.Int("Select request (0 to cancel)")
	if err != nil {
		return err
	}
	action, err := s.chooseAction(selection)
	if err != nil || action == nil {
		return err
	}

	result, err := s.handlers.ResolveLeave.Handle(ctx, command.ResolveLeaveCommand{
		Selection: selection,
		Action:    *action,
	})
	if err != nil {
		return err
	}
	if result.Cancelled {
		return nil
	}
	s.present.Printf("Request %s. %d still pending.\n",
		result.Resolved.Status, result.RemainingPending)
	return nil
}

func (s *Shell) doPendingParents(ctx context.Context, _ *query.Actor) error {
	pending, err := s.handlers.PendingParents.Handle(ctx)
	if err != nil {
		return err
	}
	s.present.PendingParents(pending)
	return nil
}

func (s *Shell) doResolveParent(ctx context.Context, _ *query.Actor) error {
	pending, err := s.handlers.PendingParents.Handle(ctx)
	if err != nil {
		return err
	}
	s.present.PendingParents(pending)
	if len(pending) == 0 {
		return nil
	}

	selection, err := s.prompt.Int("Select request (0 to cancel)")
	if err != nil {
		return err
	}
	action, err := s.chooseAction(selection)
	if err != nil || action == nil {
		return err
	}

	result, err := s.handlers.ResolveParent.Handle(ctx, command.ResolveParentRequestCommand{
		Selection: selection,
		Action:    *action,
	})
	if err != nil {
		return err
	}
	if result.Cancelled {
		return nil
	}
	s.present.Printf("Request %s. %d still pending.\n",
		result.Resolved.Status, result.RemainingPending)
	return nil
}

// chooseAction asks approve or reject. A cancelling selection skips the
// question; the command ignores the action when the selection cancels.
func (s *Shell) chooseAction(selection int) (*request.Action, error) {
	if selection == request.CancelSelection {
		cancel := request.Approve
		return &cancel, nil
	}
	approve, err := s.prompt.YesNo("Approve")
	if err != nil {
		return nil, err
	}
	action := request.Reject
	if approve {
		action = request.Approve
	}
	return &action, nil
}

func (s *Shell) doTeacherSalaries(ctx context.Context, _ *query.Actor) error {
	pay, err := s.handlers.Salaries.Teachers(ctx)
	if err != nil {
		return err
	}
	s.present.TeacherPay(pay)
	return nil
}

func (s *Shell) doStaffSalaries(ctx context.Context, _ *query.Actor) error {
	pay, err := s.handlers.Salaries.Staff(ctx)
	if err != nil {
		return err
	}
	s.present.StaffPay(pay)
	return nil
}

func (s *Shell) doUpdateTeacherLoad(ctx context.Context, _ *query.Actor) error {
	id, err := s.prompt.Line("Teacher id")
	if err != nil {
		return err
	}
	periods, err := s.prompt.Int("Periods per week")
	if err != nil {
		return err
	}
	if err := s.handlers.UpdateTeacherLoad.Handle(ctx, command.UpdateTeacherLoadCommand{
		TeacherID:      id,
		PeriodsPerWeek: periods,
	}); err != nil {
		return err
	}
	s.present.Println("Load updated.")
	return nil
}

func (s *Shell) doUpdateStaffSalary(ctx context.Context, _ *query.Actor) error {
	id, err := s.prompt.Line("Staff id")
	if err != nil {
		return err
	}
	salary, err := s.prompt.Decimal("New salary")
	if err != nil {
		return err
	}
	if err := s.handlers.UpdateStaffSalary.Handle(ctx, command.UpdateStaffSalaryCommand{
		StaffID: id,
		Salary:  salary,
	}); err != nil {
		return err
	}
	s.present.Println("Salary updated.")
	return nil
}

func (s *Shell) doBrowseReports(ctx context.Context, _ *query.Actor) error {
	name, err := s.prompt.Line("Student name (or 'all')")
	if err != nil {
		return err
	}
	var blocks []query.ReportBlock
	if name == "all" || name == "" {
		blocks, err = s.handlers.TermReports.All(ctx)
	} else {
		blocks, err = s.handlers.TermReports.ForStudent(ctx, name)
	}
	if err != nil {
		return err
	}
	s.present.ReportBlocks(blocks)
	return nil
}
