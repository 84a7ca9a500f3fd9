// Package main is the console entry point: it loads configuration,
// bootstraps the data files and runs the role shell until exit.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/schoolhub/school-records-hub/config"
	"github.com/schoolhub/school-records-hub/internal/application/command"
	"github.com/schoolhub/school-records-hub/internal/application/query"
	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/infrastructure/persistence/flatfile"
	"github.com/schoolhub/school-records-hub/internal/interface/cli"
	"github.com/schoolhub/school-records-hub/pkg/logger"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Output: os.Stderr,
		Level:  logger.ParseLevel(cfg.Observability.LogLevel),
	})
	log.Info("starting",
		logger.String("app", cfg.App.Name),
		logger.String("version", cfg.App.Version),
		logger.String("env", string(cfg.App.Environment)),
		logger.FilePath(cfg.Storage.DataDir))

	st := cfg.Storage
	if err := flatfile.Bootstrap(st.DataDir, []flatfile.BootstrapFile{
		{Path: st.Path(st.StudentsFile), HeaderTag: ledger.TagStudentRecord},
		{Path: st.Path(st.TeachersFile), HeaderTag: ledger.TagTeacherRecord},
		{Path: st.Path(st.StaffFile), HeaderTag: ledger.TagStaffRecord},
		{Path: st.Path(st.TimetableFile), HeaderTag: ledger.TagTimetable},
		{Path: st.Path(st.AttendanceFile), HeaderTag: ledger.TagAttendance},
		{Path: st.Path(st.TermReportsFile), HeaderTag: ledger.TagTermReports},
		{Path: st.Path(st.AssignmentsFile), HeaderTag: ledger.TagAssignments},
		{Path: st.Path(st.FeesLedgerFile), HeaderTag: ledger.TagFeesLedger},
		{Path: st.Path(st.LeaveRequestsFile), HeaderTag: ledger.TagLeaveRequests},
		{Path: st.Path(st.ParentRequestsFile), HeaderTag: ledger.TagParentRequests},
		{Path: st.Path(st.FeeChallansFile), HeaderTag: ledger.TagFeeChallans},
		{Path: st.Path(st.SalaryPaymentsFile), HeaderTag: ledger.TagStaffSalaries},
		{Path: st.Path(st.GradesFile), HeaderTag: ledger.TagGrades},
	}, log); err != nil {
		return err
	}

	// Entity stores.
	students := flatfile.NewStudentStore(st.Path(st.StudentsFile), log)
	teachers := flatfile.NewTeacherStore(st.Path(st.TeachersFile), log)
	staff := flatfile.NewStaffStore(st.Path(st.StaffFile), log)

	// Append-only ledgers and read-only files.
	attendanceLog := flatfile.NewLedger(st.Path(st.AttendanceFile))
	gradesLog := flatfile.NewLedger(st.Path(st.GradesFile))
	reportsLog := flatfile.NewLedger(st.Path(st.TermReportsFile))
	paymentsLog := flatfile.NewLedger(st.Path(st.SalaryPaymentsFile))
	challansLog := flatfile.NewLedger(st.Path(st.FeeChallansFile))
	feesLog := flatfile.NewLedger(st.Path(st.FeesLedgerFile))
	leavesLog := flatfile.NewLedger(st.Path(st.LeaveRequestsFile))
	parentsLog := flatfile.NewLedger(st.Path(st.ParentRequestsFile))
	timetableLog := flatfile.NewLedger(st.Path(st.TimetableFile))
	assignmentsLog := flatfile.NewLedger(st.Path(st.AssignmentsFile))

	handlers := cli.Handlers{
		Login:          query.NewLoginHandler(students, teachers, log),
		ListRecords:    query.NewListRecordsHandler(students, teachers, staff),
		PendingLeaves:  query.NewGetPendingLeavesHandler(leavesLog),
		PendingParents: query.NewGetPendingParentsHandler(parentsLog),
		LeaveHistory:   query.NewGetLeaveHistoryHandler(leavesLog),
		ParentHistory:  query.NewGetParentRequestHistoryHandler(parentsLog),
		StudentGrades:  query.NewGetStudentGradesHandler(gradesLog),
		Attendance:     query.NewGetAttendanceHandler(attendanceLog),
		ChildProgress:  query.NewGetChildProgressHandler(students, gradesLog, attendanceLog),
		FeeStatus:      query.NewGetFeeStatusHandler(students, feesLog, challansLog),
		Timetable:      query.NewGetTimetableHandler(timetableLog),
		Assignments:    query.NewGetAssignmentsHandler(assignmentsLog),
		TermReports:    query.NewGetTermReportsHandler(reportsLog),
		Salaries:       query.NewGetSalariesHandler(teachers, staff),

		RegisterStudent:     command.NewRegisterStudentHandler(students, log),
		RegisterTeacher:     command.NewRegisterTeacherHandler(teachers, log),
		RegisterStaff:       command.NewRegisterStaffHandler(staff, log),
		MarkAttendance:      command.NewMarkAttendanceHandler(teachers, attendanceLog, log),
		EnterGrades:         command.NewEnterGradesHandler(teachers, gradesLog, log),
		RunPayroll:          command.NewRunPayrollHandler(teachers, staff, paymentsLog, log),
		ProcessFees:         command.NewProcessFeesHandler(students, log),
		GenerateChallans:    command.NewGenerateChallansHandler(students, challansLog, log),
		PromoteClasses:      command.NewPromoteClassesHandler(students, log),
		SubmitLeave:         command.NewSubmitLeaveHandler(leavesLog, log),
		SubmitParentRequest: command.NewSubmitParentRequestHandler(students, parentsLog, log),
		ResolveLeave:        command.NewResolveLeaveHandler(leavesLog, teachers, staff, log),
		ResolveParent:       command.NewResolveParentRequestHandler(parentsLog, log),
		GenerateReports:     command.NewGenerateReportsHandler(teachers, students, gradesLog, attendanceLog, reportsLog, log),
		UpdateTeacherLoad:   command.NewUpdateTeacherLoadHandler(teachers, log),
		UpdateStaffSalary:   command.NewUpdateStaffSalaryHandler(staff, log),
	}

	shell := cli.NewShell(handlers, os.Stdin, os.Stdout, log)
	if err := shell.Run(ctx); err != nil {
		return err
	}

	log.Info("shutdown complete")
	return nil
}
