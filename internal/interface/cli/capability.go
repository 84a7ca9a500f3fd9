package cli

import (
	"context"

	"github.com/schoolhub/school-records-hub/internal/application/query"
)

// The shell resolves the role once at login and works off a fixed capability
// table from then on. Adding a role means adding a table, nothing downstream
// inspects the actor's type again.

// capability is one menu entry of a role. The run field holds a Shell
// method expression.
type capability struct {
	label string
	run   func(s *Shell, ctx context.Context, actor *query.Actor) error
}

// menuFor returns the role's capability table.
func menuFor(role query.Role) []capability {
	switch role {
	case query.RoleAdmin:
		return adminMenu
	case query.RoleTeacher:
		return teacherMenu
	case query.RoleStudent:
		return studentMenu
	case query.RoleParent:
		return parentMenu
	case query.RolePrincipal:
		return principalMenu
	default:
		return nil
	}
}

var adminMenu = []capability{
	{"Register student", (*Shell).doRegisterStudent},
	{"Register teacher", (*Shell).doRegisterTeacher},
	{"Register staff member", (*Shell).doRegisterStaff},
	{"View students", (*Shell).doViewStudents},
	{"View teachers", (*Shell).doViewTeachers},
	{"View staff", (*Shell).doViewStaff},
	{"Process fee payments", (*Shell).doProcessFees},
	{"Generate fee challans", (*Shell).doGenerateChallans},
	{"Run teacher payroll", (*Shell).doRunTeacherPayroll},
	{"Run staff payroll", (*Shell).doRunStaffPayroll},
	{"Promote classes", (*Shell).doPromoteClasses},
}

var teacherMenu = []capability{
	{"My timetable", (*Shell).doMyTimetable},
	{"Mark attendance", (*Shell).doMarkAttendance},
	{"Enter grades", (*Shell).doEnterGrades},
	{"Generate term reports", (*Shell).doGenerateReports},
	{"Apply for leave", (*Shell).doApplyLeave},
	{"My leave requests", (*Shell).doMyLeaves},
}

var studentMenu = []capability{
	{"My grades", (*Shell).doMyGrades},
	{"My attendance", (*Shell).doMyAttendance},
	{"Class timetable", (*Shell).doClassTimetable},
	{"Assignments due", (*Shell).doAssignmentsDue},
}

var parentMenu = []capability{
	{"Child progress report", (*Shell).doChildProgress},
	{"Child attendance", (*Shell).doChildAttendance},
	{"Child fee status", (*Shell).doChildFees},
	{"Submit a request", (*Shell).doSubmitParentRequest},
	{"My requests", (*Shell).doMyParentRequests},
}

var principalMenu = []capability{
	{"Pending leave requests", (*Shell).doPendingLeaves},
	{"Resolve a leave request", (*Shell).doResolveLeave},
	{"Pending parent requests", (*Shell).doPendingParents},
	{"Resolve a parent request", (*Shell).doResolveParent},
	{"Teacher salaries", (*Shell).doTeacherSalaries},
	{"Staff salaries", (*Shell).doStaffSalaries},
	{"Update teacher load", (*Shell).doUpdateTeacherLoad},
	{"Update staff salary", (*Shell).doUpdateStaffSalary},
	{"Browse term reports", (*Shell).doBrowseReports},
}
