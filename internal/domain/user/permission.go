package user

type Permission string

const (
	// Attendance
	PermissionAttendanceCreate     Permission = "attendance.create"
	PermissionAttendanceViewOwn    Permission = "attendance.view_own"
	PermissionAttendanceViewAll    Permission = "attendance.view_all"
	PermissionAttendanceMarkOthers Permission = "attendance.mark_others"

	// Leave
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Roster
	PermissionEmployeeViewAll Permission = "employee.view_all"

	// Reporting
	PermissionReportsView   Permission = "reports.view"
	PermissionDashboardView Permission = "dashboard.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceCreate,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceMarkOthers,
		PermissionLeaveCreate,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionEmployeeViewAll,
		PermissionReportsView,
		PermissionDashboardView,
	},
	RoleHR: {
		PermissionAttendanceCreate,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceMarkOthers,
		PermissionLeaveCreate,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionEmployeeViewAll,
		PermissionReportsView,
		PermissionDashboardView,
	},
	RoleManager: {
		PermissionAttendanceCreate,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionLeaveCreate,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionEmployeeViewAll,
		PermissionReportsView,
		PermissionDashboardView,
	},
	RoleEmployee: {
		PermissionAttendanceCreate,
		PermissionAttendanceViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
