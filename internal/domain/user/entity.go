package user

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access
	RoleHR       Role = "hr"       // Roster management plus everything a manager can do
	RoleManager  Role = "manager"  // Can view all attendance/leave and approve requests
	RoleEmployee Role = "employee" // Regular employee, own data only
)

// ParseRole maps a claim string onto the closed role set. Unknown values
// degrade to the employee role rather than erroring, so a stale token never
// grants elevated access.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return Role(s)
	default:
		return RoleEmployee
	}
}

// IsElevated reports whether the role can see data across employees.
func (r Role) IsElevated() bool {
	return r == RoleAdmin || r == RoleHR || r == RoleManager
}
