package rbac

import "go-fieldtrack/internal/domain"

const (
	ResourceCheckin   = "checkin"
	ResourceClient    = "client"
	ResourceDashboard = "dashboard"
	ResourceReport    = "report"

	ActionRead     = "read"
	ActionWrite    = "write"
	ActionReadSelf = "read_self"
	ActionReadTeam = "read_team"
)

type Policy struct {
	Role     domain.Role
	Resource string
	Action   string
}

// DefaultPolicies is the static permission table for the two built-in roles.
// Check-in admission repeats the employee-only rule itself.
func DefaultPolicies() []Policy {
	return []Policy{
		{domain.RoleEmployee, ResourceCheckin, ActionWrite},
		{domain.RoleEmployee, ResourceCheckin, ActionRead},
		{domain.RoleEmployee, ResourceClient, ActionRead},
		{domain.RoleEmployee, ResourceDashboard, ActionReadSelf},

		{domain.RoleManager, ResourceCheckin, ActionRead},
		{domain.RoleManager, ResourceDashboard, ActionReadSelf},
		{domain.RoleManager, ResourceDashboard, ActionReadTeam},
		{domain.RoleManager, ResourceReport, ActionRead},
	}
}
