package domain

import "time"

type Role string

const (
	RoleVolunteer     Role = "volunteer"
	RoleCoordinator   Role = "coordinator"
	RoleAdministrator Role = "administrator"
)

type Action string

const (
	ActionViewZones         Action = "zones.view"
	ActionViewZoneDetails   Action = "zones.view_details"
	ActionUpdateZone        Action = "zones.update"
	ActionManageZones       Action = "zones.manage"
	ActionManageCoordinator Action = "coordinators.manage"
	ActionViewStats         Action = "stats.view"
	ActionMaintenance       Action = "maintenance.run"
)

var rolePermissions = map[Role][]Action{
	RoleVolunteer: {ActionViewZones},
	RoleCoordinator: {
		ActionViewZones, ActionViewZoneDetails, ActionUpdateZone,
	},
	RoleAdministrator: {
		ActionViewZones, ActionViewZoneDetails, ActionManageZones,
		ActionManageCoordinator, ActionViewStats, ActionMaintenance,
	},
}

// Session is the caller identity handed explicitly to every operation.
type Session struct {
	Token     string    `json:"token"`
	Role      Role      `json:"role"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Anonymous is the session of an unauthenticated volunteer.
func Anonymous() Session {
	return Session{Role: RoleVolunteer}
}

func (s Session) Can(a Action) bool {
	for _, allowed := range rolePermissions[s.Role] {
		if allowed == a {
			return true
		}
	}
	return false
}

func (s Session) Actor() string {
	if s.Username == "" {
		return string(s.Role)
	}
	return s.Username
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
