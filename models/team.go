package models

import "time"

// TeamRole is the permission level a user holds inside a team.
type TeamRole string

const (
	// TeamRoleOwner marks the member who created the team. Owners may add
	// new members.
	TeamRoleOwner TeamRole = "owner"

	// TeamRoleMember is a plain member with no administrative permissions.
	TeamRoleMember TeamRole = "member"
)

// Team is a named group of users with shared resources.
type Team struct {
	// TeamID is the internal unique identifier of the team.
	TeamID int64 `json:"team_id,omitempty"`

	// Name is the unique display name of the team.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the team was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the Team model.
func (t Team) TableName() string {
	return "teams"
}

// TeamMembership links a user to a team with a role. Visibility decisions
// depend only on the fact of membership, never on the role.
type TeamMembership struct {
	TeamID int64    `json:"team_id"`
	UserID int64    `json:"user_id"`
	Role   TeamRole `json:"role"`

	// CreatedAt is the timestamp when the membership was granted.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the TeamMembership model.
func (m TeamMembership) TableName() string {
	return "team_members"
}
