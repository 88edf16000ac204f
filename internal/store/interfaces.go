package store

import (
	"context"

	"github.com/teamgrid/richinfo-server/models"
)

// UserRepository manages user account persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TeamRepository manages team and membership persistence. The membership
// predicates back the rich-info access gate.
type TeamRepository interface {
	CreateTeam(ctx context.Context, team models.Team, ownerID int64) (models.Team, error)
	AddMember(ctx context.Context, membership models.TeamMembership) error
	GetMemberRole(ctx context.Context, teamID, userID int64) (models.TeamRole, error)

	// UserHasTeam reports whether the user belongs to at least one team.
	UserHasTeam(ctx context.Context, userID int64) (bool, error)

	// UsersShareTeam reports whether both users are members of at least one
	// common team.
	UsersShareTeam(ctx context.Context, userID, otherUserID int64) (bool, error)
}

// RichInfoRepository persists per-user ordered rich profile fields.
type RichInfoRepository interface {
	// GetRichInfo returns the stored field set in its submission order.
	// A user never written to yields an empty, non-nil slice.
	GetRichInfo(ctx context.Context, userID int64) ([]models.RichField, error)

	// ReplaceRichInfo atomically replaces the user's whole field set with
	// the given one. Passing an empty set clears the stored fields.
	ReplaceRichInfo(ctx context.Context, userID int64, fields []models.RichField) error
}
