package service

import (
	"context"

	"github.com/teamgrid/richinfo-server/models"
)

// RichInfoService manages per-user rich profile fields.
type RichInfoService interface {
	// SetRichInfo validates and stores the user's whole field set,
	// replacing whatever was stored before.
	SetRichInfo(ctx context.Context, userID int64, fields []models.RichField) error

	// GetRichInfo returns the target user's field set, provided the caller
	// passes the access gate.
	GetRichInfo(ctx context.Context, callerID, targetID int64) (models.RichInfo, error)
}

// AccessGateService decides whether one user may see another user's rich
// info. All denials are indistinguishable from the caller's point of view.
type AccessGateService interface {
	Authorize(ctx context.Context, callerID, targetID int64) error
}

type TeamService interface {
	CreateTeam(ctx context.Context, team models.Team, ownerID int64) (models.Team, error)
	AddMember(ctx context.Context, callerID int64, membership models.TeamMembership) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
