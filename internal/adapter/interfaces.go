// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Teamgrid Authors

// Package adapter provides transport-layer abstractions for communicating
// with the rich-info server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/teamgrid/richinfo-server/models"
)

// ServerAdapter defines transport-agnostic communication with the rich-info
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the provided credentials.
	// On success it stores the returned bearer token via SetToken and
	// returns the server-side user record.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user. On success it stores the returned
	// bearer token via SetToken and returns the server-side user record.
	Login(ctx context.Context, user models.User) (models.User, error)

	// GetRichInfo fetches the rich info fields of the given user. Returns
	// [ErrForbidden] (wrapped) when the server denies access.
	GetRichInfo(ctx context.Context, userID int64) (models.RichInfo, error)

	// SetRichInfo replaces the authenticated user's whole rich info field
	// set on the server.
	SetRichInfo(ctx context.Context, fields []models.RichField) error

	// CreateTeam creates a new team owned by the authenticated user.
	CreateTeam(ctx context.Context, team models.Team) (models.Team, error)

	// AddTeamMember adds a user to a team the authenticated user owns.
	AddTeamMember(ctx context.Context, teamID, userID int64) error

	// GetServerVersion fetches the server's version string. Works without
	// authentication.
	GetServerVersion(ctx context.Context) (string, error)
}
