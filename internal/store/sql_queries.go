// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Teamgrid Authors

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/teamgrid/richinfo-server/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, name, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createTeam = `INSERT INTO teams (name)
    VALUES ($1)
    RETURNING team_id, name, created_at;`

	addTeamMember = `INSERT INTO team_members (team_id, user_id, role)
    VALUES ($1, $2, $3);`

	getMemberRole = `SELECT role
    FROM team_members
    WHERE team_id = $1 AND user_id = $2;`
)

// buildSelectRichInfoQuery returns the SELECT retrieving one user's rich
// fields in their submission order.
func buildSelectRichInfoQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Select("name", "value").
		From(models.RichInfo{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteRichInfoQuery returns the DELETE clearing all of one user's
// rich fields. Runs as the first half of replace-on-write.
func buildDeleteRichInfoQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Delete(models.RichInfo{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertRichInfoQuery returns a multi-row INSERT of the given fields,
// assigning each row its zero-based position so reads preserve the
// submitted order.
func buildInsertRichInfoQuery(userID int64, fields []models.RichField) (string, []any, error) {
	builder := psql.
		Insert(models.RichInfo{}.TableName()).
		Columns("user_id", "position", "name", "value")

	for i, field := range fields {
		builder = builder.Values(userID, i, field.Name, field.Value)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUserHasTeamQuery returns the EXISTS probe deciding whether the user
// belongs to any team at all.
func buildUserHasTeamQuery(userID int64) (string, []any, error) {
	inner := psql.
		Select("1").
		From(models.TeamMembership{}.TableName()).
		Where(sq.Eq{"user_id": userID})

	query, args, err := existsQuery(inner)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUsersShareTeamQuery returns the EXISTS probe deciding whether two
// users are members of at least one common team. This single predicate
// backs the whole visibility rule of the access gate.
func buildUsersShareTeamQuery(userID, otherUserID int64) (string, []any, error) {
	members := models.TeamMembership{}.TableName()

	inner := psql.
		Select("1").
		From(members + " AS a").
		Join(members + " AS b ON a.team_id = b.team_id").
		Where(sq.Eq{"a.user_id": userID, "b.user_id": otherUserID})

	query, args, err := existsQuery(inner)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// existsQuery wraps an inner SELECT into a `SELECT EXISTS (...)` returning
// a single boolean column.
func existsQuery(inner sq.SelectBuilder) (string, []any, error) {
	innerSQL, args, err := inner.ToSql()
	if err != nil {
		return "", nil, err
	}

	return fmt.Sprintf("SELECT EXISTS (%s)", innerSQL), args, nil
}
