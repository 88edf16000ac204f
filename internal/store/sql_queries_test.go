// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Teamgrid Authors

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/teamgrid/richinfo-server/models"
)

func Test_buildSelectRichInfoQuery_SQLContainsParts(t *testing.T) {
	userID := int64(42)

	query, args, err := buildSelectRichInfoQuery(userID)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, userID, args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from rich_info_fields")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "order by position asc")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// columns presence
	require.Contains(t, q, "name")
	require.Contains(t, q, "value")
}

func Test_buildDeleteRichInfoQuery(t *testing.T) {
	query, args, err := buildDeleteRichInfoQuery(42)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(42), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from rich_info_fields")
	require.Contains(t, q, "user_id")
	require.Contains(t, query, "$1")
}

func Test_buildInsertRichInfoQuery(t *testing.T) {
	fields := []models.RichField{
		{Name: "title", Value: "lead"},
		{Name: "department", Value: "design"},
	}

	query, args, err := buildInsertRichInfoQuery(42, fields)
	require.NoError(t, err)

	// four columns per row, two rows
	require.Len(t, args, 8)
	require.Equal(t, int64(42), args[0])
	require.Equal(t, 0, args[1])
	require.Equal(t, "title", args[2])
	require.Equal(t, "lead", args[3])
	require.Equal(t, int64(42), args[4])
	require.Equal(t, 1, args[5])
	require.Equal(t, "department", args[6])
	require.Equal(t, "design", args[7])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into rich_info_fields")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "position")
	require.Contains(t, q, "name")
	require.Contains(t, q, "value")
	require.Contains(t, query, "$8")
}

func Test_buildUserHasTeamQuery(t *testing.T) {
	query, args, err := buildUserHasTeamQuery(7)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(7), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "select exists")
	require.Contains(t, q, "from team_members")
	require.Contains(t, q, "user_id")
	require.Contains(t, query, "$1")
}

func Test_buildUsersShareTeamQuery(t *testing.T) {
	query, args, err := buildUsersShareTeamQuery(1, 2)
	require.NoError(t, err)

	// squirrel orders Eq keys alphabetically: a.user_id then b.user_id
	require.Len(t, args, 2)
	require.Equal(t, int64(1), args[0])
	require.Equal(t, int64(2), args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "select exists")
	require.Contains(t, q, "team_members as a")
	require.Contains(t, q, "join team_members as b on a.team_id = b.team_id")
	require.Contains(t, q, "a.user_id")
	require.Contains(t, q, "b.user_id")
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")
}
