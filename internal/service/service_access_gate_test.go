// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Teamgrid Authors

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamgrid/richinfo-server/internal/logger"
	"github.com/teamgrid/richinfo-server/models"
)

// ─────────────────────────────────────────────
// Mock: store.TeamRepository
// ─────────────────────────────────────────────

type mockTeamRepository struct {
	createTeamFn     func(ctx context.Context, team models.Team, ownerID int64) (models.Team, error)
	addMemberFn      func(ctx context.Context, membership models.TeamMembership) error
	getMemberRoleFn  func(ctx context.Context, teamID, userID int64) (models.TeamRole, error)
	userHasTeamFn    func(ctx context.Context, userID int64) (bool, error)
	usersShareTeamFn func(ctx context.Context, userID, otherUserID int64) (bool, error)
}

func (m *mockTeamRepository) CreateTeam(ctx context.Context, team models.Team, ownerID int64) (models.Team, error) {
	if m.createTeamFn != nil {
		return m.createTeamFn(ctx, team, ownerID)
	}
	return team, nil
}

func (m *mockTeamRepository) AddMember(ctx context.Context, membership models.TeamMembership) error {
	if m.addMemberFn != nil {
		return m.addMemberFn(ctx, membership)
	}
	return nil
}

func (m *mockTeamRepository) GetMemberRole(ctx context.Context, teamID, userID int64) (models.TeamRole, error) {
	if m.getMemberRoleFn != nil {
		return m.getMemberRoleFn(ctx, teamID, userID)
	}
	return models.TeamRoleMember, nil
}

func (m *mockTeamRepository) UserHasTeam(ctx context.Context, userID int64) (bool, error) {
	if m.userHasTeamFn != nil {
		return m.userHasTeamFn(ctx, userID)
	}
	return false, nil
}

func (m *mockTeamRepository) UsersShareTeam(ctx context.Context, userID, otherUserID int64) (bool, error) {
	if m.usersShareTeamFn != nil {
		return m.usersShareTeamFn(ctx, userID, otherUserID)
	}
	return false, nil
}

// ─────────────────────────────────────────────
// Authorize
// ─────────────────────────────────────────────

func TestAccessGateService_Authorize_SharedTeam_Allows(t *testing.T) {
	repo := &mockTeamRepository{
		usersShareTeamFn: func(_ context.Context, userID, otherUserID int64) (bool, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, int64(2), otherUserID)
			return true, nil
		},
	}
	gate := NewAccessGateService(repo, logger.Nop())

	err := gate.Authorize(context.Background(), 1, 2)

	require.NoError(t, err)
}

func TestAccessGateService_Authorize_NoSharedTeam_Denies(t *testing.T) {
	repo := &mockTeamRepository{
		usersShareTeamFn: func(_ context.Context, _, _ int64) (bool, error) {
			return false, nil
		},
	}
	gate := NewAccessGateService(repo, logger.Nop())

	err := gate.Authorize(context.Background(), 1, 2)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRichInfoAccessDenied))
}

func TestAccessGateService_Authorize_SelfWithTeam_Allows(t *testing.T) {
	probedShare := false
	repo := &mockTeamRepository{
		userHasTeamFn: func(_ context.Context, userID int64) (bool, error) {
			assert.Equal(t, int64(7), userID)
			return true, nil
		},
		usersShareTeamFn: func(_ context.Context, _, _ int64) (bool, error) {
			probedShare = true
			return false, nil
		},
	}
	gate := NewAccessGateService(repo, logger.Nop())

	err := gate.Authorize(context.Background(), 7, 7)

	require.NoError(t, err)
	assert.False(t, probedShare, "self-access must use the has-team probe")
}

func TestAccessGateService_Authorize_TeamlessSelf_Denies(t *testing.T) {
	repo := &mockTeamRepository{
		userHasTeamFn: func(_ context.Context, _ int64) (bool, error) {
			return false, nil
		},
	}
	gate := NewAccessGateService(repo, logger.Nop())

	err := gate.Authorize(context.Background(), 7, 7)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRichInfoAccessDenied))
}

func TestAccessGateService_Authorize_ProbeError_Wrapped(t *testing.T) {
	repo := &mockTeamRepository{
		usersShareTeamFn: func(_ context.Context, _, _ int64) (bool, error) {
			return false, errStorage
		},
	}
	gate := NewAccessGateService(repo, logger.Nop())

	err := gate.Authorize(context.Background(), 1, 2)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errStorage))
	assert.False(t, errors.Is(err, ErrRichInfoAccessDenied))
}
