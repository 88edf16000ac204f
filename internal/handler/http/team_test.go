package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamgrid/richinfo-server/internal/logger"
	"github.com/teamgrid/richinfo-server/internal/service"
	"github.com/teamgrid/richinfo-server/internal/store"
	"github.com/teamgrid/richinfo-server/models"
)

// ─────────────────────────────────────────────
// Mock TeamService
// ─────────────────────────────────────────────

type mockTeamService struct {
	createTeamFn func(ctx context.Context, team models.Team, ownerID int64) (models.Team, error)
	addMemberFn  func(ctx context.Context, callerID int64, membership models.TeamMembership) error
}

func (m *mockTeamService) CreateTeam(ctx context.Context, team models.Team, ownerID int64) (models.Team, error) {
	return m.createTeamFn(ctx, team, ownerID)
}

func (m *mockTeamService) AddMember(ctx context.Context, callerID int64, membership models.TeamMembership) error {
	return m.addMemberFn(ctx, callerID, membership)
}

func newHandlerWithTeam(t *testing.T, svc service.TeamService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{TeamService: svc}, logger.Nop())
}

// ─────────────────────────────────────────────
// createTeam
// ─────────────────────────────────────────────

func TestCreateTeam_Success(t *testing.T) {
	svc := &mockTeamService{
		createTeamFn: func(_ context.Context, team models.Team, ownerID int64) (models.Team, error) {
			assert.Equal(t, "design", team.Name)
			assert.Equal(t, int64(1), ownerID)
			team.TeamID = 10
			return team, nil
		},
	}

	h := newHandlerWithTeam(t, svc)
	req := authedRequest(http.MethodPost, "/api/teams", `{"name":"design"}`, 1)
	rec := httptest.NewRecorder()

	h.createTeam(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Team
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(10), got.TeamID)
}

func TestCreateTeam_NameTaken_Conflict(t *testing.T) {
	svc := &mockTeamService{
		createTeamFn: func(_ context.Context, _ models.Team, _ int64) (models.Team, error) {
			return models.Team{}, store.ErrTeamAlreadyExists
		},
	}

	h := newHandlerWithTeam(t, svc)
	req := authedRequest(http.MethodPost, "/api/teams", `{"name":"design"}`, 1)
	rec := httptest.NewRecorder()

	h.createTeam(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateTeam_NoUserInContext_Unauthorized(t *testing.T) {
	h := newHandlerWithTeam(t, &mockTeamService{})

	req := httptest.NewRequest(http.MethodPost, "/api/teams", nil)
	rec := httptest.NewRecorder()

	h.createTeam(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// addTeamMember
// ─────────────────────────────────────────────

func TestAddTeamMember_Success(t *testing.T) {
	var gotMembership models.TeamMembership
	svc := &mockTeamService{
		addMemberFn: func(_ context.Context, callerID int64, membership models.TeamMembership) error {
			assert.Equal(t, int64(1), callerID)
			gotMembership = membership
			return nil
		},
	}

	h := newHandlerWithTeam(t, svc)
	req := authedRequest(http.MethodPost, "/api/teams/10/members", `{"user_id":2}`, 1)
	req = withURLParam(req, "teamID", "10")
	rec := httptest.NewRecorder()

	h.addTeamMember(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(10), gotMembership.TeamID, "team ID comes from the path, not the body")
	assert.Equal(t, int64(2), gotMembership.UserID)
}

func TestAddTeamMember_NotOwner_Forbidden(t *testing.T) {
	svc := &mockTeamService{
		addMemberFn: func(_ context.Context, _ int64, _ models.TeamMembership) error {
			return service.ErrNotTeamOwner
		},
	}

	h := newHandlerWithTeam(t, svc)
	req := authedRequest(http.MethodPost, "/api/teams/10/members", `{"user_id":2}`, 3)
	req = withURLParam(req, "teamID", "10")
	rec := httptest.NewRecorder()

	h.addTeamMember(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var got models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "forbidden", got.Error)
}

func TestAddTeamMember_AlreadyMember_Conflict(t *testing.T) {
	svc := &mockTeamService{
		addMemberFn: func(_ context.Context, _ int64, _ models.TeamMembership) error {
			return store.ErrAlreadyTeamMember
		},
	}

	h := newHandlerWithTeam(t, svc)
	req := authedRequest(http.MethodPost, "/api/teams/10/members", `{"user_id":2}`, 1)
	req = withURLParam(req, "teamID", "10")
	rec := httptest.NewRecorder()

	h.addTeamMember(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddTeamMember_InvalidTeamID(t *testing.T) {
	h := newHandlerWithTeam(t, &mockTeamService{})

	req := authedRequest(http.MethodPost, "/api/teams/abc/members", `{"user_id":2}`, 1)
	req = withURLParam(req, "teamID", "abc")
	rec := httptest.NewRecorder()

	h.addTeamMember(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
