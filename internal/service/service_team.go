package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamgrid/richinfo-server/internal/logger"
	"github.com/teamgrid/richinfo-server/internal/store"
	"github.com/teamgrid/richinfo-server/models"
)

type teamService struct {
	teamRepository store.TeamRepository

	logger *logger.Logger
}

func NewTeamService(teamRepository store.TeamRepository, logger *logger.Logger) TeamService {
	return &teamService{
		teamRepository: teamRepository,
		logger:         logger,
	}
}

// CreateTeam creates a team with ownerID as its first member, holding the
// owner role.
//
// Returns the persisted team (with a server-assigned TeamID) or:
//   - ErrInvalidDataProvided if the team name is empty.
//   - A wrapped storage error if the repository call fails (e.g. name already
//     taken — see store.ErrTeamAlreadyExists).
func (t *teamService) CreateTeam(ctx context.Context, team models.Team, ownerID int64) (models.Team, error) {
	log := logger.FromContext(ctx)

	if team.Name == "" {
		log.Error().Int64("ownerID", ownerID).Msg("invalid team data provided")
		return models.Team{}, ErrInvalidDataProvided
	}

	createdTeam, err := t.teamRepository.CreateTeam(ctx, team, ownerID)
	if err != nil {
		log.Err(err).Str("name", team.Name).Msg("team creation ended with error")
		return models.Team{}, fmt.Errorf("team creation ended with error: %w", err)
	}

	return createdTeam, nil
}

// AddMember adds a user to a team. Only the team's owner may add members.
//
// Returns nil on success or:
//   - ErrInvalidDataProvided if the membership names no team or no user.
//   - ErrNotTeamOwner if the caller is not a member of the team or holds a
//     non-owner role in it.
//   - A wrapped storage error if persistence fails (e.g. the user is already
//     a member — see store.ErrAlreadyTeamMember).
func (t *teamService) AddMember(ctx context.Context, callerID int64, membership models.TeamMembership) error {
	log := logger.FromContext(ctx)

	if membership.TeamID == 0 || membership.UserID == 0 {
		log.Error().
			Int64("teamID", membership.TeamID).
			Int64("userID", membership.UserID).
			Msg("invalid membership data provided")
		return ErrInvalidDataProvided
	}
	if membership.Role == "" {
		membership.Role = models.TeamRoleMember
	}

	callerRole, err := t.teamRepository.GetMemberRole(ctx, membership.TeamID, callerID)
	if errors.Is(err, store.ErrNoMembershipWasFound) {
		log.Warn().
			Int64("teamID", membership.TeamID).
			Int64("callerID", callerID).
			Msg("member addition attempted by non-member")
		return ErrNotTeamOwner
	}
	if err != nil {
		log.Err(err).
			Int64("teamID", membership.TeamID).
			Int64("callerID", callerID).
			Msg("caller role lookup failed")
		return fmt.Errorf("caller role lookup failed: %w", err)
	}
	if callerRole != models.TeamRoleOwner {
		log.Warn().
			Int64("teamID", membership.TeamID).
			Int64("callerID", callerID).
			Str("role", string(callerRole)).
			Msg("member addition attempted by non-owner")
		return ErrNotTeamOwner
	}

	if err := t.teamRepository.AddMember(ctx, membership); err != nil {
		log.Err(err).
			Int64("teamID", membership.TeamID).
			Int64("userID", membership.UserID).
			Msg("member addition ended with error")
		return fmt.Errorf("member addition ended with error: %w", err)
	}

	return nil
}
