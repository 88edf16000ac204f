package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/teamgrid/richinfo-server/internal/logger"
	"github.com/teamgrid/richinfo-server/models"
)

// teamRepository is the PostgreSQL-backed implementation of [TeamRepository].
// It manages the "teams" and "team_members" tables; its membership probes
// are the ground truth the access gate decides on.
type teamRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTeamRepository constructs a [TeamRepository] backed by the provided
// database connection and logger.
func NewTeamRepository(db *DB, logger *logger.Logger) TeamRepository {
	logger.Debug().Msg("creating team repository")
	return &teamRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTeam inserts a new team and grants the creating user the owner
// membership in the same transaction, so a team can never exist without
// an owner.
//
// Error handling:
//   - PostgreSQL unique_violation on the team name → [ErrTeamAlreadyExists].
//   - Transaction begin/commit failures → wrapped low-level sentinels.
func (r *teamRepository) CreateTeam(ctx context.Context, team models.Team, ownerID int64) (models.Team, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.CreateTeam").Msg("error beginning transaction")
		return models.Team{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var created models.Team
	row := tx.QueryRowContext(ctx, createTeam, team.Name)
	if err = row.Scan(&created.TeamID, &created.Name, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*teamRepository.CreateTeam").Str("name", team.Name).Msg("error creating team")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Team{}, ErrTeamAlreadyExists
		}
		return models.Team{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if _, err = tx.ExecContext(ctx, addTeamMember, created.TeamID, ownerID, models.TeamRoleOwner); err != nil {
		log.Err(err).Str("func", "*teamRepository.CreateTeam").Int64("team_id", created.TeamID).Msg("error granting owner membership")
		return models.Team{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*teamRepository.CreateTeam").Msg("error committing transaction")
		return models.Team{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// AddMember inserts a membership row linking a user to a team.
//
// Error handling:
//   - PostgreSQL unique_violation (already a member) → [ErrAlreadyTeamMember].
//   - PostgreSQL foreign_key_violation (unknown team or user) → [ErrNoTeamWasFound].
func (r *teamRepository) AddMember(ctx context.Context, membership models.TeamMembership) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, addTeamMember, membership.TeamID, membership.UserID, membership.Role)
	if err != nil {
		log.Err(err).
			Str("func", "*teamRepository.AddMember").
			Int64("team_id", membership.TeamID).
			Int64("user_id", membership.UserID).
			Msg("error adding team member")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrAlreadyTeamMember
		case pgerrcode.ForeignKeyViolation:
			return ErrNoTeamWasFound
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// GetMemberRole returns the role the user holds in the given team.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoMembershipWasFound].
func (r *teamRepository) GetMemberRole(ctx context.Context, teamID, userID int64) (models.TeamRole, error) {
	log := logger.FromContext(ctx)

	var role models.TeamRole
	row := r.db.QueryRowContext(ctx, getMemberRole, teamID, userID)

	if err := row.Scan(&role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoMembershipWasFound
		}

		log.Err(err).
			Str("func", "*teamRepository.GetMemberRole").
			Int64("team_id", teamID).
			Int64("user_id", userID).
			Msg("error getting member role")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return role, nil
}

// UserHasTeam reports whether the user belongs to at least one team.
func (r *teamRepository) UserHasTeam(ctx context.Context, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserHasTeamQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.UserHasTeam").Msg("failed to create query")
		return false, err
	}

	var exists bool
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		log.Err(err).
			Str("func", "*teamRepository.UserHasTeam").
			Int64("user_id", userID).
			Msg("failed to execute membership probe")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// UsersShareTeam reports whether both users are members of at least one
// common team. With userID == otherUserID it degenerates to UserHasTeam,
// which gives self-reads exactly the visibility rule everyone else gets.
func (r *teamRepository) UsersShareTeam(ctx context.Context, userID, otherUserID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUsersShareTeamQuery(userID, otherUserID)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.UsersShareTeam").Msg("failed to create query")
		return false, err
	}

	var exists bool
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		log.Err(err).
			Str("func", "*teamRepository.UsersShareTeam").
			Int64("user_id", userID).
			Int64("other_user_id", otherUserID).
			Msg("failed to execute shared-team probe")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}
