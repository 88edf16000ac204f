// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Teamgrid Authors

package service

import (
	"context"
	"fmt"

	"github.com/teamgrid/richinfo-server/internal/logger"
	"github.com/teamgrid/richinfo-server/internal/store"
)

// accessGateService implements AccessGateService on top of team
// membership: a caller may see a target's rich info only when the two
// users share at least one team. A user with no teams can neither read
// anyone's rich info nor be read, themselves included.
type accessGateService struct {
	teamRepository store.TeamRepository

	logger *logger.Logger
}

func NewAccessGateService(teamRepository store.TeamRepository, logger *logger.Logger) AccessGateService {
	return &accessGateService{
		teamRepository: teamRepository,
		logger:         logger,
	}
}

// Authorize returns nil when callerID may access targetID's rich info and
// ErrRichInfoAccessDenied otherwise. Self-access degenerates to "does the
// caller belong to any team at all". Every denial is the same error; the
// reason is logged server-side only.
func (g *accessGateService) Authorize(ctx context.Context, callerID, targetID int64) error {
	log := logger.FromContext(ctx)

	var (
		allowed bool
		err     error
	)
	if callerID == targetID {
		allowed, err = g.teamRepository.UserHasTeam(ctx, callerID)
	} else {
		allowed, err = g.teamRepository.UsersShareTeam(ctx, callerID, targetID)
	}
	if err != nil {
		log.Err(err).
			Int64("callerID", callerID).
			Int64("targetID", targetID).
			Msg("membership probe failed")
		return fmt.Errorf("membership probe failed: %w", err)
	}

	if !allowed {
		log.Warn().
			Int64("callerID", callerID).
			Int64("targetID", targetID).
			Msg("rich info access denied")
		return ErrRichInfoAccessDenied
	}

	return nil
}
