// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Teamgrid Authors

package http

import (
	"errors"
	"net/http"

	"github.com/teamgrid/richinfo-server/internal/logger"
	"github.com/teamgrid/richinfo-server/internal/service"
	"github.com/teamgrid/richinfo-server/internal/store"
	"github.com/teamgrid/richinfo-server/internal/utils"
	"github.com/teamgrid/richinfo-server/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrDuplicateField:          http.StatusBadRequest,
	service.ErrRichInfoTooLarge:        http.StatusRequestEntityTooLarge,
	service.ErrRichInfoAccessDenied:    http.StatusForbidden,
	service.ErrNotTeamOwner:            http.StatusForbidden,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	store.ErrLoginAlreadyExists:   http.StatusConflict,
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrTeamAlreadyExists:    http.StatusConflict,
	store.ErrNoTeamWasFound:       http.StatusNotFound,
	store.ErrAlreadyTeamMember:    http.StatusConflict,
	store.ErrNoMembershipWasFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status and writes a JSON error body.
// Forbidden responses always carry the same opaque message, regardless of
// the underlying denial reason; the reason stays in the server log only.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	message := err.Error()
	switch status {
	case http.StatusForbidden:
		message = "forbidden"
	case http.StatusInternalServerError:
		message = http.StatusText(http.StatusInternalServerError)
	}

	log.Err(err).Int("status", status).Msg("request failed")
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
