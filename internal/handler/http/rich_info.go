// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Teamgrid Authors

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/teamgrid/richinfo-server/internal/logger"
	"github.com/teamgrid/richinfo-server/internal/utils"
	"github.com/teamgrid/richinfo-server/models"
)

// setRichInfo handles PUT /api/users/me/rich_info.
//
// The authenticated user submits their whole field set; whatever was stored
// before is replaced. The submission is rejected as a whole on duplicate
// names, on a blown size budget, or when the user has no team.
func (h *Handler) setRichInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.setRichInfo").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var richInfo models.RichInfo
	if err := json.NewDecoder(r.Body).Decode(&richInfo); err != nil {
		log.Err(err).Str("func", "*Handler.setRichInfo").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.RichInfoService.SetRichInfo(r.Context(), userID, richInfo.Fields); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// getRichInfo handles GET /api/users/{userID}/rich_info.
//
// The caller sees the target's fields only when the access gate allows it;
// every denial is an identical 403 response.
func (h *Handler) getRichInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.getRichInfo").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	targetID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRichInfo").Msg("invalid user ID in path")
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	richInfo, err := h.services.RichInfoService.GetRichInfo(r.Context(), callerID, targetID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, richInfo, http.StatusOK)
}
