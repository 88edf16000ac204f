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

// createTeam handles POST /api/teams. The authenticated caller becomes the
// team's owner.
func (h *Handler) createTeam(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.createTeam").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var team models.Team
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
		log.Err(err).Str("func", "*Handler.createTeam").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdTeam, err := h.services.TeamService.CreateTeam(r.Context(), team, ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, createdTeam, http.StatusCreated)
}

// addTeamMember handles POST /api/teams/{teamID}/members. Only the team
// owner may add members.
func (h *Handler) addTeamMember(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.addTeamMember").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	teamID, err := strconv.ParseInt(chi.URLParam(r, "teamID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addTeamMember").Msg("invalid team ID in path")
		http.Error(w, "invalid team ID", http.StatusBadRequest)
		return
	}

	var membership models.TeamMembership
	if err = json.NewDecoder(r.Body).Decode(&membership); err != nil {
		log.Err(err).Str("func", "*Handler.addTeamMember").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	membership.TeamID = teamID

	if err = h.services.TeamService.AddMember(r.Context(), callerID, membership); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
