package handlers

import (
	"net/http"

	"github.com/ghuser/scoreboard/pkg/errhttp"
	"github.com/ghuser/scoreboard/pkg/httpx"
	appsvcs "github.com/ghuser/scoreboard/services/leaderboard/application/services"
)

// GetPlayerHandler handles GET /players/{name} requests.
type GetPlayerHandler struct {
	svc  *appsvcs.Services
	errs errhttp.Writer
}

// NewGetPlayerHandler returns a GetPlayerHandler backed by the given services.
func NewGetPlayerHandler(svc *appsvcs.Services, errs errhttp.Writer) *GetPlayerHandler {
	return &GetPlayerHandler{svc: svc, errs: errs}
}

// Execute returns a player's statistics and full score history.
//
//	@Summary		Get player
//	@Description	Returns top, low and average score plus the history, most recent first. Names match case-insensitively.
//	@Tags			players
//	@Produce		json
//	@Param			name	path		string	true	"Player name"
//	@Success		200		{object}	PlayerResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/players/{name} [get]
func (h *GetPlayerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Players.Stats(r.Context(), pathParam(r, "name"))
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newPlayerResponse(stats))
}
