package handlers

import (
	"net/http"

	"github.com/ghuser/scoreboard/pkg/errhttp"
	"github.com/ghuser/scoreboard/pkg/httpx"
	appsvcs "github.com/ghuser/scoreboard/services/leaderboard/application/services"
)

// GetScoreHandler handles GET /scores/{id} requests.
type GetScoreHandler struct {
	svc  *appsvcs.Services
	errs errhttp.Writer
}

// NewGetScoreHandler returns a GetScoreHandler backed by the given services.
func NewGetScoreHandler(svc *appsvcs.Services, errs errhttp.Writer) *GetScoreHandler {
	return &GetScoreHandler{svc: svc, errs: errs}
}

// Execute returns one score.
//
//	@Summary	Get score
//	@Tags		scores
//	@Produce	json
//	@Param		id	path		string	true	"Score ID"	format(uuid)
//	@Success	200	{object}	ScoreResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/scores/{id} [get]
func (h *GetScoreHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := scoreID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.Scores.Get(r.Context(), id)
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newScoreResponse(view))
}
