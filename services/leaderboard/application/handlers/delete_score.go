package handlers

import (
	"net/http"

	"github.com/ghuser/scoreboard/pkg/errhttp"
	appsvcs "github.com/ghuser/scoreboard/services/leaderboard/application/services"
)

// DeleteScoreHandler handles DELETE /scores/{id} requests.
type DeleteScoreHandler struct {
	svc  *appsvcs.Services
	errs errhttp.Writer
}

// NewDeleteScoreHandler returns a DeleteScoreHandler backed by the given services.
func NewDeleteScoreHandler(svc *appsvcs.Services, errs errhttp.Writer) *DeleteScoreHandler {
	return &DeleteScoreHandler{svc: svc, errs: errs}
}

// Execute deletes one score.
//
//	@Summary	Delete score
//	@Tags		scores
//	@Param		id	path	string	true	"Score ID"	format(uuid)
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/scores/{id} [delete]
func (h *DeleteScoreHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := scoreID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Scores.Delete(r.Context(), id); err != nil {
		h.errs.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
