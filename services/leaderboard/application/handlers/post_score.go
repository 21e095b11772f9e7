package handlers

import (
	"net/http"

	"github.com/ghuser/scoreboard/pkg/errhttp"
	"github.com/ghuser/scoreboard/pkg/httpx"
	pkgvalidator "github.com/ghuser/scoreboard/pkg/validator"
	appsvcs "github.com/ghuser/scoreboard/services/leaderboard/application/services"
)

// PostScoreRequest is the request body for POST /scores.
type PostScoreRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=255" example:"edo"`
	Score *int64 `json:"score" validate:"required,gt=0,lte=2147483647" example:"1300"`
	Time  string `json:"time" validate:"required,notblank,timestamp" example:"2020-05-20T10:40:02.000Z"`
} // @name PostScoreRequest

// PostScoreHandler handles POST /scores requests.
type PostScoreHandler struct {
	svc  *appsvcs.Services
	errs errhttp.Writer
}

// NewPostScoreHandler returns a PostScoreHandler backed by the given services.
func NewPostScoreHandler(svc *appsvcs.Services, errs errhttp.Writer) *PostScoreHandler {
	return &PostScoreHandler{svc: svc, errs: errs}
}

// Execute records a score, creating the player on first use.
//
//	@Summary		Submit score
//	@Description	Records a score for a player. Names match case-insensitively; the player is created on first use.
//	@Tags			scores
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PostScoreRequest	true	"Score submission"
//	@Success		201		{object}	ScoreResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	httpx.ValidationErrorBody
//	@Router			/scores [post]
func (h *PostScoreHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[PostScoreRequest](w, r)
	if !ok {
		return
	}

	score, err := h.svc.Scores.Submit(r.Context(), req.Name, req.Score, req.Time)
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}

	w.Header().Set("Location", "/api/scores/"+score.ID.String())
	httpx.JSON(w, http.StatusCreated, newScoreResponse(score.View()))
}
