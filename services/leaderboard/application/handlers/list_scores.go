package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ghuser/scoreboard/pkg/errhttp"
	"github.com/ghuser/scoreboard/pkg/httpx"
	appsvcs "github.com/ghuser/scoreboard/services/leaderboard/application/services"
	"github.com/ghuser/scoreboard/services/leaderboard/domain"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/repositories"
)

// Listing query parameters.
const (
	ParamNameEq   = "q[name_eq]"
	ParamTimeGteq = "q[time_gteq]"
	ParamTimeLteq = "q[time_lteq]"
	ParamPage     = "page"
	ParamOrder    = "order"
)

// ListScoresHandler handles GET /scores requests.
type ListScoresHandler struct {
	svc  *appsvcs.Services
	errs errhttp.Writer
}

// NewListScoresHandler returns a ListScoresHandler backed by the given services.
func NewListScoresHandler(svc *appsvcs.Services, errs errhttp.Writer) *ListScoresHandler {
	return &ListScoresHandler{svc: svc, errs: errs}
}

// Execute lists scores, 50 per page. Pagination state is reported in the
// Current-Page, Page-Items, Total-Pages, Total-Count and Link headers.
//
//	@Summary		List scores
//	@Description	Lists scores matching every given filter. Blank filters are ignored.
//	@Tags			scores
//	@Produce		json
//	@Param			q[name_eq]		query		string	false	"Exact, case-sensitive player name"
//	@Param			q[time_gteq]	query		string	false	"Earliest occurrence time, inclusive"
//	@Param			q[time_lteq]	query		string	false	"Latest occurrence time, inclusive"
//	@Param			page			query		int		false	"1-indexed page"	default(1)
//	@Param			order			query		string	false	"Ordering"			Enums(time_desc, time_asc, score_desc, score_asc)
//	@Success		200				{array}		ScoreResponse
//	@Failure		422				{object}	httpx.ValidationErrorBody
//	@Router			/scores [get]
func (h *ListScoresHandler) Execute(w http.ResponseWriter, r *http.Request) {
	filter, page, err := parseListQuery(r)
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}

	views, info, err := h.svc.Scores.List(r.Context(), filter, page)
	if err != nil {
		h.errs.WriteError(w, err)
		return
	}

	resp := make([]ScoreResponse, len(views))
	for i, v := range views {
		resp[i] = newScoreResponse(v)
	}

	httpx.SetPaginationHeaders(w, r, httpx.Page{
		Number:     info.Page,
		Items:      info.Items,
		TotalPages: info.TotalPages,
		TotalCount: info.TotalCount,
	})
	httpx.JSON(w, http.StatusOK, resp)
}

// parseListQuery reads every listing parameter and reports all malformed
// ones together.
func parseListQuery(r *http.Request) (repositories.ScoreFilter, int, error) {
	q := r.URL.Query()
	var (
		filter repositories.ScoreFilter
		verr   domain.ValidationError
		page   = 1
	)

	if name := q.Get(ParamNameEq); name != "" {
		filter.Name = &name
	}
	if s := strings.TrimSpace(q.Get(ParamTimeGteq)); s != "" {
		if t, err := models.ParseOccurredAt(s); err != nil {
			verr.Add(ParamTimeGteq, err.Error())
		} else {
			filter.OccurredFrom = &t
		}
	}
	if s := strings.TrimSpace(q.Get(ParamTimeLteq)); s != "" {
		if t, err := models.ParseOccurredAt(s); err != nil {
			verr.Add(ParamTimeLteq, err.Error())
		} else {
			filter.OccurredTo = &t
		}
	}
	if s := strings.TrimSpace(q.Get(ParamPage)); s != "" {
		n, err := strconv.Atoi(s)
		switch {
		case err != nil:
			verr.Add(ParamPage, "must be an integer")
		case n < 1:
			verr.Add(ParamPage, "must be greater than or equal to 1")
		default:
			page = n
		}
	}
	order, err := repositories.ParseScoreOrder(q.Get(ParamOrder))
	if err != nil {
		verr.Add(ParamOrder, err.Error())
	}
	filter.Order = order

	if err := verr.Err(); err != nil {
		return repositories.ScoreFilter{}, 0, err
	}
	return filter, page, nil
}
