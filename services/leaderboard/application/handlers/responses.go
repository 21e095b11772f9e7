package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/scoreboard/pkg/httpx"
	pkgvalidator "github.com/ghuser/scoreboard/pkg/validator"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
)

// TimeLayout renders times as UTC with millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

func init() {
	if err := pkgvalidator.RegisterRule("timestamp", models.ErrInvalidTime.Error(), func(s string) bool {
		_, err := models.ParseOccurredAt(s)
		return err == nil
	}); err != nil {
		panic(err)
	}
}

// ScoreResponse is the external form of a score.
type ScoreResponse struct {
	ID    uuid.UUID `json:"id"    example:"123e4567-e89b-12d3-a456-426614174000"`
	Name  string    `json:"name"  example:"edo"`
	Score int32     `json:"score" example:"1300"`
	Time  string    `json:"time"  example:"2020-05-20T10:40:02.000Z"`
} // @name ScoreResponse

// HistoryEntryResponse is one point of a player's history.
type HistoryEntryResponse struct {
	Score int32  `json:"score" example:"1300"`
	Time  string `json:"time"  example:"2020-05-20T10:40:02.000Z"`
} // @name HistoryEntryResponse

// PlayerResponse is the statistics view of a player. top_score and low_score
// are null for a player without scores.
type PlayerResponse struct {
	Name         string                 `json:"name"          example:"edo"`
	TopScore     *int32                 `json:"top_score"     example:"1300"`
	LowScore     *int32                 `json:"low_score"     example:"1000"`
	AverageScore int64                  `json:"average_score" example:"1166"`
	History      []HistoryEntryResponse `json:"history"`
} // @name PlayerResponse

// ErrorResponse is returned on all error responses except validation failures.
type ErrorResponse struct {
	Error string `json:"error" example:"score not found"`
} // @name ErrorResponse

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func newScoreResponse(v models.ScoreView) ScoreResponse {
	return ScoreResponse{
		ID:    v.ID,
		Name:  v.Name.String(),
		Score: int32(v.Value),
		Time:  formatTime(v.OccurredAt),
	}
}

func newPlayerResponse(s models.PlayerStats) PlayerResponse {
	resp := PlayerResponse{
		Name:         s.Name.String(),
		AverageScore: s.AverageScore,
		History:      make([]HistoryEntryResponse, len(s.History)),
	}
	if s.TopScore != nil {
		v := int32(*s.TopScore)
		resp.TopScore = &v
	}
	if s.LowScore != nil {
		v := int32(*s.LowScore)
		resp.LowScore = &v
	}
	for i, h := range s.History {
		resp.History[i] = HistoryEntryResponse{Score: int32(h.Value), Time: formatTime(h.OccurredAt)}
	}
	return resp
}

// scoreID parses the {id} path parameter, writing a 400 when it is malformed.
func scoreID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid score id"})
		return uuid.Nil, false
	}
	return id, true
}

// pathParam returns the decoded value of a path parameter. chi matches on the
// raw path when the request carries escaped separators.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}
