package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/ghuser/scoreboard/pkg/config"
	"github.com/ghuser/scoreboard/pkg/errhttp"
	"github.com/ghuser/scoreboard/pkg/logger"
	"github.com/ghuser/scoreboard/services/leaderboard/application/api"
	"github.com/ghuser/scoreboard/services/leaderboard/application/handlers"
	appsvcs "github.com/ghuser/scoreboard/services/leaderboard/application/services"
	"github.com/ghuser/scoreboard/services/leaderboard/infrastructure/persistence/memory"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewStore()
	svcs := appsvcs.NewWithRepositories(store, store,
		logger.New(&config.Config{LogLevel: "error"}), noop.NewMeterProvider())

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		api.Routes(r, svcs, errhttp.Writer{})
	})
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return v
}

func post(t *testing.T, h http.Handler, name string, score int, at string) handlers.ScoreResponse {
	t.Helper()
	body, _ := json.Marshal(map[string]any{"name": name, "score": score, "time": at})
	rr := do(t, h, http.MethodPost, "/api/scores", string(body))
	if rr.Code != http.StatusCreated {
		t.Fatalf("POST %s/%d: status %d body %s", name, score, rr.Code, rr.Body.String())
	}
	return decode[handlers.ScoreResponse](t, rr)
}

// seed posts the same four scores the original request specs start from.
func seed(t *testing.T, h http.Handler) {
	t.Helper()
	post(t, h, "edo", 1300, "2020-05-20T10:40:02.000Z")
	post(t, h, "EDO", 1200, "2020-05-20T10:30:02.000Z")
	post(t, h, "Edo", 1000, "2020-05-20T10:20:02.000Z")
	post(t, h, "Ed0", 2000, "2020-05-20T10:10:02.000Z")
}

type row struct {
	Name  string `json:"name"`
	Score int32  `json:"score"`
	Time  string `json:"time"`
}

func rows(t *testing.T, rr *httptest.ResponseRecorder) []row {
	t.Helper()
	return decode[[]row](t, rr)
}
