package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/scoreboard/pkg/app"
	"github.com/ghuser/scoreboard/pkg/errhttp"
	"github.com/ghuser/scoreboard/services/leaderboard/application/handlers"
	appsvcs "github.com/ghuser/scoreboard/services/leaderboard/application/services"
)

// LeaderboardRoutes registers leaderboard endpoints on the provided chi router.
func LeaderboardRoutes(r chi.Router, a *app.Application) {
	Routes(r, appsvcs.New(a), errhttp.Writer{IsProduction: a.IsProduction, Report: a.ReportError})
}

// Routes mounts the endpoints over already wired services.
func Routes(r chi.Router, svcs *appsvcs.Services, errs errhttp.Writer) {
	r.Group(func(r chi.Router) {
		r.Route("/scores", func(r chi.Router) {
			r.Get("/", handlers.NewListScoresHandler(svcs, errs).Execute)
			r.Post("/", handlers.NewPostScoreHandler(svcs, errs).Execute)
			r.Get("/{id}", handlers.NewGetScoreHandler(svcs, errs).Execute)
			r.Delete("/{id}", handlers.NewDeleteScoreHandler(svcs, errs).Execute)
		})
		r.Get("/players/{name}", handlers.NewGetPlayerHandler(svcs, errs).Execute)
	})
}
