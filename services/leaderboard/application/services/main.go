package services

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/scoreboard/pkg/app"
	"github.com/ghuser/scoreboard/pkg/logger"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/repositories"
	"github.com/ghuser/scoreboard/services/leaderboard/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Players  *PlayerService
	Scores   *ScoreService
	Registry *PlayerRegistry
}

// New wires all leaderboard application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	mp := a.Meter
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	return NewWithRepositories(
		postgres.NewPlayerRepository(a.Db),
		postgres.NewScoreRepository(a.Db, a.EventBus),
		a.Logger,
		mp,
	)
}

// NewWithRepositories wires the services over arbitrary repository
// implementations.
func NewWithRepositories(
	players repositories.PlayerRepository,
	scores repositories.ScoreRepository,
	log logger.Logger,
	mp metric.MeterProvider,
) *Services {
	m := newMetrics(mp)
	registry := newPlayerRegistry(players, log, m)
	return &Services{
		Players:  NewPlayerService(players, scores),
		Scores:   newScoreService(scores, registry, log, m),
		Registry: registry,
	}
}
