package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghuser/scoreboard/pkg/logger"
	"github.com/ghuser/scoreboard/services/leaderboard/domain"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/repositories"
)

// maxResolveAttempts bounds the find-or-create loop, counting the first try.
const maxResolveAttempts = 3

// PlayerRegistry maps a player name to a stable player identity, creating the
// player on first use. Concurrent callers resolving the same new name all get
// the single player that won the insert.
type PlayerRegistry struct {
	players repositories.PlayerRepository
	log     logger.Logger
	metrics *metrics
}

// newPlayerRegistry returns a PlayerRegistry backed by players.
func newPlayerRegistry(players repositories.PlayerRepository, log logger.Logger, m *metrics) *PlayerRegistry {
	return &PlayerRegistry{players: players, log: log, metrics: m}
}

// ResolveOrCreate returns the player whose name equals name ignoring case,
// creating it if needed. name must already be validated.
//
// Losing a creation race (ErrPlayerNameConflict) restarts the whole
// find-or-create sequence, up to maxResolveAttempts in total. When every
// attempt loses, ErrPlayerNameConflict is returned as is. Any other error is
// returned immediately.
func (r *PlayerRegistry) ResolveOrCreate(ctx context.Context, name models.PlayerName) (*models.Player, error) {
	var err error
	for attempt := 1; attempt <= maxResolveAttempts; attempt++ {
		var player *models.Player
		if player, err = r.resolveOnce(ctx, name); err == nil {
			return player, nil
		}
		if !errors.Is(err, domain.ErrPlayerNameConflict) {
			return nil, err
		}

		r.metrics.resolveConflicts.Add(ctx, 1)
		r.log.WarnContext(ctx, "player name conflict while resolving",
			"player_name", name.String(),
			"attempt", attempt,
			"max_attempts", maxResolveAttempts,
		)
	}
	return nil, err
}

func (r *PlayerRegistry) resolveOnce(ctx context.Context, name models.PlayerName) (*models.Player, error) {
	player, err := r.players.FindByName(ctx, name)
	if err == nil {
		return player, nil
	}
	if !errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, fmt.Errorf("find player: %w", err)
	}

	player = models.NewPlayer(name)
	if err := r.players.Create(ctx, player); err != nil {
		if errors.Is(err, domain.ErrPlayerNameConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("create player: %w", err)
	}
	return player, nil
}
