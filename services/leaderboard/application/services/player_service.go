package services

import (
	"context"
	"fmt"

	"github.com/ghuser/scoreboard/services/leaderboard/domain"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/repositories"
	domainsvcs "github.com/ghuser/scoreboard/services/leaderboard/domain/services"
)

// PlayerService serves the per-player read model.
type PlayerService struct {
	players repositories.PlayerRepository
	scores  repositories.ScoreRepository
}

// NewPlayerService returns a PlayerService.
func NewPlayerService(players repositories.PlayerRepository, scores repositories.ScoreRepository) *PlayerService {
	return &PlayerService{players: players, scores: scores}
}

// Stats returns the statistics of the player named name, matched ignoring
// case. All figures derive from one history read, so they always agree.
func (s *PlayerService) Stats(ctx context.Context, name string) (models.PlayerStats, error) {
	playerName, err := models.NewPlayerName(name)
	if err != nil {
		// No stored player can hold an invalid name.
		return models.PlayerStats{}, fmt.Errorf("player %q: %w", name, domain.ErrPlayerNotFound)
	}

	player, err := s.players.FindByName(ctx, playerName)
	if err != nil {
		return models.PlayerStats{}, fmt.Errorf("player %q: %w", name, err)
	}

	history, err := s.scores.History(ctx, player.ID)
	if err != nil {
		return models.PlayerStats{}, fmt.Errorf("player history: %w", err)
	}
	return domainsvcs.ComputeStats(player.Name, history), nil
}
