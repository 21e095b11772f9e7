package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/scoreboard/pkg/logger"
	"github.com/ghuser/scoreboard/services/leaderboard/domain"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/repositories"
	domainsvcs "github.com/ghuser/scoreboard/services/leaderboard/domain/services"
)

// ScoreService admits, reads, deletes and lists scores.
// Event publishing is handled by the repository layer (outbox pattern).
type ScoreService struct {
	scores   repositories.ScoreRepository
	registry *PlayerRegistry
	log      logger.Logger
	metrics  *metrics
}

// newScoreService returns a ScoreService that resolves players through registry.
func newScoreService(scores repositories.ScoreRepository, registry *PlayerRegistry, log logger.Logger, m *metrics) *ScoreService {
	return &ScoreService{scores: scores, registry: registry, log: log, metrics: m}
}

// Submit validates a candidate, resolves its player and stores it.
// Every invalid field is reported in one *domain.ValidationError before any
// storage access. A repeat of the player's (value, time) pair yields
// ErrDuplicateScore.
func (s *ScoreService) Submit(ctx context.Context, name string, value *int64, occurredAt string) (*models.Score, error) {
	sub, err := domainsvcs.ValidateSubmission(name, value, occurredAt)
	if err != nil {
		return nil, err
	}

	player, err := s.registry.ResolveOrCreate(ctx, sub.Name)
	if err != nil {
		return nil, fmt.Errorf("resolve player: %w", err)
	}

	score := models.NewScore(player, sub.Value, sub.OccurredAt)
	if err := s.scores.Save(ctx, score); err != nil {
		if errors.Is(err, domain.ErrDuplicateScore) {
			s.metrics.duplicates.Add(ctx, 1)
		}
		return nil, fmt.Errorf("save score: %w", err)
	}

	s.metrics.submitted.Add(ctx, 1)
	s.log.InfoContext(ctx, "score recorded",
		"score_id", score.ID,
		"player_id", player.ID,
	)
	return score, nil
}

// Get returns ErrScoreNotFound if no score has id.
func (s *ScoreService) Get(ctx context.Context, id uuid.UUID) (models.ScoreView, error) {
	score, err := s.scores.GetByID(ctx, id)
	if err != nil {
		return models.ScoreView{}, fmt.Errorf("get score %s: %w", id, err)
	}
	return score.View(), nil
}

// Delete returns ErrScoreNotFound if no score has id.
func (s *ScoreService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.scores.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete score %s: %w", id, err)
	}
	s.log.InfoContext(ctx, "score deleted", "score_id", id)
	return nil
}

// List returns one page of scores matching filter. page is 1-indexed; pages
// past the end are empty.
func (s *ScoreService) List(ctx context.Context, filter repositories.ScoreFilter, page int) ([]models.ScoreView, models.PageInfo, error) {
	opts, err := domainsvcs.PageQuery(page)
	if err != nil {
		return nil, models.PageInfo{}, err
	}

	scores, total, err := s.scores.Find(ctx, filter, opts)
	if err != nil {
		return nil, models.PageInfo{}, fmt.Errorf("list scores: %w", err)
	}

	views := make([]models.ScoreView, len(scores))
	for i, sc := range scores {
		views[i] = sc.View()
	}
	return views, domainsvcs.NewPageInfo(page, len(views), total), nil
}
