package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/scoreboard/pkg/database"
	"github.com/ghuser/scoreboard/pkg/events"
	"github.com/ghuser/scoreboard/services/leaderboard/domain"
	domainevents "github.com/ghuser/scoreboard/services/leaderboard/domain/events"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/repositories"
	"github.com/ghuser/scoreboard/services/leaderboard/infrastructure/persistence/postgres/db"
)

// scoreEntryConstraint is the unique constraint on (player_id, value, occurred_at).
const scoreEntryConstraint = "scores_unique_entry"

const eventVersion = 1

// ScoreRepository implements repositories.ScoreRepository against PostgreSQL.
type ScoreRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewScoreRepository returns a ScoreRepository backed by the given pool. When
// bus is non-nil, inserts and deletes publish their domain event in the same
// transaction as the write.
func NewScoreRepository(database *database.Database, bus *events.EventBus) *ScoreRepository {
	return &ScoreRepository{db: database, bus: bus}
}

// Save inserts score and publishes a ScoreRecordedEvent atomically.
// Only a violation of the entry constraint maps to ErrDuplicateScore.
func (r *ScoreRepository) Save(ctx context.Context, score *models.Score) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := db.New(tx).InsertScore(ctx, db.InsertScoreParams{
			ID:         score.ID,
			PlayerID:   score.PlayerID,
			Value:      int32(score.Value),
			OccurredAt: score.OccurredAt,
			CreatedAt:  score.CreatedAt,
		})
		if err != nil {
			if constraint, ok := database.UniqueViolation(err); ok && constraint == scoreEntryConstraint {
				return domain.ErrDuplicateScore
			}
			return fmt.Errorf("insert score: %w", err)
		}

		if r.bus == nil {
			return nil
		}
		event := domainevents.ScoreRecordedEvent{
			EventID:    uuid.New(),
			Version:    eventVersion,
			ScoreID:    score.ID,
			PlayerID:   score.PlayerID,
			PlayerName: score.PlayerName.String(),
			Score:      int32(score.Value),
			OccurredAt: score.OccurredAt,
			RecordedAt: score.CreatedAt,
		}
		if err := r.publish(ctx, tx, domainevents.TopicScoreRecorded, event.EventID, event); err != nil {
			return fmt.Errorf("publish score recorded: %w", err)
		}
		return nil
	})
}

// GetByID returns ErrScoreNotFound if the score does not exist.
func (r *ScoreRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Score, error) {
	row, err := db.New(r.db.DB()).GetScoreByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrScoreNotFound
		}
		return nil, fmt.Errorf("query score: %w", err)
	}
	return &models.Score{
		ID:         row.ID,
		PlayerID:   row.PlayerID,
		PlayerName: models.PlayerName(row.Name),
		Value:      models.ScoreValue(row.Value),
		OccurredAt: row.OccurredAt.UTC(),
		CreatedAt:  row.CreatedAt.UTC(),
	}, nil
}

// Delete removes the score and publishes a ScoreDeletedEvent atomically.
// Returns ErrScoreNotFound when no row was deleted.
func (r *ScoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteScore(ctx, id)
		if err != nil {
			return fmt.Errorf("delete score: %w", err)
		}
		if n == 0 {
			return domain.ErrScoreNotFound
		}

		if r.bus == nil {
			return nil
		}
		event := domainevents.ScoreDeletedEvent{
			EventID:   uuid.New(),
			Version:   eventVersion,
			ScoreID:   id,
			DeletedAt: time.Now().UTC(),
		}
		if err := r.publish(ctx, tx, domainevents.TopicScoreDeleted, event.EventID, event); err != nil {
			return fmt.Errorf("publish score deleted: %w", err)
		}
		return nil
	})
}

// History reads every score of the player in one statement, most recent first.
func (r *ScoreRepository) History(ctx context.Context, playerID uuid.UUID) ([]models.HistoryEntry, error) {
	rows, err := db.New(r.db.DB()).ListPlayerHistory(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	entries := make([]models.HistoryEntry, len(rows))
	for i, row := range rows {
		entries[i] = models.HistoryEntry{
			Value:      models.ScoreValue(row.Value),
			OccurredAt: row.OccurredAt.UTC(),
		}
	}
	return entries, nil
}

// Find reads the page and the total inside one REPEATABLE READ snapshot so
// that a concurrent write cannot make them disagree.
func (r *ScoreRepository) Find(ctx context.Context, filter repositories.ScoreFilter, opts repositories.QueryOpts) ([]*models.Score, int, error) {
	order := filter.Order
	if order == "" {
		order = repositories.DefaultScoreOrder
	}
	name := nullString(filter.Name)
	from := nullTime(filter.OccurredFrom)
	to := nullTime(filter.OccurredTo)

	var (
		scores []*models.Score
		total  int64
	)
	err := r.db.WithReadTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		rows, err := q.ListScores(ctx, db.ListScoresParams{
			Name:         name,
			OccurredFrom: from,
			OccurredTo:   to,
			SortOrder:    string(order),
			RowOffset:    int32(opts.Offset),
			RowLimit:     int32(opts.Limit),
		})
		if err != nil {
			return fmt.Errorf("query scores: %w", err)
		}

		total, err = q.CountScores(ctx, db.CountScoresParams{
			Name:         name,
			OccurredFrom: from,
			OccurredTo:   to,
		})
		if err != nil {
			return fmt.Errorf("count scores: %w", err)
		}

		scores = make([]*models.Score, len(rows))
		for i, row := range rows {
			scores[i] = &models.Score{
				ID:         row.ID,
				PlayerID:   row.PlayerID,
				PlayerName: models.PlayerName(row.Name),
				Value:      models.ScoreValue(row.Value),
				OccurredAt: row.OccurredAt.UTC(),
				CreatedAt:  row.CreatedAt.UTC(),
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return scores, int(total), nil
}

func (r *ScoreRepository) publish(ctx context.Context, tx *sql.Tx, topic string, eventID uuid.UUID, payload any) error {
	msg, err := events.NewMessage(eventID.String(), eventVersion, payload)
	if err != nil {
		return err
	}
	return r.bus.PublishTx(ctx, tx, topic, msg)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
