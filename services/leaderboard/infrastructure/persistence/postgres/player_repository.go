package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/scoreboard/pkg/database"
	"github.com/ghuser/scoreboard/services/leaderboard/domain"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
	"github.com/ghuser/scoreboard/services/leaderboard/infrastructure/persistence/postgres/db"
)

// playerNameConstraint is the unique constraint on leaderboard.players.name.
const playerNameConstraint = "players_name_key"

// PlayerRepository implements repositories.PlayerRepository against PostgreSQL.
// Names are stored as citext so lookups and uniqueness ignore case.
type PlayerRepository struct {
	db *database.Database
}

// NewPlayerRepository returns a PlayerRepository backed by the given pool.
func NewPlayerRepository(database *database.Database) *PlayerRepository {
	return &PlayerRepository{db: database}
}

// FindByName returns ErrPlayerNotFound if no player holds name.
func (r *PlayerRepository) FindByName(ctx context.Context, name models.PlayerName) (*models.Player, error) {
	row, err := db.New(r.db.DB()).GetPlayerByName(ctx, name.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("query player: %w", err)
	}
	return rowToPlayer(row), nil
}

// Create runs in its own statement, outside any score transaction, so a lost
// race leaves nothing to roll back. Losing it yields ErrPlayerNameConflict
// wrapping the driver's unique violation.
func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	err := db.New(r.db.DB()).InsertPlayer(ctx, db.InsertPlayerParams{
		ID:        player.ID,
		Name:      player.Name.String(),
		CreatedAt: player.CreatedAt,
	})
	if err != nil {
		if constraint, ok := database.UniqueViolation(err); ok && constraint == playerNameConstraint {
			return fmt.Errorf("%w: %w", domain.ErrPlayerNameConflict, err)
		}
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func rowToPlayer(row db.LeaderboardPlayer) *models.Player {
	return &models.Player{
		ID:        row.ID,
		Name:      models.PlayerName(row.Name),
		CreatedAt: row.CreatedAt,
	}
}
