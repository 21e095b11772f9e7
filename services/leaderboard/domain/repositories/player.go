package repositories

import (
	"context"

	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
)

// PlayerRepository is the persistence interface for the Player aggregate.
// The domain layer owns this interface; infrastructure implements it.
type PlayerRepository interface {
	// FindByName returns the player whose name equals name case-insensitively.
	// Returns ErrPlayerNotFound if there is none.
	FindByName(ctx context.Context, name models.PlayerName) (*models.Player, error)

	// Create inserts a new player. Returns ErrPlayerNameConflict when another
	// player already holds a case-insensitively equal name.
	Create(ctx context.Context, player *models.Player) error
}
