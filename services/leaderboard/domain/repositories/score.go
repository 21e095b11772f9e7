package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ScoreOrder selects the ordering of a score listing.
type ScoreOrder string

// Supported orderings. Ties are always broken by score ID.
const (
	OrderTimeDesc  ScoreOrder = "time_desc"
	OrderTimeAsc   ScoreOrder = "time_asc"
	OrderScoreDesc ScoreOrder = "score_desc"
	OrderScoreAsc  ScoreOrder = "score_asc"

	DefaultScoreOrder = OrderTimeDesc
)

// ParseScoreOrder maps an external order name to a ScoreOrder. The empty
// string selects DefaultScoreOrder.
func ParseScoreOrder(s string) (ScoreOrder, error) {
	switch o := ScoreOrder(s); o {
	case "":
		return DefaultScoreOrder, nil
	case OrderTimeDesc, OrderTimeAsc, OrderScoreDesc, OrderScoreAsc:
		return o, nil
	default:
		return "", fmt.Errorf("must be one of %s, %s, %s, %s", OrderTimeDesc, OrderTimeAsc, OrderScoreDesc, OrderScoreAsc)
	}
}

// ScoreFilter narrows a score listing. Every non-nil predicate must hold.
type ScoreFilter struct {
	// Name matches the player's name exactly, case-sensitively.
	Name *string
	// OccurredFrom is an inclusive lower bound on the occurrence time.
	OccurredFrom *time.Time
	// OccurredTo is an inclusive upper bound on the occurrence time.
	OccurredTo *time.Time
	Order      ScoreOrder
}

// ScoreRepository is the persistence interface for Score rows.
type ScoreRepository interface {
	// Save inserts a score. Returns ErrDuplicateScore when the player already
	// has a score with the same value and occurrence time. Other constraint
	// violations are returned as they were raised.
	Save(ctx context.Context, score *models.Score) error

	// GetByID returns ErrScoreNotFound if the score does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Score, error)

	// Delete removes a score. Returns ErrScoreNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// History returns every score of the player, most recent first, read in
	// a single statement.
	History(ctx context.Context, playerID uuid.UUID) ([]models.HistoryEntry, error)

	// Find returns one page of scores matching filter and the total number of
	// matches, both read from the same snapshot.
	Find(ctx context.Context, filter ScoreFilter, opts QueryOpts) ([]*models.Score, int, error)
}
