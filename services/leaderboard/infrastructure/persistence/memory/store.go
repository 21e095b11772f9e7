// Package memory is an in-process implementation of the leaderboard
// repositories. It enforces the same uniqueness rules as the PostgreSQL
// schema and is used to exercise the application and HTTP layers without a
// database.
package memory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ghuser/scoreboard/services/leaderboard/domain"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/repositories"
)

// ErrUnknownPlayer is returned by Save when the score references no stored
// player, mirroring the foreign key on scores.player_id.
var ErrUnknownPlayer = errors.New("memory: score references unknown player")

type entryKey struct {
	playerID   uuid.UUID
	value      models.ScoreValue
	occurredAt int64 // UnixMicro
}

// Store implements both repositories.PlayerRepository and
// repositories.ScoreRepository. The zero value is not usable; call NewStore.
type Store struct {
	mu      sync.RWMutex
	players map[uuid.UUID]models.Player
	byName  map[string]uuid.UUID // lower-cased name -> player id
	scores  map[uuid.UUID]models.Score
	entries map[entryKey]uuid.UUID
}

var (
	_ repositories.PlayerRepository = (*Store)(nil)
	_ repositories.ScoreRepository  = (*Store)(nil)
)

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		players: make(map[uuid.UUID]models.Player),
		byName:  make(map[string]uuid.UUID),
		scores:  make(map[uuid.UUID]models.Score),
		entries: make(map[entryKey]uuid.UUID),
	}
}

func foldName(n models.PlayerName) string {
	return strings.ToLower(n.String())
}

// FindByName matches name case-insensitively.
func (s *Store) FindByName(_ context.Context, name models.PlayerName) (*models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[foldName(name)]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	p := s.players[id]
	return &p, nil
}

// Create returns ErrPlayerNameConflict when the folded name is taken.
func (s *Store) Create(_ context.Context, player *models.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := foldName(player.Name)
	if _, taken := s.byName[key]; taken {
		return domain.ErrPlayerNameConflict
	}
	s.players[player.ID] = *player
	s.byName[key] = player.ID
	return nil
}

// DeletePlayer removes a player and, like ON DELETE CASCADE, all its scores.
func (s *Store) DeletePlayer(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	delete(s.players, id)
	delete(s.byName, foldName(p.Name))
	for sid, sc := range s.scores {
		if sc.PlayerID == id {
			s.removeScore(sid, sc)
		}
	}
	return nil
}

// Save returns ErrDuplicateScore when the player already holds the same
// value at the same microsecond.
func (s *Store) Save(_ context.Context, score *models.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[score.PlayerID]; !ok {
		return fmt.Errorf("insert score %s: %w", score.ID, ErrUnknownPlayer)
	}
	key := keyOf(*score)
	if _, dup := s.entries[key]; dup {
		return domain.ErrDuplicateScore
	}
	s.scores[score.ID] = *score
	s.entries[key] = score.ID
	return nil
}

// GetByID returns ErrScoreNotFound if the score does not exist.
func (s *Store) GetByID(_ context.Context, id uuid.UUID) (*models.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sc, ok := s.scores[id]
	if !ok {
		return nil, domain.ErrScoreNotFound
	}
	return s.withName(sc), nil
}

// Delete returns ErrScoreNotFound if the score does not exist.
func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.scores[id]
	if !ok {
		return domain.ErrScoreNotFound
	}
	s.removeScore(id, sc)
	return nil
}

// History returns the player's scores, most recent first.
func (s *Store) History(_ context.Context, playerID uuid.UUID) ([]models.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.Score
	for _, sc := range s.scores {
		if sc.PlayerID == playerID {
			matched = append(matched, sc)
		}
	}
	slices.SortFunc(matched, compareFor(repositories.OrderTimeDesc))

	entries := make([]models.HistoryEntry, len(matched))
	for i, sc := range matched {
		entries[i] = models.HistoryEntry{Value: sc.Value, OccurredAt: sc.OccurredAt}
	}
	return entries, nil
}

// Find applies filter, orders, and slices one page. The read lock makes the
// page and the total come from the same state.
func (s *Store) Find(_ context.Context, filter repositories.ScoreFilter, opts repositories.QueryOpts) ([]*models.Score, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.Score
	for _, sc := range s.scores {
		if s.matches(sc, filter) {
			matched = append(matched, sc)
		}
	}

	order := filter.Order
	if order == "" {
		order = repositories.DefaultScoreOrder
	}
	slices.SortFunc(matched, compareFor(order))

	total := len(matched)
	start := min(max(opts.Offset, 0), total)
	end := min(start+opts.Limit, total)

	page := make([]*models.Score, 0, end-start)
	for _, sc := range matched[start:end] {
		page = append(page, s.withName(sc))
	}
	return page, total, nil
}

func (s *Store) matches(sc models.Score, f repositories.ScoreFilter) bool {
	if f.Name != nil && s.players[sc.PlayerID].Name.String() != *f.Name {
		return false
	}
	if f.OccurredFrom != nil && sc.OccurredAt.Before(*f.OccurredFrom) {
		return false
	}
	if f.OccurredTo != nil && sc.OccurredAt.After(*f.OccurredTo) {
		return false
	}
	return true
}

// withName copies sc with the owner's current name, as the join does.
func (s *Store) withName(sc models.Score) *models.Score {
	sc.PlayerName = s.players[sc.PlayerID].Name
	return &sc
}

func (s *Store) removeScore(id uuid.UUID, sc models.Score) {
	delete(s.scores, id)
	delete(s.entries, keyOf(sc))
}

func keyOf(sc models.Score) entryKey {
	return entryKey{
		playerID:   sc.PlayerID,
		value:      sc.Value,
		occurredAt: models.NormalizeTime(sc.OccurredAt).UnixMicro(),
	}
}

func compareFor(order repositories.ScoreOrder) func(a, b models.Score) int {
	byID := func(a, b models.Score) int { return cmp.Compare(a.ID.String(), b.ID.String()) }
	return func(a, b models.Score) int {
		var c int
		switch order {
		case repositories.OrderTimeAsc:
			c = a.OccurredAt.Compare(b.OccurredAt)
		case repositories.OrderScoreDesc:
			c = cmp.Compare(b.Value, a.Value)
		case repositories.OrderScoreAsc:
			c = cmp.Compare(a.Value, b.Value)
		default:
			c = b.OccurredAt.Compare(a.OccurredAt)
		}
		if c != 0 {
			return c
		}
		return byID(a, b)
	}
}
