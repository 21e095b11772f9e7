package models

import (
	"time"

	"github.com/google/uuid"
)

// Score is a single recorded result. PlayerName is denormalized from the
// owning player for presentation; PlayerID is the reference that is stored.
type Score struct {
	ID         uuid.UUID
	PlayerID   uuid.UUID
	PlayerName PlayerName
	Value      ScoreValue
	OccurredAt time.Time
	CreatedAt  time.Time
}

// NewScore constructs a Score for player with a generated ID and the current
// insertion timestamp.
func NewScore(player *Player, value ScoreValue, occurredAt time.Time) *Score {
	return &Score{
		ID:         uuid.New(),
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Value:      value,
		OccurredAt: NormalizeTime(occurredAt),
		CreatedAt:  time.Now().UTC(),
	}
}

// View returns the presentation form of s.
func (s *Score) View() ScoreView {
	return ScoreView{
		ID:         s.ID,
		Name:       s.PlayerName,
		Value:      s.Value,
		OccurredAt: s.OccurredAt,
	}
}
