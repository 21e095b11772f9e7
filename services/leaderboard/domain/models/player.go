package models

import (
	"time"

	"github.com/google/uuid"
)

// Player is the identity that scores are attributed to.
type Player struct {
	ID        uuid.UUID
	Name      PlayerName
	CreatedAt time.Time
}

// NewPlayer constructs a Player with a generated ID and the current timestamp.
func NewPlayer(name PlayerName) *Player {
	return &Player{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
