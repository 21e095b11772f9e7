package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is one point of a player's score history.
type HistoryEntry struct {
	Value      ScoreValue
	OccurredAt time.Time
}

// PlayerStats is the read model presented for a player. It is derived from
// the player's score rows and never stored.
type PlayerStats struct {
	Name         PlayerName
	TopScore     *ScoreValue // nil when the player has no scores
	LowScore     *ScoreValue // nil when the player has no scores
	AverageScore int64
	History      []HistoryEntry // most recent first
}

// PageInfo describes one page of a filtered listing.
type PageInfo struct {
	Page       int // 1-indexed
	Items      int // rows on this page
	TotalPages int
	TotalCount int
}

// ScoreView is the presentation form of a score.
type ScoreView struct {
	ID         uuid.UUID
	Name       PlayerName
	Value      ScoreValue
	OccurredAt time.Time
}
