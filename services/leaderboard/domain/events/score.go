package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the leaderboard context.
const (
	TopicScoreRecorded = "leaderboard.score.recorded"
	TopicScoreDeleted  = "leaderboard.score.deleted"
)

// ScoreRecordedEvent is published in the same transaction that inserts a score.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicScoreRecorded).
type ScoreRecordedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ScoreID    uuid.UUID `json:"score_id"`
	PlayerID   uuid.UUID `json:"player_id"`
	PlayerName string    `json:"player_name"`
	Score      int32     `json:"score"`
	OccurredAt time.Time `json:"occurred_at"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ScoreDeletedEvent is published in the same transaction that deletes a score.
type ScoreDeletedEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	Version   int       `json:"version"`
	ScoreID   uuid.UUID `json:"score_id"`
	DeletedAt time.Time `json:"deleted_at"`
}
