package services

import (
	"slices"

	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
)

// ComputeStats derives the player read model from one snapshot of the
// player's scores. History is returned most recent first whatever order the
// entries arrive in. The average is truncated toward zero.
func ComputeStats(name models.PlayerName, entries []models.HistoryEntry) models.PlayerStats {
	history := slices.Clone(entries)
	slices.SortStableFunc(history, func(a, b models.HistoryEntry) int {
		return b.OccurredAt.Compare(a.OccurredAt)
	})
	if history == nil {
		history = []models.HistoryEntry{}
	}

	stats := models.PlayerStats{Name: name, History: history}
	if len(history) == 0 {
		return stats
	}

	top, low := history[0].Value, history[0].Value
	var sum int64
	for _, e := range history {
		top = max(top, e.Value)
		low = min(low, e.Value)
		sum += e.Value.Int64()
	}

	stats.TopScore = &top
	stats.LowScore = &low
	stats.AverageScore = sum / int64(len(history))
	return stats
}
