package services

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
)

func at(minute int) time.Time {
	return time.Date(2020, 5, 20, 10, minute, 2, 0, time.UTC)
}

func valuePtr(v models.ScoreValue) *models.ScoreValue { return &v }

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.HistoryEntry
		want    models.PlayerStats
	}{
		{
			name: "average truncates toward zero",
			entries: []models.HistoryEntry{
				{Value: 1300, OccurredAt: at(40)},
				{Value: 1200, OccurredAt: at(30)},
				{Value: 1000, OccurredAt: at(20)},
			},
			want: models.PlayerStats{
				Name:         "edo",
				TopScore:     valuePtr(1300),
				LowScore:     valuePtr(1000),
				AverageScore: 1166,
				History: []models.HistoryEntry{
					{Value: 1300, OccurredAt: at(40)},
					{Value: 1200, OccurredAt: at(30)},
					{Value: 1000, OccurredAt: at(20)},
				},
			},
		},
		{
			name: "history sorted most recent first regardless of input order",
			entries: []models.HistoryEntry{
				{Value: 5, OccurredAt: at(10)},
				{Value: 9, OccurredAt: at(50)},
				{Value: 7, OccurredAt: at(30)},
			},
			want: models.PlayerStats{
				Name:         "edo",
				TopScore:     valuePtr(9),
				LowScore:     valuePtr(5),
				AverageScore: 7,
				History: []models.HistoryEntry{
					{Value: 9, OccurredAt: at(50)},
					{Value: 7, OccurredAt: at(30)},
					{Value: 5, OccurredAt: at(10)},
				},
			},
		},
		{
			name:    "single score",
			entries: []models.HistoryEntry{{Value: 42, OccurredAt: at(1)}},
			want: models.PlayerStats{
				Name:         "edo",
				TopScore:     valuePtr(42),
				LowScore:     valuePtr(42),
				AverageScore: 42,
				History:      []models.HistoryEntry{{Value: 42, OccurredAt: at(1)}},
			},
		},
		{
			name: "no scores",
			want: models.PlayerStats{Name: "edo", History: []models.HistoryEntry{}},
		},
		{
			name: "sum beyond int32 does not overflow",
			entries: []models.HistoryEntry{
				{Value: 2147483647, OccurredAt: at(2)},
				{Value: 2147483646, OccurredAt: at(1)},
			},
			want: models.PlayerStats{
				Name:         "edo",
				TopScore:     valuePtr(2147483647),
				LowScore:     valuePtr(2147483646),
				AverageScore: 2147483646,
				History: []models.HistoryEntry{
					{Value: 2147483647, OccurredAt: at(2)},
					{Value: 2147483646, OccurredAt: at(1)},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats("edo", tt.entries)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ComputeStats mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeStats_DoesNotMutateInput(t *testing.T) {
	entries := []models.HistoryEntry{
		{Value: 1, OccurredAt: at(1)},
		{Value: 2, OccurredAt: at(2)},
	}
	_ = ComputeStats("edo", entries)
	if entries[0].Value != 1 || entries[1].Value != 2 {
		t.Fatalf("input reordered: %+v", entries)
	}
}
