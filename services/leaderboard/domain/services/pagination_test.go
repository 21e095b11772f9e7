package services

import (
	"errors"
	"math"
	"testing"

	"github.com/ghuser/scoreboard/services/leaderboard/domain"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/repositories"
)

func TestPageQuery(t *testing.T) {
	tests := []struct {
		page    int
		want    repositories.QueryOpts
		wantErr bool
	}{
		{1, repositories.QueryOpts{Limit: 50, Offset: 0}, false},
		{2, repositories.QueryOpts{Limit: 50, Offset: 50}, false},
		{4, repositories.QueryOpts{Limit: 50, Offset: 150}, false},
		{42949673, repositories.QueryOpts{Limit: 50, Offset: 2147483600}, false},
		{42949674, repositories.QueryOpts{Limit: 50, Offset: math.MaxInt32}, false},
		{50_000_000, repositories.QueryOpts{Limit: 50, Offset: math.MaxInt32}, false},
		{math.MaxInt, repositories.QueryOpts{Limit: 50, Offset: math.MaxInt32}, false},
		{0, repositories.QueryOpts{}, true},
		{-3, repositories.QueryOpts{}, true},
	}

	for _, tt := range tests {
		got, err := PageQuery(tt.page)
		if (err != nil) != tt.wantErr {
			t.Fatalf("PageQuery(%d) error = %v, wantErr = %v", tt.page, err, tt.wantErr)
		}
		if tt.wantErr && !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("PageQuery(%d) expected ErrValidation, got %v", tt.page, err)
		}
		if got != tt.want {
			t.Fatalf("PageQuery(%d) = %+v, want %+v", tt.page, got, tt.want)
		}
	}
}

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name               string
		page, items, total int
		want               models.PageInfo
	}{
		{"first of four", 1, 50, 154, models.PageInfo{Page: 1, Items: 50, TotalPages: 4, TotalCount: 154}},
		{"last partial page", 4, 4, 154, models.PageInfo{Page: 4, Items: 4, TotalPages: 4, TotalCount: 154}},
		{"beyond last page", 9, 0, 154, models.PageInfo{Page: 9, Items: 0, TotalPages: 4, TotalCount: 154}},
		{"exact multiple", 2, 50, 100, models.PageInfo{Page: 2, Items: 50, TotalPages: 2, TotalCount: 100}},
		{"empty result", 1, 0, 0, models.PageInfo{Page: 1, Items: 0, TotalPages: 1, TotalCount: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPageInfo(tt.page, tt.items, tt.total); got != tt.want {
				t.Fatalf("NewPageInfo = %+v, want %+v", got, tt.want)
			}
		})
	}
}
