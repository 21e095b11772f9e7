package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/scoreboard/services/leaderboard/domain"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/repositories"
	domainsvcs "github.com/ghuser/scoreboard/services/leaderboard/domain/services"
)

const when = "2020-05-20T10:40:02Z"

func (f *fixture) submit(t *testing.T, name string, value int64, at string) *models.Score {
	t.Helper()
	score, err := f.svcs.Scores.Submit(context.Background(), name, int64Ptr(value), at)
	if err != nil {
		t.Fatalf("Submit(%q, %d, %q): %v", name, value, at, err)
	}
	return score
}

func TestSubmit_StoresScore(t *testing.T) {
	f := newFixture(t)

	score := f.submit(t, "Edo", 1300, when)

	if score.PlayerName != "Edo" || score.Value != 1300 {
		t.Errorf("unexpected score: %+v", score)
	}
	if want := time.Date(2020, 5, 20, 10, 40, 2, 0, time.UTC); !score.OccurredAt.Equal(want) {
		t.Errorf("OccurredAt = %s, want %s", score.OccurredAt, want)
	}
	if got := f.counter(t, "leaderboard.scores.submitted"); got != 1 {
		t.Errorf("submitted counter = %d, want 1", got)
	}
}

func TestSubmit_ReusesPlayerAcrossCase(t *testing.T) {
	f := newFixture(t)

	first := f.submit(t, "Edo", 1, when)
	second := f.submit(t, "eDo", 2, when)

	if first.PlayerID != second.PlayerID {
		t.Fatal("expected both scores to belong to one player")
	}
	if second.PlayerName != "Edo" {
		t.Errorf("PlayerName = %q, want the stored spelling", second.PlayerName)
	}
}

func TestSubmit_Duplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.submit(t, "Edo", 100, when)

	_, err := f.svcs.Scores.Submit(ctx, "EDO", int64Ptr(100), "2020-05-20 10:40:02")
	if !errors.Is(err, domain.ErrDuplicateScore) {
		t.Fatalf("got %v, want ErrDuplicateScore", err)
	}
	if got := f.counter(t, "leaderboard.scores.duplicates"); got != 1 {
		t.Errorf("duplicates counter = %d, want 1", got)
	}

	// Another player may post the same value at the same time.
	f.submit(t, "Jane", 100, when)
	// Sub-microsecond differences collapse to the stored precision.
	_, err = f.svcs.Scores.Submit(ctx, "Jane", int64Ptr(100), "2020-05-20T10:40:02.0000004Z")
	if !errors.Is(err, domain.ErrDuplicateScore) {
		t.Fatalf("got %v, want ErrDuplicateScore", err)
	}
}

func TestSubmit_DistinctEntriesAllSucceed(t *testing.T) {
	f := newFixture(t)

	for i := range 10 {
		f.submit(t, "Edo", int64(100+i), when)
		f.submit(t, "Edo", 100, fmt.Sprintf("2020-05-21T10:00:%02dZ", i))
	}

	_, page, err := f.svcs.Scores.List(context.Background(), repositories.ScoreFilter{}, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.TotalCount != 20 {
		t.Errorf("TotalCount = %d, want 20", page.TotalCount)
	}
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name       string
		player     string
		value      *int64
		at         string
		wantFields []string
	}{
		{"zero score", "Edo", int64Ptr(0), when, []string{domainsvcs.FieldScore}},
		{"negative score", "Edo", int64Ptr(-5), when, []string{domainsvcs.FieldScore}},
		{"missing score", "Edo", nil, when, []string{domainsvcs.FieldScore}},
		{"missing time", "Edo", int64Ptr(10), "", []string{domainsvcs.FieldTime}},
		{"garbage time", "Edo", int64Ptr(10), "yesterday", []string{domainsvcs.FieldTime}},
		{"blank name", "  ", int64Ptr(10), when, []string{domainsvcs.FieldName}},
		{"everything wrong", "", int64Ptr(0), "", []string{domainsvcs.FieldName, domainsvcs.FieldScore, domainsvcs.FieldTime}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.svcs.Scores.Submit(context.Background(), tt.player, tt.value, tt.at)

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want *ValidationError", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Errorf("fields = %v, want %v", verr.Fields, tt.wantFields)
			}
			for _, field := range tt.wantFields {
				if len(verr.Fields[field]) == 0 {
					t.Errorf("missing violation for %s in %v", field, verr.Fields)
				}
			}
			if _, err := f.store.FindByName(context.Background(), "Edo"); !errors.Is(err, domain.ErrPlayerNotFound) {
				t.Error("an invalid submission must not create a player")
			}
		})
	}
}

func TestSubmit_ConcurrentNewPlayer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const writers = 16
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := range writers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := f.svcs.Scores.Submit(ctx, "Nova", int64Ptr(int64(i+1)), when); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("Submit: %v", err)
	}

	name := "Nova"
	scores, page, err := f.svcs.Scores.List(ctx, repositories.ScoreFilter{Name: &name}, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.TotalCount != writers {
		t.Fatalf("TotalCount = %d, want %d", page.TotalCount, writers)
	}
	player, err := f.store.FindByName(ctx, "nova")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	for _, sc := range scores {
		if sc.Name != player.Name {
			t.Errorf("score %s attributed to %q", sc.ID, sc.Name)
		}
	}
}

func TestGetAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	score := f.submit(t, "Edo", 10, when)

	view, err := f.svcs.Scores.Get(ctx, score.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if view.ID != score.ID || view.Name != "Edo" || view.Value != 10 {
		t.Errorf("unexpected view: %+v", view)
	}

	if err := f.svcs.Scores.Delete(ctx, score.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := f.svcs.Scores.Get(ctx, score.ID); !errors.Is(err, domain.ErrScoreNotFound) {
		t.Errorf("Get after delete: got %v, want ErrScoreNotFound", err)
	}
	if err := f.svcs.Scores.Delete(ctx, score.ID); !errors.Is(err, domain.ErrScoreNotFound) {
		t.Errorf("second Delete: got %v, want ErrScoreNotFound", err)
	}
}

func TestGet_ErrorCarriesID(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	_, err := f.svcs.Scores.Get(context.Background(), id)
	if !errors.Is(err, domain.ErrScoreNotFound) {
		t.Fatalf("got %v, want ErrScoreNotFound", err)
	}
	if want := id.String(); !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not mention %s", err, want)
	}
}

func TestList_Pagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 120 {
		f.submit(t, "Edo", int64(i+1), start.Add(time.Duration(i)*time.Minute).Format(time.RFC3339))
	}

	tests := []struct {
		page      int
		wantItems int
		wantFirst models.ScoreValue
	}{
		{1, 50, 120},
		{2, 50, 70},
		{3, 20, 20},
		{4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			views, page, err := f.svcs.Scores.List(ctx, repositories.ScoreFilter{}, tt.page)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			want := models.PageInfo{Page: tt.page, Items: tt.wantItems, TotalPages: 3, TotalCount: 120}
			if page != want {
				t.Errorf("page = %+v, want %+v", page, want)
			}
			if len(views) != tt.wantItems {
				t.Fatalf("got %d views, want %d", len(views), tt.wantItems)
			}
			if tt.wantItems > 0 && views[0].Value != tt.wantFirst {
				t.Errorf("first value = %d, want %d", views[0].Value, tt.wantFirst)
			}
		})
	}
}

func TestList_HugePageIsEmpty(t *testing.T) {
	f := newFixture(t)
	f.submit(t, "Edo", 10, when)
	f.submit(t, "Edo", 20, when)

	for _, pageNum := range []int{50_000_000, math.MaxInt} {
		t.Run(fmt.Sprintf("page %d", pageNum), func(t *testing.T) {
			views, page, err := f.svcs.Scores.List(context.Background(), repositories.ScoreFilter{}, pageNum)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(views) != 0 {
				t.Errorf("got %d views, want none", len(views))
			}
			want := models.PageInfo{Page: pageNum, Items: 0, TotalPages: 1, TotalCount: 2}
			if page != want {
				t.Errorf("page = %+v, want %+v", page, want)
			}
		})
	}
}

func TestList_InvalidPage(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.svcs.Scores.List(context.Background(), repositories.ScoreFilter{}, 0)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || len(verr.Fields[domainsvcs.FieldPage]) == 0 {
		t.Fatalf("got %v, want validation error on page", err)
	}
}

func TestList_TimeRange(t *testing.T) {
	f := newFixture(t)
	f.submit(t, "Edo", 1, "2020-05-20T09:00:00Z")
	f.submit(t, "Edo", 2, "2020-05-20T10:00:00Z")
	f.submit(t, "Jane", 3, "2020-05-20T11:00:00Z")
	f.submit(t, "Jane", 4, "2020-05-20T12:00:00Z")

	from := time.Date(2020, 5, 20, 10, 0, 0, 0, time.UTC)
	to := time.Date(2020, 5, 20, 11, 0, 0, 0, time.UTC)
	views, page, err := f.svcs.Scores.List(context.Background(),
		repositories.ScoreFilter{OccurredFrom: &from, OccurredTo: &to}, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.TotalCount != 2 || len(views) != 2 {
		t.Fatalf("got %d of %d, want 2 of 2", len(views), page.TotalCount)
	}
	if views[0].Value != 3 || views[1].Value != 2 {
		t.Errorf("values = %d, %d, want 3, 2 (most recent first)", views[0].Value, views[1].Value)
	}
}
