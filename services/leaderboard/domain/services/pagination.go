package services

import (
	"math"

	"github.com/ghuser/scoreboard/services/leaderboard/domain"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/repositories"
)

// PageSize is the fixed number of scores per listing page.
const PageSize = 50

// MaxOffset caps the row offset so it fits the int32 OFFSET parameter. Any
// page past it is necessarily empty.
const MaxOffset = math.MaxInt32

// PageQuery converts a 1-indexed page number into repository query options.
// Pages below 1 are rejected with a validation error on the page field; pages
// beyond MaxOffset are clamped to it and so list nothing.
func PageQuery(page int) (repositories.QueryOpts, error) {
	if page < 1 {
		var verr domain.ValidationError
		verr.Add(FieldPage, "must be greater than or equal to 1")
		return repositories.QueryOpts{}, verr.Err()
	}
	if page-1 > MaxOffset/PageSize {
		return repositories.QueryOpts{Limit: PageSize, Offset: MaxOffset}, nil
	}
	return repositories.QueryOpts{Limit: PageSize, Offset: (page - 1) * PageSize}, nil
}

// NewPageInfo describes page given how many rows it holds and how many rows
// matched in total. There is always at least one page, possibly empty.
func NewPageInfo(page, items, total int) models.PageInfo {
	pages := (total + PageSize - 1) / PageSize
	if pages < 1 {
		pages = 1
	}
	return models.PageInfo{
		Page:       page,
		Items:      items,
		TotalPages: pages,
		TotalCount: total,
	}
}
