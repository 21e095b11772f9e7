// Package services contains stateless domain services for the leaderboard
// bounded context. Domain services enforce business rules that operate purely
// on domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"time"

	"github.com/ghuser/scoreboard/services/leaderboard/domain"
	"github.com/ghuser/scoreboard/services/leaderboard/domain/models"
)

// Field names reported in validation errors. They match the external
// attribute names of a score.
const (
	FieldName  = "name"
	FieldScore = "score"
	FieldTime  = "time"
	FieldPage  = "page"
)

// Submission is a score candidate whose fields all passed validation.
type Submission struct {
	Name       models.PlayerName
	Value      models.ScoreValue
	OccurredAt time.Time
}

// ValidateSubmission checks every field of a score candidate and reports all
// violations together as a *domain.ValidationError.
//
// Rules:
//   - score must be present and strictly positive
//   - time must be present and parseable
//   - name must be present, not blank, and at most 255 characters
func ValidateSubmission(name string, value *int64, occurredAt string) (Submission, error) {
	var (
		sub  Submission
		verr domain.ValidationError
		err  error
	)

	if sub.Value, err = models.NewScoreValue(value); err != nil {
		verr.Add(FieldScore, err.Error())
	}
	if sub.OccurredAt, err = models.ParseOccurredAt(occurredAt); err != nil {
		verr.Add(FieldTime, err.Error())
	}
	if sub.Name, err = models.NewPlayerName(name); err != nil {
		verr.Add(FieldName, err.Error())
	}

	if err := verr.Err(); err != nil {
		return Submission{}, err
	}
	return sub, nil
}
