package domain

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors for the leaderboard domain. Use errors.Is() to check these.
var (
	// ErrPlayerNotFound indicates no player matches the requested name.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrScoreNotFound indicates the requested score does not exist.
	ErrScoreNotFound = errors.New("score not found")

	// ErrDuplicateScore indicates the player already has a score with the same
	// value and occurrence time.
	ErrDuplicateScore = errors.New("this score has already been posted")

	// ErrPlayerNameConflict indicates a concurrent writer created a player with
	// the same name first. It is transient: resolving again finds the winner.
	ErrPlayerNameConflict = errors.New("player name already taken")

	// ErrValidation is wrapped by every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError collects every field-level violation of one attempt.
type ValidationError struct {
	Fields map[string][]string
}

// Add records msg against field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// Empty reports whether no violation was recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// Err returns e as an error, or nil when nothing was recorded.
func (e *ValidationError) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

// Error renders the violations sorted by field, e.g.
// "validation failed: score must be greater than zero; time can't be blank".
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		for _, msg := range e.Fields[f] {
			parts = append(parts, f+" "+msg)
		}
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
