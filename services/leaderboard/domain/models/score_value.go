package models

import (
	"errors"
	"fmt"
	"math"
)

// ScoreValue is a strictly positive score. The column is a 32-bit integer.
type ScoreValue int32

// Errors returned by NewScoreValue.
var (
	ErrBlankScore       = errors.New("can't be blank")
	ErrScoreNotPositive = errors.New("must be greater than zero")
	ErrScoreTooLarge    = fmt.Errorf("must not exceed %d", math.MaxInt32)
)

// NewScoreValue validates v. A nil v means the value was not supplied.
func NewScoreValue(v *int64) (ScoreValue, error) {
	switch {
	case v == nil:
		return 0, ErrBlankScore
	case *v <= 0:
		return 0, ErrScoreNotPositive
	case *v > math.MaxInt32:
		return 0, ErrScoreTooLarge
	}
	return ScoreValue(*v), nil
}

// Int64 returns the value widened for arithmetic.
func (v ScoreValue) Int64() int64 {
	return int64(v)
}
