package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// PlayerName is a value object for a player's identity key.
// Equality between names is case-insensitive; that comparison belongs to the
// store (citext), so the value keeps the spelling it was created with.
type PlayerName string

// MaxPlayerNameLength is measured in characters, not bytes.
const MaxPlayerNameLength = 255

// Errors returned by NewPlayerName.
var (
	ErrBlankName   = errors.New("can't be blank")
	ErrNameTooLong = fmt.Errorf("must not exceed %d characters", MaxPlayerNameLength)
)

// NewPlayerName constructs a PlayerName or returns an error if it is blank or too long.
func NewPlayerName(s string) (PlayerName, error) {
	if strings.TrimSpace(s) == "" {
		return "", ErrBlankName
	}
	if utf8.RuneCountInString(s) > MaxPlayerNameLength {
		return "", ErrNameTooLong
	}
	return PlayerName(s), nil
}

// String returns the underlying string value.
func (n PlayerName) String() string {
	return string(n)
}
