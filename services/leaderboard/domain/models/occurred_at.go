package models

import (
	"errors"
	"strings"
	"time"
)

// Errors returned by ParseOccurredAt.
var (
	ErrBlankTime   = errors.New("can't be blank")
	ErrInvalidTime = errors.New("must be a valid timestamp (RFC 3339 is recommended)")
)

// occurredAtLayouts are tried in order. Layouts without a zone are read as UTC.
var occurredAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseOccurredAt parses the caller supplied occurrence time. The result is in
// UTC and truncated to microseconds, the precision the store keeps, so the
// value compared for duplicates is the value that gets stored.
func ParseOccurredAt(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrBlankTime
	}
	for _, layout := range occurredAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NormalizeTime(t), nil
		}
	}
	return time.Time{}, ErrInvalidTime
}

// NormalizeTime converts t to UTC at microsecond precision.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
