package statusutil

import (
	"errors"
	"strings"
	"time"

	"photolicense-cli/internal/model"
)

// ExpiringSoonWindowDays is how far ahead (inclusive) an expiry counts as "soon".
const ExpiringSoonWindowDays = 30

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// ParseDate parses a YYYY-MM-DD date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// civilDay maps t's calendar date in its own location onto UTC midnight, where
// every day is exactly 24h long.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of calendar days from now's date to expiry.
// Negative values mean the date has passed. ok is false when expiry does not parse.
func DaysUntil(expiry string, now time.Time) (days int, ok bool) {
	exp, err := ParseDate(expiry, now.Location())
	if err != nil {
		return 0, false
	}
	return int(civilDay(exp).Sub(civilDay(now)) / (24 * time.Hour)), true
}

// Derive computes a license status from its expiry date at the moment now.
//
// A missing or unparseable expiry date is treated as open-ended (active).
func Derive(expiry string, now time.Time) model.Status {
	days, ok := DaysUntil(expiry, now)
	if !ok {
		return model.StatusActive
	}
	switch {
	case days < 0:
		return model.StatusExpired
	case days <= ExpiringSoonWindowDays:
		return model.StatusExpiringSoon
	default:
		return model.StatusActive
	}
}
