package tui

import (
	"time"

	"photolicense-cli/internal/statusutil"
)

func daysInMonth(y int, m time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampDay(y int, m time.Month, d int) int {
	if d < 1 {
		return 1
	}
	max := daysInMonth(y, m)
	if d > max {
		return max
	}
	return d
}

// bumpDate moves a YYYY-MM-DD value by days and months. Months keep the day of
// month where possible (Jan 31 + 1 month is Feb 28/29). Empty or unparseable
// input starts from today.
func bumpDate(s string, days, months int, now time.Time) string {
	t, err := statusutil.ParseDate(s, time.UTC)
	if err != nil {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Format(statusutil.DateLayout)
	}
	if months != 0 {
		y, m, d := t.Date()
		total := int(m) - 1 + months
		y += total / 12
		total %= 12
		if total < 0 {
			total += 12
			y--
		}
		nm := time.Month(total + 1)
		t = time.Date(y, nm, clampDay(y, nm, d), 0, 0, 0, 0, time.UTC)
	}
	return t.AddDate(0, 0, days).Format(statusutil.DateLayout)
}
