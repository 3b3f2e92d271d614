package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

func IsWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// DateRange lists every calendar date from start to end inclusive,
// optionally skipping Saturdays and Sundays.
func DateRange(start, end string, skipWeekends bool) ([]string, error) {
	startT, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	endT, err := ParseDate(end)
	if err != nil {
		return nil, err
	}
	if endT.Before(startT) {
		return nil, fmt.Errorf("end date %s is before start date %s", end, start)
	}

	var dates []string
	for t := startT; !t.After(endT); t = t.AddDate(0, 0, 1) {
		if skipWeekends && IsWeekend(t) {
			continue
		}
		dates = append(dates, t.Format(DateLayout))
	}
	return dates, nil
}
