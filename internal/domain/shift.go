package domain

import (
	"sort"
	"time"
)

const (
	ShiftIST  = "IST"
	ShiftAPAC = "APAC"
	ShiftEMEA = "EMEA"
)

var ShiftNames = []string{ShiftAPAC, ShiftIST, ShiftEMEA}

func ValidShiftName(name string) bool {
	for _, s := range ShiftNames {
		if s == name {
			return true
		}
	}
	return false
}

// ShiftMap is the stored form of shift assignments: member -> date -> shift name.
type ShiftMap map[string]map[string]string

// ShiftRange is a compacted run of consecutive dates with the same shift.
type ShiftRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Shift string `json:"shift"`
}

// Compact merges contiguous equal-shift date runs per member into ranges.
// Presentation only: the stored form stays exploded per date.
func (m ShiftMap) Compact() map[string][]ShiftRange {
	out := make(map[string][]ShiftRange, len(m))
	for member, byDate := range m {
		dates := make([]string, 0, len(byDate))
		for date := range byDate {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		var ranges []ShiftRange
		for _, date := range dates {
			shift := byDate[date]
			if n := len(ranges); n > 0 && ranges[n-1].Shift == shift && nextDay(ranges[n-1].End) == date {
				ranges[n-1].End = date
				continue
			}
			ranges = append(ranges, ShiftRange{Start: date, End: date, Shift: shift})
		}
		out[member] = ranges
	}
	return out
}

func nextDay(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format("2006-01-02")
}
