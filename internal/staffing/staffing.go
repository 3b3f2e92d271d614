// Package staffing derives daily on-duty figures from the roster and the
// leave records. Everything here is recomputed per call and never persisted.
package staffing

import (
	"math"
	"sort"

	"github.com/Dutt123/ossvacationtracker/internal/domain"
)

type OnDutyStats struct {
	Date    string `json:"date"`
	Total   int    `json:"total"`
	OnLeave int    `json:"onLeave"`
	OnDuty  int    `json:"onDuty"`
	Pct     int    `json:"pct"`
}

// OnDuty computes the staffing figures for one date. Eligible members are
// the roster minus the exclusion list; a member counts as on leave when an
// approved leave exists for that date. An empty eligible set reports 100%.
func OnDuty(date string, members, exclude []string, leaves []domain.Leave) OnDutyStats {
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	eligible := make(map[string]bool, len(members))
	for _, name := range members {
		if !excluded[name] {
			eligible[name] = true
		}
	}

	stats := OnDutyStats{Date: date, Total: len(eligible)}
	if stats.Total == 0 {
		stats.Pct = 100
		return stats
	}

	for _, l := range leaves {
		if l.Date == date && l.Status == domain.LeaveStatusApproved && eligible[l.Member] {
			stats.OnLeave++
		}
	}
	stats.OnDuty = stats.Total - stats.OnLeave
	stats.Pct = int(math.Round(float64(stats.OnDuty) / float64(stats.Total) * 100))
	return stats
}

// PendingOrder ranks a member among the not-yet-approved requests for a
// date, ordered by creation time (ties broken by ascending id so the order
// is stable). Returns the 1-based position, or 0 when the member has no
// pending request on that date.
func PendingOrder(member, date string, leaves []domain.Leave) int {
	var pending []domain.Leave
	for _, l := range leaves {
		if l.Date == date && l.Status != domain.LeaveStatusApproved {
			pending = append(pending, l)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].CreatedAt.Equal(pending[j].CreatedAt) {
			return pending[i].ID < pending[j].ID
		}
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})

	for i, l := range pending {
		if l.Member == member {
			return i + 1
		}
	}
	return 0
}
