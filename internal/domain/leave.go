package domain

import (
	"time"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
)

type Leave struct {
	ID          int         `json:"id"`
	Member      string      `json:"member"`
	Date        string      `json:"date"` // YYYY-MM-DD
	Category    string      `json:"category"`
	Status      LeaveStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	RequestedAt *time.Time  `json:"requestedAt,omitempty"`
}
