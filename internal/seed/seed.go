package seed

import (
	"time"

	"github.com/Dutt123/ossvacationtracker/internal/domain"
)

// DefaultDocument is the example dataset written on first boot so the
// calendar is not empty.
func DefaultDocument() *domain.Document {
	createdAt := time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)

	return &domain.Document{
		Admins: []string{"Asha Rao"},
		Members: []string{
			"Asha Rao",
			"Kiran Kumar",
			"Vikram Nair",
			"Neha Joshi",
			"Rohit Menon",
			"Priya Pillai",
			"Yash Gupta",
			"Rahul Verma",
			"Meghana Reddy",
		},
		Leaves: []domain.Leave{
			{
				ID:        1,
				Member:    "Rahul Verma",
				Date:      "2025-10-02",
				Category:  "PH",
				Status:    domain.LeaveStatusApproved,
				CreatedAt: createdAt,
			},
			{
				ID:        2,
				Member:    "Yash Gupta",
				Date:      "2025-10-15",
				Category:  "PL",
				Status:    domain.LeaveStatusApproved,
				CreatedAt: createdAt,
			},
		},
		Shifts: domain.ShiftMap{
			"Kiran Kumar": {
				"2025-10-06": domain.ShiftIST,
				"2025-10-07": domain.ShiftIST,
				"2025-10-08": domain.ShiftIST,
			},
		},
		ExcludeFromOnDuty: []string{},
	}
}
