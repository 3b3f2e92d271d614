package repository

import (
	"fmt"

	"github.com/Dutt123/ossvacationtracker/internal/domain"
	"github.com/Dutt123/ossvacationtracker/internal/utils"
)

type AssignShiftParams struct {
	Member       string
	StartDate    string
	EndDate      string
	Shift        string
	SkipWeekends bool
}

type AssignShiftResult struct {
	Member        string   `json:"member"`
	Shift         string   `json:"shift"`
	DatesAssigned []string `json:"datesAssigned"`
	TotalDates    int      `json:"totalDates"`
}

func (r *Repository) GetShifts() (domain.ShiftMap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.Shifts, nil
}

// AssignShiftRange writes the shift for every date from start to end
// inclusive, overwriting prior assignments (last write for a date wins).
// The store is persisted once after the whole range is written.
func (r *Repository) AssignShiftRange(p AssignShiftParams) (*AssignShiftResult, error) {
	if !domain.ValidShiftName(p.Shift) {
		return nil, fmt.Errorf("%w: unknown shift %q", ErrValidation, p.Shift)
	}
	dates, err := utils.DateRange(p.StartDate, p.EndDate, p.SkipWeekends)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if dates == nil {
		dates = []string{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	if !doc.HasMember(p.Member) {
		return nil, fmt.Errorf("%w: member %q is not on the roster", ErrValidation, p.Member)
	}

	// A range that filters down to nothing writes nothing, not even an
	// empty map entry for the member.
	if len(dates) > 0 {
		if doc.Shifts[p.Member] == nil {
			doc.Shifts[p.Member] = map[string]string{}
		}
		for _, date := range dates {
			doc.Shifts[p.Member][date] = p.Shift
		}
		if err := r.save(doc); err != nil {
			return nil, err
		}
	}
	return &AssignShiftResult{
		Member:        p.Member,
		Shift:         p.Shift,
		DatesAssigned: dates,
		TotalDates:    len(doc.Shifts[p.Member]),
	}, nil
}
