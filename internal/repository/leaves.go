package repository

import (
	"fmt"
	"time"

	"github.com/Dutt123/ossvacationtracker/internal/domain"
	"github.com/Dutt123/ossvacationtracker/internal/utils"
)

type CreateLeaveParams struct {
	Member   string
	Date     string
	Category string
	AsAdmin  bool
}

func (r *Repository) GetAllLeaves() ([]domain.Leave, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.Leaves, nil
}

// CreateLeave validates and appends a leave record. The id is max(existing)+1.
// Status is approved when requested by an admin or when the category is in
// the auto-approve set, pending otherwise. At most one leave may exist per
// (member, date) pair; a second request is a conflict.
func (r *Repository) CreateLeave(p CreateLeaveParams) (*domain.Leave, error) {
	if _, err := utils.ParseDate(p.Date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, ok := domain.CategoryByCode(p.Category); !ok {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, p.Category)
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
	for _, l := range doc.Leaves {
		if l.Member == p.Member && l.Date == p.Date {
			return nil, fmt.Errorf("leave for %s on %s %w", p.Member, p.Date, ErrConflict)
		}
	}

	now := time.Now().UTC()
	leave := domain.Leave{
		ID:        doc.NextLeaveID(),
		Member:    p.Member,
		Date:      p.Date,
		Category:  p.Category,
		Status:    domain.LeaveStatusPending,
		CreatedAt: now,
	}
	if p.AsAdmin || r.autoApproved(p.Category) {
		leave.Status = domain.LeaveStatusApproved
	}
	if !p.AsAdmin {
		leave.RequestedAt = &now
	}

	doc.Leaves = append(doc.Leaves, leave)
	if err := r.save(doc); err != nil {
		return nil, err
	}
	return &leave, nil
}

// DeleteLeave removes a leave on behalf of requester. Admins may delete any
// leave; everyone else only their own still-pending requests.
func (r *Repository) DeleteLeave(id int, requester string) (*domain.Leave, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	for i, l := range doc.Leaves {
		if l.ID != id {
			continue
		}
		if !doc.IsAdmin(requester) {
			if l.Member != requester {
				return nil, fmt.Errorf("%w: only admins may delete another member's leave", ErrForbidden)
			}
			if l.Status != domain.LeaveStatusPending {
				return nil, fmt.Errorf("%w: approved leaves can only be deleted by an admin", ErrForbidden)
			}
		}
		doc.Leaves = append(doc.Leaves[:i], doc.Leaves[i+1:]...)
		if err := r.save(doc); err != nil {
			return nil, err
		}
		return &l, nil
	}
	return nil, fmt.Errorf("leave %d %w", id, ErrNotFound)
}

// ApproveLeave marks a leave approved. Approving an already-approved leave
// is a no-op that still succeeds.
func (r *Repository) ApproveLeave(id int) (*domain.Leave, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Leaves {
		if doc.Leaves[i].ID != id {
			continue
		}
		doc.Leaves[i].Status = domain.LeaveStatusApproved
		if err := r.save(doc); err != nil {
			return nil, err
		}
		return &doc.Leaves[i], nil
	}
	return nil, fmt.Errorf("leave %d %w", id, ErrNotFound)
}

func (r *Repository) autoApproved(category string) bool {
	for _, c := range r.cfg.Leave.AutoApproveCategories {
		if c == category {
			return true
		}
	}
	return false
}
