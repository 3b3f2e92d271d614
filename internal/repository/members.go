package repository

import (
	"fmt"
	"strings"
)

type Roster struct {
	Members           []string
	ExcludeFromOnDuty []string
}

func (r *Repository) GetRoster() (*Roster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return &Roster{
		Members:           doc.Members,
		ExcludeFromOnDuty: doc.ExcludeFromOnDuty,
	}, nil
}

func (r *Repository) AddMember(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return "", err
	}
	if doc.HasMember(name) {
		return "", fmt.Errorf("member %q %w", name, ErrConflict)
	}

	doc.Members = append(doc.Members, name)
	if err := r.save(doc); err != nil {
		return "", err
	}
	return name, nil
}

// RenameMember renames a roster entry and cascades the new name to every
// collection keyed by it: leaves, shift assignments, the admin set and the
// on-duty exclusion list.
func (r *Repository) RenameMember(oldName, newName string) (string, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return "", fmt.Errorf("%w: new name is required", ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return "", err
	}

	idx := -1
	for i, m := range doc.Members {
		if m == oldName {
			idx = i
			break
		}
	}
	if idx == -1 {
		return "", fmt.Errorf("member %q %w", oldName, ErrNotFound)
	}
	if newName != oldName && doc.HasMember(newName) {
		return "", fmt.Errorf("member %q %w", newName, ErrConflict)
	}

	doc.Members[idx] = newName
	for i := range doc.Leaves {
		if doc.Leaves[i].Member == oldName {
			doc.Leaves[i].Member = newName
		}
	}
	if byDate, ok := doc.Shifts[oldName]; ok {
		delete(doc.Shifts, oldName)
		doc.Shifts[newName] = byDate
	}
	renameAll(doc.Admins, oldName, newName)
	renameAll(doc.ExcludeFromOnDuty, oldName, newName)

	if err := r.save(doc); err != nil {
		return "", err
	}
	return newName, nil
}

// RemoveMember deletes a roster entry and everything keyed by it.
func (r *Repository) RemoveMember(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	if !doc.HasMember(name) {
		return fmt.Errorf("member %q %w", name, ErrNotFound)
	}

	doc.Members = removeAll(doc.Members, name)
	doc.Admins = removeAll(doc.Admins, name)
	doc.ExcludeFromOnDuty = removeAll(doc.ExcludeFromOnDuty, name)
	delete(doc.Shifts, name)

	kept := doc.Leaves[:0]
	for _, l := range doc.Leaves {
		if l.Member != name {
			kept = append(kept, l)
		}
	}
	doc.Leaves = kept

	return r.save(doc)
}

func renameAll(names []string, oldName, newName string) {
	for i, n := range names {
		if n == oldName {
			names[i] = newName
		}
	}
}

func removeAll(names []string, name string) []string {
	kept := names[:0]
	for _, n := range names {
		if n != name {
			kept = append(kept, n)
		}
	}
	return kept
}
