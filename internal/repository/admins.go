package repository

import (
	"fmt"
	"strings"
)

func (r *Repository) GetAdmins() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.Admins, nil
}

// AddAdmin grants admin capabilities. The name must already be on the roster.
func (r *Repository) AddAdmin(name string) (string, error) {
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
	if !doc.HasMember(name) {
		return "", fmt.Errorf("%w: %q is not on the roster", ErrValidation, name)
	}
	if doc.IsAdmin(name) {
		return "", fmt.Errorf("admin %q %w", name, ErrConflict)
	}

	doc.Admins = append(doc.Admins, name)
	if err := r.save(doc); err != nil {
		return "", err
	}
	return name, nil
}
