package repository

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/Dutt123/ossvacationtracker/internal/config"
	"github.com/Dutt123/ossvacationtracker/internal/domain"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrForbidden  = errors.New("not allowed")
	ErrValidation = errors.New("invalid request")
)

// Repository owns the JSON document on disk. Every operation is a full
// read-modify-write cycle; the mutex serializes them so two concurrent
// requests cannot clobber each other's changes.
type Repository struct {
	cfg  *config.Config
	path string
	mu   sync.Mutex
}

func NewRepository(cfg *config.Config) *Repository {
	return &Repository{
		cfg:  cfg,
		path: cfg.Store.Path,
	}
}

// EnsureDataFile writes the seed document when the store does not exist yet.
// An existing store is loaded, repaired and written back so legacy documents
// pick up missing fields. A malformed store is left untouched so it can be
// inspected; reads fall back to empty defaults and the file is only replaced
// by the next successful mutation.
func (r *Repository) EnsureDataFile(seed *domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("no data file found, writing seed data", "path", r.path)
		return r.save(seed)
	}
	if err != nil {
		return err
	}

	doc := &domain.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		slog.Error("data file is malformed, leaving it in place", "path", r.path, "error", err)
		return nil
	}
	doc.Normalize()
	return r.save(doc)
}

// Replace overwrites the store with the given document.
func (r *Repository) Replace(doc *domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(doc)
}

// Document returns the full aggregate.
func (r *Repository) Document() (*domain.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// load reads and normalizes the document. A missing file yields empty
// defaults; a malformed file is logged and also yields empty defaults,
// surviving the request instead of crashing (the broken file is only
// replaced on the next successful mutation).
func (r *Repository) load() (*domain.Document, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewDocument(), nil
		}
		return nil, err
	}

	doc := &domain.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		slog.Error("data file is malformed, falling back to empty defaults", "path", r.path, "error", err)
		return domain.NewDocument(), nil
	}
	doc.Normalize()
	return doc, nil
}

// save writes the document atomically via a temp file and rename.
func (r *Repository) save(doc *domain.Document) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".data-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}
