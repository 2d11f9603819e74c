// Package memory is an in-process directory backend for tests and
// local development.
package memory

import (
	"context"
	"sync"

	"timeplanner/internal/user/repository"
)

// Repository keeps directory entries in a map behind a mutex.
type Repository struct {
	mu       sync.RWMutex
	accounts map[string]repository.AccountRecord
}

// New creates an empty in-memory directory.
func New() *Repository {
	return &Repository{accounts: make(map[string]repository.AccountRecord)}
}

func (r *Repository) Create(ctx context.Context, rec repository.AccountRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[rec.ID] = rec
	return nil
}

func (r *Repository) FetchAll(ctx context.Context) ([]repository.AccountRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recs := make([]repository.AccountRecord, 0, len(r.accounts))
	for _, rec := range r.accounts {
		recs = append(recs, rec)
	}
	return recs, nil
}

func (r *Repository) GetByName(ctx context.Context, name, surname string) (repository.AccountRecord, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.accounts {
		if rec.Name == name && rec.Surname == surname {
			return rec, true, nil
		}
	}
	return repository.AccountRecord{}, false, nil
}
