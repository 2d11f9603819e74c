package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"timeplanner/internal/model"
	"timeplanner/internal/task/repository"
	pkgLog "timeplanner/pkg/log"
)

// Registry hands out one Store per user, hydrating it from the
// persistence gateway on first access.
type Registry struct {
	l    pkgLog.Logger
	repo repository.TaskRepository

	mu     sync.Mutex
	stores map[string]*Store

	now func() time.Time
}

// NewRegistry creates an empty registry backed by the given gateway.
func NewRegistry(l pkgLog.Logger, repo repository.TaskRepository) *Registry {
	return &Registry{
		l:      l,
		repo:   repo,
		stores: make(map[string]*Store),
		now:    time.Now,
	}
}

// Get returns the user's store, loading their collection on the first
// call. Records that fail to decode are skipped with a warning so one
// corrupt document never blocks the rest of the collection.
func (r *Registry) Get(ctx context.Context, userKey string) (*Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[userKey]; ok {
		return s, nil
	}

	recs, err := r.repo.FetchAll(ctx, userKey)
	if err != nil {
		return nil, fmt.Errorf("store: hydrate %s: %w", userKey, err)
	}

	s := New(r.now())
	tasks := make([]model.Task, 0, len(recs))
	for _, rec := range recs {
		task, err := rec.Decode()
		if err != nil {
			r.l.Warnf(ctx, "store: skipping undecodable task %s/%s: %v", userKey, rec.ID, err)
			continue
		}
		tasks = append(tasks, task)
	}
	s.ReplaceAll(tasks)

	r.stores[userKey] = s
	return s, nil
}

// Lookup returns the user's store only if it is already resident.
// Non-resident users need no mirroring: their next Get rehydrates.
func (r *Registry) Lookup(userKey string) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stores[userKey]
	return s, ok
}

// Evict drops the user's store on sign-out. The next Get rehydrates.
func (r *Registry) Evict(userKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[userKey]; ok {
		s.Clear()
		delete(r.stores, userKey)
	}
}
