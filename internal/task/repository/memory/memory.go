// Package memory is an in-process implementation of the task
// persistence gateway, used in tests and local development.
package memory

import (
	"context"
	"sync"

	"timeplanner/internal/task/repository"
)

type Repository struct {
	mu          sync.RWMutex
	collections map[string]map[string]repository.TaskRecord
}

var _ repository.TaskRepository = (*Repository)(nil)

// New creates an empty in-memory repository.
func New() *Repository {
	return &Repository{collections: make(map[string]map[string]repository.TaskRecord)}
}

func (r *Repository) FetchAll(ctx context.Context, collection string) ([]repository.TaskRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := r.collections[collection]
	recs := make([]repository.TaskRecord, 0, len(docs))
	for _, rec := range docs {
		recs = append(recs, cloneRecord(rec))
	}
	return recs, nil
}

func (r *Repository) Put(ctx context.Context, collection, docID string, rec repository.TaskRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, ok := r.collections[collection]
	if !ok {
		docs = make(map[string]repository.TaskRecord)
		r.collections[collection] = docs
	}
	docs[docID] = cloneRecord(rec)
	return nil
}

func (r *Repository) GetOne(ctx context.Context, collection, docID string) (repository.TaskRecord, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.collections[collection][docID]
	if !ok {
		return repository.TaskRecord{}, false, nil
	}
	return cloneRecord(rec), true, nil
}

func (r *Repository) UpdateInvitations(ctx context.Context, collection, docID string, invitations []repository.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.collections[collection][docID]
	if !ok {
		return nil
	}
	rec.Invitations = append([]repository.UserRecord(nil), invitations...)
	r.collections[collection][docID] = rec
	return nil
}

func (r *Repository) Delete(ctx context.Context, collection, docID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.collections[collection], docID)
	return nil
}

func cloneRecord(rec repository.TaskRecord) repository.TaskRecord {
	out := rec
	out.Invitations = append([]repository.UserRecord(nil), rec.Invitations...)
	if rec.Offset != nil {
		v := *rec.Offset
		out.Offset = &v
	}
	return out
}
