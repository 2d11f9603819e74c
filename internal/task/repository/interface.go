package repository

import "context"

// TaskRepository is the persistence gateway for task documents. Every
// method is keyed by a per-user collection; documents within a
// collection are keyed by task ID. Copies of one shared task live in
// several collections under the same document ID.
type TaskRepository interface {
	// FetchAll returns every task record in the given collection.
	FetchAll(ctx context.Context, collection string) ([]TaskRecord, error)

	// Put writes (or overwrites) a record. Idempotent.
	Put(ctx context.Context, collection, docID string, rec TaskRecord) error

	// GetOne fetches a single record. The bool reports existence;
	// a missing document is not an error.
	GetOne(ctx context.Context, collection, docID string) (TaskRecord, bool, error)

	// UpdateInvitations partially updates the invitations field of an
	// existing record. This is the only partial update the system does
	// (invitee decline pruning).
	UpdateInvitations(ctx context.Context, collection, docID string, invitations []UserRecord) error

	// Delete removes a record. Deleting a missing document is a no-op.
	Delete(ctx context.Context, collection, docID string) error
}
