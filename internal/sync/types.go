// Package sync keeps every participant's per-user collection
// consistent when a shared task is created, edited, deleted or
// declined. The hard logic lives in pure plan builders (plan.go); the
// I/O lives in the executor (executor.go) with per-op error isolation.
package sync

import (
	"timeplanner/internal/model"
	"timeplanner/internal/task/repository"
)

// OpKind is the kind of a single planned write.
type OpKind string

const (
	// OpPut writes a full task record (idempotent overwrite).
	OpPut OpKind = "put"
	// OpDelete removes a task record.
	OpDelete OpKind = "delete"
	// OpPrune removes one user from an existing record's invitation
	// list, via guarded read-modify-write; a missing document is skipped.
	OpPrune OpKind = "prune"
)

// Participant is a user resolved to their collection key. Resolution
// (display name → key) happens in the usecase through the user
// directory before planning.
type Participant struct {
	Key  string
	User model.User
}

// WriteOp is one planned gateway write. Primary ops are authoritative:
// their failure fails the whole operation. Non-primary ops are
// fan-out: failures are logged and skipped.
type WriteOp struct {
	Kind       OpKind
	Collection string
	DocID      string
	Record     repository.TaskRecord // OpPut payload
	Remove     model.User            // OpPrune target
	Primary    bool
}

// Plan is an ordered list of writes. Order matters: the authoritative
// commit comes first on create/edit and last on delete.
type Plan struct {
	Ops []WriteOp
}
