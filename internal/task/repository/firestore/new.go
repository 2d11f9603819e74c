// Package firestore implements the task persistence gateway on Cloud
// Firestore, one collection per user, one document per task copy.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"timeplanner/internal/task/repository"
	pkgLog "timeplanner/pkg/log"
)

type Repository struct {
	l      pkgLog.Logger
	client *firestore.Client
}

var _ repository.TaskRepository = (*Repository)(nil)

// New creates a Firestore-backed task repository.
func New(l pkgLog.Logger, client *firestore.Client) *Repository {
	return &Repository{l: l, client: client}
}

// NewClient dials Firestore. When credentialsFile is empty, application
// default credentials are used.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	if credentialsFile != "" {
		return firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
	}
	return firestore.NewClient(ctx, projectID)
}
