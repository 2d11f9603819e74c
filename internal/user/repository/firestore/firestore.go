// Package firestore implements the user directory on Cloud Firestore,
// one document per account in a single "users" collection.
package firestore

import (
	"context"
	"fmt"

	"google.golang.org/api/iterator"

	"timeplanner/internal/user/repository"
	pkgLog "timeplanner/pkg/log"

	fs "cloud.google.com/go/firestore"
)

const usersCollection = "users"

type Repository struct {
	l      pkgLog.Logger
	client *fs.Client
}

var _ repository.Repository = (*Repository)(nil)

// New creates a Firestore-backed user directory.
func New(l pkgLog.Logger, client *fs.Client) *Repository {
	return &Repository{l: l, client: client}
}

func (r *Repository) Create(ctx context.Context, rec repository.AccountRecord) error {
	if _, err := r.client.Collection(usersCollection).Doc(rec.ID).Set(ctx, rec); err != nil {
		return fmt.Errorf("firestore: create user %s: %w", rec.ID, err)
	}
	return nil
}

func (r *Repository) FetchAll(ctx context.Context) ([]repository.AccountRecord, error) {
	iter := r.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	var recs []repository.AccountRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore: fetch users: %w", err)
		}

		var rec repository.AccountRecord
		if err := doc.DataTo(&rec); err != nil {
			r.l.Warnf(ctx, "firestore: skipping malformed user doc %s: %v", doc.Ref.ID, err)
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (r *Repository) GetByName(ctx context.Context, name, surname string) (repository.AccountRecord, bool, error) {
	iter := r.client.Collection(usersCollection).
		Where("name", "==", name).
		Where("surname", "==", surname).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return repository.AccountRecord{}, false, nil
	}
	if err != nil {
		return repository.AccountRecord{}, false, fmt.Errorf("firestore: get user %s %s: %w", name, surname, err)
	}

	var rec repository.AccountRecord
	if err := doc.DataTo(&rec); err != nil {
		return repository.AccountRecord{}, false, fmt.Errorf("firestore: decode user doc %s: %w", doc.Ref.ID, err)
	}
	return rec, true, nil
}
