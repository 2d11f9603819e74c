package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"timeplanner/internal/task/repository"
)

func (r *Repository) FetchAll(ctx context.Context, collection string) ([]repository.TaskRecord, error) {
	iter := r.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var recs []repository.TaskRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore: fetch all %s: %w", collection, err)
		}

		var rec repository.TaskRecord
		if err := doc.DataTo(&rec); err != nil {
			// A malformed document must not hide the rest of the collection.
			r.l.Warnf(ctx, "firestore: skipping malformed doc %s/%s: %v", collection, doc.Ref.ID, err)
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (r *Repository) Put(ctx context.Context, collection, docID string, rec repository.TaskRecord) error {
	if _, err := r.client.Collection(collection).Doc(docID).Set(ctx, rec); err != nil {
		return fmt.Errorf("firestore: put %s/%s: %w", collection, docID, err)
	}
	return nil
}

func (r *Repository) GetOne(ctx context.Context, collection, docID string) (repository.TaskRecord, bool, error) {
	doc, err := r.client.Collection(collection).Doc(docID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return repository.TaskRecord{}, false, nil
	}
	if err != nil {
		return repository.TaskRecord{}, false, fmt.Errorf("firestore: get %s/%s: %w", collection, docID, err)
	}

	var rec repository.TaskRecord
	if err := doc.DataTo(&rec); err != nil {
		return repository.TaskRecord{}, false, fmt.Errorf("firestore: decode %s/%s: %w", collection, docID, err)
	}
	return rec, true, nil
}

func (r *Repository) UpdateInvitations(ctx context.Context, collection, docID string, invitations []repository.UserRecord) error {
	_, err := r.client.Collection(collection).Doc(docID).Update(ctx, []firestore.Update{
		{Path: "invitations", Value: invitations},
	})
	if status.Code(err) == codes.NotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("firestore: update invitations %s/%s: %w", collection, docID, err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, collection, docID string) error {
	if _, err := r.client.Collection(collection).Doc(docID).Delete(ctx); err != nil {
		return fmt.Errorf("firestore: delete %s/%s: %w", collection, docID, err)
	}
	return nil
}
