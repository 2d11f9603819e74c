package repository

import "context"

//go:generate mockery --name Repository
type Repository interface {
	// Create stores a new directory entry.
	Create(ctx context.Context, rec AccountRecord) error
	// FetchAll returns every directory entry.
	FetchAll(ctx context.Context) ([]AccountRecord, error)
	// GetByName looks an entry up by its name pair.
	GetByName(ctx context.Context, name, surname string) (AccountRecord, bool, error)
}
