package user

import (
	"context"

	"timeplanner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Register signs a user in, creating their directory entry on
	// first use. Registration is idempotent per display name.
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	// List returns every registered user, for invitation pickers.
	List(ctx context.Context) (ListOutput, error)
	// Resolve maps an invitation reference to a full scope.
	Resolve(ctx context.Context, u model.User) (model.Scope, bool, error)
	// SignOut releases the user's in-memory state.
	SignOut(ctx context.Context, sc model.Scope) error
}
