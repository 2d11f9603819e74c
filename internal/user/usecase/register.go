package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"timeplanner/internal/user"
	"timeplanner/internal/user/repository"
)

// Register signs a user in. An existing display name returns the
// existing account, so sign-in and first registration are one call.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.RegisterOutput, error) {
	name := strings.TrimSpace(input.Name)
	surname := strings.TrimSpace(input.Surname)
	if name == "" {
		return user.RegisterOutput{}, user.ErrNameRequired
	}

	existing, found, err := uc.repo.GetByName(ctx, name, surname)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetByName: %v", err)
		return user.RegisterOutput{}, err
	}
	if found {
		return user.RegisterOutput{Account: existing.Decode()}, nil
	}

	account := user.Account{
		ID:      uuid.NewString(),
		Name:    name,
		Surname: surname,
	}
	if err := uc.repo.Create(ctx, repository.EncodeAccount(account)); err != nil {
		uc.l.Errorf(ctx, "uc.Register Create: %v", err)
		return user.RegisterOutput{}, err
	}

	return user.RegisterOutput{Account: account}, nil
}
