package usecase

import (
	"context"
	"sort"

	"timeplanner/internal/user"
)

// List returns every registered user ordered by display name.
func (uc *implUseCase) List(ctx context.Context) (user.ListOutput, error) {
	recs, err := uc.repo.FetchAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List FetchAll: %v", err)
		return user.ListOutput{}, err
	}

	accounts := make([]user.Account, len(recs))
	for i, rec := range recs {
		accounts[i] = rec.Decode()
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].DisplayName() < accounts[j].DisplayName()
	})

	return user.ListOutput{Accounts: accounts}, nil
}
