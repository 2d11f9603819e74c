package usecase_test

import (
	"context"
	"errors"
	"testing"

	"timeplanner/internal/model"
	"timeplanner/internal/store"
	taskmemory "timeplanner/internal/task/repository/memory"
	"timeplanner/internal/user"
	"timeplanner/internal/user/repository/memory"
	"timeplanner/internal/user/usecase"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

func newUseCase() (user.UseCase, *store.Registry) {
	stores := store.NewRegistry(noopLogger{}, taskmemory.New())
	return usecase.New(noopLogger{}, memory.New(), stores), stores
}

func TestRegisterIsIdempotentPerDisplayName(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()

	first, err := uc.Register(ctx, user.RegisterInput{Name: "Alice", Surname: "Smith"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if first.Account.ID == "" {
		t.Fatalf("expected a generated id")
	}

	again, err := uc.Register(ctx, user.RegisterInput{Name: "Alice", Surname: "Smith"})
	if err != nil {
		t.Fatalf("register again: %v", err)
	}
	if again.Account.ID != first.Account.ID {
		t.Errorf("same display name must return the same account, got %q and %q", first.Account.ID, again.Account.ID)
	}
}

func TestRegisterRequiresName(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Register(context.Background(), user.RegisterInput{Name: "   "})
	if !errors.Is(err, user.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()

	out, err := uc.Register(ctx, user.RegisterInput{Name: "Bob", Surname: "Stone"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	sc, found, err := uc.Resolve(ctx, model.User{Name: "Bob", Surname: "Stone"})
	if err != nil || !found {
		t.Fatalf("resolve: found=%t err=%v", found, err)
	}
	if sc.UserID != out.Account.ID || sc.DisplayName != "Bob Stone" {
		t.Errorf("got %+v", sc)
	}

	if _, found, _ := uc.Resolve(ctx, model.User{Name: "Nobody"}); found {
		t.Errorf("unknown user must not resolve")
	}
}

func TestListSortedByDisplayName(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase()

	for _, in := range []user.RegisterInput{
		{Name: "Cara", Surname: "Vale"},
		{Name: "Alice", Surname: "Smith"},
		{Name: "Bob", Surname: "Stone"},
	} {
		if _, err := uc.Register(ctx, in); err != nil {
			t.Fatalf("register: %v", err)
		}
	}

	out, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"Alice Smith", "Bob Stone", "Cara Vale"}
	if len(out.Accounts) != len(want) {
		t.Fatalf("got %d accounts", len(out.Accounts))
	}
	for i, a := range out.Accounts {
		if a.DisplayName() != want[i] {
			t.Errorf("position %d: got %q, want %q", i, a.DisplayName(), want[i])
		}
	}
}

func TestSignOutEvictsStore(t *testing.T) {
	ctx := context.Background()
	uc, stores := newUseCase()

	out, err := uc.Register(ctx, user.RegisterInput{Name: "Alice", Surname: "Smith"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	s, err := stores.Get(ctx, out.Account.ID)
	if err != nil {
		t.Fatalf("get store: %v", err)
	}
	s.Upsert(model.Task{ID: "t-1", Title: "x"})

	if err := uc.SignOut(ctx, out.Account.Scope()); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if len(s.Tasks()) != 0 {
		t.Errorf("sign-out must clear local state")
	}
}
