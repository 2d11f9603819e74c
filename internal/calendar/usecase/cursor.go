package usecase

import (
	"context"

	"timeplanner/internal/calendar"
	"timeplanner/internal/model"
	"timeplanner/internal/store"
)

func (uc *implUseCase) Cursor(ctx context.Context, sc model.Scope) (calendar.CursorOutput, error) {
	s, err := uc.stores.Get(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Cursor store: %v", err)
		return calendar.CursorOutput{}, err
	}
	return calendar.CursorOutput{Cursor: s.Cursor()}, nil
}

func (uc *implUseCase) SetFormat(ctx context.Context, sc model.Scope, f model.Format) (calendar.CursorOutput, error) {
	if !f.Valid() {
		return calendar.CursorOutput{}, calendar.ErrUnknownFormat
	}

	s, err := uc.stores.Get(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetFormat store: %v", err)
		return calendar.CursorOutput{}, err
	}
	s.SetFormat(f)
	return calendar.CursorOutput{Cursor: s.Cursor()}, nil
}

func (uc *implUseCase) Navigate(ctx context.Context, sc model.Scope, action store.Action) (calendar.CursorOutput, error) {
	if !action.Valid() {
		return calendar.CursorOutput{}, calendar.ErrUnknownAction
	}

	s, err := uc.stores.Get(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Navigate store: %v", err)
		return calendar.CursorOutput{}, err
	}
	s.Navigate(action, uc.now())
	return calendar.CursorOutput{Cursor: s.Cursor()}, nil
}

func (uc *implUseCase) SetFilter(ctx context.Context, sc model.Scope, k model.SortKey) (calendar.CursorOutput, error) {
	if k != "" && !k.Valid() {
		return calendar.CursorOutput{}, calendar.ErrUnknownFilter
	}

	s, err := uc.stores.Get(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetFilter store: %v", err)
		return calendar.CursorOutput{}, err
	}
	s.SetFilter(k)
	return calendar.CursorOutput{Cursor: s.Cursor()}, nil
}

func (uc *implUseCase) SetColor(ctx context.Context, sc model.Scope, label string) (calendar.CursorOutput, error) {
	var selected *model.Color
	if label != "" {
		c, ok := model.ColorByLabel(label)
		if !ok {
			return calendar.CursorOutput{}, calendar.ErrUnknownColor
		}
		selected = &c
	}

	s, err := uc.stores.Get(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetColor store: %v", err)
		return calendar.CursorOutput{}, err
	}
	s.SetSelectedColor(selected)
	return calendar.CursorOutput{Cursor: s.Cursor()}, nil
}
