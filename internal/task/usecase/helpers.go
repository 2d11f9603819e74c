package usecase

import (
	"context"
	"strings"
	"time"

	"timeplanner/internal/model"
	"timeplanner/internal/sync"
	"timeplanner/internal/task"
)

// validateFields checks the shared create/edit invariants and resolves
// the color label.
func validateFields(title string, start, end time.Time, colorLabel string) (string, model.Color, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", model.Color{}, task.ErrTitleRequired
	}
	if start.IsZero() || end.IsZero() {
		return "", model.Color{}, task.ErrDatesRequired
	}
	if end.Before(start) {
		return "", model.Color{}, task.ErrEndBeforeStart
	}

	color := model.DefaultColor
	if colorLabel != "" {
		c, ok := model.ColorByLabel(colorLabel)
		if !ok {
			return "", model.Color{}, task.ErrUnknownColor
		}
		color = c
	}
	return title, color, nil
}

// sanitizeInvitations drops duplicates and the owner's own entry.
// Inviting yourself is a no-op, not an error.
func sanitizeInvitations(self model.User, users []model.User) []model.User {
	seen := make(map[model.User]struct{}, len(users))
	kept := make([]model.User, 0, len(users))
	for _, u := range users {
		if u == self {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		kept = append(kept, u)
	}
	return kept
}

// resolveParticipants maps invitation references to collection keys
// through the user directory. Unresolvable invitees are logged and
// skipped; they keep their invitation entry but get no copy.
func (uc *implUseCase) resolveParticipants(ctx context.Context, users []model.User) []sync.Participant {
	participants := make([]sync.Participant, 0, len(users))
	for _, u := range users {
		sc, found, err := uc.users.Resolve(ctx, u)
		if err != nil {
			uc.l.Warnf(ctx, "task: resolving invitee %q: %v", u.DisplayName(), err)
			continue
		}
		if !found {
			uc.l.Warnf(ctx, "task: invitee %q is not registered, skipping fan-out", u.DisplayName())
			continue
		}
		participants = append(participants, sync.Participant{Key: sc.UserID, User: u})
	}
	return participants
}

// mirror applies an executed plan's effects to every resident store so
// signed-in participants see the change without a reload. Non-resident
// stores rehydrate from the gateway on next access.
func (uc *implUseCase) mirror(ctx context.Context, plan sync.Plan) {
	for _, op := range plan.Ops {
		s, resident := uc.stores.Lookup(op.Collection)
		if !resident {
			continue
		}

		switch op.Kind {
		case sync.OpPut:
			t, err := op.Record.Decode()
			if err != nil {
				uc.l.Warnf(ctx, "task: mirroring %s/%s: %v", op.Collection, op.DocID, err)
				continue
			}
			s.Upsert(t)
		case sync.OpDelete:
			s.Remove(op.DocID)
		case sync.OpPrune:
			for _, t := range s.Tasks() {
				if t.ID != op.DocID {
					continue
				}
				kept := make([]model.User, 0, len(t.Invitations))
				for _, u := range t.Invitations {
					if u != op.Remove {
						kept = append(kept, u)
					}
				}
				t.Invitations = kept
				s.Upsert(t)
				break
			}
		}
	}
}
