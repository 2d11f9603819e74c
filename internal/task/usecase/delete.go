package usecase

import (
	"context"

	"timeplanner/internal/model"
	"timeplanner/internal/sync"
	"timeplanner/internal/task"
)

// Delete removes the caller's copy of a task. Owners cascade the
// delete to every invitee; invitees decline, pruning themselves from
// everyone else's invitation lists first.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, taskID string) error {
	rec, found, err := uc.repo.GetOne(ctx, sc.UserID, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOne: %v", err)
		return err
	}
	if !found {
		return task.ErrNotFound
	}
	t, err := rec.Decode()
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete decode: %v", err)
		return err
	}

	var plan sync.Plan
	if t.Received() {
		plan, err = uc.declinePlan(ctx, sc, t)
		if err != nil {
			return err
		}
	} else {
		owner := sync.Participant{Key: sc.UserID, User: sc.User()}
		invitees := uc.resolveParticipants(ctx, t.Invitations)
		plan = sync.BuildOwnerDeletePlan(owner, t, invitees)
	}

	if err := uc.executor.Apply(ctx, plan); err != nil {
		uc.l.Errorf(ctx, "uc.Delete Apply: %v", err)
		return err
	}
	uc.mirror(ctx, plan)
	return nil
}

// declinePlan plans an invitee backing out: prune the caller from the
// owner's copy and every other invitee's copy, then drop the caller's
// own copy. The received copy's invitation list holds the owner plus
// the other invitees. A genuinely missing owner (unregistered, or copy
// already deleted) degrades to removing the caller's own copy only; a
// failed owner lookup aborts the decline so the caller stays listed
// everywhere until it can be pruned.
func (uc *implUseCase) declinePlan(ctx context.Context, sc model.Scope, t model.Task) (sync.Plan, error) {
	actor := sync.Participant{Key: sc.UserID, User: sc.User()}
	ownerUser := model.UserFromDisplayName(t.From)

	var ownerKey string
	ownerFound := false
	ownerSc, found, err := uc.users.Resolve(ctx, ownerUser)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete resolving owner %q: %v", t.From, err)
		return sync.Plan{}, err
	}
	if !found {
		uc.l.Warnf(ctx, "uc.Delete owner %q is not registered", t.From)
	} else {
		ownerKey = ownerSc.UserID
		_, exists, err := uc.repo.GetOne(ctx, ownerKey, t.ID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Delete reading owner copy %s/%s: %v", ownerKey, t.ID, err)
			return sync.Plan{}, err
		}
		ownerFound = exists
	}

	others := make([]model.User, 0, len(t.Invitations))
	for _, u := range t.Invitations {
		if u != ownerUser && u != actor.User {
			others = append(others, u)
		}
	}

	return sync.BuildDeclinePlan(actor, ownerKey, ownerFound, uc.resolveParticipants(ctx, others), t.ID), nil
}
