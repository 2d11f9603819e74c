package sync

import (
	"timeplanner/internal/model"
	"timeplanner/internal/task/repository"
)

// BuildCreatePlan plans the fan-out for a new task. The owner's copy
// is written first (the authoritative commit), then one copy per
// invitee, tagged with `from` and with the invitation list rewritten
// so each recipient sees everyone else including the owner but never
// themselves.
func BuildCreatePlan(owner Participant, task model.Task, invitees []Participant) Plan {
	ownerRec := repository.EncodeTask(task)
	ownerRec.From = ""

	plan := Plan{Ops: []WriteOp{{
		Kind:       OpPut,
		Collection: owner.Key,
		DocID:      task.ID,
		Record:     ownerRec,
		Primary:    true,
	}}}

	for _, inv := range invitees {
		plan.Ops = append(plan.Ops, WriteOp{
			Kind:       OpPut,
			Collection: inv.Key,
			DocID:      task.ID,
			Record:     recipientRecord(owner, task, inv),
		})
	}
	return plan
}

// BuildEditPlan plans an owner edit. The owner's copy is overwritten
// first; when the invitee set changed or the new set is non-empty,
// every previous invitee copy is deleted and every current invitee
// gets a fresh copy. Redundant when the set is unchanged, but cheap,
// idempotent, and guaranteed to leave no stale copies behind.
func BuildEditPlan(owner Participant, prev, edited model.Task, prevInvitees, newInvitees []Participant) Plan {
	ownerRec := repository.EncodeTask(edited)
	ownerRec.From = ""

	plan := Plan{Ops: []WriteOp{{
		Kind:       OpPut,
		Collection: owner.Key,
		DocID:      edited.ID,
		Record:     ownerRec,
		Primary:    true,
	}}}

	if len(edited.Invitations) == 0 && len(prev.Invitations) == len(edited.Invitations) {
		return plan
	}

	for _, inv := range prevInvitees {
		plan.Ops = append(plan.Ops, WriteOp{
			Kind:       OpDelete,
			Collection: inv.Key,
			DocID:      edited.ID,
		})
	}
	for _, inv := range newInvitees {
		plan.Ops = append(plan.Ops, WriteOp{
			Kind:       OpPut,
			Collection: inv.Key,
			DocID:      edited.ID,
			Record:     recipientRecord(owner, edited, inv),
		})
	}
	return plan
}

// BuildOwnerDeletePlan plans a full cascade: best-effort deletion of
// every invitee copy, then the owner's own copy as the authoritative
// final step.
func BuildOwnerDeletePlan(owner Participant, task model.Task, invitees []Participant) Plan {
	var plan Plan
	for _, inv := range invitees {
		plan.Ops = append(plan.Ops, WriteOp{
			Kind:       OpDelete,
			Collection: inv.Key,
			DocID:      task.ID,
		})
	}
	plan.Ops = append(plan.Ops, WriteOp{
		Kind:       OpDelete,
		Collection: owner.Key,
		DocID:      task.ID,
		Primary:    true,
	})
	return plan
}

// BuildDeclinePlan plans an invitee backing out of a shared task: the
// actor is pruned from the owner's invitation list and from every
// other invitee's copy, then the actor's own copy is deleted. The
// task survives for everyone else. ownerFound is false when the
// owner's copy no longer exists, in which case only the actor's own
// copy is removed.
func BuildDeclinePlan(actor Participant, ownerKey string, ownerFound bool, others []Participant, taskID string) Plan {
	var plan Plan
	if ownerFound {
		plan.Ops = append(plan.Ops, WriteOp{
			Kind:       OpPrune,
			Collection: ownerKey,
			DocID:      taskID,
			Remove:     actor.User,
			Primary:    true,
		})
		for _, other := range others {
			plan.Ops = append(plan.Ops, WriteOp{
				Kind:       OpPrune,
				Collection: other.Key,
				DocID:      taskID,
				Remove:     actor.User,
			})
		}
	}
	plan.Ops = append(plan.Ops, WriteOp{
		Kind:       OpDelete,
		Collection: actor.Key,
		DocID:      taskID,
		Primary:    true,
	})
	return plan
}

// recipientRecord builds the copy stored in one invitee's collection:
// from = owner's display name, invitations = owner plus all other
// invitees, never the recipient themselves.
func recipientRecord(owner Participant, task model.Task, recipient Participant) repository.TaskRecord {
	rec := repository.EncodeTask(task)
	rec.From = owner.User.DisplayName()

	invitations := []repository.UserRecord{{Name: owner.User.Name, Surname: owner.User.Surname}}
	for _, u := range task.Invitations {
		if u == recipient.User {
			continue
		}
		invitations = append(invitations, repository.UserRecord{Name: u.Name, Surname: u.Surname})
	}
	rec.Invitations = invitations
	return rec
}
