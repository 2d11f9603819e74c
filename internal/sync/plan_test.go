package sync_test

import (
	"testing"
	"time"

	"timeplanner/internal/model"
	"timeplanner/internal/sync"
)

var (
	owner = sync.Participant{Key: "u-owner", User: model.User{Name: "Alice", Surname: "Smith"}}
	bob   = sync.Participant{Key: "u-bob", User: model.User{Name: "Bob", Surname: "Stone"}}
	cara  = sync.Participant{Key: "u-cara", User: model.User{Name: "Cara", Surname: "Vale"}}
)

func sharedTask(invitations ...model.User) model.Task {
	start := time.Date(2023, time.March, 15, 9, 0, 0, 0, time.UTC)
	return model.Task{
		ID:          "task-1",
		Title:       "planning",
		Color:       model.DefaultColor,
		StartDate:   start,
		EndDate:     start.Add(time.Hour),
		Invitations: invitations,
	}
}

func TestBuildCreatePlan(t *testing.T) {
	task := sharedTask(bob.User, cara.User)
	plan := sync.BuildCreatePlan(owner, task, []sync.Participant{bob, cara})

	if len(plan.Ops) != 3 {
		t.Fatalf("expected 3 ops (owner + 2 invitees), got %d", len(plan.Ops))
	}

	first := plan.Ops[0]
	if first.Kind != sync.OpPut || !first.Primary || first.Collection != owner.Key {
		t.Errorf("expected primary owner put first, got %+v", first)
	}
	if first.Record.From != "" {
		t.Errorf("owner copy must not carry from, got %q", first.Record.From)
	}

	for _, op := range plan.Ops[1:] {
		if op.Kind != sync.OpPut || op.Primary {
			t.Errorf("invitee op must be non-primary put, got %+v", op)
		}
		if op.DocID != task.ID {
			t.Errorf("all copies share the task id, got %q", op.DocID)
		}
		if op.Record.From != "Alice Smith" {
			t.Errorf("invitee copy from = owner display name, got %q", op.Record.From)
		}
		if op.Record.Invitations[0].Name != "Alice" {
			t.Errorf("invitee copy invitations must lead with the owner, got %+v", op.Record.Invitations)
		}
		for _, u := range op.Record.Invitations {
			self := model.User{Name: u.Name, Surname: u.Surname}
			if op.Collection == bob.Key && self == bob.User {
				t.Errorf("recipient must never appear in their own invitation list")
			}
			if op.Collection == cara.Key && self == cara.User {
				t.Errorf("recipient must never appear in their own invitation list")
			}
		}
		if len(op.Record.Invitations) != 2 {
			t.Errorf("expected owner + 1 other invitee, got %+v", op.Record.Invitations)
		}
	}
}

func TestBuildEditPlanReplacesInviteeSet(t *testing.T) {
	prev := sharedTask(bob.User)
	edited := sharedTask(cara.User)
	edited.Title = "planning v2"

	plan := sync.BuildEditPlan(owner, prev, edited, []sync.Participant{bob}, []sync.Participant{cara})

	if len(plan.Ops) != 3 {
		t.Fatalf("expected owner put + delete bob + put cara, got %d ops", len(plan.Ops))
	}
	if plan.Ops[0].Kind != sync.OpPut || !plan.Ops[0].Primary || plan.Ops[0].Collection != owner.Key {
		t.Errorf("owner overwrite must come first, got %+v", plan.Ops[0])
	}
	if plan.Ops[1].Kind != sync.OpDelete || plan.Ops[1].Collection != bob.Key {
		t.Errorf("previous invitee copy must be deleted, got %+v", plan.Ops[1])
	}
	if plan.Ops[2].Kind != sync.OpPut || plan.Ops[2].Collection != cara.Key {
		t.Errorf("new invitee copy must be created, got %+v", plan.Ops[2])
	}
	if plan.Ops[2].Record.Title != "planning v2" {
		t.Errorf("new copy must carry the edited fields")
	}
}

func TestBuildEditPlanUnchangedEmptySet(t *testing.T) {
	prev := sharedTask()
	edited := sharedTask()

	plan := sync.BuildEditPlan(owner, prev, edited, nil, nil)

	if len(plan.Ops) != 1 {
		t.Fatalf("expected only the owner overwrite, got %d ops", len(plan.Ops))
	}
}

func TestBuildEditPlanSameSetStillFansOut(t *testing.T) {
	// Same invitee set: the delete-all/recreate-all strategy still runs.
	prev := sharedTask(bob.User)
	edited := sharedTask(bob.User)

	plan := sync.BuildEditPlan(owner, prev, edited, []sync.Participant{bob}, []sync.Participant{bob})

	if len(plan.Ops) != 3 {
		t.Fatalf("expected owner put + delete + recreate, got %d ops", len(plan.Ops))
	}
}

func TestBuildOwnerDeletePlan(t *testing.T) {
	task := sharedTask(bob.User, cara.User)
	plan := sync.BuildOwnerDeletePlan(owner, task, []sync.Participant{bob, cara})

	if len(plan.Ops) != 3 {
		t.Fatalf("expected 3 deletes, got %d", len(plan.Ops))
	}
	last := plan.Ops[len(plan.Ops)-1]
	if last.Collection != owner.Key || !last.Primary || last.Kind != sync.OpDelete {
		t.Errorf("owner delete must be the primary final op, got %+v", last)
	}
	for _, op := range plan.Ops[:2] {
		if op.Primary || op.Kind != sync.OpDelete {
			t.Errorf("invitee deletes are best-effort, got %+v", op)
		}
	}
}

func TestBuildDeclinePlan(t *testing.T) {
	plan := sync.BuildDeclinePlan(bob, owner.Key, true, []sync.Participant{cara}, "task-1")

	if len(plan.Ops) != 3 {
		t.Fatalf("expected prune owner + prune cara + delete own, got %d", len(plan.Ops))
	}
	if plan.Ops[0].Kind != sync.OpPrune || plan.Ops[0].Collection != owner.Key || !plan.Ops[0].Primary {
		t.Errorf("owner prune must be primary and first, got %+v", plan.Ops[0])
	}
	if plan.Ops[0].Remove != bob.User {
		t.Errorf("owner prune must remove the declining user, got %+v", plan.Ops[0].Remove)
	}
	if plan.Ops[1].Kind != sync.OpPrune || plan.Ops[1].Collection != cara.Key || plan.Ops[1].Primary {
		t.Errorf("other-invitee prune is best-effort, got %+v", plan.Ops[1])
	}
	last := plan.Ops[2]
	if last.Kind != sync.OpDelete || last.Collection != bob.Key || !last.Primary {
		t.Errorf("own copy delete must be the primary final op, got %+v", last)
	}
}

func TestBuildDeclinePlanOwnerCopyGone(t *testing.T) {
	plan := sync.BuildDeclinePlan(bob, owner.Key, false, nil, "task-1")

	if len(plan.Ops) != 1 {
		t.Fatalf("expected only the own-copy delete, got %d ops", len(plan.Ops))
	}
	if plan.Ops[0].Kind != sync.OpDelete || plan.Ops[0].Collection != bob.Key {
		t.Errorf("unexpected op %+v", plan.Ops[0])
	}
}
