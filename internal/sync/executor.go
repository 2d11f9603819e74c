package sync

import (
	"context"
	"fmt"

	"timeplanner/internal/task/repository"
)

// Apply executes the plan in order. A failed primary op aborts and
// surfaces the error; a failed fan-out op is logged and skipped so one
// unreachable recipient never sinks the whole operation.
func (e *Executor) Apply(ctx context.Context, plan Plan) error {
	for _, op := range plan.Ops {
		if err := e.apply(ctx, op); err != nil {
			if op.Primary {
				return fmt.Errorf("sync: %s %s/%s: %w", op.Kind, op.Collection, op.DocID, err)
			}
			e.l.Warnf(ctx, "sync: fan-out %s %s/%s failed, continuing: %v", op.Kind, op.Collection, op.DocID, err)
		}
	}
	return nil
}

func (e *Executor) apply(ctx context.Context, op WriteOp) error {
	switch op.Kind {
	case OpPut:
		return e.repo.Put(ctx, op.Collection, op.DocID, op.Record)
	case OpDelete:
		return e.repo.Delete(ctx, op.Collection, op.DocID)
	case OpPrune:
		return e.prune(ctx, op)
	default:
		return fmt.Errorf("unknown op kind %q", op.Kind)
	}
}

// prune removes op.Remove from the record's invitation list. Missing
// documents are skipped: an invitee who never got their copy has
// nothing to prune.
func (e *Executor) prune(ctx context.Context, op WriteOp) error {
	rec, found, err := e.repo.GetOne(ctx, op.Collection, op.DocID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	kept := make([]repository.UserRecord, 0, len(rec.Invitations))
	for _, u := range rec.Invitations {
		if u.Name == op.Remove.Name && u.Surname == op.Remove.Surname {
			continue
		}
		kept = append(kept, u)
	}
	return e.repo.UpdateInvitations(ctx, op.Collection, op.DocID, kept)
}
