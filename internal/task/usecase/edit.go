package usecase

import (
	"context"

	"timeplanner/internal/model"
	"timeplanner/internal/sync"
	"timeplanner/internal/task"
)

// Edit overwrites an owned task and reconciles the invitee copies by
// deleting every previous copy and recreating one per current invitee.
func (uc *implUseCase) Edit(ctx context.Context, sc model.Scope, input task.EditInput) (task.EditOutput, error) {
	prevRec, found, err := uc.repo.GetOne(ctx, sc.UserID, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Edit GetOne: %v", err)
		return task.EditOutput{}, err
	}
	if !found {
		return task.EditOutput{}, task.ErrNotFound
	}
	prev, err := prevRec.Decode()
	if err != nil {
		uc.l.Errorf(ctx, "uc.Edit decode: %v", err)
		return task.EditOutput{}, err
	}
	if prev.Received() {
		return task.EditOutput{}, task.ErrNotOwner
	}

	title, color, err := validateFields(input.Title, input.StartDate, input.EndDate, input.ColorLabel)
	if err != nil {
		return task.EditOutput{}, err
	}

	edited := model.Task{
		ID:          input.ID,
		Title:       title,
		Description: input.Description,
		Color:       color,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Invitations: sanitizeInvitations(sc.User(), input.Invitations),
		Offset:      input.Offset,
	}

	owner := sync.Participant{Key: sc.UserID, User: sc.User()}
	prevInvitees := uc.resolveParticipants(ctx, prev.Invitations)
	newInvitees := uc.resolveParticipants(ctx, edited.Invitations)

	plan := sync.BuildEditPlan(owner, prev, edited, prevInvitees, newInvitees)
	if err := uc.executor.Apply(ctx, plan); err != nil {
		uc.l.Errorf(ctx, "uc.Edit Apply: %v", err)
		return task.EditOutput{}, err
	}
	uc.mirror(ctx, plan)

	return task.EditOutput{Task: edited}, nil
}
