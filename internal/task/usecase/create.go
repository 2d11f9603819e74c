package usecase

import (
	"context"

	"timeplanner/internal/model"
	"timeplanner/internal/sync"
	"timeplanner/internal/task"
)

// Create validates the input, commits the owner's copy and fans copies
// out to every resolvable invitee. Local state is only updated after
// the authoritative write succeeded.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	title, color, err := validateFields(input.Title, input.StartDate, input.EndDate, input.ColorLabel)
	if err != nil {
		return task.CreateOutput{}, err
	}

	newTask := model.Task{
		ID:          uc.newID(),
		Title:       title,
		Description: input.Description,
		Color:       color,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Invitations: sanitizeInvitations(sc.User(), input.Invitations),
		Offset:      input.Offset,
	}

	owner := sync.Participant{Key: sc.UserID, User: sc.User()}
	invitees := uc.resolveParticipants(ctx, newTask.Invitations)

	plan := sync.BuildCreatePlan(owner, newTask, invitees)
	if err := uc.executor.Apply(ctx, plan); err != nil {
		uc.l.Errorf(ctx, "uc.Create Apply: %v", err)
		return task.CreateOutput{}, err
	}
	uc.mirror(ctx, plan)

	return task.CreateOutput{Task: newTask}, nil
}
