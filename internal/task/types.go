package task

import (
	"time"

	"timeplanner/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	ColorLabel  string // empty picks the default color
	StartDate   time.Time
	EndDate     time.Time
	Invitations []model.User
	Offset      *int
}

type EditInput struct {
	ID          string
	Title       string
	Description string
	ColorLabel  string
	StartDate   time.Time
	EndDate     time.Time
	Invitations []model.User
	Offset      *int
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type EditOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks []model.Task
}
