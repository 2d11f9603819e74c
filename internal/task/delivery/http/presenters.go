package http

import (
	"fmt"
	"time"

	"timeplanner/internal/model"
	"timeplanner/internal/task"
	"timeplanner/internal/task/repository"
)

// --- Request DTOs ---

type userReq struct {
	Name    string `json:"name"    binding:"required"`
	Surname string `json:"surname"`
}

type createReq struct {
	Title       string    `json:"title"       binding:"required,min=1,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	Color       string    `json:"color"`
	StartDate   string    `json:"startDate"   binding:"required"`
	EndDate     string    `json:"endDate"     binding:"required"`
	Invitations []userReq `json:"invitations"`
	Offset      *int      `json:"offset"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() (task.CreateInput, error) {
	start, end, err := parseDates(r.StartDate, r.EndDate)
	if err != nil {
		return task.CreateInput{}, err
	}
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		ColorLabel:  r.Color,
		StartDate:   start,
		EndDate:     end,
		Invitations: toUsers(r.Invitations),
		Offset:      r.Offset,
	}, nil
}

type editReq struct {
	ID          string    `json:"-"` // populated from URI param
	Title       string    `json:"title"       binding:"required,min=1,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	Color       string    `json:"color"`
	StartDate   string    `json:"startDate"   binding:"required"`
	EndDate     string    `json:"endDate"     binding:"required"`
	Invitations []userReq `json:"invitations"`
	Offset      *int      `json:"offset"`
}

func (r editReq) validate() error { return nil }

func (r editReq) toInput() (task.EditInput, error) {
	start, end, err := parseDates(r.StartDate, r.EndDate)
	if err != nil {
		return task.EditInput{}, err
	}
	return task.EditInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		ColorLabel:  r.Color,
		StartDate:   start,
		EndDate:     end,
		Invitations: toUsers(r.Invitations),
		Offset:      r.Offset,
	}, nil
}

func parseDates(start, end string) (time.Time, time.Time, error) {
	s, err := time.Parse(repository.WireTimeLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad startDate %q, want %q", start, repository.WireTimeLayout)
	}
	e, err := time.Parse(repository.WireTimeLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad endDate %q, want %q", end, repository.WireTimeLayout)
	}
	return s, e, nil
}

func toUsers(reqs []userReq) []model.User {
	users := make([]model.User, len(reqs))
	for i, r := range reqs {
		users[i] = model.User{Name: r.Name, Surname: r.Surname}
	}
	return users
}

// --- Response DTOs ---

type userResp struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

type colorResp struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Color       colorResp  `json:"color"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Invitations []userResp `json:"invitations"`
	From        string     `json:"from,omitempty"`
	Offset      *int       `json:"offset,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	invitations := make([]userResp, len(t.Invitations))
	for i, u := range t.Invitations {
		invitations[i] = userResp{Name: u.Name, Surname: u.Surname}
	}
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Color:       colorResp{Label: t.Color.Label, Code: t.Color.Code},
		StartDate:   t.StartDate.Format(repository.WireTimeLayout),
		EndDate:     t.EndDate.Format(repository.WireTimeLayout),
		Invitations: invitations,
		From:        t.From,
		Offset:      t.Offset,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type editResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newEditResp(out task.EditOutput) editResp {
	return editResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks}
}
