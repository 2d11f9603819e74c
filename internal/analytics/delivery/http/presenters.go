package http

import (
	"timeplanner/internal/analytics"
	"timeplanner/internal/model"
	"timeplanner/internal/task/repository"
)

// --- Response DTOs ---

type lineResp struct {
	Points []analytics.Point `json:"points"`
}

func (h *handler) newLineResp(out analytics.LineOutput) lineResp {
	return lineResp{Points: out.Points}
}

type pieResp struct {
	Slices []analytics.Slice `json:"slices"`
}

func (h *handler) newPieResp(out analytics.PieOutput) pieResp {
	return pieResp{Slices: out.Slices}
}

type upcomingTaskResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Color     string `json:"color"`
	StartDate string `json:"startDate"`
}

type upcomingResp struct {
	Tasks []upcomingTaskResp `json:"tasks"`
}

func (h *handler) newUpcomingResp(out analytics.UpcomingOutput) upcomingResp {
	tasks := make([]upcomingTaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newUpcomingTaskResp(t)
	}
	return upcomingResp{Tasks: tasks}
}

func newUpcomingTaskResp(t model.Task) upcomingTaskResp {
	return upcomingTaskResp{
		ID:        t.ID,
		Title:     t.Title,
		Color:     t.Color.Label,
		StartDate: t.StartDate.Format(repository.WireTimeLayout),
	}
}

type timeRangeResp struct {
	Points []analytics.Point `json:"points"`
}

func (h *handler) newTimeRangeResp(out analytics.TimeRangeOutput) timeRangeResp {
	return timeRangeResp{Points: out.Points}
}
