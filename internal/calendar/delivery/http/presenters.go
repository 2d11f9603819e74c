package http

import (
	"time"

	"timeplanner/internal/calendar"
	"timeplanner/internal/store"
	"timeplanner/internal/task/repository"
)

// --- Request DTOs ---

type formatReq struct {
	Format string `json:"format" binding:"required"`
}

type navigateReq struct {
	Action string `json:"action" binding:"required"`
}

type filterReq struct {
	Filter string `json:"filter"` // empty clears the filter
}

type colorReq struct {
	Color string `json:"color"` // empty clears the selection
}

// --- Response DTOs ---

type colorResp struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

type cursorResp struct {
	SelectedDay   string     `json:"selectedDay"`
	SelectedWeek  []string   `json:"selectedWeek"`
	Format        string     `json:"format"`
	Filter        string     `json:"filter,omitempty"`
	SelectedColor *colorResp `json:"selectedColor,omitempty"`
}

func newCursorResp(c store.Cursor) cursorResp {
	resp := cursorResp{
		SelectedDay:  c.SelectedDay.Format(repository.WireTimeLayout),
		SelectedWeek: formatDays(c.SelectedWeek),
		Format:       string(c.Format),
		Filter:       string(c.Filter),
	}
	if c.SelectedColor != nil {
		resp.SelectedColor = &colorResp{Label: c.SelectedColor.Label, Code: c.SelectedColor.Code}
	}
	return resp
}

func (h *handler) newCursorResp(out calendar.CursorOutput) cursorResp {
	return newCursorResp(out.Cursor)
}

type gridResp struct {
	Format     string     `json:"format"`
	HourLabels []string   `json:"hourLabels"`
	Hours      []string   `json:"hours,omitempty"`
	Week       [][]string `json:"week,omitempty"`
	Days       []string   `json:"days,omitempty"`
}

func (h *handler) newGridResp(out calendar.GridOutput) gridResp {
	resp := gridResp{
		Format:     out.Format,
		HourLabels: out.HourLabels,
		Hours:      formatDays(out.Hours),
		Days:       formatDays(out.Days),
	}
	if out.Week != nil {
		resp.Week = make([][]string, len(out.Week))
		for i, row := range out.Week {
			resp.Week[i] = formatDays(row)
		}
	}
	return resp
}

func formatDays(days []time.Time) []string {
	if days == nil {
		return nil
	}
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.Format(repository.WireTimeLayout)
	}
	return out
}
