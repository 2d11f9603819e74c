package analytics

import "timeplanner/internal/model"

// Slice is one pie-chart segment.
type Slice struct {
	Label string `json:"label"`
	Code  string `json:"code"`
	Count int    `json:"count"`
}

// --- UseCase Outputs ---

type LineOutput struct {
	Points []Point
}

type PieOutput struct {
	Slices []Slice
}

type UpcomingOutput struct {
	Tasks []model.Task
}

type TimeRangeOutput struct {
	Points []Point
}
