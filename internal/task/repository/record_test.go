package repository_test

import (
	"testing"
	"time"

	"timeplanner/internal/model"
	"timeplanner/internal/task/repository"
)

func TestEncodeTaskWireDates(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	task := model.Task{
		ID:        "t-1",
		Title:     "standup",
		Color:     model.Palette[0],
		StartDate: time.Date(2023, time.March, 15, 9, 30, 0, 0, loc),
		EndDate:   time.Date(2023, time.March, 15, 10, 0, 0, 0, loc),
	}

	rec := repository.EncodeTask(task)

	if rec.StartDate != "2023-03-15 09:30 +02:00" {
		t.Errorf("unexpected startDate wire form: %q", rec.StartDate)
	}
	if rec.EndDate != "2023-03-15 10:00 +02:00" {
		t.Errorf("unexpected endDate wire form: %q", rec.EndDate)
	}
}

func TestRecordDecodeRoundTrip(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	offset := 3
	task := model.Task{
		ID:          "t-2",
		Title:       "review",
		Description: "quarterly",
		Color:       model.Palette[4],
		StartDate:   time.Date(2024, time.January, 2, 14, 0, 0, 0, loc),
		EndDate:     time.Date(2024, time.January, 2, 15, 45, 0, 0, loc),
		Invitations: []model.User{{Name: "Ada", Surname: "Lovelace"}},
		From:        "Grace Hopper",
		Offset:      &offset,
	}

	got, err := repository.EncodeTask(task).Decode()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.ID != task.ID || got.Title != task.Title || got.Description != task.Description {
		t.Errorf("identity fields changed: %+v", got)
	}
	if !got.StartDate.Equal(task.StartDate) || !got.EndDate.Equal(task.EndDate) {
		t.Errorf("dates changed: start=%v end=%v", got.StartDate, got.EndDate)
	}
	if got.From != "Grace Hopper" {
		t.Errorf("from changed: %q", got.From)
	}
	if len(got.Invitations) != 1 || got.Invitations[0] != task.Invitations[0] {
		t.Errorf("invitations changed: %+v", got.Invitations)
	}
	if got.Offset == nil || *got.Offset != 3 {
		t.Errorf("offset changed: %v", got.Offset)
	}
}

func TestRecordDecodeBadDate(t *testing.T) {
	rec := repository.TaskRecord{
		ID:        "t-3",
		StartDate: "yesterday",
		EndDate:   "2023-03-15 10:00 +02:00",
	}
	if _, err := rec.Decode(); err == nil {
		t.Errorf("expected error for malformed startDate")
	}
}
