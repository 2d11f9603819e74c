// Package store owns the in-memory task state for a signed-in user:
// the task collection plus the calendar cursor (anchor day, anchor
// week, view format, list filter, analytics color). Mutations are
// copy-on-write behind a mutex; consumers observe changes through an
// explicit Subscribe channel instead of ambient reactivity.
package store

import (
	"sync"
	"time"

	"timeplanner/internal/model"
	"timeplanner/internal/timegrid"
)

// Cursor is the calendar anchor and granularity driving which grid is
// built and which tasks are visible.
type Cursor struct {
	SelectedDay   time.Time
	SelectedWeek  []time.Time
	Format        model.Format
	Filter        model.SortKey // empty = unsorted
	SelectedColor *model.Color  // nil = all colors
}

// Store holds one user's tasks and cursor.
type Store struct {
	mu     sync.RWMutex
	tasks  []model.Task
	cursor Cursor
	subs   []chan struct{}
}

// New creates a store anchored at now, week view by default.
func New(now time.Time) *Store {
	return &Store{
		cursor: Cursor{
			SelectedDay:  now,
			SelectedWeek: timegrid.Week(now),
			Format:       model.FormatWeek,
		},
	}
}

// Tasks returns a copy of the task collection.
func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Task(nil), s.tasks...)
}

// Cursor returns a copy of the current cursor.
func (s *Store) Cursor() Cursor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.cursor
	c.SelectedWeek = append([]time.Time(nil), s.cursor.SelectedWeek...)
	return c
}

// SetSelectedDay applies a pure transform to the selected day.
func (s *Store) SetSelectedDay(transform func(time.Time) time.Time) {
	s.mu.Lock()
	s.cursor.SelectedDay = transform(s.cursor.SelectedDay)
	s.mu.Unlock()
	s.notify()
}

// SetSelectedWeek applies a pure transform to the selected week.
func (s *Store) SetSelectedWeek(transform func([]time.Time) []time.Time) {
	s.mu.Lock()
	s.cursor.SelectedWeek = transform(s.cursor.SelectedWeek)
	s.mu.Unlock()
	s.notify()
}

// SetFormat switches the view granularity; the anchor is untouched.
func (s *Store) SetFormat(f model.Format) {
	s.mu.Lock()
	s.cursor.Format = f
	s.mu.Unlock()
	s.notify()
}

// SetFilter sets the task list ordering key.
func (s *Store) SetFilter(k model.SortKey) {
	s.mu.Lock()
	s.cursor.Filter = k
	s.mu.Unlock()
	s.notify()
}

// SetSelectedColor sets the analytics color selection.
func (s *Store) SetSelectedColor(c *model.Color) {
	s.mu.Lock()
	s.cursor.SelectedColor = c
	s.mu.Unlock()
	s.notify()
}

// ReplaceAll bulk-loads the collection (initial hydration).
func (s *Store) ReplaceAll(tasks []model.Task) {
	s.mu.Lock()
	s.tasks = append([]model.Task(nil), tasks...)
	s.mu.Unlock()
	s.notify()
}

// Upsert applies one task's outcome after its remote write succeeded.
// Local state must never change before the write is durable.
func (s *Store) Upsert(task model.Task) {
	s.mu.Lock()
	replaced := false
	for i, t := range s.tasks {
		if t.ID == task.ID {
			s.tasks[i] = task
			replaced = true
			break
		}
	}
	if !replaced {
		s.tasks = append(s.tasks, task)
	}
	s.mu.Unlock()
	s.notify()
}

// Remove drops a task after its remote delete succeeded.
func (s *Store) Remove(taskID string) {
	s.mu.Lock()
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.mu.Unlock()
	s.notify()
}

// Clear wipes the collection on sign-out.
func (s *Store) Clear() {
	s.mu.Lock()
	s.tasks = nil
	s.mu.Unlock()
	s.notify()
}

// Subscribe returns a channel receiving a coalesced signal after each
// state change. The channel is never closed; use Unsubscribe.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// Unsubscribe detaches a channel obtained from Subscribe.
func (s *Store) Unsubscribe(ch <-chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub == ch {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

func (s *Store) notify() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default: // a pending signal already covers this change
		}
	}
}
