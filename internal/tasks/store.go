package tasks

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned whenever an id does not exist in the store.
var ErrTaskNotFound = errors.New("task not found")

// Store holds every task for the lifetime of the process. All access goes
// through the mutex so concurrent requests cannot lose updates.
type Store struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

func NewStore() *Store {
	return &Store{tasks: make(map[string]Task)}
}

// NewTask builds a stored task from a create payload plus the computed
// priority. Id and created_at are server-assigned here and never change.
func NewTask(in TaskCreate, priority Priority, reasoning string) Task {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return Task{
		ID:                uuid.NewString(),
		Title:             in.Title,
		Description:       in.Description,
		DueDate:           in.DueDate,
		Priority:          priority,
		Tags:              tags,
		Completed:         false,
		SubTasks:          []SubTask{},
		CreatedAt:         time.Now(),
		PriorityReasoning: reasoning,
	}
}

// SeedDemoTask pre-populates one task so a fresh process has something to
// show. It is stored like any user-created task.
func SeedDemoTask(s *Store) Task {
	return s.Add(NewTask(
		TaskCreate{Title: "Explore FluidTasks App"},
		PriorityHigh,
		"Welcome to your new productivity tool!",
	))
}

// Add stores a fully built task (creation and seeding share this path).
func (s *Store) Add(t Task) Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.ID] = t
	return t
}

// All returns every stored task. Order is unspecified.
func (s *Store) All() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	return out
}

func (s *Store) Get(id string) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	return t, nil
}

// Update overlays only the fields present in upd onto the stored task.
// Priority is copied verbatim when provided; it is never recomputed here
// even if the title changed.
func (s *Store) Update(id string, upd TaskUpdate) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.DueDate != nil {
		t.DueDate = upd.DueDate
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	if upd.Tags != nil {
		t.Tags = *upd.Tags
	}
	s.tasks[id] = t
	return t, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

// Toggle flips the completed flag and returns the updated task. Gamification
// side effects live in the handler, not here.
func (s *Store) Toggle(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	t.Completed = !t.Completed
	s.tasks[id] = t
	return t, nil
}

// AppendSubTasks appends to the existing checklist, never replacing it, and
// returns the updated task.
func (s *Store) AppendSubTasks(id string, subs []SubTask) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	t.SubTasks = append(t.SubTasks, subs...)
	s.tasks[id] = t
	return t, nil
}
