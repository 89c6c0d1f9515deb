package tasks

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Priority is the coarse urgency bucket assigned to a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type SubTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewSubTask creates an unchecked subtask with a fresh id.
func NewSubTask(title string) SubTask {
	return SubTask{
		ID:        uuid.NewString(),
		Title:     title,
		Completed: false,
	}
}

type Task struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	Priority          Priority   `json:"priority"`
	Tags              []string   `json:"tags"`
	Completed         bool       `json:"completed"`
	SubTasks          []SubTask  `json:"subtasks"`
	CreatedAt         time.Time  `json:"created_at"`
	PriorityReasoning string     `json:"priority_reasoning,omitempty"`
}

// TaskCreate is the client payload for creating a task. Priority is
// accepted for shape compatibility but the server recomputes it anyway.
type TaskCreate struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    Priority   `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	Tags        []string   `json:"tags"`
}

// TaskUpdate overlays only the fields present in the body onto the stored
// task. Absent fields stay nil and leave the record untouched.
type TaskUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *Priority  `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	Tags        *[]string  `json:"tags"`
}

// ToggleResponse is returned by the toggle endpoint. AchievementUpdate is
// set only on the call that crosses a level threshold.
type ToggleResponse struct {
	Task              Task    `json:"task"`
	AchievementUpdate *string `json:"achievement_update,omitempty"`
	XPGained          int     `json:"xp_gained"`
}

var validate = validator.New()

// ValidateStruct runs the validator tags on a request DTO and flattens the
// failures into one readable message.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var msgs []string
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s'", e.Field(), e.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
