package model

import (
	"time"
)

// Task represents a to-do item
type Task struct {
	ID          int        `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Done        bool       `json:"done" db:"done"`
	DueDate     *time.Time `json:"due_date,omitempty" db:"due_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`
	Tags        []Tag      `json:"tags" db:"-"`
}

// TaskCreate represents data needed to create a new task
type TaskCreate struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	TagIDs      []int      `json:"tag_ids"`
}

// TaskUpdate represents data for updating a task.
// Nil fields are left unchanged; a non-nil empty TagIDs clears the tags.
type TaskUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Done        *bool      `json:"done"`
	DueDate     *time.Time `json:"due_date"`
	TagIDs      []int      `json:"tag_ids"`
}

// NewTaskFromCreate maps a create request to a new task entity.
// Referenced tags are resolved by the service, timestamps by storage.
func NewTaskFromCreate(create TaskCreate) Task {
	return Task{
		Title:       create.Title,
		Description: create.Description,
		DueDate:     create.DueDate,
		Tags:        []Tag{},
	}
}

// WithUpdate returns a copy of the task with the set fields applied.
// Tag changes are handled by the service since they need a repository.
// The receiver is never modified.
func (t Task) WithUpdate(update TaskUpdate) Task {
	if update.Title != nil {
		t.Title = *update.Title
	}
	if update.Description != nil {
		t.Description = *update.Description
	}
	if update.Done != nil {
		t.Done = *update.Done
	}
	if update.DueDate != nil {
		t.DueDate = update.DueDate
	}
	return t
}
