package entity

import (
	"slices"
	"time"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists every accepted status in display order.
var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

// Valid reports whether s is one of the accepted statuses.
func (s TaskStatus) Valid() bool {
	return slices.Contains(TaskStatuses, s)
}

// Task is a unit of work owned by exactly one user. The owner never changes.
type Task struct {
	ID          string
	OwnerID     string
	Owner       *TaskOwner // Denormalized for display, filled on reads.
	Title       string
	Description string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskOwner is the public projection of the user owning a task.
type TaskOwner struct {
	ID    string
	Name  string
	Email string
}
