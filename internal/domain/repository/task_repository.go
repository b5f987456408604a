package repository

import (
	"context"

	"tasker/internal/domain/entity"
	"tasker/internal/errors"
)

// ErrTaskNotFound is returned when no task matches both the task id and the owner id.
// Malformed ids produce the same error.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository is the task store. Every single-task operation is scoped to the owner
// and runs as one atomic store operation.
type TaskRepository interface {
	// Create persists a new task and fills its ID and timestamps.
	Create(ctx context.Context, task *entity.Task) error

	// FindAllByOwner returns the owner's tasks, newest first.
	FindAllByOwner(ctx context.Context, ownerID string) ([]*entity.Task, error)

	// FindByIDAndOwner returns the task only if it belongs to ownerID.
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Task, error)

	// UpdateStatusByIDAndOwner sets the status in a single find-and-update and returns the updated task.
	UpdateStatusByIDAndOwner(ctx context.Context, id, ownerID string, status entity.TaskStatus) (*entity.Task, error)

	// DeleteByIDAndOwner removes the task in a single find-and-delete.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error
}
