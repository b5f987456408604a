package usecase

import (
	"context"

	"tasker/internal/domain/entity"
)

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateTaskStatusInput carries the requested status change.
type UpdateTaskStatusInput struct {
	Status entity.TaskStatus `json:"status" validate:"task_status"`
}

// TaskUsecase defines the owner-scoped task operations. A task that does not
// exist and a task owned by someone else are reported identically.
type TaskUsecase interface {
	Create(ctx context.Context, ownerID string, input *CreateTaskInput) (*entity.Task, error)
	ListAll(ctx context.Context, ownerID string) ([]*entity.Task, error)
	GetOne(ctx context.Context, ownerID, taskID string) (*entity.Task, error)
	UpdateStatus(ctx context.Context, ownerID, taskID string, input *UpdateTaskStatusInput) (*entity.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
}
