package postgres

import (
	"context"

	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/repository"
	"tasker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// taskRepository implements the repository.TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// Create persists a new task for its owner.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	ownerID, err := uuid.Parse(task.OwnerID)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "invalid task owner id")
	}

	status := task.Status
	if status == "" {
		status = entity.TaskStatusPending
	}

	taskM := &model.TaskModel{
		UserID:      ownerID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(status),
	}
	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID.String()
	task.Status = status
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// FindAllByOwner lists the owner's tasks, newest first.
func (repo *taskRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]*entity.Task, error) {
	userID, err := uuid.Parse(ownerID)
	if err != nil {
		return []*entity.Task{}, nil
	}

	var taskModels []*model.TaskModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&taskModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// FindByIDAndOwner retrieves a task only when it belongs to ownerID.
func (repo *taskRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Task, error) {
	taskID, userID, ok := parseTaskKey(id, ownerID)
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	var taskM model.TaskModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find task")
	}

	return toTaskDomain(&taskM), nil
}

// UpdateStatusByIDAndOwner changes the status with one UPDATE ... RETURNING statement.
func (repo *taskRepository) UpdateStatusByIDAndOwner(
	ctx context.Context, id, ownerID string, status entity.TaskStatus,
) (*entity.Task, error) {
	taskID, userID, ok := parseTaskKey(id, ownerID)
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	var taskM model.TaskModel
	result := repo.db.WithContext(ctx).
		Model(&taskM).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Update("status", string(status))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTaskNotFound
	}

	return toTaskDomain(&taskM), nil
}

// DeleteByIDAndOwner removes the task with a single owner-scoped DELETE.
func (repo *taskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	taskID, userID, ok := parseTaskKey(id, ownerID)
	if !ok {
		return repository.ErrTaskNotFound
	}

	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&model.TaskModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func parseTaskKey(id, ownerID string) (taskID, userID uuid.UUID, ok bool) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	userID, err = uuid.Parse(ownerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}

	return taskID, userID, true
}
