package memory

import (
	"cmp"
	"context"
	"slices"

	"tasker/internal/domain/entity"
	"tasker/internal/domain/repository"

	"github.com/google/uuid"
)

type taskRepository struct {
	store *Store
}

// NewTaskRepository returns a repository.TaskRepository backed by store.
func NewTaskRepository(store *Store) repository.TaskRepository {
	return &taskRepository{store: store}
}

func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if task.Status == "" {
		task.Status = entity.TaskStatusPending
	}
	ts := repo.store.now()
	task.ID = uuid.Must(uuid.NewV7()).String()
	task.CreatedAt = ts
	task.UpdatedAt = ts

	repo.store.tasks[task.ID] = cloneTask(task)

	return nil
}

func (repo *taskRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]*entity.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	tasks := make([]*entity.Task, 0)
	for _, task := range repo.store.tasks {
		if task.OwnerID == ownerID {
			tasks = append(tasks, cloneTask(task))
		}
	}

	slices.SortFunc(tasks, func(a, b *entity.Task) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.ID, a.ID)
	})

	return tasks, nil
}

func (repo *taskRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	task, ok := repo.store.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, repository.ErrTaskNotFound
	}

	return cloneTask(task), nil
}

func (repo *taskRepository) UpdateStatusByIDAndOwner(
	ctx context.Context, id, ownerID string, status entity.TaskStatus,
) (*entity.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	task, ok := repo.store.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, repository.ErrTaskNotFound
	}
	task.Status = status
	task.UpdatedAt = repo.store.now()

	return cloneTask(task), nil
}

func (repo *taskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	task, ok := repo.store.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return repository.ErrTaskNotFound
	}
	delete(repo.store.tasks, id)

	return nil
}
