package impl

import (
	"context"
	"log/slog"

	deliverycontext "tasker/internal/delivery/context"
	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/repository"
	"tasker/internal/usecase"
	"tasker/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type taskService struct {
	taskRepo  repository.TaskRepository
	userRepo  repository.UserRepository
	validator *validation.Validator
	logger    *slog.Logger
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo  repository.TaskRepository
	UserRepo  repository.UserRepository
	Validator *validation.Validator
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo:  params.TaskRepo,
		userRepo:  params.UserRepo,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new pending task for ownerID.
func (srv *taskService) Create(ctx context.Context, ownerID string, input *usecase.CreateTaskInput) (*entity.Task, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(validation.Describe(err))
	}

	task := &entity.Task{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Status:      entity.TaskStatusPending,
	}
	if err := srv.taskRepo.Create(ctx, task); err != nil {
		return nil, srv.storeFailure(ctx, err, "create task")
	}

	srv.log(ctx).Debug("Task created", slog.String("taskID", task.ID))

	return task, nil
}

// ListAll returns the owner's tasks newest first, each carrying the owner's public profile.
func (srv *taskService) ListAll(ctx context.Context, ownerID string) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, srv.storeFailure(ctx, err, "list tasks")
	}
	if len(tasks) == 0 {
		return tasks, nil
	}

	owner, err := srv.loadOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		task.Owner = owner
	}

	return tasks, nil
}

// GetOne returns the task when ownerID owns it.
func (srv *taskService) GetOne(ctx context.Context, ownerID, taskID string) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		return nil, srv.translate(ctx, err, "get task")
	}

	owner, err := srv.loadOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	task.Owner = owner

	return task, nil
}

// UpdateStatus validates the status before touching the store, then updates it atomically.
func (srv *taskService) UpdateStatus(
	ctx context.Context, ownerID, taskID string, input *usecase.UpdateTaskStatusInput,
) (*entity.Task, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, domainerrors.ErrInvalidTaskStatus
	}

	task, err := srv.taskRepo.UpdateStatusByIDAndOwner(ctx, taskID, ownerID, input.Status)
	if err != nil {
		return nil, srv.translate(ctx, err, "update task status")
	}

	return task, nil
}

// Delete removes the task when ownerID owns it.
func (srv *taskService) Delete(ctx context.Context, ownerID, taskID string) error {
	if err := srv.taskRepo.DeleteByIDAndOwner(ctx, taskID, ownerID); err != nil {
		return srv.translate(ctx, err, "delete task")
	}

	return nil
}

// loadOwner fetches the display projection of the owner. A vanished owner keeps only its id.
func (srv *taskService) loadOwner(ctx context.Context, ownerID string) (*entity.TaskOwner, error) {
	user, err := srv.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return &entity.TaskOwner{ID: ownerID}, nil
		}

		return nil, srv.storeFailure(ctx, err, "load task owner")
	}

	return &entity.TaskOwner{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func (srv *taskService) translate(ctx context.Context, err error, op string) error {
	if errors.Is(err, repository.ErrTaskNotFound) {
		return domainerrors.ErrTaskNotFound
	}

	return srv.storeFailure(ctx, err, op)
}

// storeFailure logs the cause and reports a server fault. Store AppErrors keep
// their own status, anything else becomes ErrInternalError.
func (srv *taskService) storeFailure(ctx context.Context, err error, op string) error {
	srv.log(ctx).Error("Task store operation failed", slog.String("op", op), slog.Any("error", err))

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.Wrap(err, op)
	}

	return domainerrors.ErrInternalError.WrapMessage(op)
}
