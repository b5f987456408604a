package handler

import (
	"log/slog"
	"net/http"

	"tasker/internal/delivery/api/middleware"
	"tasker/internal/delivery/api/response"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const taskDeletedMessage = "Task deleted successfully"

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
	Logger *slog.Logger
}

// TaskHandler serves the authenticated /tasks routes.
type TaskHandler struct {
	taskUC usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler.
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		taskUC: params.TaskUC,
		logger: params.Logger,
	}
}

// CreateTask handles POST /tasks.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthorized
	}

	var input usecase.CreateTaskInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request body")
	}

	task, err := h.taskUC.Create(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SingleTask(c, http.StatusCreated, task)
}

// ListTasks handles GET /tasks.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthorized
	}

	tasks, err := h.taskUC.ListAll(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.TaskList(c, tasks)
}

// GetTask handles GET /tasks/:id.
func (h *TaskHandler) GetTask(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthorized
	}

	task, err := h.taskUC.GetOne(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SingleTask(c, http.StatusOK, task)
}

// UpdateTaskStatus handles PUT /tasks/:id.
func (h *TaskHandler) UpdateTaskStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthorized
	}

	var input usecase.UpdateTaskStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request body")
	}

	task, err := h.taskUC.UpdateStatus(c.Request().Context(), userID, c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SingleTask(c, http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/:id.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrNotAuthorized
	}

	if err := h.taskUC.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, taskDeletedMessage)
}
