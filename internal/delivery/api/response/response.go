// Package response renders the JSON bodies returned by the API.
package response

import (
	"net/http"
	"time"

	deliverycontext "tasker/internal/delivery/context"
	"tasker/internal/domain/entity"
	"tasker/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthResponse is returned by signup and signin.
type AuthResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// TaskOwner is the public projection of a task's owner.
type TaskOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Task is the client view of a task.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	User        TaskOwner `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskResponse wraps a single task.
type TaskResponse struct {
	Success bool  `json:"success"`
	Task    *Task `json:"task"`
}

// TaskListResponse wraps the caller's tasks.
type TaskListResponse struct {
	Success bool    `json:"success"`
	Count   int     `json:"count"`
	Tasks   []*Task `json:"tasks"`
}

// MessageResponse is a success acknowledgement without payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error"`
	Meta    *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Auth writes the signup/signin body.
func Auth(c echo.Context, statusCode int, out *usecase.AuthOutput) error {
	return c.JSON(statusCode, AuthResponse{
		UserID: out.UserID,
		Name:   out.Name,
		Email:  out.Email,
		Token:  out.Token,
	})
}

// SingleTask writes {success, task}.
func SingleTask(c echo.Context, statusCode int, task *entity.Task) error {
	return c.JSON(statusCode, TaskResponse{Success: true, Task: NewTask(task)})
}

// TaskList writes {success, count, tasks}.
func TaskList(c echo.Context, tasks []*entity.Task) error {
	items := make([]*Task, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, NewTask(task))
	}

	return c.JSON(http.StatusOK, TaskListResponse{Success: true, Count: len(items), Tasks: items})
}

// Message writes {success: true, message}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Success: true, Message: message})
}

// NewTask maps a domain task to its client view.
func NewTask(task *entity.Task) *Task {
	owner := TaskOwner{ID: task.OwnerID}
	if task.Owner != nil {
		owner = TaskOwner{ID: task.Owner.ID, Name: task.Owner.Name, Email: task.Owner.Email}
	}

	return &Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		User:        owner,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
