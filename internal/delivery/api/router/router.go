// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tasker/internal/delivery/api/middleware"
	"tasker/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	TaskHandler    *handler.TaskHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	taskHandler    *handler.TaskHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		taskHandler:    params.TaskHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))
	}

	usersGroup := e.Group("/users")
	{
		usersGroup.POST("/signup", r.userHandler.Signup)
		usersGroup.POST("/signin", r.userHandler.Signin)
	}

	// The guard is attached per route so unknown task paths still fall through to the not-found handler.
	protect := r.authMiddleware.Authenticate
	tasksGroup := e.Group("/tasks")
	{
		tasksGroup.POST("", r.taskHandler.CreateTask, protect)
		tasksGroup.GET("", r.taskHandler.ListTasks, protect)
		tasksGroup.GET("/:id", r.taskHandler.GetTask, protect)
		tasksGroup.PUT("/:id", r.taskHandler.UpdateTaskStatus, protect)
		tasksGroup.DELETE("/:id", r.taskHandler.DeleteTask, protect)
	}

	e.RouteNotFound("/*", middleware.NotFoundHandler)
}
