package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/task-tracker/internal/api/http/handlers"
	"github.com/spec-kit/task-tracker/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Tasks          *handlers.TasksHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	protected := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireUser())
	protected.Get("/user", cfg.Users.CurrentUser)
	protected.Put("/profile", cfg.Users.UpdateProfile)
	protected.Post("/logout", cfg.Users.Logout)

	api := app.Group("/api", cfg.AuthMiddleware.Handle, auth.RequireUser())
	api.Get("/tasks", cfg.Tasks.ListTasks)
	api.Post("/tasks", cfg.Tasks.CreateTask)
	// reorder must be registered before the :id routes
	api.Put("/tasks/reorder", cfg.Tasks.ReorderTasks)
	api.Get("/tasks/:id", cfg.Tasks.GetTask)
	api.Put("/tasks/:id", cfg.Tasks.UpdateTask)
	api.Delete("/tasks/:id", cfg.Tasks.DeleteTask)
}
