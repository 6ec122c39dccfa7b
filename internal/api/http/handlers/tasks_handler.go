package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/task-tracker/internal/api/dto"
	"github.com/spec-kit/task-tracker/internal/auth"
	"github.com/spec-kit/task-tracker/internal/domain"
	"github.com/spec-kit/task-tracker/internal/service"
	apperrors "github.com/spec-kit/task-tracker/pkg/util"
)

const dueDateLayout = "2006-01-02"

// TasksHandler manages task endpoints. Every operation passes the resolved
// caller to the service explicitly.
type TasksHandler struct {
	service *service.TaskService
}

// NewTasksHandler constructs handler.
func NewTasksHandler(taskService *service.TaskService) *TasksHandler {
	return &TasksHandler{service: taskService}
}

// ListTasks GET /api/tasks.
func (h *TasksHandler) ListTasks(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	tasks, err := h.service.List(c.Context(), principal.User)
	if err != nil {
		return err
	}
	items := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		items = append(items, taskResponse(&tasks[i]))
	}
	return c.JSON(items)
}

// GetTask GET /api/tasks/:id.
func (h *TasksHandler) GetTask(c *fiber.Ctx) error {
	task, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(taskResponse(task))
}

// CreateTask POST /api/tasks.
func (h *TasksHandler) CreateTask(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return err
	}

	input := service.TaskCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     dueDate,
	}
	task, err := h.service.Create(c.Context(), principal.User, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(taskResponse(task))
}

// UpdateTask PUT /api/tasks/:id.
func (h *TasksHandler) UpdateTask(c *fiber.Ctx) error {
	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return err
	}

	input := service.TaskUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     dueDate,
	}
	task, err := h.service.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(taskResponse(task))
}

// DeleteTask DELETE /api/tasks/:id.
func (h *TasksHandler) DeleteTask(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ReorderTasks PUT /api/tasks/reorder. The body is a raw JSON array of task
// ids in their new display order.
func (h *TasksHandler) ReorderTasks(c *fiber.Ctx) error {
	var ids []string
	if err := c.BodyParser(&ids); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.Reorder(c.Context(), ids); err != nil {
		return err
	}
	return c.SendStatus(http.StatusOK)
}

func parseDueDate(val *string) (*time.Time, error) {
	if val == nil || *val == "" {
		return nil, nil
	}
	t, err := time.Parse(dueDateLayout, *val)
	if err != nil {
		return nil, apperrors.NewValidationError("dueDate must be YYYY-MM-DD", nil)
	}
	return &t, nil
}

func taskResponse(task *domain.Task) dto.TaskResponse {
	var dueDate *string
	if task.DueDate != nil {
		formatted := task.DueDate.Format(dueDateLayout)
		dueDate = &formatted
	}
	return dto.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		DueDate:     dueDate,
		OrderIndex:  task.OrderIndex,
		OwnerID:     task.OwnerID,
		CreatedAt:   task.CreatedAt,
	}
}
