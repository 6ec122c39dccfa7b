package dto

import (
	"time"

	"github.com/spec-kit/task-tracker/internal/domain"
)

// CreateTaskRequest describes the task creation payload. DueDate uses the
// YYYY-MM-DD calendar form.
type CreateTaskRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      domain.TaskStatus `json:"status"`
	DueDate     *string           `json:"dueDate"`
}

// UpdateTaskRequest carries replacement values. Title, description and
// dueDate replace the stored values as given; status is applied only when
// present.
type UpdateTaskRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Status      *domain.TaskStatus `json:"status"`
	DueDate     *string            `json:"dueDate"`
}

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      domain.TaskStatus `json:"status"`
	DueDate     *string           `json:"dueDate"`
	OrderIndex  int               `json:"orderIndex"`
	OwnerID     string            `json:"ownerId"`
	CreatedAt   time.Time         `json:"createdAt"`
}
