package domain

import "time"

// TaskStatus enumerates lifecycle states for tasks. The values label state
// only; any status may be set from any other via update.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// Task belongs to exactly one user. OrderIndex defines display order among
// the owner's tasks and is reassigned wholesale on reorder. DueDate is a
// calendar date with no meaningful time component. CreatedAt is assigned by
// the store on first save and never updated.
type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Status      TaskStatus
	DueDate     *time.Time
	OrderIndex  int
	CreatedAt   time.Time
}
