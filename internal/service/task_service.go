package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/task-tracker/internal/domain"
	"github.com/spec-kit/task-tracker/internal/events"
	"github.com/spec-kit/task-tracker/internal/repository"
)

// TaskService owns task CRUD and ordering for the calling user. The caller is
// always passed in explicitly by the transport layer; the service never reads
// ambient authentication state.
type TaskService struct {
	tasks      repository.TaskRepository
	dispatcher events.Dispatcher
}

// TaskDependencies bundles collaborators for the task service.
type TaskDependencies struct {
	TaskRepo   repository.TaskRepository
	Dispatcher events.Dispatcher
}

// NewTaskService constructs the service.
func NewTaskService(deps TaskDependencies) *TaskService {
	return &TaskService{
		tasks:      deps.TaskRepo,
		dispatcher: deps.Dispatcher,
	}
}

// TaskCreateInput describes task creation payload.
type TaskCreateInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	DueDate     *time.Time
}

// TaskUpdateInput carries replacement values. Title, Description and DueDate
// overwrite the stored values unconditionally, even when blank; Status is
// applied only when non-nil.
type TaskUpdateInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Status      *domain.TaskStatus
}

// List returns every task owned by the caller. Rows come back in store
// order; clients needing a stable order sort by OrderIndex.
func (s *TaskService) List(ctx context.Context, caller *domain.User) ([]domain.Task, error) {
	if caller == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.tasks.ListByOwner(ctx, caller.ID)
}

// Get fetches a task by identifier. The lookup is owner-agnostic: any
// authenticated caller can fetch any task by id. Whether that should be
// tightened to owner-scoped access is an open product question; the lenient
// behavior is kept deliberately.
func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// Create persists a new task owned by the caller. Status defaults to PENDING
// when unset; a blank title is rejected before anything is persisted.
func (s *TaskService) Create(ctx context.Context, caller *domain.User, input TaskCreateInput) (*domain.Task, error) {
	if caller == nil {
		return nil, domain.ErrUserNotFound
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	task := &domain.Task{
		OwnerID:     caller.ID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		DueDate:     input.DueDate,
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type: events.EventTaskCreated,
		Payload: events.TaskCreatedPayload{
			TaskID:  task.ID,
			OwnerID: task.OwnerID,
			Title:   task.Title,
		},
	})
	return task, nil
}

// Update overwrites title, description and due date from input and applies
// status only when provided. Last write wins; there are no partial-field
// semantics beyond status.
func (s *TaskService) Update(ctx context.Context, id string, input TaskUpdateInput) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.DueDate = input.DueDate
	if input.Status != nil {
		task.Status = *input.Status
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task by identifier. Deleting a missing id is a no-op, not
// an error.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.tasks.DeleteByID(ctx, id)
}

// Reorder sets each task's order index to its 0-based position in ids.
// Unknown identifiers are skipped silently, and the sequence is not filtered
// to the caller's own tasks; both behaviors match the drag-and-drop client
// contract. Each task is looked up and saved individually, so a concurrent
// delete mid-reorder simply drops that entry.
func (s *TaskService) Reorder(ctx context.Context, ids []string) error {
	for i, id := range ids {
		task, err := s.tasks.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				continue
			}
			return err
		}
		task.OrderIndex = i
		if err := s.tasks.Update(ctx, task); err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				continue
			}
			return err
		}
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventTasksReordered,
		Payload: events.TasksReorderedPayload{TaskIDs: ids},
	})
	return nil
}

func (s *TaskService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
