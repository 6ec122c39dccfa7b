package events

import "time"

// EventType identifies the kind of domain event.
type EventType string

const (
	EventTaskCreated     EventType = "task.created"
	EventTasksReordered  EventType = "task.reordered"
	EventUserRegistered  EventType = "user.registered"
	EventUsernameChanged EventType = "user.username_changed"
)

// Event is an in-process notification about a domain change. Nothing is
// persisted; subscribers react while the request is in flight.
type Event struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	Payload   any
}

// TaskCreatedPayload accompanies EventTaskCreated.
type TaskCreatedPayload struct {
	TaskID  string
	OwnerID string
	Title   string
}

// TasksReorderedPayload accompanies EventTasksReordered.
type TasksReorderedPayload struct {
	TaskIDs []string
}

// UserRegisteredPayload accompanies EventUserRegistered.
type UserRegisteredPayload struct {
	UserID   string
	Username string
}

// UsernameChangedPayload accompanies EventUsernameChanged.
type UsernameChangedPayload struct {
	UserID      string
	OldUsername string
	NewUsername string
}
