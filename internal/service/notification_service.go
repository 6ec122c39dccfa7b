package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/task-tracker/internal/events"
)

// NotificationService reacts to domain events with activity log lines.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTaskCreated, n.handleTaskCreated)
	n.dispatcher.Subscribe(events.EventTasksReordered, n.handleTasksReordered)
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventUsernameChanged, n.handleUsernameChanged)
}

func (n *NotificationService) handleTaskCreated(_ context.Context, event events.Event) error {
	n.logger.Info("TaskCreated", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleTasksReordered(_ context.Context, event events.Event) error {
	n.logger.Info("TasksReordered", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleUserRegistered(_ context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleUsernameChanged(_ context.Context, event events.Event) error {
	n.logger.Info("UsernameChanged", zap.Any("payload", event.Payload))
	return nil
}
