// internal/service/event_service.go
package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	ent "github.com/tanercay/goalgrid/ent/generated"
	"github.com/tanercay/goalgrid/ent/generated/taskevent"
	"github.com/tanercay/goalgrid/pkg/events"
)

// EventService records engine-originated task events. Logging is
// best-effort: a failed write is reported to the process log and swallowed
// so it never rolls back the state change it describes.
type EventService struct {
	client     *ent.Client
	dispatcher events.Dispatcher
}

// NewEventService creates a new event service
func NewEventService(client *ent.Client, dispatcher events.Dispatcher) *EventService {
	if dispatcher == nil {
		dispatcher = events.NewNopDispatcher()
	}
	return &EventService{
		client:     client,
		dispatcher: dispatcher,
	}
}

// LogTaskUnblocked records that blocked became startable because unblocker
// was completed, and forwards the event to the dispatcher.
func (s *EventService) LogTaskUnblocked(ctx context.Context, ownerID uuid.UUID, blocked, unblocker *ent.Task) {
	s.persist(ctx, ownerID, taskevent.EventTypeTaskUnblocked, blocked.ID, &unblocker.ID,
		fmt.Sprintf("Task %q is now unblocked: %q was completed", blocked.Name, unblocker.Name),
		map[string]interface{}{
			"task_name":       blocked.Name,
			"unblocker_name":  unblocker.Name,
			"dependency_size": len(blocked.Dependencies),
		})

	if err := s.dispatcher.DispatchTaskUnblocked(ctx, events.TaskUnblocked{
		OwnerID:            ownerID,
		TaskID:             blocked.ID,
		TaskName:           blocked.Name,
		UnblockingTaskID:   unblocker.ID,
		UnblockingTaskName: unblocker.Name,
	}); err != nil {
		log.Printf("⚠️ Failed to dispatch unblock event for task %s: %v", blocked.ID, err)
	}
}

// LogAutoCompleted records that a parent task was completed because its
// last open sub-task finished.
func (s *EventService) LogAutoCompleted(ctx context.Context, ownerID uuid.UUID, parent *ent.Task) {
	s.persist(ctx, ownerID, taskevent.EventTypeTaskAutoCompleted, parent.ID, nil,
		fmt.Sprintf("Task %q was auto-completed: all sub-tasks are done", parent.Name),
		map[string]interface{}{"task_name": parent.Name})
}

// LogAutoReverted records that a completed parent was moved back to
// in-progress because a sub-task was reopened.
func (s *EventService) LogAutoReverted(ctx context.Context, ownerID uuid.UUID, parent *ent.Task) {
	s.persist(ctx, ownerID, taskevent.EventTypeTaskAutoReverted, parent.ID, nil,
		fmt.Sprintf("Task %q was reverted to in-progress: a sub-task was reopened", parent.Name),
		map[string]interface{}{"task_name": parent.Name})
}

// LogInstanceGenerated records that a recurring template materialized a
// task instance.
func (s *EventService) LogInstanceGenerated(ctx context.Context, ownerID uuid.UUID, instance *ent.Task, templateID uuid.UUID) {
	s.persist(ctx, ownerID, taskevent.EventTypeInstanceGenerated, instance.ID, &templateID,
		fmt.Sprintf("Generated task %q from recurring template", instance.Name),
		map[string]interface{}{
			"task_name":   instance.Name,
			"template_id": templateID.String(),
		})
}

// ListEvents returns the owner's events, newest first.
func (s *EventService) ListEvents(ctx context.Context, ownerID uuid.UUID, limit int) ([]*ent.TaskEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	evts, err := s.client.TaskEvent.
		Query().
		Where(taskevent.OwnerID(ownerID)).
		Order(ent.Desc(taskevent.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list task events: %w", err)
	}
	return evts, nil
}

func (s *EventService) persist(ctx context.Context, ownerID uuid.UUID, eventType taskevent.EventType, taskID uuid.UUID, relatedID *uuid.UUID, description string, metadata map[string]interface{}) {
	create := s.client.TaskEvent.Create().
		SetOwnerID(ownerID).
		SetEventType(eventType).
		SetTaskID(taskID).
		SetDescription(description)

	if relatedID != nil {
		create = create.SetRelatedTaskID(*relatedID)
	}
	if len(metadata) > 0 {
		create = create.SetMetadata(metadata)
	}

	if _, err := create.Save(ctx); err != nil {
		log.Printf("⚠️ Failed to record %s event for task %s: %v", eventType, taskID, err)
	}
}
