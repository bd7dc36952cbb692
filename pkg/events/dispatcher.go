// pkg/events/dispatcher.go
package events

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// TaskUnblocked describes a task whose last blocking dependency just
// completed. The engine emits it; delivery belongs to an external
// notification system.
type TaskUnblocked struct {
	OwnerID            uuid.UUID
	TaskID             uuid.UUID
	TaskName           string
	UnblockingTaskID   uuid.UUID
	UnblockingTaskName string
}

// Dispatcher is the outbound notification boundary.
type Dispatcher interface {
	DispatchTaskUnblocked(ctx context.Context, event TaskUnblocked) error
}

// LogDispatcher writes notifications to the process log. Used in
// development and testing, and as the default when no delivery backend is
// configured.
type LogDispatcher struct{}

// NewLogDispatcher creates a log-backed dispatcher
func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

func (d *LogDispatcher) DispatchTaskUnblocked(_ context.Context, event TaskUnblocked) error {
	log.Printf("🔓 Task %q unblocked by completion of %q (owner: %s)",
		event.TaskName, event.UnblockingTaskName, event.OwnerID)
	return nil
}

// NopDispatcher drops every notification. Handy for tests that only care
// about persisted events.
type NopDispatcher struct{}

// NewNopDispatcher creates a no-op dispatcher
func NewNopDispatcher() *NopDispatcher {
	return &NopDispatcher{}
}

func (d *NopDispatcher) DispatchTaskUnblocked(context.Context, TaskUnblocked) error {
	return nil
}
