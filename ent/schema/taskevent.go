// ent/schema/taskevent.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TaskEvent holds the schema definition for engine-emitted events: unblock
// notifications and auto-complete/auto-revert audit records.
type TaskEvent struct {
	ent.Schema
}

// Fields of the TaskEvent.
func (TaskEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("owner_id", uuid.UUID{}).
			Immutable(),

		field.Enum("event_type").
			Values("task_unblocked", "task_auto_completed", "task_auto_reverted", "instance_generated"),

		field.UUID("task_id", uuid.UUID{}).
			Comment("Task the event is about"),

		field.UUID("related_task_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Unblocking task, sub-task, or generating template"),

		field.String("description").
			Optional(),

		field.JSON("metadata", map[string]interface{}{}).
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TaskEvent.
func (TaskEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),

		index.Fields("task_id"),

		// Event feeds are read newest first
		index.Fields("created_at"),
	}
}
