// ent/schema/task.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/tanercay/goalgrid/pkg/recurrence"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("owner_id", uuid.UUID{}).
			Immutable().
			Comment("Opaque owner identifier supplied by the auth collaborator"),

		field.UUID("project_id", uuid.UUID{}).
			Immutable().
			Comment("Owning project, fixed at creation"),

		field.UUID("parent_task_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Set when this task is a sub-task"),

		field.String("name").
			NotEmpty().
			Comment("Task name"),

		field.Text("description").
			Optional().
			Comment("Detailed description of the task"),

		field.Enum("status").
			Values("todo", "in_progress", "review", "completed").
			Default("todo").
			Comment("Current status of the task"),

		field.Bool("completed").
			Default(false).
			Comment("Kept consistent with status == completed"),

		field.Enum("kanban_column").
			Values("to_do", "in_progress", "review", "done").
			Default("to_do").
			Comment("Board column, always the image of status under the fixed map"),

		field.Enum("priority").
			Values("low", "medium", "high").
			Default("medium").
			Comment("Priority level of the task"),

		field.String("category").
			Optional().
			Comment("Free-form category label"),

		field.JSON("dependencies", []uuid.UUID{}).
			Optional().
			Comment("Ordered set of task ids that must complete before this task may leave todo"),

		field.Bool("sub_task_completion_required").
			Default(false).
			Comment("When true, completion requires every direct sub-task to be completed"),

		field.Time("due_date").
			Optional().
			Nillable().
			Comment("When the task should be completed"),

		field.String("due_time").
			Optional().
			Comment("Optional HH:MM time of day"),

		field.String("recurrence").
			Optional().
			Comment("Legacy scalar recurrence type, superseded by recurrence_pattern"),

		field.Int("recurrence_interval").
			Optional().
			Comment("Legacy scalar recurrence interval"),

		field.JSON("recurrence_pattern", &recurrence.Pattern{}).
			Optional().
			Comment("Structured recurrence pattern"),

		field.UUID("template_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Recurring template this instance was generated from"),

		field.Int("sort_order").
			Default(0).
			Comment("Manual ordering within the project"),

		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set on entering completed, cleared on leaving it"),

		field.Time("date_created").
			Default(time.Now).
			Immutable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("tasks").
			Field("project_id").
			Unique().
			Required().
			Immutable(),

		// Self-referencing edge for sub-tasks
		edge.To("subtasks", Task.Type).
			From("parent").
			Field("parent_task_id").
			Unique(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Every query is owner-scoped
		index.Fields("owner_id"),

		// Board projection pulls a whole project ordered by sort_order
		index.Fields("owner_id", "project_id"),

		index.Fields("status"),

		index.Fields("kanban_column"),

		// Propagation fetches direct sub-tasks
		index.Fields("parent_task_id"),

		// Instance cap counting per template
		index.Fields("template_id"),
	}
}
