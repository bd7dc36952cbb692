// ent/schema/recurringtasktemplate.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/tanercay/goalgrid/pkg/recurrence"
)

// RecurringTaskTemplate holds the schema definition for the
// RecurringTaskTemplate entity: the rule that task instances are
// materialized from.
type RecurringTaskTemplate struct {
	ent.Schema
}

// Fields of the RecurringTaskTemplate.
func (RecurringTaskTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("owner_id", uuid.UUID{}).
			Immutable(),

		field.UUID("project_id", uuid.UUID{}).
			Comment("Project that generated instances are created in"),

		field.String("name").
			NotEmpty(),

		field.Text("description").
			Optional(),

		field.Enum("priority").
			Values("low", "medium", "high").
			Default("medium"),

		field.String("category").
			Optional(),

		field.String("due_time").
			Optional().
			Comment("Optional HH:MM time of day copied onto instances"),

		field.JSON("recurrence_pattern", &recurrence.Pattern{}).
			Comment("Structured recurrence pattern, mandatory on templates"),

		field.Bool("is_active").
			Default(true).
			Comment("Inactive templates generate no further instances"),

		field.Time("last_generated_date").
			Optional().
			Nillable().
			Comment("Guards against duplicate generation for the same calendar date"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the RecurringTaskTemplate.
func (RecurringTaskTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),

		// The generation pass scans active templates
		index.Fields("is_active"),
	}
}
