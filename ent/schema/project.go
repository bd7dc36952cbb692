// ent/schema/project.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Project holds the schema definition for the Project entity.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("owner_id", uuid.UUID{}).
			Immutable(),

		field.UUID("area_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Opaque pointer into the Pillar/Area hierarchy above this engine"),

		field.String("name").
			NotEmpty(),

		field.Text("description").
			Optional(),

		field.Bool("archived").
			Default(false),

		field.Int("sort_order").
			Default(0),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", Task.Type),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
	}
}
