// Code generated by ent, DO NOT EDIT.

package generated

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tanercay/goalgrid/ent/generated/recurringtasktemplate"
	"github.com/tanercay/goalgrid/pkg/recurrence"
)

// RecurringTaskTemplate is the model entity for the RecurringTaskTemplate schema.
type RecurringTaskTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// Project that generated instances are created in
	ProjectID uuid.UUID `json:"project_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority recurringtasktemplate.Priority `json:"priority,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Optional HH:MM time of day copied onto instances
	DueTime string `json:"due_time,omitempty"`
	// Structured recurrence pattern, mandatory on templates
	RecurrencePattern *recurrence.Pattern `json:"recurrence_pattern,omitempty"`
	// Inactive templates generate no further instances
	IsActive bool `json:"is_active,omitempty"`
	// Guards against duplicate generation for the same calendar date
	LastGeneratedDate *time.Time `json:"last_generated_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecurringTaskTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recurringtasktemplate.FieldRecurrencePattern:
			values[i] = new([]byte)
		case recurringtasktemplate.FieldIsActive:
			values[i] = new(sql.NullBool)
		case recurringtasktemplate.FieldName, recurringtasktemplate.FieldDescription, recurringtasktemplate.FieldPriority, recurringtasktemplate.FieldCategory, recurringtasktemplate.FieldDueTime:
			values[i] = new(sql.NullString)
		case recurringtasktemplate.FieldLastGeneratedDate, recurringtasktemplate.FieldCreatedAt, recurringtasktemplate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case recurringtasktemplate.FieldID, recurringtasktemplate.FieldOwnerID, recurringtasktemplate.FieldProjectID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecurringTaskTemplate fields.
func (_m *RecurringTaskTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recurringtasktemplate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case recurringtasktemplate.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case recurringtasktemplate.FieldProjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value != nil {
				_m.ProjectID = *value
			}
		case recurringtasktemplate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case recurringtasktemplate.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case recurringtasktemplate.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = recurringtasktemplate.Priority(value.String)
			}
		case recurringtasktemplate.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case recurringtasktemplate.FieldDueTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field due_time", values[i])
			} else if value.Valid {
				_m.DueTime = value.String
			}
		case recurringtasktemplate.FieldRecurrencePattern:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recurrence_pattern", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecurrencePattern); err != nil {
					return fmt.Errorf("unmarshal field recurrence_pattern: %w", err)
				}
			}
		case recurringtasktemplate.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case recurringtasktemplate.FieldLastGeneratedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_generated_date", values[i])
			} else if value.Valid {
				_m.LastGeneratedDate = new(time.Time)
				*_m.LastGeneratedDate = value.Time
			}
		case recurringtasktemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case recurringtasktemplate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RecurringTaskTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *RecurringTaskTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RecurringTaskTemplate.
// Note that you need to call RecurringTaskTemplate.Unwrap() before calling this method if this RecurringTaskTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecurringTaskTemplate) Update() *RecurringTaskTemplateUpdateOne {
	return NewRecurringTaskTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecurringTaskTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecurringTaskTemplate) Unwrap() *RecurringTaskTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: RecurringTaskTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecurringTaskTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("RecurringTaskTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("due_time=")
	builder.WriteString(_m.DueTime)
	builder.WriteString(", ")
	builder.WriteString("recurrence_pattern=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecurrencePattern))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	if v := _m.LastGeneratedDate; v != nil {
		builder.WriteString("last_generated_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RecurringTaskTemplates is a parsable slice of RecurringTaskTemplate.
type RecurringTaskTemplates []*RecurringTaskTemplate
