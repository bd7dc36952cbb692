// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tanercay/goalgrid/ent/generated/recurringtasktemplate"
	"github.com/tanercay/goalgrid/pkg/recurrence"
)

// RecurringTaskTemplateCreate is the builder for creating a RecurringTaskTemplate entity.
type RecurringTaskTemplateCreate struct {
	config
	mutation *RecurringTaskTemplateMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *RecurringTaskTemplateCreate) SetOwnerID(v uuid.UUID) *RecurringTaskTemplateCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *RecurringTaskTemplateCreate) SetProjectID(v uuid.UUID) *RecurringTaskTemplateCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RecurringTaskTemplateCreate) SetName(v string) *RecurringTaskTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RecurringTaskTemplateCreate) SetDescription(v string) *RecurringTaskTemplateCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RecurringTaskTemplateCreate) SetNillableDescription(v *string) *RecurringTaskTemplateCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *RecurringTaskTemplateCreate) SetPriority(v recurringtasktemplate.Priority) *RecurringTaskTemplateCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *RecurringTaskTemplateCreate) SetNillablePriority(v *recurringtasktemplate.Priority) *RecurringTaskTemplateCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *RecurringTaskTemplateCreate) SetCategory(v string) *RecurringTaskTemplateCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *RecurringTaskTemplateCreate) SetNillableCategory(v *string) *RecurringTaskTemplateCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetDueTime sets the "due_time" field.
func (_c *RecurringTaskTemplateCreate) SetDueTime(v string) *RecurringTaskTemplateCreate {
	_c.mutation.SetDueTime(v)
	return _c
}

// SetNillableDueTime sets the "due_time" field if the given value is not nil.
func (_c *RecurringTaskTemplateCreate) SetNillableDueTime(v *string) *RecurringTaskTemplateCreate {
	if v != nil {
		_c.SetDueTime(*v)
	}
	return _c
}

// SetRecurrencePattern sets the "recurrence_pattern" field.
func (_c *RecurringTaskTemplateCreate) SetRecurrencePattern(v *recurrence.Pattern) *RecurringTaskTemplateCreate {
	_c.mutation.SetRecurrencePattern(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *RecurringTaskTemplateCreate) SetIsActive(v bool) *RecurringTaskTemplateCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *RecurringTaskTemplateCreate) SetNillableIsActive(v *bool) *RecurringTaskTemplateCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetLastGeneratedDate sets the "last_generated_date" field.
func (_c *RecurringTaskTemplateCreate) SetLastGeneratedDate(v time.Time) *RecurringTaskTemplateCreate {
	_c.mutation.SetLastGeneratedDate(v)
	return _c
}

// SetNillableLastGeneratedDate sets the "last_generated_date" field if the given value is not nil.
func (_c *RecurringTaskTemplateCreate) SetNillableLastGeneratedDate(v *time.Time) *RecurringTaskTemplateCreate {
	if v != nil {
		_c.SetLastGeneratedDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecurringTaskTemplateCreate) SetCreatedAt(v time.Time) *RecurringTaskTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecurringTaskTemplateCreate) SetNillableCreatedAt(v *time.Time) *RecurringTaskTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecurringTaskTemplateCreate) SetUpdatedAt(v time.Time) *RecurringTaskTemplateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RecurringTaskTemplateCreate) SetNillableUpdatedAt(v *time.Time) *RecurringTaskTemplateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecurringTaskTemplateCreate) SetID(v uuid.UUID) *RecurringTaskTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RecurringTaskTemplateCreate) SetNillableID(v *uuid.UUID) *RecurringTaskTemplateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RecurringTaskTemplateMutation object of the builder.
func (_c *RecurringTaskTemplateCreate) Mutation() *RecurringTaskTemplateMutation {
	return _c.mutation
}

// Save creates the RecurringTaskTemplate in the database.
func (_c *RecurringTaskTemplateCreate) Save(ctx context.Context) (*RecurringTaskTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecurringTaskTemplateCreate) SaveX(ctx context.Context) *RecurringTaskTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecurringTaskTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecurringTaskTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecurringTaskTemplateCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := recurringtasktemplate.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := recurringtasktemplate.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recurringtasktemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := recurringtasktemplate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := recurringtasktemplate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecurringTaskTemplateCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`generated: missing required field "RecurringTaskTemplate.owner_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`generated: missing required field "RecurringTaskTemplate.project_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`generated: missing required field "RecurringTaskTemplate.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := recurringtasktemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "RecurringTaskTemplate.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`generated: missing required field "RecurringTaskTemplate.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := recurringtasktemplate.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`generated: validator failed for field "RecurringTaskTemplate.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecurrencePattern(); !ok {
		return &ValidationError{Name: "recurrence_pattern", err: errors.New(`generated: missing required field "RecurringTaskTemplate.recurrence_pattern"`)}
	}
	if v, ok := _c.mutation.RecurrencePattern(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "recurrence_pattern", err: fmt.Errorf(`generated: validator failed for field "RecurringTaskTemplate.recurrence_pattern": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`generated: missing required field "RecurringTaskTemplate.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "RecurringTaskTemplate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "RecurringTaskTemplate.updated_at"`)}
	}
	return nil
}

func (_c *RecurringTaskTemplateCreate) sqlSave(ctx context.Context) (*RecurringTaskTemplate, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecurringTaskTemplateCreate) createSpec() (*RecurringTaskTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &RecurringTaskTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recurringtasktemplate.Table, sqlgraph.NewFieldSpec(recurringtasktemplate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(recurringtasktemplate.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(recurringtasktemplate.FieldProjectID, field.TypeUUID, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(recurringtasktemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(recurringtasktemplate.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(recurringtasktemplate.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(recurringtasktemplate.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.DueTime(); ok {
		_spec.SetField(recurringtasktemplate.FieldDueTime, field.TypeString, value)
		_node.DueTime = value
	}
	if value, ok := _c.mutation.RecurrencePattern(); ok {
		_spec.SetField(recurringtasktemplate.FieldRecurrencePattern, field.TypeJSON, value)
		_node.RecurrencePattern = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(recurringtasktemplate.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.LastGeneratedDate(); ok {
		_spec.SetField(recurringtasktemplate.FieldLastGeneratedDate, field.TypeTime, value)
		_node.LastGeneratedDate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recurringtasktemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(recurringtasktemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// RecurringTaskTemplateCreateBulk is the builder for creating many RecurringTaskTemplate entities in bulk.
type RecurringTaskTemplateCreateBulk struct {
	config
	err      error
	builders []*RecurringTaskTemplateCreate
}

// Save creates the RecurringTaskTemplate entities in the database.
func (_c *RecurringTaskTemplateCreateBulk) Save(ctx context.Context) ([]*RecurringTaskTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecurringTaskTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecurringTaskTemplateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RecurringTaskTemplateCreateBulk) SaveX(ctx context.Context) []*RecurringTaskTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecurringTaskTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecurringTaskTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
