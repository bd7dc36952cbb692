// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tanercay/goalgrid/ent/generated/predicate"
	"github.com/tanercay/goalgrid/ent/generated/taskevent"
)

// TaskEventUpdate is the builder for updating TaskEvent entities.
type TaskEventUpdate struct {
	config
	hooks    []Hook
	mutation *TaskEventMutation
}

// Where appends a list predicates to the TaskEventUpdate builder.
func (_u *TaskEventUpdate) Where(ps ...predicate.TaskEvent) *TaskEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *TaskEventUpdate) SetEventType(v taskevent.EventType) *TaskEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableEventType(v *taskevent.EventType) *TaskEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TaskEventUpdate) SetTaskID(v uuid.UUID) *TaskEventUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableTaskID(v *uuid.UUID) *TaskEventUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetRelatedTaskID sets the "related_task_id" field.
func (_u *TaskEventUpdate) SetRelatedTaskID(v uuid.UUID) *TaskEventUpdate {
	_u.mutation.SetRelatedTaskID(v)
	return _u
}

// SetNillableRelatedTaskID sets the "related_task_id" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableRelatedTaskID(v *uuid.UUID) *TaskEventUpdate {
	if v != nil {
		_u.SetRelatedTaskID(*v)
	}
	return _u
}

// ClearRelatedTaskID clears the value of the "related_task_id" field.
func (_u *TaskEventUpdate) ClearRelatedTaskID() *TaskEventUpdate {
	_u.mutation.ClearRelatedTaskID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskEventUpdate) SetDescription(v string) *TaskEventUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableDescription(v *string) *TaskEventUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskEventUpdate) ClearDescription() *TaskEventUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *TaskEventUpdate) SetMetadata(v map[string]interface{}) *TaskEventUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *TaskEventUpdate) ClearMetadata() *TaskEventUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the TaskEventMutation object of the builder.
func (_u *TaskEventUpdate) Mutation() *TaskEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := taskevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`generated: validator failed for field "TaskEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskevent.Table, taskevent.Columns, sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(taskevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(taskevent.FieldTaskID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RelatedTaskID(); ok {
		_spec.SetField(taskevent.FieldRelatedTaskID, field.TypeUUID, value)
	}
	if _u.mutation.RelatedTaskIDCleared() {
		_spec.ClearField(taskevent.FieldRelatedTaskID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(taskevent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(taskevent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(taskevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(taskevent.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskEventUpdateOne is the builder for updating a single TaskEvent entity.
type TaskEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskEventMutation
}

// SetEventType sets the "event_type" field.
func (_u *TaskEventUpdateOne) SetEventType(v taskevent.EventType) *TaskEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableEventType(v *taskevent.EventType) *TaskEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TaskEventUpdateOne) SetTaskID(v uuid.UUID) *TaskEventUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableTaskID(v *uuid.UUID) *TaskEventUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetRelatedTaskID sets the "related_task_id" field.
func (_u *TaskEventUpdateOne) SetRelatedTaskID(v uuid.UUID) *TaskEventUpdateOne {
	_u.mutation.SetRelatedTaskID(v)
	return _u
}

// SetNillableRelatedTaskID sets the "related_task_id" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableRelatedTaskID(v *uuid.UUID) *TaskEventUpdateOne {
	if v != nil {
		_u.SetRelatedTaskID(*v)
	}
	return _u
}

// ClearRelatedTaskID clears the value of the "related_task_id" field.
func (_u *TaskEventUpdateOne) ClearRelatedTaskID() *TaskEventUpdateOne {
	_u.mutation.ClearRelatedTaskID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskEventUpdateOne) SetDescription(v string) *TaskEventUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableDescription(v *string) *TaskEventUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskEventUpdateOne) ClearDescription() *TaskEventUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *TaskEventUpdateOne) SetMetadata(v map[string]interface{}) *TaskEventUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *TaskEventUpdateOne) ClearMetadata() *TaskEventUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the TaskEventMutation object of the builder.
func (_u *TaskEventUpdateOne) Mutation() *TaskEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskEventUpdate builder.
func (_u *TaskEventUpdateOne) Where(ps ...predicate.TaskEvent) *TaskEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskEventUpdateOne) Select(field string, fields ...string) *TaskEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskEvent entity.
func (_u *TaskEventUpdateOne) Save(ctx context.Context) (*TaskEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskEventUpdateOne) SaveX(ctx context.Context) *TaskEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := taskevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`generated: validator failed for field "TaskEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskEventUpdateOne) sqlSave(ctx context.Context) (_node *TaskEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskevent.Table, taskevent.Columns, sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "TaskEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskevent.FieldID)
		for _, f := range fields {
			if !taskevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != taskevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(taskevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(taskevent.FieldTaskID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RelatedTaskID(); ok {
		_spec.SetField(taskevent.FieldRelatedTaskID, field.TypeUUID, value)
	}
	if _u.mutation.RelatedTaskIDCleared() {
		_spec.ClearField(taskevent.FieldRelatedTaskID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(taskevent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(taskevent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(taskevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(taskevent.FieldMetadata, field.TypeJSON)
	}
	_node = &TaskEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
