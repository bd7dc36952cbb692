// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tanercay/goalgrid/ent/generated/predicate"
	"github.com/tanercay/goalgrid/ent/generated/recurringtasktemplate"
	"github.com/tanercay/goalgrid/pkg/recurrence"
)

// RecurringTaskTemplateUpdate is the builder for updating RecurringTaskTemplate entities.
type RecurringTaskTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *RecurringTaskTemplateMutation
}

// Where appends a list predicates to the RecurringTaskTemplateUpdate builder.
func (_u *RecurringTaskTemplateUpdate) Where(ps ...predicate.RecurringTaskTemplate) *RecurringTaskTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *RecurringTaskTemplateUpdate) SetProjectID(v uuid.UUID) *RecurringTaskTemplateUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdate) SetNillableProjectID(v *uuid.UUID) *RecurringTaskTemplateUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RecurringTaskTemplateUpdate) SetName(v string) *RecurringTaskTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdate) SetNillableName(v *string) *RecurringTaskTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RecurringTaskTemplateUpdate) SetDescription(v string) *RecurringTaskTemplateUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdate) SetNillableDescription(v *string) *RecurringTaskTemplateUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RecurringTaskTemplateUpdate) ClearDescription() *RecurringTaskTemplateUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RecurringTaskTemplateUpdate) SetPriority(v recurringtasktemplate.Priority) *RecurringTaskTemplateUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdate) SetNillablePriority(v *recurringtasktemplate.Priority) *RecurringTaskTemplateUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *RecurringTaskTemplateUpdate) SetCategory(v string) *RecurringTaskTemplateUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdate) SetNillableCategory(v *string) *RecurringTaskTemplateUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *RecurringTaskTemplateUpdate) ClearCategory() *RecurringTaskTemplateUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetDueTime sets the "due_time" field.
func (_u *RecurringTaskTemplateUpdate) SetDueTime(v string) *RecurringTaskTemplateUpdate {
	_u.mutation.SetDueTime(v)
	return _u
}

// SetNillableDueTime sets the "due_time" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdate) SetNillableDueTime(v *string) *RecurringTaskTemplateUpdate {
	if v != nil {
		_u.SetDueTime(*v)
	}
	return _u
}

// ClearDueTime clears the value of the "due_time" field.
func (_u *RecurringTaskTemplateUpdate) ClearDueTime() *RecurringTaskTemplateUpdate {
	_u.mutation.ClearDueTime()
	return _u
}

// SetRecurrencePattern sets the "recurrence_pattern" field.
func (_u *RecurringTaskTemplateUpdate) SetRecurrencePattern(v *recurrence.Pattern) *RecurringTaskTemplateUpdate {
	_u.mutation.SetRecurrencePattern(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *RecurringTaskTemplateUpdate) SetIsActive(v bool) *RecurringTaskTemplateUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdate) SetNillableIsActive(v *bool) *RecurringTaskTemplateUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastGeneratedDate sets the "last_generated_date" field.
func (_u *RecurringTaskTemplateUpdate) SetLastGeneratedDate(v time.Time) *RecurringTaskTemplateUpdate {
	_u.mutation.SetLastGeneratedDate(v)
	return _u
}

// SetNillableLastGeneratedDate sets the "last_generated_date" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdate) SetNillableLastGeneratedDate(v *time.Time) *RecurringTaskTemplateUpdate {
	if v != nil {
		_u.SetLastGeneratedDate(*v)
	}
	return _u
}

// ClearLastGeneratedDate clears the value of the "last_generated_date" field.
func (_u *RecurringTaskTemplateUpdate) ClearLastGeneratedDate() *RecurringTaskTemplateUpdate {
	_u.mutation.ClearLastGeneratedDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecurringTaskTemplateUpdate) SetUpdatedAt(v time.Time) *RecurringTaskTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RecurringTaskTemplateMutation object of the builder.
func (_u *RecurringTaskTemplateUpdate) Mutation() *RecurringTaskTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecurringTaskTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecurringTaskTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecurringTaskTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecurringTaskTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecurringTaskTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recurringtasktemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecurringTaskTemplateUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := recurringtasktemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "RecurringTaskTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := recurringtasktemplate.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`generated: validator failed for field "RecurringTaskTemplate.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecurrencePattern(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "recurrence_pattern", err: fmt.Errorf(`generated: validator failed for field "RecurringTaskTemplate.recurrence_pattern": %w`, err)}
		}
	}
	return nil
}

func (_u *RecurringTaskTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recurringtasktemplate.Table, recurringtasktemplate.Columns, sqlgraph.NewFieldSpec(recurringtasktemplate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(recurringtasktemplate.FieldProjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(recurringtasktemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(recurringtasktemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(recurringtasktemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(recurringtasktemplate.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(recurringtasktemplate.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(recurringtasktemplate.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.DueTime(); ok {
		_spec.SetField(recurringtasktemplate.FieldDueTime, field.TypeString, value)
	}
	if _u.mutation.DueTimeCleared() {
		_spec.ClearField(recurringtasktemplate.FieldDueTime, field.TypeString)
	}
	if value, ok := _u.mutation.RecurrencePattern(); ok {
		_spec.SetField(recurringtasktemplate.FieldRecurrencePattern, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(recurringtasktemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastGeneratedDate(); ok {
		_spec.SetField(recurringtasktemplate.FieldLastGeneratedDate, field.TypeTime, value)
	}
	if _u.mutation.LastGeneratedDateCleared() {
		_spec.ClearField(recurringtasktemplate.FieldLastGeneratedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recurringtasktemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recurringtasktemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecurringTaskTemplateUpdateOne is the builder for updating a single RecurringTaskTemplate entity.
type RecurringTaskTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecurringTaskTemplateMutation
}

// SetProjectID sets the "project_id" field.
func (_u *RecurringTaskTemplateUpdateOne) SetProjectID(v uuid.UUID) *RecurringTaskTemplateUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdateOne) SetNillableProjectID(v *uuid.UUID) *RecurringTaskTemplateUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RecurringTaskTemplateUpdateOne) SetName(v string) *RecurringTaskTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdateOne) SetNillableName(v *string) *RecurringTaskTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RecurringTaskTemplateUpdateOne) SetDescription(v string) *RecurringTaskTemplateUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdateOne) SetNillableDescription(v *string) *RecurringTaskTemplateUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RecurringTaskTemplateUpdateOne) ClearDescription() *RecurringTaskTemplateUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RecurringTaskTemplateUpdateOne) SetPriority(v recurringtasktemplate.Priority) *RecurringTaskTemplateUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdateOne) SetNillablePriority(v *recurringtasktemplate.Priority) *RecurringTaskTemplateUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *RecurringTaskTemplateUpdateOne) SetCategory(v string) *RecurringTaskTemplateUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdateOne) SetNillableCategory(v *string) *RecurringTaskTemplateUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *RecurringTaskTemplateUpdateOne) ClearCategory() *RecurringTaskTemplateUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetDueTime sets the "due_time" field.
func (_u *RecurringTaskTemplateUpdateOne) SetDueTime(v string) *RecurringTaskTemplateUpdateOne {
	_u.mutation.SetDueTime(v)
	return _u
}

// SetNillableDueTime sets the "due_time" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdateOne) SetNillableDueTime(v *string) *RecurringTaskTemplateUpdateOne {
	if v != nil {
		_u.SetDueTime(*v)
	}
	return _u
}

// ClearDueTime clears the value of the "due_time" field.
func (_u *RecurringTaskTemplateUpdateOne) ClearDueTime() *RecurringTaskTemplateUpdateOne {
	_u.mutation.ClearDueTime()
	return _u
}

// SetRecurrencePattern sets the "recurrence_pattern" field.
func (_u *RecurringTaskTemplateUpdateOne) SetRecurrencePattern(v *recurrence.Pattern) *RecurringTaskTemplateUpdateOne {
	_u.mutation.SetRecurrencePattern(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *RecurringTaskTemplateUpdateOne) SetIsActive(v bool) *RecurringTaskTemplateUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdateOne) SetNillableIsActive(v *bool) *RecurringTaskTemplateUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastGeneratedDate sets the "last_generated_date" field.
func (_u *RecurringTaskTemplateUpdateOne) SetLastGeneratedDate(v time.Time) *RecurringTaskTemplateUpdateOne {
	_u.mutation.SetLastGeneratedDate(v)
	return _u
}

// SetNillableLastGeneratedDate sets the "last_generated_date" field if the given value is not nil.
func (_u *RecurringTaskTemplateUpdateOne) SetNillableLastGeneratedDate(v *time.Time) *RecurringTaskTemplateUpdateOne {
	if v != nil {
		_u.SetLastGeneratedDate(*v)
	}
	return _u
}

// ClearLastGeneratedDate clears the value of the "last_generated_date" field.
func (_u *RecurringTaskTemplateUpdateOne) ClearLastGeneratedDate() *RecurringTaskTemplateUpdateOne {
	_u.mutation.ClearLastGeneratedDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecurringTaskTemplateUpdateOne) SetUpdatedAt(v time.Time) *RecurringTaskTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RecurringTaskTemplateMutation object of the builder.
func (_u *RecurringTaskTemplateUpdateOne) Mutation() *RecurringTaskTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecurringTaskTemplateUpdate builder.
func (_u *RecurringTaskTemplateUpdateOne) Where(ps ...predicate.RecurringTaskTemplate) *RecurringTaskTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecurringTaskTemplateUpdateOne) Select(field string, fields ...string) *RecurringTaskTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecurringTaskTemplate entity.
func (_u *RecurringTaskTemplateUpdateOne) Save(ctx context.Context) (*RecurringTaskTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecurringTaskTemplateUpdateOne) SaveX(ctx context.Context) *RecurringTaskTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecurringTaskTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecurringTaskTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecurringTaskTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recurringtasktemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecurringTaskTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := recurringtasktemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "RecurringTaskTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := recurringtasktemplate.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`generated: validator failed for field "RecurringTaskTemplate.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecurrencePattern(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "recurrence_pattern", err: fmt.Errorf(`generated: validator failed for field "RecurringTaskTemplate.recurrence_pattern": %w`, err)}
		}
	}
	return nil
}

func (_u *RecurringTaskTemplateUpdateOne) sqlSave(ctx context.Context) (_node *RecurringTaskTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recurringtasktemplate.Table, recurringtasktemplate.Columns, sqlgraph.NewFieldSpec(recurringtasktemplate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "RecurringTaskTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recurringtasktemplate.FieldID)
		for _, f := range fields {
			if !recurringtasktemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != recurringtasktemplate.FieldID {
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
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(recurringtasktemplate.FieldProjectID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(recurringtasktemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(recurringtasktemplate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(recurringtasktemplate.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(recurringtasktemplate.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(recurringtasktemplate.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(recurringtasktemplate.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.DueTime(); ok {
		_spec.SetField(recurringtasktemplate.FieldDueTime, field.TypeString, value)
	}
	if _u.mutation.DueTimeCleared() {
		_spec.ClearField(recurringtasktemplate.FieldDueTime, field.TypeString)
	}
	if value, ok := _u.mutation.RecurrencePattern(); ok {
		_spec.SetField(recurringtasktemplate.FieldRecurrencePattern, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(recurringtasktemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastGeneratedDate(); ok {
		_spec.SetField(recurringtasktemplate.FieldLastGeneratedDate, field.TypeTime, value)
	}
	if _u.mutation.LastGeneratedDateCleared() {
		_spec.ClearField(recurringtasktemplate.FieldLastGeneratedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recurringtasktemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &RecurringTaskTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recurringtasktemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
