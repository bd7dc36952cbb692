// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tanercay/goalgrid/ent/generated/predicate"
	"github.com/tanercay/goalgrid/ent/generated/recurringtasktemplate"
)

// RecurringTaskTemplateDelete is the builder for deleting a RecurringTaskTemplate entity.
type RecurringTaskTemplateDelete struct {
	config
	hooks    []Hook
	mutation *RecurringTaskTemplateMutation
}

// Where appends a list predicates to the RecurringTaskTemplateDelete builder.
func (_d *RecurringTaskTemplateDelete) Where(ps ...predicate.RecurringTaskTemplate) *RecurringTaskTemplateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RecurringTaskTemplateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RecurringTaskTemplateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RecurringTaskTemplateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(recurringtasktemplate.Table, sqlgraph.NewFieldSpec(recurringtasktemplate.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// RecurringTaskTemplateDeleteOne is the builder for deleting a single RecurringTaskTemplate entity.
type RecurringTaskTemplateDeleteOne struct {
	_d *RecurringTaskTemplateDelete
}

// Where appends a list predicates to the RecurringTaskTemplateDelete builder.
func (_d *RecurringTaskTemplateDeleteOne) Where(ps ...predicate.RecurringTaskTemplate) *RecurringTaskTemplateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RecurringTaskTemplateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{recurringtasktemplate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RecurringTaskTemplateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
