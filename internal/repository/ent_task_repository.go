// internal/repository/ent_task_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	ent "github.com/tanercay/goalgrid/ent/generated"
	"github.com/tanercay/goalgrid/ent/generated/predicate"
	"github.com/tanercay/goalgrid/ent/generated/task"
	"github.com/tanercay/goalgrid/internal/models"
	"github.com/tanercay/goalgrid/pkg/recurrence"
)

type EntTaskRepository struct {
	client *ent.Client
}

func NewEntTaskRepository(client *ent.Client) *EntTaskRepository {
	return &EntTaskRepository{
		client: client,
	}
}

func (r *EntTaskRepository) Create(ctx context.Context, ownerID uuid.UUID, t *TaskInput) (*ent.Task, error) {
	status := t.Status
	if status == "" {
		status = models.StatusTodo
	}
	column, ok := models.ColumnForStatus(status)
	if !ok {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	create := r.client.Task.
		Create().
		SetOwnerID(ownerID).
		SetProjectID(t.ProjectID).
		SetName(t.Name).
		SetDescription(t.Description).
		SetStatus(task.Status(status)).
		SetCompleted(status == models.StatusCompleted).
		SetKanbanColumn(task.KanbanColumn(column)).
		SetNillableParentTaskID(t.ParentTaskID).
		SetNillableDueDate(t.DueDate).
		SetNillableTemplateID(t.TemplateID).
		SetSubTaskCompletionRequired(t.SubTaskCompletionRequired).
		SetSortOrder(t.SortOrder)

	if t.Priority != "" {
		create = create.SetPriority(task.Priority(t.Priority))
	}
	if t.Category != "" {
		create = create.SetCategory(t.Category)
	}
	if t.DueTime != "" {
		create = create.SetDueTime(t.DueTime)
	}

	// Keep dependency lists non-nil so orderings survive round trips
	if len(t.Dependencies) > 0 {
		create = create.SetDependencies(t.Dependencies)
	} else {
		create = create.SetDependencies([]uuid.UUID{})
	}

	if t.RecurrencePattern != nil {
		create = create.SetRecurrencePattern(t.RecurrencePattern)
	}

	return create.Save(ctx)
}

func (r *EntTaskRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*ent.Task, error) {
	return r.client.Task.
		Query().
		Where(task.ID(id), task.OwnerID(ownerID)).
		Only(ctx)
}

func (r *EntTaskRepository) ListByProject(ctx context.Context, ownerID, projectID uuid.UUID) ([]*ent.Task, error) {
	return r.client.Task.
		Query().
		Where(task.OwnerID(ownerID), task.ProjectID(projectID)).
		Order(ent.Asc(task.FieldSortOrder), ent.Asc(task.FieldCreatedAt)).
		All(ctx)
}

func (r *EntTaskRepository) List(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*ent.Task, error) {
	predicates := []predicate.Task{task.OwnerID(ownerID)}

	if filter.ProjectID != nil {
		predicates = append(predicates, task.ProjectID(*filter.ProjectID))
	}
	if filter.Status != nil {
		predicates = append(predicates, task.StatusEQ(task.Status(*filter.Status)))
	}

	return r.client.Task.
		Query().
		Where(predicates...).
		Order(ent.Asc(task.FieldSortOrder), ent.Asc(task.FieldCreatedAt)).
		All(ctx)
}

// Subtasks returns the direct sub-tasks of parentID. Propagation relies on
// this being a fresh read, not a caller-supplied snapshot.
func (r *EntTaskRepository) Subtasks(ctx context.Context, ownerID, parentID uuid.UUID) ([]*ent.Task, error) {
	return r.client.Task.
		Query().
		Where(task.OwnerID(ownerID), task.ParentTaskIDEQ(parentID)).
		Order(ent.Asc(task.FieldSortOrder), ent.Asc(task.FieldCreatedAt)).
		All(ctx)
}

func (r *EntTaskRepository) Update(ctx context.Context, ownerID, id uuid.UUID, input *TaskUpdateInput) (*ent.Task, error) {
	existing, err := r.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	update := existing.Update()

	if input.Name != nil {
		update = update.SetName(*input.Name)
	}
	if input.Description != nil {
		update = update.SetDescription(*input.Description)
	}
	if input.Priority != nil {
		update = update.SetPriority(task.Priority(*input.Priority))
	}
	if input.Category != nil {
		update = update.SetCategory(*input.Category)
	}
	if input.DueDate != nil {
		update = update.SetDueDate(*input.DueDate)
	}
	if input.DueTime != nil {
		update = update.SetDueTime(*input.DueTime)
	}

	return update.Save(ctx)
}

// SetDependencies replaces the dependency list. Callers are expected to have
// validated the ids already (no self-reference, all owner-scoped).
func (r *EntTaskRepository) SetDependencies(ctx context.Context, ownerID, id uuid.UUID, deps []uuid.UUID) (*ent.Task, error) {
	existing, err := r.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if deps == nil {
		deps = []uuid.UUID{}
	}
	return existing.Update().SetDependencies(deps).Save(ctx)
}

// Delete removes a task and strips its id from every sibling dependency
// list, so completing the remaining blockers does not chase a ghost.
func (r *EntTaskRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	target, err := tx.Task.Query().
		Where(task.ID(id), task.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		return rollback(tx, err)
	}

	dependents, err := tx.Task.Query().
		Where(task.OwnerID(ownerID), task.DependenciesNotNil()).
		All(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("query dependents: %w", err))
	}

	for _, dependent := range dependents {
		stripped, changed := removeID(dependent.Dependencies, id)
		if !changed {
			continue
		}
		if err := tx.Task.UpdateOne(dependent).SetDependencies(stripped).Exec(ctx); err != nil {
			return rollback(tx, fmt.Errorf("strip dependency from task %s: %w", dependent.ID, err))
		}
	}

	if err := tx.Task.DeleteOne(target).Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("delete task %s: %w", id, err))
	}

	return tx.Commit()
}

// DependentsOf returns the owner's not-yet-completed tasks whose dependency
// list contains id. The list filter happens in memory: dependency lists are
// JSON and small, and every query is already owner-scoped.
func (r *EntTaskRepository) DependentsOf(ctx context.Context, ownerID, id uuid.UUID) ([]*ent.Task, error) {
	candidates, err := r.client.Task.
		Query().
		Where(
			task.OwnerID(ownerID),
			task.StatusNEQ(task.StatusCompleted),
			task.DependenciesNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}

	var dependents []*ent.Task
	for _, candidate := range candidates {
		if containsID(candidate.Dependencies, id) {
			dependents = append(dependents, candidate)
		}
	}
	return dependents, nil
}

func (r *EntTaskRepository) CountByTemplate(ctx context.Context, ownerID, templateID uuid.UUID) (int, error) {
	return r.client.Task.
		Query().
		Where(task.OwnerID(ownerID), task.TemplateIDEQ(templateID)).
		Count(ctx)
}

// NextSortOrder returns the sort_order that appends at the end of a project.
func (r *EntTaskRepository) NextSortOrder(ctx context.Context, ownerID, projectID uuid.UUID) (int, error) {
	last, err := r.client.Task.
		Query().
		Where(task.OwnerID(ownerID), task.ProjectID(projectID)).
		Order(ent.Desc(task.FieldSortOrder)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, err
	}
	return last.SortOrder + 1, nil
}

// Helper function for transaction rollback
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: %v", err, rerr)
	}
	return err
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func removeID(ids []uuid.UUID, id uuid.UUID) ([]uuid.UUID, bool) {
	stripped := make([]uuid.UUID, 0, len(ids))
	changed := false
	for _, candidate := range ids {
		if candidate == id {
			changed = true
			continue
		}
		stripped = append(stripped, candidate)
	}
	return stripped, changed
}

// Types for repository input

type TaskInput struct {
	ProjectID                 uuid.UUID
	Name                      string
	Description               string
	Status                    string
	Priority                  string
	Category                  string
	ParentTaskID              *uuid.UUID
	Dependencies              []uuid.UUID
	SubTaskCompletionRequired bool
	DueDate                   *time.Time
	DueTime                   string
	RecurrencePattern         *recurrence.Pattern
	TemplateID                *uuid.UUID
	SortOrder                 int
}

type TaskUpdateInput struct {
	Name        *string
	Description *string
	Priority    *string
	Category    *string
	DueDate     *time.Time
	DueTime     *string
}

type ListFilter struct {
	ProjectID *uuid.UUID
	Status    *string
}
