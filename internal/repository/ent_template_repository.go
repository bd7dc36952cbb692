// internal/repository/ent_template_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	ent "github.com/tanercay/goalgrid/ent/generated"
	"github.com/tanercay/goalgrid/ent/generated/recurringtasktemplate"
	"github.com/tanercay/goalgrid/pkg/recurrence"
)

type EntTemplateRepository struct {
	client *ent.Client
}

func NewEntTemplateRepository(client *ent.Client) *EntTemplateRepository {
	return &EntTemplateRepository{
		client: client,
	}
}

func (r *EntTemplateRepository) Create(ctx context.Context, ownerID uuid.UUID, t *TemplateInput) (*ent.RecurringTaskTemplate, error) {
	create := r.client.RecurringTaskTemplate.
		Create().
		SetOwnerID(ownerID).
		SetProjectID(t.ProjectID).
		SetName(t.Name).
		SetDescription(t.Description).
		SetRecurrencePattern(t.RecurrencePattern)

	if t.Priority != "" {
		create = create.SetPriority(recurringtasktemplate.Priority(t.Priority))
	}
	if t.Category != "" {
		create = create.SetCategory(t.Category)
	}
	if t.DueTime != "" {
		create = create.SetDueTime(t.DueTime)
	}

	return create.Save(ctx)
}

func (r *EntTemplateRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*ent.RecurringTaskTemplate, error) {
	return r.client.RecurringTaskTemplate.
		Query().
		Where(recurringtasktemplate.ID(id), recurringtasktemplate.OwnerID(ownerID)).
		Only(ctx)
}

func (r *EntTemplateRepository) List(ctx context.Context, ownerID uuid.UUID, includeInactive bool) ([]*ent.RecurringTaskTemplate, error) {
	query := r.client.RecurringTaskTemplate.
		Query().
		Where(recurringtasktemplate.OwnerID(ownerID))

	if !includeInactive {
		query = query.Where(recurringtasktemplate.IsActive(true))
	}

	return query.
		Order(ent.Asc(recurringtasktemplate.FieldCreatedAt)).
		All(ctx)
}

// ListActive returns every active template across owners. Only the scheduled
// generation pass uses this; each template still carries its own owner id
// and all writes stay scoped to it.
func (r *EntTemplateRepository) ListActive(ctx context.Context) ([]*ent.RecurringTaskTemplate, error) {
	return r.client.RecurringTaskTemplate.
		Query().
		Where(recurringtasktemplate.IsActive(true)).
		Order(ent.Asc(recurringtasktemplate.FieldCreatedAt)).
		All(ctx)
}

func (r *EntTemplateRepository) Update(ctx context.Context, ownerID, id uuid.UUID, input *TemplateUpdateInput) (*ent.RecurringTaskTemplate, error) {
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
		update = update.SetPriority(recurringtasktemplate.Priority(*input.Priority))
	}
	if input.Category != nil {
		update = update.SetCategory(*input.Category)
	}
	if input.DueTime != nil {
		update = update.SetDueTime(*input.DueTime)
	}
	if input.RecurrencePattern != nil {
		update = update.SetRecurrencePattern(input.RecurrencePattern)
	}

	return update.Save(ctx)
}

func (r *EntTemplateRepository) SetActive(ctx context.Context, ownerID, id uuid.UUID, active bool) (*ent.RecurringTaskTemplate, error) {
	existing, err := r.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return existing.Update().SetIsActive(active).Save(ctx)
}

func (r *EntTemplateRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	existing, err := r.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	return r.client.RecurringTaskTemplate.DeleteOne(existing).Exec(ctx)
}

// MarkGenerated records the date a generation happened for, the idempotence
// guard against double generation on the same calendar date.
func (r *EntTemplateRepository) MarkGenerated(ctx context.Context, ownerID, id uuid.UUID, date time.Time) (*ent.RecurringTaskTemplate, error) {
	existing, err := r.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return existing.Update().SetLastGeneratedDate(date).Save(ctx)
}

// Types for repository input

type TemplateInput struct {
	ProjectID         uuid.UUID
	Name              string
	Description       string
	Priority          string
	Category          string
	DueTime           string
	RecurrencePattern *recurrence.Pattern
}

type TemplateUpdateInput struct {
	Name              *string
	Description       *string
	Priority          *string
	Category          *string
	DueTime           *string
	RecurrencePattern *recurrence.Pattern
}
