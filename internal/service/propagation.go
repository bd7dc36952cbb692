// internal/service/propagation.go
package service

import (
	"context"

	"github.com/google/uuid"

	ent "github.com/tanercay/goalgrid/ent/generated"
	"github.com/tanercay/goalgrid/ent/generated/task"
)

// Propagator reacts to sub-task status changes on their direct parent.
// Propagation is single-level: an auto-completed parent does not trigger a
// further check on its own parent.
type Propagator struct {
	client *ent.Client
	events *EventService

	// set by NewTransitionGuard; used to surface unblock events when a
	// parent auto-completes.
	guard *TransitionGuard
}

// NewPropagator creates a new propagator
func NewPropagator(client *ent.Client, events *EventService) *Propagator {
	return &Propagator{
		client: client,
		events: events,
	}
}

// OnSubtaskStatusChanged re-evaluates the parent after one of its sub-tasks
// changed status. A parent that vanished in the meantime is a no-op.
func (p *Propagator) OnSubtaskStatusChanged(ctx context.Context, ownerID, parentID uuid.UUID) error {
	parent, err := p.client.Task.
		Query().
		Where(task.ID(parentID), task.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return err
	}

	subtasks, err := p.client.Task.
		Query().
		Where(task.ParentTaskIDEQ(parent.ID), task.OwnerID(ownerID)).
		All(ctx)
	if err != nil {
		return err
	}
	if len(subtasks) == 0 {
		return nil
	}

	allDone := true
	for _, st := range subtasks {
		if st.Status != task.StatusCompleted {
			allDone = false
			break
		}
	}

	switch {
	case allDone && parent.SubTaskCompletionRequired && parent.Status != task.StatusCompleted:
		// The parent's own dependencies still gate auto-completion.
		resolution, err := p.guard.resolver.Resolve(ctx, ownerID, parent)
		if err != nil {
			return err
		}
		if !resolution.CanStart {
			return nil
		}
		updated, err := applyStatus(ctx, parent, task.StatusCompleted)
		if err != nil {
			return err
		}
		p.events.LogAutoCompleted(ctx, ownerID, updated)
		p.guard.emitUnblocked(ctx, ownerID, updated)
		return nil

	case !allDone && parent.Status == task.StatusCompleted:
		updated, err := applyStatus(ctx, parent, task.StatusInProgress)
		if err != nil {
			return err
		}
		p.events.LogAutoReverted(ctx, ownerID, updated)
		return nil
	}

	return nil
}
