// internal/service/transition_guard.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	ent "github.com/tanercay/goalgrid/ent/generated"
	"github.com/tanercay/goalgrid/ent/generated/task"
	"github.com/tanercay/goalgrid/internal/models"
)

// RejectionReason classifies why a status transition was refused.
type RejectionReason string

const (
	ReasonDependenciesIncomplete RejectionReason = "DEPENDENCIES_INCOMPLETE"
	ReasonSubtasksIncomplete     RejectionReason = "SUBTASKS_INCOMPLETE"
)

// TransitionRejection carries the reason a transition was refused plus the
// tasks standing in the way. It is a domain outcome, not an error: callers
// translate it to their own boundary (gRPC maps it to FailedPrecondition).
type TransitionRejection struct {
	Reason   RejectionReason
	Blocking []TaskRef
}

// Message renders a user-facing explanation such as
// "Cannot start: complete 'Design schema' first".
func (r *TransitionRejection) Message() string {
	names := make([]string, 0, len(r.Blocking))
	for _, ref := range r.Blocking {
		names = append(names, fmt.Sprintf("'%s'", ref.Name))
	}
	joined := strings.Join(names, " and ")

	switch r.Reason {
	case ReasonSubtasksIncomplete:
		if joined == "" {
			return "Cannot complete: finish all sub-tasks first"
		}
		return fmt.Sprintf("Cannot complete: finish %s first", joined)
	default:
		if joined == "" {
			return "Cannot start: complete the task's dependencies first"
		}
		return fmt.Sprintf("Cannot start: complete %s first", joined)
	}
}

// TransitionGuard validates and applies status transitions. Every status
// change in the system funnels through Attempt so gating, kanban sync,
// completion propagation and unblock detection stay consistent.
type TransitionGuard struct {
	client     *ent.Client
	resolver   *DependencyResolver
	propagator *Propagator
	events     *EventService
}

// NewTransitionGuard creates a new transition guard
func NewTransitionGuard(client *ent.Client, resolver *DependencyResolver, propagator *Propagator, events *EventService) *TransitionGuard {
	g := &TransitionGuard{
		client:     client,
		resolver:   resolver,
		propagator: propagator,
		events:     events,
	}
	if propagator != nil {
		propagator.guard = g
	}
	return g
}

// Attempt moves a task to the requested status. A refused transition
// returns a non-nil rejection and leaves the task untouched; the error
// return is reserved for store faults.
func (g *TransitionGuard) Attempt(ctx context.Context, ownerID, taskID uuid.UUID, requested task.Status) (*ent.Task, *TransitionRejection, error) {
	t, err := g.client.Task.
		Query().
		Where(task.ID(taskID), task.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		return nil, nil, err
	}

	// Moving back to todo is always allowed. Everything else requires the
	// task's dependencies to be completed first.
	if requested != task.StatusTodo {
		resolution, err := g.resolver.Resolve(ctx, ownerID, t)
		if err != nil {
			return nil, nil, err
		}
		if !resolution.CanStart {
			return nil, &TransitionRejection{
				Reason:   ReasonDependenciesIncomplete,
				Blocking: resolution.Blocking,
			}, nil
		}
	}

	// Completion additionally requires every sub-task to be done when the
	// task opted in to sub-task gating.
	if requested == task.StatusCompleted && t.SubTaskCompletionRequired {
		subtasks, err := g.client.Task.
			Query().
			Where(task.ParentTaskIDEQ(t.ID), task.OwnerID(ownerID)).
			All(ctx)
		if err != nil {
			return nil, nil, err
		}
		var incomplete []TaskRef
		for _, st := range subtasks {
			if st.Status != task.StatusCompleted {
				incomplete = append(incomplete, TaskRef{ID: st.ID, Name: st.Name})
			}
		}
		if len(incomplete) > 0 {
			return nil, &TransitionRejection{
				Reason:   ReasonSubtasksIncomplete,
				Blocking: incomplete,
			}, nil
		}
	}

	wasCompleted := t.Status == task.StatusCompleted

	updated, err := applyStatus(ctx, t, requested)
	if err != nil {
		return nil, nil, err
	}

	if updated.ParentTaskID != nil {
		if err := g.propagator.OnSubtaskStatusChanged(ctx, ownerID, *updated.ParentTaskID); err != nil {
			return nil, nil, err
		}
	}

	if requested == task.StatusCompleted && !wasCompleted {
		g.emitUnblocked(ctx, ownerID, updated)
	}

	return updated, nil, nil
}

// emitUnblocked logs an unblock event for every task that became startable
// because completed finished. The transition has already persisted by the
// time this runs, so faults are logged and swallowed, never surfaced.
func (g *TransitionGuard) emitUnblocked(ctx context.Context, ownerID uuid.UUID, completed *ent.Task) {
	candidates, err := g.client.Task.
		Query().
		Where(
			task.OwnerID(ownerID),
			task.StatusNEQ(task.StatusCompleted),
			task.DependenciesNotNil(),
		).
		All(ctx)
	if err != nil {
		log.Printf("⚠️ Failed to scan for unblocked dependents of task %s: %v", completed.ID, err)
		return
	}

	for _, c := range candidates {
		if !containsDep(c.Dependencies, completed.ID) {
			continue
		}
		resolution, err := g.resolver.Resolve(ctx, ownerID, c)
		if err != nil {
			log.Printf("⚠️ Failed to resolve dependencies of task %s: %v", c.ID, err)
			continue
		}
		if resolution.CanStart {
			g.events.LogTaskUnblocked(ctx, ownerID, c, completed)
		}
	}
}

// applyStatus writes the status and everything derived from it: the
// completed flag, the mirrored kanban column and the completion timestamp.
func applyStatus(ctx context.Context, t *ent.Task, s task.Status) (*ent.Task, error) {
	column, _ := models.ColumnForStatus(string(s))

	update := t.Update().
		SetStatus(s).
		SetCompleted(s == task.StatusCompleted).
		SetKanbanColumn(task.KanbanColumn(column))

	if s == task.StatusCompleted {
		update.SetCompletedAt(time.Now())
	} else {
		update.ClearCompletedAt()
	}

	return update.Save(ctx)
}
