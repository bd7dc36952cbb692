// internal/service/dependency_resolver.go
package service

import (
	"context"

	"github.com/google/uuid"

	ent "github.com/tanercay/goalgrid/ent/generated"
	"github.com/tanercay/goalgrid/ent/generated/task"
)

// TaskRef identifies a task in user-facing rejection details.
type TaskRef struct {
	ID   uuid.UUID
	Name string
}

// Resolution is the outcome of a dependency check. Blocking preserves the
// order of the task's dependency list.
type Resolution struct {
	CanStart bool
	Blocking []TaskRef
}

// DependencyResolver decides whether a task's declared prerequisites are all
// completed. It is read-only.
type DependencyResolver struct {
	client *ent.Client
}

// NewDependencyResolver creates a new dependency resolver
func NewDependencyResolver(client *ent.Client) *DependencyResolver {
	return &DependencyResolver{
		client: client,
	}
}

// Resolve checks every dependency of t within the owner's scope. A
// dependency id that no longer resolves counts as unsatisfied: absence of
// data blocks, it never unblocks.
func (r *DependencyResolver) Resolve(ctx context.Context, ownerID uuid.UUID, t *ent.Task) (*Resolution, error) {
	resolution := &Resolution{CanStart: true}

	for _, depID := range t.Dependencies {
		dep, err := r.client.Task.
			Query().
			Where(task.ID(depID), task.OwnerID(ownerID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				resolution.CanStart = false
				resolution.Blocking = append(resolution.Blocking, TaskRef{ID: depID, Name: "(deleted task)"})
				continue
			}
			return nil, err
		}
		if dep.Status != task.StatusCompleted {
			resolution.CanStart = false
			resolution.Blocking = append(resolution.Blocking, TaskRef{ID: dep.ID, Name: dep.Name})
		}
	}

	return resolution, nil
}
