// internal/service/test_helpers.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	ent "github.com/tanercay/goalgrid/ent/generated"
	"github.com/tanercay/goalgrid/ent/generated/enttest"
	"github.com/tanercay/goalgrid/ent/generated/task"
	"github.com/tanercay/goalgrid/internal/middleware"
	"github.com/tanercay/goalgrid/internal/models"
	"github.com/tanercay/goalgrid/internal/repository"
	"github.com/tanercay/goalgrid/pkg/events"

	_ "github.com/mattn/go-sqlite3"
)

// Test helpers
func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	return client
}

// engineFixture wires the full status engine over one client, the same way
// cmd/server does but with a no-op dispatcher.
type engineFixture struct {
	client     *ent.Client
	taskRepo   *repository.EntTaskRepository
	tmplRepo   *repository.EntTemplateRepository
	events     *EventService
	resolver   *DependencyResolver
	propagator *Propagator
	guard      *TransitionGuard
}

func setupEngine(t *testing.T) *engineFixture {
	client := setupTestDB(t)
	t.Cleanup(func() { client.Close() })

	eventService := NewEventService(client, events.NewNopDispatcher())
	resolver := NewDependencyResolver(client)
	propagator := NewPropagator(client, eventService)
	guard := NewTransitionGuard(client, resolver, propagator, eventService)

	return &engineFixture{
		client:     client,
		taskRepo:   repository.NewEntTaskRepository(client),
		tmplRepo:   repository.NewEntTemplateRepository(client),
		events:     eventService,
		resolver:   resolver,
		propagator: propagator,
		guard:      guard,
	}
}

func ownerContext(ownerID uuid.UUID) context.Context {
	return middleware.WithOwnerID(context.Background(), ownerID)
}

func createTestProject(t *testing.T, client *ent.Client, ownerID uuid.UUID, name string) *ent.Project {
	p, err := client.Project.Create().
		SetOwnerID(ownerID).
		SetName(name).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

// taskOption mutates the ent create builder so tests can declare exactly
// the fields they care about.
type taskOption func(*ent.TaskCreate)

func withStatus(s task.Status) taskOption {
	return func(c *ent.TaskCreate) {
		column, _ := models.ColumnForStatus(string(s))
		c.SetStatus(s).
			SetCompleted(s == task.StatusCompleted).
			SetKanbanColumn(task.KanbanColumn(column))
	}
}

func withDependencies(deps ...uuid.UUID) taskOption {
	return func(c *ent.TaskCreate) {
		c.SetDependencies(deps)
	}
}

func withParent(parentID uuid.UUID) taskOption {
	return func(c *ent.TaskCreate) {
		c.SetParentTaskID(parentID)
	}
}

func withSubtaskGate() taskOption {
	return func(c *ent.TaskCreate) {
		c.SetSubTaskCompletionRequired(true)
	}
}

func withCompletedAt(ts time.Time) taskOption {
	return func(c *ent.TaskCreate) {
		c.SetCompletedAt(ts)
	}
}

func withSortOrder(order int) taskOption {
	return func(c *ent.TaskCreate) {
		c.SetSortOrder(order)
	}
}

func createTestTask(t *testing.T, client *ent.Client, ownerID, projectID uuid.UUID, name string, opts ...taskOption) *ent.Task {
	create := client.Task.Create().
		SetOwnerID(ownerID).
		SetProjectID(projectID).
		SetName(name).
		SetDependencies([]uuid.UUID{})
	for _, opt := range opts {
		opt(create)
	}
	created, err := create.Save(context.Background())
	require.NoError(t, err)
	return created
}
