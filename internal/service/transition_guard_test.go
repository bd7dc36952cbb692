// internal/service/transition_guard_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanercay/goalgrid/ent/generated/task"
	"github.com/tanercay/goalgrid/ent/generated/taskevent"
)

func TestAttempt_StartBlockedByDependency(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Guard")

	dep := createTestTask(t, fx.client, ownerID, project.ID, "Blocker")
	tk := createTestTask(t, fx.client, ownerID, project.ID, "Blocked", withDependencies(dep.ID))

	updated, rejection, err := fx.guard.Attempt(context.Background(), ownerID, tk.ID, task.StatusInProgress)
	require.NoError(t, err)
	require.NotNil(t, rejection)
	assert.Nil(t, updated)
	assert.Equal(t, ReasonDependenciesIncomplete, rejection.Reason)
	assert.Contains(t, rejection.Message(), "'Blocker'")

	// The rejected transition must leave the task untouched.
	reloaded, err := fx.client.Task.Get(context.Background(), tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusTodo, reloaded.Status)
	assert.Equal(t, task.KanbanColumnToDo, reloaded.KanbanColumn)
}

func TestAttempt_RevertToTodoAlwaysAllowed(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Guard")

	dep := createTestTask(t, fx.client, ownerID, project.ID, "Blocker")
	tk := createTestTask(t, fx.client, ownerID, project.ID, "Blocked",
		withDependencies(dep.ID), withStatus(task.StatusInProgress))

	updated, rejection, err := fx.guard.Attempt(context.Background(), ownerID, tk.ID, task.StatusTodo)
	require.NoError(t, err)
	require.Nil(t, rejection)
	assert.Equal(t, task.StatusTodo, updated.Status)
}

func TestAttempt_AcceptedTransitionSyncsColumnAndFlags(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Guard")

	tk := createTestTask(t, fx.client, ownerID, project.ID, "Free")

	updated, rejection, err := fx.guard.Attempt(context.Background(), ownerID, tk.ID, task.StatusReview)
	require.NoError(t, err)
	require.Nil(t, rejection)
	assert.Equal(t, task.StatusReview, updated.Status)
	assert.Equal(t, task.KanbanColumnReview, updated.KanbanColumn)
	assert.False(t, updated.Completed)
	assert.Nil(t, updated.CompletedAt)

	updated, rejection, err = fx.guard.Attempt(context.Background(), ownerID, tk.ID, task.StatusCompleted)
	require.NoError(t, err)
	require.Nil(t, rejection)
	assert.Equal(t, task.KanbanColumnDone, updated.KanbanColumn)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)

	// Reopening clears the completion marker.
	updated, rejection, err = fx.guard.Attempt(context.Background(), ownerID, tk.ID, task.StatusInProgress)
	require.NoError(t, err)
	require.Nil(t, rejection)
	assert.False(t, updated.Completed)
	assert.Nil(t, updated.CompletedAt)
}

func TestAttempt_CompleteBlockedByOpenSubtasks(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Guard")

	parent := createTestTask(t, fx.client, ownerID, project.ID, "Parent", withSubtaskGate())
	createTestTask(t, fx.client, ownerID, project.ID, "Child A",
		withParent(parent.ID), withStatus(task.StatusCompleted))
	createTestTask(t, fx.client, ownerID, project.ID, "Child B", withParent(parent.ID))

	_, rejection, err := fx.guard.Attempt(context.Background(), ownerID, parent.ID, task.StatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, rejection)
	assert.Equal(t, ReasonSubtasksIncomplete, rejection.Reason)
	require.Len(t, rejection.Blocking, 1)
	assert.Equal(t, "Child B", rejection.Blocking[0].Name)
}

func TestAttempt_CompleteWithoutGateIgnoresSubtasks(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Guard")

	parent := createTestTask(t, fx.client, ownerID, project.ID, "Parent")
	createTestTask(t, fx.client, ownerID, project.ID, "Child", withParent(parent.ID))

	updated, rejection, err := fx.guard.Attempt(context.Background(), ownerID, parent.ID, task.StatusCompleted)
	require.NoError(t, err)
	require.Nil(t, rejection)
	assert.Equal(t, task.StatusCompleted, updated.Status)
}

func TestAttempt_CompleteWithZeroSubtasksPasses(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Guard")

	// The gate is vacuously satisfied when no sub-tasks exist.
	parent := createTestTask(t, fx.client, ownerID, project.ID, "Parent", withSubtaskGate())

	updated, rejection, err := fx.guard.Attempt(context.Background(), ownerID, parent.ID, task.StatusCompleted)
	require.NoError(t, err)
	require.Nil(t, rejection)
	assert.Equal(t, task.StatusCompleted, updated.Status)
}

func TestAttempt_DependencyCheckRunsBeforeSubtaskCheck(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Guard")

	dep := createTestTask(t, fx.client, ownerID, project.ID, "Blocker")
	parent := createTestTask(t, fx.client, ownerID, project.ID, "Parent",
		withSubtaskGate(), withDependencies(dep.ID))
	createTestTask(t, fx.client, ownerID, project.ID, "Child", withParent(parent.ID))

	_, rejection, err := fx.guard.Attempt(context.Background(), ownerID, parent.ID, task.StatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, rejection)
	assert.Equal(t, ReasonDependenciesIncomplete, rejection.Reason)
}

func TestAttempt_CompletionEmitsUnblockEvent(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Guard")

	dep := createTestTask(t, fx.client, ownerID, project.ID, "Blocker")
	blocked := createTestTask(t, fx.client, ownerID, project.ID, "Waiting", withDependencies(dep.ID))

	_, rejection, err := fx.guard.Attempt(context.Background(), ownerID, dep.ID, task.StatusCompleted)
	require.NoError(t, err)
	require.Nil(t, rejection)

	evts, err := fx.client.TaskEvent.Query().
		Where(
			taskevent.OwnerID(ownerID),
			taskevent.EventTypeEQ(taskevent.EventTypeTaskUnblocked),
		).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, blocked.ID, evts[0].TaskID)
	require.NotNil(t, evts[0].RelatedTaskID)
	assert.Equal(t, dep.ID, *evts[0].RelatedTaskID)
}

func TestAttempt_NoUnblockEventWhileOtherDependenciesRemain(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Guard")

	depA := createTestTask(t, fx.client, ownerID, project.ID, "First")
	depB := createTestTask(t, fx.client, ownerID, project.ID, "Second")
	createTestTask(t, fx.client, ownerID, project.ID, "Waiting", withDependencies(depA.ID, depB.ID))

	_, rejection, err := fx.guard.Attempt(context.Background(), ownerID, depA.ID, task.StatusCompleted)
	require.NoError(t, err)
	require.Nil(t, rejection)

	count, err := fx.client.TaskEvent.Query().
		Where(taskevent.EventTypeEQ(taskevent.EventTypeTaskUnblocked)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAttempt_CompletionSurvivesDispatchFailure(t *testing.T) {
	client := setupTestDB(t)
	t.Cleanup(func() { client.Close() })

	eventService := NewEventService(client, &brokenDispatcher{})
	resolver := NewDependencyResolver(client)
	propagator := NewPropagator(client, eventService)
	guard := NewTransitionGuard(client, resolver, propagator, eventService)

	ownerID := uuid.New()
	project := createTestProject(t, client, ownerID, "Guard")
	dep := createTestTask(t, client, ownerID, project.ID, "Blocker")
	createTestTask(t, client, ownerID, project.ID, "Waiting", withDependencies(dep.ID))

	// The transition persisted, so a failed unblock notification must not
	// turn the call into an error or drop the updated task.
	updated, rejection, err := guard.Attempt(context.Background(), ownerID, dep.ID, task.StatusCompleted)
	require.NoError(t, err)
	require.Nil(t, rejection)
	require.NotNil(t, updated)
	assert.Equal(t, task.StatusCompleted, updated.Status)

	stored, err := client.Task.Get(context.Background(), dep.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, stored.Status)

	// The event record itself still lands for the feed.
	count, err := client.TaskEvent.Query().
		Where(taskevent.EventTypeEQ(taskevent.EventTypeTaskUnblocked)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
