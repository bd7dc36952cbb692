// internal/service/propagation_test.go
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

func TestPropagation_LastSubtaskCompletesParent(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Propagation")

	parent := createTestTask(t, fx.client, ownerID, project.ID, "Parent", withSubtaskGate())
	createTestTask(t, fx.client, ownerID, project.ID, "Child A",
		withParent(parent.ID), withStatus(task.StatusCompleted))
	childB := createTestTask(t, fx.client, ownerID, project.ID, "Child B", withParent(parent.ID))

	_, rejection, err := fx.guard.Attempt(context.Background(), ownerID, childB.ID, task.StatusCompleted)
	require.NoError(t, err)
	require.Nil(t, rejection)

	reloaded, err := fx.client.Task.Get(context.Background(), parent.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, reloaded.Status)
	assert.Equal(t, task.KanbanColumnDone, reloaded.KanbanColumn)
	assert.True(t, reloaded.Completed)

	count, err := fx.client.TaskEvent.Query().
		Where(taskevent.EventTypeEQ(taskevent.EventTypeTaskAutoCompleted)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPropagation_NoAutoCompleteWithoutGate(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Propagation")

	parent := createTestTask(t, fx.client, ownerID, project.ID, "Parent")
	child := createTestTask(t, fx.client, ownerID, project.ID, "Child", withParent(parent.ID))

	_, rejection, err := fx.guard.Attempt(context.Background(), ownerID, child.ID, task.StatusCompleted)
	require.NoError(t, err)
	require.Nil(t, rejection)

	reloaded, err := fx.client.Task.Get(context.Background(), parent.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusTodo, reloaded.Status)
}

func TestPropagation_BlockedParentSkipsAutoComplete(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Propagation")

	blocker := createTestTask(t, fx.client, ownerID, project.ID, "Blocker")
	parent := createTestTask(t, fx.client, ownerID, project.ID, "Parent",
		withSubtaskGate(), withDependencies(blocker.ID))
	child := createTestTask(t, fx.client, ownerID, project.ID, "Child", withParent(parent.ID))

	_, rejection, err := fx.guard.Attempt(context.Background(), ownerID, child.ID, task.StatusCompleted)
	require.NoError(t, err)
	require.Nil(t, rejection)

	// All sub-tasks are done, but the parent's own dependency still gates.
	reloaded, err := fx.client.Task.Get(context.Background(), parent.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusTodo, reloaded.Status)
}

func TestPropagation_ReopenedSubtaskRevertsCompletedParent(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Propagation")

	parent := createTestTask(t, fx.client, ownerID, project.ID, "Parent",
		withSubtaskGate(), withStatus(task.StatusCompleted))
	child := createTestTask(t, fx.client, ownerID, project.ID, "Child",
		withParent(parent.ID), withStatus(task.StatusCompleted))

	_, rejection, err := fx.guard.Attempt(context.Background(), ownerID, child.ID, task.StatusInProgress)
	require.NoError(t, err)
	require.Nil(t, rejection)

	reloaded, err := fx.client.Task.Get(context.Background(), parent.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, reloaded.Status)
	assert.Equal(t, task.KanbanColumnInProgress, reloaded.KanbanColumn)
	assert.False(t, reloaded.Completed)

	count, err := fx.client.TaskEvent.Query().
		Where(taskevent.EventTypeEQ(taskevent.EventTypeTaskAutoReverted)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPropagation_SingleLevelOnly(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Propagation")

	grandparent := createTestTask(t, fx.client, ownerID, project.ID, "Grandparent", withSubtaskGate())
	parent := createTestTask(t, fx.client, ownerID, project.ID, "Parent",
		withSubtaskGate(), withParent(grandparent.ID))
	child := createTestTask(t, fx.client, ownerID, project.ID, "Child", withParent(parent.ID))

	_, rejection, err := fx.guard.Attempt(context.Background(), ownerID, child.ID, task.StatusCompleted)
	require.NoError(t, err)
	require.Nil(t, rejection)

	// The parent auto-completes, but the auto-completion does not cascade
	// up to the grandparent.
	reloadedParent, err := fx.client.Task.Get(context.Background(), parent.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, reloadedParent.Status)

	reloadedGrandparent, err := fx.client.Task.Get(context.Background(), grandparent.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusTodo, reloadedGrandparent.Status)
}

func TestPropagation_MissingParentIsNoOp(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()

	err := fx.propagator.OnSubtaskStatusChanged(context.Background(), ownerID, uuid.New())
	assert.NoError(t, err)
}

func TestPropagation_AutoCompletedParentUnblocksDependents(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Propagation")

	parent := createTestTask(t, fx.client, ownerID, project.ID, "Parent", withSubtaskGate())
	child := createTestTask(t, fx.client, ownerID, project.ID, "Child", withParent(parent.ID))
	waiting := createTestTask(t, fx.client, ownerID, project.ID, "Waiting", withDependencies(parent.ID))

	_, rejection, err := fx.guard.Attempt(context.Background(), ownerID, child.ID, task.StatusCompleted)
	require.NoError(t, err)
	require.Nil(t, rejection)

	evts, err := fx.client.TaskEvent.Query().
		Where(taskevent.EventTypeEQ(taskevent.EventTypeTaskUnblocked)).
		All(context.Background())
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, waiting.ID, evts[0].TaskID)
}
