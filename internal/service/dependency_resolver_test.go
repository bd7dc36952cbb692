// internal/service/dependency_resolver_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanercay/goalgrid/ent/generated/task"
)

func TestResolve_NoDependencies(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Resolver")

	tk := createTestTask(t, fx.client, ownerID, project.ID, "Standalone")

	resolution, err := fx.resolver.Resolve(context.Background(), ownerID, tk)
	require.NoError(t, err)
	assert.True(t, resolution.CanStart)
	assert.Empty(t, resolution.Blocking)
}

func TestResolve_BlockedByOpenDependency(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Resolver")

	dep := createTestTask(t, fx.client, ownerID, project.ID, "Write design doc")
	tk := createTestTask(t, fx.client, ownerID, project.ID, "Implement", withDependencies(dep.ID))

	resolution, err := fx.resolver.Resolve(context.Background(), ownerID, tk)
	require.NoError(t, err)
	assert.False(t, resolution.CanStart)
	require.Len(t, resolution.Blocking, 1)
	assert.Equal(t, dep.ID, resolution.Blocking[0].ID)
	assert.Equal(t, "Write design doc", resolution.Blocking[0].Name)
}

func TestResolve_AllDependenciesCompleted(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Resolver")

	depA := createTestTask(t, fx.client, ownerID, project.ID, "A", withStatus(task.StatusCompleted))
	depB := createTestTask(t, fx.client, ownerID, project.ID, "B", withStatus(task.StatusCompleted))
	tk := createTestTask(t, fx.client, ownerID, project.ID, "C", withDependencies(depA.ID, depB.ID))

	resolution, err := fx.resolver.Resolve(context.Background(), ownerID, tk)
	require.NoError(t, err)
	assert.True(t, resolution.CanStart)
}

func TestResolve_MixedDependenciesReportsOnlyOpenOnes(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Resolver")

	done := createTestTask(t, fx.client, ownerID, project.ID, "Done", withStatus(task.StatusCompleted))
	open := createTestTask(t, fx.client, ownerID, project.ID, "Open", withStatus(task.StatusInProgress))
	tk := createTestTask(t, fx.client, ownerID, project.ID, "Target", withDependencies(done.ID, open.ID))

	resolution, err := fx.resolver.Resolve(context.Background(), ownerID, tk)
	require.NoError(t, err)
	assert.False(t, resolution.CanStart)
	require.Len(t, resolution.Blocking, 1)
	assert.Equal(t, open.ID, resolution.Blocking[0].ID)
}

func TestResolve_DanglingDependencyBlocks(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Resolver")

	missing := uuid.New()
	tk := createTestTask(t, fx.client, ownerID, project.ID, "Target", withDependencies(missing))

	resolution, err := fx.resolver.Resolve(context.Background(), ownerID, tk)
	require.NoError(t, err)
	assert.False(t, resolution.CanStart)
	require.Len(t, resolution.Blocking, 1)
	assert.Equal(t, missing, resolution.Blocking[0].ID)
	assert.Equal(t, "(deleted task)", resolution.Blocking[0].Name)
}

func TestResolve_OtherOwnersTaskCountsAsMissing(t *testing.T) {
	fx := setupEngine(t)
	ownerID := uuid.New()
	otherOwner := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Mine")
	otherProject := createTestProject(t, fx.client, otherOwner, "Theirs")

	foreign := createTestTask(t, fx.client, otherOwner, otherProject.ID, "Foreign", withStatus(task.StatusCompleted))
	tk := createTestTask(t, fx.client, ownerID, project.ID, "Target", withDependencies(foreign.ID))

	resolution, err := fx.resolver.Resolve(context.Background(), ownerID, tk)
	require.NoError(t, err)
	assert.False(t, resolution.CanStart)
}
