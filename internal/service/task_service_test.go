// internal/service/task_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	taskv1 "github.com/tanercay/goalgrid/api/proto/task/v1/generated"
	"github.com/tanercay/goalgrid/ent/generated/task"
)

func setupTaskService(t *testing.T) (*engineFixture, *TaskService) {
	fx := setupEngine(t)
	svc := NewTaskService(fx.client, fx.taskRepo, fx.guard)
	return fx, svc
}

func TestCreateTask_StartsInTodo(t *testing.T) {
	fx, svc := setupTaskService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Tasks")
	ctx := ownerContext(ownerID)

	resp, err := svc.CreateTask(ctx, &taskv1.CreateTaskRequest{
		ProjectId: project.ID.String(),
		Name:      "New task",
		Priority:  taskv1.Priority_PRIORITY_HIGH,
	})
	require.NoError(t, err)
	assert.Equal(t, taskv1.TaskStatus_TASK_STATUS_TODO, resp.Task.Status)
	assert.Equal(t, "to_do", resp.Task.KanbanColumn)
	assert.False(t, resp.Task.Completed)
	assert.Equal(t, int32(1), resp.Task.SortOrder)
}

func TestCreateTask_RequiresOwner(t *testing.T) {
	fx, svc := setupTaskService(t)
	project := createTestProject(t, fx.client, uuid.New(), "Tasks")

	_, err := svc.CreateTask(context.Background(), &taskv1.CreateTaskRequest{
		ProjectId: project.ID.String(),
		Name:      "Orphan",
	})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestCreateTask_RejectsUnknownDependency(t *testing.T) {
	fx, svc := setupTaskService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Tasks")

	_, err := svc.CreateTask(ownerContext(ownerID), &taskv1.CreateTaskRequest{
		ProjectId:         project.ID.String(),
		Name:              "Task",
		DependencyTaskIds: []string{uuid.New().String()},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUpdateTaskStatus_GatedTransitionFailsPrecondition(t *testing.T) {
	fx, svc := setupTaskService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Tasks")
	ctx := ownerContext(ownerID)

	dep := createTestTask(t, fx.client, ownerID, project.ID, "Write tests")
	blocked := createTestTask(t, fx.client, ownerID, project.ID, "Ship", withDependencies(dep.ID))

	_, err := svc.UpdateTaskStatus(ctx, &taskv1.UpdateTaskStatusRequest{
		Id:     blocked.ID.String(),
		Status: taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS,
	})
	require.Error(t, err)
	st := status.Convert(err)
	assert.Equal(t, codes.FailedPrecondition, st.Code())
	assert.Contains(t, st.Message(), "'Write tests'")
}

func TestUpdateTaskStatus_AcceptedTransition(t *testing.T) {
	fx, svc := setupTaskService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Tasks")
	ctx := ownerContext(ownerID)

	tk := createTestTask(t, fx.client, ownerID, project.ID, "Free")

	resp, err := svc.UpdateTaskStatus(ctx, &taskv1.UpdateTaskStatusRequest{
		Id:     tk.ID.String(),
		Status: taskv1.TaskStatus_TASK_STATUS_COMPLETED,
	})
	require.NoError(t, err)
	assert.Equal(t, taskv1.TaskStatus_TASK_STATUS_COMPLETED, resp.Task.Status)
	assert.Equal(t, "done", resp.Task.KanbanColumn)
	assert.NotNil(t, resp.Task.CompletedAt)
}

func TestUpdateTaskStatus_UnknownStatusRejected(t *testing.T) {
	fx, svc := setupTaskService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Tasks")
	tk := createTestTask(t, fx.client, ownerID, project.ID, "Task")

	_, err := svc.UpdateTaskStatus(ownerContext(ownerID), &taskv1.UpdateTaskStatusRequest{
		Id:     tk.ID.String(),
		Status: taskv1.TaskStatus(99),
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUpdateTaskStatus_OtherOwnersTaskNotFound(t *testing.T) {
	fx, svc := setupTaskService(t)
	ownerID := uuid.New()
	otherOwner := uuid.New()
	project := createTestProject(t, fx.client, otherOwner, "Theirs")
	tk := createTestTask(t, fx.client, otherOwner, project.ID, "Foreign")

	_, err := svc.UpdateTaskStatus(ownerContext(ownerID), &taskv1.UpdateTaskStatusRequest{
		Id:     tk.ID.String(),
		Status: taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS,
	})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestSetTaskDependencies_RejectsSelfReference(t *testing.T) {
	fx, svc := setupTaskService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Tasks")
	tk := createTestTask(t, fx.client, ownerID, project.ID, "Task")

	_, err := svc.SetTaskDependencies(ownerContext(ownerID), &taskv1.SetTaskDependenciesRequest{
		Id:                tk.ID.String(),
		DependencyTaskIds: []string{tk.ID.String()},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestSetTaskDependencies_ReplacesList(t *testing.T) {
	fx, svc := setupTaskService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Tasks")
	ctx := ownerContext(ownerID)

	old := createTestTask(t, fx.client, ownerID, project.ID, "Old dep")
	newDep := createTestTask(t, fx.client, ownerID, project.ID, "New dep")
	tk := createTestTask(t, fx.client, ownerID, project.ID, "Task", withDependencies(old.ID))

	resp, err := svc.SetTaskDependencies(ctx, &taskv1.SetTaskDependenciesRequest{
		Id:                tk.ID.String(),
		DependencyTaskIds: []string{newDep.ID.String()},
	})
	require.NoError(t, err)
	require.Len(t, resp.Task.DependencyTaskIds, 1)
	assert.Equal(t, newDep.ID.String(), resp.Task.DependencyTaskIds[0])
}

func TestDeleteTask_StripsDanglingDependencies(t *testing.T) {
	fx, svc := setupTaskService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Tasks")
	ctx := ownerContext(ownerID)

	dep := createTestTask(t, fx.client, ownerID, project.ID, "Doomed")
	dependent := createTestTask(t, fx.client, ownerID, project.ID, "Dependent", withDependencies(dep.ID))

	_, err := svc.DeleteTask(ctx, &taskv1.DeleteTaskRequest{Id: dep.ID.String()})
	require.NoError(t, err)

	reloaded, err := fx.taskRepo.GetByID(ctx, ownerID, dependent.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Dependencies)

	// The formerly blocked task can now start.
	_, rejection, err := fx.guard.Attempt(ctx, ownerID, dependent.ID, task.StatusInProgress)
	require.NoError(t, err)
	assert.Nil(t, rejection)
}

func TestListTasks_FiltersByStatus(t *testing.T) {
	fx, svc := setupTaskService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Tasks")
	ctx := ownerContext(ownerID)

	createTestTask(t, fx.client, ownerID, project.ID, "Open")
	createTestTask(t, fx.client, ownerID, project.ID, "Done", withStatus(task.StatusCompleted))

	resp, err := svc.ListTasks(ctx, &taskv1.ListTasksRequest{
		ProjectId: project.ID.String(),
		Status:    taskv1.TaskStatus_TASK_STATUS_COMPLETED,
	})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "Done", resp.Tasks[0].Name)
}

func TestCreateProject_AndList(t *testing.T) {
	_, svc := setupTaskService(t)
	ownerID := uuid.New()
	ctx := ownerContext(ownerID)

	created, err := svc.CreateProject(ctx, &taskv1.CreateProjectRequest{Name: "Health"})
	require.NoError(t, err)
	assert.Equal(t, "Health", created.Project.Name)

	resp, err := svc.ListProjects(ctx, &taskv1.ListProjectsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Projects, 1)

	// Another owner sees nothing.
	other, err := svc.ListProjects(ownerContext(uuid.New()), &taskv1.ListProjectsRequest{})
	require.NoError(t, err)
	assert.Empty(t, other.Projects)
}

func TestUpdateTask_DoesNotTouchStatus(t *testing.T) {
	fx, svc := setupTaskService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Tasks")
	tk := createTestTask(t, fx.client, ownerID, project.ID, "Task", withStatus(task.StatusInProgress))

	resp, err := svc.UpdateTask(ownerContext(ownerID), &taskv1.UpdateTaskRequest{
		Id:   tk.ID.String(),
		Name: "Renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", resp.Task.Name)
	assert.Equal(t, taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS, resp.Task.Status)
}
