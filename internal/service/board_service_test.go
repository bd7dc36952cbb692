// internal/service/board_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	boardv1 "github.com/tanercay/goalgrid/api/proto/board/v1/generated"
	"github.com/tanercay/goalgrid/ent/generated/task"
	"github.com/tanercay/goalgrid/internal/repository"
)

func setupBoardService(t *testing.T) (*engineFixture, *BoardService) {
	fx := setupEngine(t)

	// Second connection into the same shared-cache database for the raw
	// stats queries.
	db, err := sqlx.Open("sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewBoardService(fx.client, fx.taskRepo, repository.NewStatsRepository(db), fx.guard)
	return fx, svc
}

func TestGetBoard_GroupsByColumn(t *testing.T) {
	fx, svc := setupBoardService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Board")
	ctx := ownerContext(ownerID)

	createTestTask(t, fx.client, ownerID, project.ID, "Backlog item", withSortOrder(1))
	createTestTask(t, fx.client, ownerID, project.ID, "Working on it",
		withStatus(task.StatusInProgress), withSortOrder(2))
	createTestTask(t, fx.client, ownerID, project.ID, "Under review",
		withStatus(task.StatusReview), withSortOrder(3))
	createTestTask(t, fx.client, ownerID, project.ID, "Shipped",
		withStatus(task.StatusCompleted), withSortOrder(4))

	board, err := svc.GetBoard(ctx, &boardv1.GetBoardRequest{ProjectId: project.ID.String()})
	require.NoError(t, err)
	assert.Len(t, board.ToDo, 1)
	assert.Len(t, board.InProgress, 1)
	assert.Len(t, board.Review, 1)
	assert.Len(t, board.Done, 1)
	assert.Equal(t, "Backlog item", board.ToDo[0].Name)
}

func TestGetBoard_PreservesSortOrder(t *testing.T) {
	fx, svc := setupBoardService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Board")

	createTestTask(t, fx.client, ownerID, project.ID, "Second", withSortOrder(2))
	createTestTask(t, fx.client, ownerID, project.ID, "First", withSortOrder(1))
	createTestTask(t, fx.client, ownerID, project.ID, "Third", withSortOrder(3))

	board, err := svc.GetBoard(ownerContext(ownerID), &boardv1.GetBoardRequest{ProjectId: project.ID.String()})
	require.NoError(t, err)
	require.Len(t, board.ToDo, 3)
	assert.Equal(t, "First", board.ToDo[0].Name)
	assert.Equal(t, "Second", board.ToDo[1].Name)
	assert.Equal(t, "Third", board.ToDo[2].Name)
}

func TestMoveTask_BlockedDragRejected(t *testing.T) {
	fx, svc := setupBoardService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Board")

	dep := createTestTask(t, fx.client, ownerID, project.ID, "Blocker")
	blocked := createTestTask(t, fx.client, ownerID, project.ID, "Blocked", withDependencies(dep.ID))

	_, err := svc.MoveTask(ownerContext(ownerID), &boardv1.MoveTaskRequest{
		TaskId:       blocked.ID.String(),
		TargetColumn: boardv1.KanbanColumn_KANBAN_COLUMN_IN_PROGRESS,
	})
	require.Error(t, err)
	st := status.Convert(err)
	assert.Equal(t, codes.FailedPrecondition, st.Code())
	assert.Contains(t, st.Message(), "'Blocker'")
}

func TestMoveTask_UpdatesStatusAndPosition(t *testing.T) {
	fx, svc := setupBoardService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Board")
	ctx := ownerContext(ownerID)

	createTestTask(t, fx.client, ownerID, project.ID, "Already moving",
		withStatus(task.StatusInProgress), withSortOrder(1))
	mover := createTestTask(t, fx.client, ownerID, project.ID, "Mover", withSortOrder(2))

	resp, err := svc.MoveTask(ctx, &boardv1.MoveTaskRequest{
		TaskId:         mover.ID.String(),
		TargetColumn:   boardv1.KanbanColumn_KANBAN_COLUMN_IN_PROGRESS,
		TargetPosition: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", resp.Task.KanbanColumn)
	assert.Equal(t, int32(1), resp.Task.SortOrder)

	board, err := svc.GetBoard(ctx, &boardv1.GetBoardRequest{ProjectId: project.ID.String()})
	require.NoError(t, err)
	require.Len(t, board.InProgress, 2)
	assert.Equal(t, "Mover", board.InProgress[0].Name)
	assert.Equal(t, "Already moving", board.InProgress[1].Name)
}

func TestMoveTask_PositionBeyondEndClamps(t *testing.T) {
	fx, svc := setupBoardService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Board")

	mover := createTestTask(t, fx.client, ownerID, project.ID, "Mover")

	resp, err := svc.MoveTask(ownerContext(ownerID), &boardv1.MoveTaskRequest{
		TaskId:         mover.ID.String(),
		TargetColumn:   boardv1.KanbanColumn_KANBAN_COLUMN_REVIEW,
		TargetPosition: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "review", resp.Task.KanbanColumn)
	assert.Equal(t, int32(1), resp.Task.SortOrder)
}

func TestReorderTasks_AssignsDenseSequence(t *testing.T) {
	fx, svc := setupBoardService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Board")
	ctx := ownerContext(ownerID)

	a := createTestTask(t, fx.client, ownerID, project.ID, "A", withSortOrder(1))
	b := createTestTask(t, fx.client, ownerID, project.ID, "B", withSortOrder(2))
	c := createTestTask(t, fx.client, ownerID, project.ID, "C", withSortOrder(3))

	_, err := svc.ReorderTasks(ctx, &boardv1.ReorderTasksRequest{
		ProjectId:      project.ID.String(),
		OrderedTaskIds: []string{c.ID.String(), a.ID.String(), b.ID.String()},
	})
	require.NoError(t, err)

	for i, id := range []uuid.UUID{c.ID, a.ID, b.ID} {
		reloaded, err := fx.client.Task.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, i+1, reloaded.SortOrder)
	}
}

func TestReorderTasks_ForeignTaskAbortsWholeBatch(t *testing.T) {
	fx, svc := setupBoardService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Board")
	otherProject := createTestProject(t, fx.client, ownerID, "Other")
	ctx := ownerContext(ownerID)

	a := createTestTask(t, fx.client, ownerID, project.ID, "A", withSortOrder(1))
	foreign := createTestTask(t, fx.client, ownerID, otherProject.ID, "Foreign", withSortOrder(1))

	_, err := svc.ReorderTasks(ctx, &boardv1.ReorderTasksRequest{
		ProjectId:      project.ID.String(),
		OrderedTaskIds: []string{a.ID.String(), foreign.ID.String()},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// No partial writes.
	reloaded, err := fx.client.Task.Get(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.SortOrder)
}

func TestReorderTasks_UnknownTaskRejected(t *testing.T) {
	fx, svc := setupBoardService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Board")

	a := createTestTask(t, fx.client, ownerID, project.ID, "A")

	_, err := svc.ReorderTasks(ownerContext(ownerID), &boardv1.ReorderTasksRequest{
		ProjectId:      project.ID.String(),
		OrderedTaskIds: []string{a.ID.String(), uuid.New().String()},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetBoardStats_Counts(t *testing.T) {
	fx, svc := setupBoardService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Board")

	now := time.Now()
	createTestTask(t, fx.client, ownerID, project.ID, "A")
	createTestTask(t, fx.client, ownerID, project.ID, "B", withStatus(task.StatusInProgress))
	createTestTask(t, fx.client, ownerID, project.ID, "C",
		withStatus(task.StatusCompleted), withCompletedAt(now.Add(-time.Hour)))
	createTestTask(t, fx.client, ownerID, project.ID, "D",
		withStatus(task.StatusCompleted), withCompletedAt(now))

	// Completions on another board stay off this one's feed.
	elsewhere := createTestProject(t, fx.client, ownerID, "Elsewhere")
	createTestTask(t, fx.client, ownerID, elsewhere.ID, "E",
		withStatus(task.StatusCompleted), withCompletedAt(now))

	stats, err := svc.GetBoardStats(ownerContext(ownerID), &boardv1.GetBoardStatsRequest{
		ProjectId: project.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), stats.ToDoCount)
	assert.Equal(t, int32(1), stats.InProgressCount)
	assert.Equal(t, int32(0), stats.ReviewCount)
	assert.Equal(t, int32(2), stats.DoneCount)
	assert.Equal(t, int32(4), stats.TotalCount)
	assert.InDelta(t, 50.0, stats.CompletionPercent, 0.01)

	require.Len(t, stats.RecentlyCompleted, 2)
	assert.Equal(t, "D", stats.RecentlyCompleted[0].Name)
	assert.Equal(t, "C", stats.RecentlyCompleted[1].Name)
	require.NotNil(t, stats.RecentlyCompleted[0].CompletedAt)
}

func TestGetBoardStats_EmptyProject(t *testing.T) {
	fx, svc := setupBoardService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Board")

	stats, err := svc.GetBoardStats(ownerContext(ownerID), &boardv1.GetBoardStatsRequest{
		ProjectId: project.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, int32(0), stats.TotalCount)
	assert.Zero(t, stats.CompletionPercent)
	assert.Empty(t, stats.RecentlyCompleted)
}
