// internal/repository/stats_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "github.com/tanercay/goalgrid/ent/generated"
	"github.com/tanercay/goalgrid/ent/generated/enttest"
	"github.com/tanercay/goalgrid/ent/generated/task"

	_ "github.com/mattn/go-sqlite3"
)

func setupStatsRepo(t *testing.T) (*ent.Client, *StatsRepository) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	db, err := sqlx.Open("sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return client, NewStatsRepository(db)
}

func seedTask(t *testing.T, client *ent.Client, ownerID, projectID uuid.UUID, name string, s task.Status, completedAt *time.Time) {
	column := map[task.Status]task.KanbanColumn{
		task.StatusTodo:       task.KanbanColumnToDo,
		task.StatusInProgress: task.KanbanColumnInProgress,
		task.StatusReview:     task.KanbanColumnReview,
		task.StatusCompleted:  task.KanbanColumnDone,
	}[s]

	create := client.Task.Create().
		SetOwnerID(ownerID).
		SetProjectID(projectID).
		SetName(name).
		SetStatus(s).
		SetKanbanColumn(column).
		SetCompleted(s == task.StatusCompleted).
		SetDependencies([]uuid.UUID{})
	if completedAt != nil {
		create = create.SetCompletedAt(*completedAt)
	}
	_, err := create.Save(context.Background())
	require.NoError(t, err)
}

func TestBoardStats_CountsAndPercent(t *testing.T) {
	client, repo := setupStatsRepo(t)
	ownerID := uuid.New()

	project, err := client.Project.Create().
		SetOwnerID(ownerID).
		SetName("Stats").
		Save(context.Background())
	require.NoError(t, err)

	now := time.Now()
	seedTask(t, client, ownerID, project.ID, "A", task.StatusTodo, nil)
	seedTask(t, client, ownerID, project.ID, "B", task.StatusReview, nil)
	seedTask(t, client, ownerID, project.ID, "C", task.StatusCompleted, &now)

	stats, err := repo.BoardStats(context.Background(), ownerID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ToDo)
	assert.Equal(t, 0, stats.InProgress)
	assert.Equal(t, 1, stats.Review)
	assert.Equal(t, 1, stats.Done)
	assert.InDelta(t, 33.33, stats.CompletionPercent, 0.1)
}

func TestBoardStats_ScopedToOwnerAndProject(t *testing.T) {
	client, repo := setupStatsRepo(t)
	ownerID := uuid.New()
	otherOwner := uuid.New()

	mine, err := client.Project.Create().
		SetOwnerID(ownerID).SetName("Mine").Save(context.Background())
	require.NoError(t, err)
	theirs, err := client.Project.Create().
		SetOwnerID(otherOwner).SetName("Theirs").Save(context.Background())
	require.NoError(t, err)

	seedTask(t, client, ownerID, mine.ID, "Visible", task.StatusTodo, nil)
	seedTask(t, client, otherOwner, theirs.ID, "Hidden", task.StatusTodo, nil)

	stats, err := repo.BoardStats(context.Background(), ownerID, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total())
}

func TestRecentlyCompleted_NewestFirst(t *testing.T) {
	client, repo := setupStatsRepo(t)
	ownerID := uuid.New()

	project, err := client.Project.Create().
		SetOwnerID(ownerID).SetName("Stats").Save(context.Background())
	require.NoError(t, err)

	elsewhere, err := client.Project.Create().
		SetOwnerID(ownerID).SetName("Elsewhere").Save(context.Background())
	require.NoError(t, err)

	older := time.Now().Add(-2 * time.Hour)
	newer := time.Now().Add(-1 * time.Hour)
	seedTask(t, client, ownerID, project.ID, "Older", task.StatusCompleted, &older)
	seedTask(t, client, ownerID, project.ID, "Newer", task.StatusCompleted, &newer)
	seedTask(t, client, ownerID, project.ID, "Open", task.StatusInProgress, nil)
	seedTask(t, client, ownerID, elsewhere.ID, "Other board", task.StatusCompleted, &newer)

	rows, err := repo.RecentlyCompleted(context.Background(), ownerID, project.ID, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Newer", rows[0].Name)
	assert.Equal(t, "Older", rows[1].Name)
	assert.True(t, rows[0].Completed)
	assert.True(t, rows[0].CompletedAt.Valid)
}
