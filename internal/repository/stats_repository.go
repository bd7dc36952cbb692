// internal/repository/stats_repository.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tanercay/goalgrid/internal/models"
)

// StatsRepository serves the read-side board aggregates with raw SQL; the
// write path never goes through it.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{
		db: db,
	}
}

type columnCountRow struct {
	KanbanColumn string `db:"kanban_column"`
	Count        int    `db:"count"`
}

// BoardStats returns per-column task counts and the completion ratio for a
// project board.
func (r *StatsRepository) BoardStats(ctx context.Context, ownerID, projectID uuid.UUID) (*models.BoardStats, error) {
	query := r.db.Rebind(`
		SELECT kanban_column, COUNT(*) AS count
		FROM tasks
		WHERE owner_id = ? AND project_id = ?
		GROUP BY kanban_column`)

	var rows []columnCountRow
	if err := r.db.SelectContext(ctx, &rows, query, ownerID.String(), projectID.String()); err != nil {
		return nil, fmt.Errorf("query board stats: %w", err)
	}

	stats := &models.BoardStats{}
	for _, row := range rows {
		switch row.KanbanColumn {
		case models.ColumnToDo:
			stats.ToDo = row.Count
		case models.ColumnInProgress:
			stats.InProgress = row.Count
		case models.ColumnReview:
			stats.Review = row.Count
		case models.ColumnDone:
			stats.Done = row.Count
		}
	}

	if total := stats.Total(); total > 0 {
		stats.CompletionPercent = float64(stats.Done) / float64(total) * 100
	}

	return stats, nil
}

// RecentlyCompleted returns the project's most recently completed tasks,
// newest first.
func (r *StatsRepository) RecentlyCompleted(ctx context.Context, ownerID, projectID uuid.UUID, limit int) ([]models.TaskRow, error) {
	if limit <= 0 {
		limit = 10
	}

	query := r.db.Rebind(`
		SELECT id, owner_id, project_id, name, status, kanban_column,
		       completed, sort_order, completed_at, category, created_at, updated_at
		FROM tasks
		WHERE owner_id = ? AND project_id = ? AND completed
		ORDER BY completed_at DESC
		LIMIT ?`)

	var rows []models.TaskRow
	if err := r.db.SelectContext(ctx, &rows, query, ownerID.String(), projectID.String(), limit); err != nil {
		return nil, fmt.Errorf("query recently completed tasks: %w", err)
	}
	return rows, nil
}
