package models

import (
	"database/sql"
	"time"
)

// Task status constants
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusReview     = "review"
	StatusCompleted  = "completed"
)

// Kanban column constants
const (
	ColumnToDo       = "to_do"
	ColumnInProgress = "in_progress"
	ColumnReview     = "review"
	ColumnDone       = "done"
)

// Priority constants
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ColumnForStatus maps a status to its kanban column. The map is fixed and
// exhaustive; an unknown status reports ok=false.
func ColumnForStatus(status string) (string, bool) {
	switch status {
	case StatusTodo:
		return ColumnToDo, true
	case StatusInProgress:
		return ColumnInProgress, true
	case StatusReview:
		return ColumnReview, true
	case StatusCompleted:
		return ColumnDone, true
	default:
		return "", false
	}
}

// StatusForColumn is the inverse of ColumnForStatus.
func StatusForColumn(column string) (string, bool) {
	switch column {
	case ColumnToDo:
		return StatusTodo, true
	case ColumnInProgress:
		return StatusInProgress, true
	case ColumnReview:
		return StatusReview, true
	case ColumnDone:
		return StatusCompleted, true
	default:
		return "", false
	}
}

// ValidStatus reports whether s belongs to the closed status set.
func ValidStatus(s string) bool {
	_, ok := ColumnForStatus(s)
	return ok
}

// TaskRow is the raw read model used by the sqlx statistics queries.
type TaskRow struct {
	ID           string         `db:"id"`
	OwnerID      string         `db:"owner_id"`
	ProjectID    string         `db:"project_id"`
	Name         string         `db:"name"`
	Status       string         `db:"status"`
	KanbanColumn string         `db:"kanban_column"`
	Completed    bool           `db:"completed"`
	SortOrder    int            `db:"sort_order"`
	CompletedAt  sql.NullTime   `db:"completed_at"`
	Category     sql.NullString `db:"category"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// BoardStats aggregates a project board for the read side.
type BoardStats struct {
	ToDo              int
	InProgress        int
	Review            int
	Done              int
	CompletionPercent float64
}

// Total returns the number of tasks on the board.
func (s *BoardStats) Total() int {
	return s.ToDo + s.InProgress + s.Review + s.Done
}
