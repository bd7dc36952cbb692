// internal/service/board_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	boardv1 "github.com/tanercay/goalgrid/api/proto/board/v1/generated"
	ent "github.com/tanercay/goalgrid/ent/generated"
	"github.com/tanercay/goalgrid/ent/generated/task"
	"github.com/tanercay/goalgrid/internal/middleware"
	"github.com/tanercay/goalgrid/internal/models"
	"github.com/tanercay/goalgrid/internal/repository"
)

// recentlyCompletedLimit caps the "recently done" feed on the stats
// response.
const recentlyCompletedLimit = 5

// BoardService implements the board.v1.BoardService gRPC API. The board is
// a projection of task status: columns never hold state of their own.
type BoardService struct {
	boardv1.UnimplementedBoardServiceServer
	client *ent.Client
	repo   *repository.EntTaskRepository
	stats  *repository.StatsRepository
	guard  *TransitionGuard
}

// NewBoardService creates a new board service
func NewBoardService(client *ent.Client, repo *repository.EntTaskRepository, stats *repository.StatsRepository, guard *TransitionGuard) *BoardService {
	return &BoardService{
		client: client,
		repo:   repo,
		stats:  stats,
		guard:  guard,
	}
}

// GetBoard returns the project's tasks grouped by kanban column
func (s *BoardService) GetBoard(ctx context.Context, req *boardv1.GetBoardRequest) (*boardv1.GetBoardResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	projectID, err := uuid.Parse(req.ProjectId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid project ID format")
	}

	tasks, err := s.repo.ListByProject(ctx, ownerID, projectID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to load board: %v", err)
	}

	resp := &boardv1.GetBoardResponse{}
	for _, t := range tasks {
		proto := convertEntTaskToProto(t)
		switch t.KanbanColumn {
		case task.KanbanColumnToDo:
			resp.ToDo = append(resp.ToDo, proto)
		case task.KanbanColumnInProgress:
			resp.InProgress = append(resp.InProgress, proto)
		case task.KanbanColumnReview:
			resp.Review = append(resp.Review, proto)
		case task.KanbanColumnDone:
			resp.Done = append(resp.Done, proto)
		}
	}

	return resp, nil
}

// MoveTask moves a task to another column, optionally at a position. The
// column move is a status transition and is gated exactly like one.
func (s *BoardService) MoveTask(ctx context.Context, req *boardv1.MoveTaskRequest) (*boardv1.MoveTaskResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	taskID, err := uuid.Parse(req.TaskId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}
	if req.TargetPosition < 0 {
		return nil, status.Error(codes.InvalidArgument, "target position must not be negative")
	}

	column, ok := convertColumnToString(req.TargetColumn)
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "unknown kanban column")
	}
	statusStr, _ := models.StatusForColumn(column)
	requested := task.Status(statusStr)

	moved, rejection, err := s.guard.Attempt(ctx, ownerID, taskID, requested)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to move task: %v", err)
	}
	if rejection != nil {
		return nil, status.Error(codes.FailedPrecondition, rejection.Message())
	}

	moved, err = s.placeInColumn(ctx, ownerID, moved, int(req.TargetPosition))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to reorder column: %v", err)
	}

	return &boardv1.MoveTaskResponse{
		Task: convertEntTaskToProto(moved),
	}, nil
}

// ReorderTasks renumbers a project's tasks to the given order. The request
// is all-or-nothing: one bad id rejects the whole batch.
func (s *BoardService) ReorderTasks(ctx context.Context, req *boardv1.ReorderTasksRequest) (*emptypb.Empty, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	projectID, err := uuid.Parse(req.ProjectId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid project ID format")
	}
	if len(req.OrderedTaskIds) == 0 {
		return nil, status.Error(codes.InvalidArgument, "ordered task ids are required")
	}

	ids := make([]uuid.UUID, 0, len(req.OrderedTaskIds))
	seen := make(map[uuid.UUID]bool, len(req.OrderedTaskIds))
	for _, raw := range req.OrderedTaskIds {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid task ID format: %s", raw)
		}
		if seen[id] {
			return nil, status.Errorf(codes.InvalidArgument, "duplicate task ID: %s", id)
		}
		seen[id] = true
		ids = append(ids, id)
	}

	tasks, err := s.client.Task.
		Query().
		Where(task.IDIn(ids...), task.OwnerID(ownerID)).
		All(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to load tasks: %v", err)
	}
	if len(tasks) != len(ids) {
		return nil, status.Error(codes.InvalidArgument, "one or more tasks do not exist")
	}
	for _, t := range tasks {
		if t.ProjectID != projectID {
			return nil, status.Errorf(codes.InvalidArgument, "task %s belongs to a different project", t.ID)
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to start transaction: %v", err)
	}
	for i, id := range ids {
		if _, err := tx.Task.UpdateOneID(id).SetSortOrder(i + 1).Save(ctx); err != nil {
			tx.Rollback()
			return nil, status.Errorf(codes.Internal, "failed to reorder tasks: %v", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to reorder tasks: %v", err)
	}

	return &emptypb.Empty{}, nil
}

// GetBoardStats returns per-column counts and the completion percentage
func (s *BoardService) GetBoardStats(ctx context.Context, req *boardv1.GetBoardStatsRequest) (*boardv1.GetBoardStatsResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	projectID, err := uuid.Parse(req.ProjectId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid project ID format")
	}

	stats, err := s.stats.BoardStats(ctx, ownerID, projectID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to compute board stats: %v", err)
	}

	recent, err := s.stats.RecentlyCompleted(ctx, ownerID, projectID, recentlyCompletedLimit)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to query recently completed tasks: %v", err)
	}

	recentProtos := make([]*boardv1.RecentlyCompletedTask, 0, len(recent))
	for _, row := range recent {
		entry := &boardv1.RecentlyCompletedTask{
			TaskId: row.ID,
			Name:   row.Name,
		}
		if row.CompletedAt.Valid {
			entry.CompletedAt = timestamppb.New(row.CompletedAt.Time)
		}
		recentProtos = append(recentProtos, entry)
	}

	return &boardv1.GetBoardStatsResponse{
		ToDoCount:         int32(stats.ToDo),
		InProgressCount:   int32(stats.InProgress),
		ReviewCount:       int32(stats.Review),
		DoneCount:         int32(stats.Done),
		TotalCount:        int32(stats.Total()),
		CompletionPercent: stats.CompletionPercent,
		RecentlyCompleted: recentProtos,
	}, nil
}

// placeInColumn splices moved into its column at position, renumbering the
// column's tasks 1..N inside one transaction.
func (s *BoardService) placeInColumn(ctx context.Context, ownerID uuid.UUID, moved *ent.Task, position int) (*ent.Task, error) {
	siblings, err := s.client.Task.
		Query().
		Where(
			task.OwnerID(ownerID),
			task.ProjectID(moved.ProjectID),
			task.KanbanColumnEQ(moved.KanbanColumn),
			task.IDNEQ(moved.ID),
		).
		Order(ent.Asc(task.FieldSortOrder), ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	if position > len(siblings) {
		position = len(siblings)
	}

	ordered := make([]*ent.Task, 0, len(siblings)+1)
	ordered = append(ordered, siblings[:position]...)
	ordered = append(ordered, moved)
	ordered = append(ordered, siblings[position:]...)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	for i, t := range ordered {
		if _, err := tx.Task.UpdateOneID(t.ID).SetSortOrder(i + 1).Save(ctx); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.client.Task.Get(ctx, moved.ID)
}

func convertColumnToString(c boardv1.KanbanColumn) (string, bool) {
	switch c {
	case boardv1.KanbanColumn_KANBAN_COLUMN_TO_DO:
		return models.ColumnToDo, true
	case boardv1.KanbanColumn_KANBAN_COLUMN_IN_PROGRESS:
		return models.ColumnInProgress, true
	case boardv1.KanbanColumn_KANBAN_COLUMN_REVIEW:
		return models.ColumnReview, true
	case boardv1.KanbanColumn_KANBAN_COLUMN_DONE:
		return models.ColumnDone, true
	default:
		return "", false
	}
}
