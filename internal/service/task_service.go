// internal/service/task_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	taskv1 "github.com/tanercay/goalgrid/api/proto/task/v1/generated"
	ent "github.com/tanercay/goalgrid/ent/generated"
	"github.com/tanercay/goalgrid/ent/generated/project"
	"github.com/tanercay/goalgrid/ent/generated/task"
	"github.com/tanercay/goalgrid/internal/middleware"
	"github.com/tanercay/goalgrid/internal/repository"
)

// TaskService implements the task.v1.TaskService gRPC API.
type TaskService struct {
	taskv1.UnimplementedTaskServiceServer
	client *ent.Client
	repo   *repository.EntTaskRepository
	guard  *TransitionGuard
}

// NewTaskService creates a new task service
func NewTaskService(client *ent.Client, repo *repository.EntTaskRepository, guard *TransitionGuard) *TaskService {
	return &TaskService{
		client: client,
		repo:   repo,
		guard:  guard,
	}
}

// CreateProject creates a new project
func (s *TaskService) CreateProject(ctx context.Context, req *taskv1.CreateProjectRequest) (*taskv1.CreateProjectResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}
	if req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	create := s.client.Project.Create().
		SetOwnerID(ownerID).
		SetName(req.Name).
		SetDescription(req.Description)

	if req.AreaId != "" {
		areaID, err := uuid.Parse(req.AreaId)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid area ID format")
		}
		create = create.SetAreaID(areaID)
	}

	p, err := create.Save(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to create project: %v", err)
	}

	return &taskv1.CreateProjectResponse{
		Project: convertEntProjectToProto(p),
	}, nil
}

// ListProjects lists the owner's projects
func (s *TaskService) ListProjects(ctx context.Context, req *taskv1.ListProjectsRequest) (*taskv1.ListProjectsResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	query := s.client.Project.
		Query().
		Where(project.OwnerID(ownerID))
	if !req.IncludeArchived {
		query = query.Where(project.Archived(false))
	}

	projects, err := query.
		Order(ent.Asc(project.FieldSortOrder), ent.Asc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list projects: %v", err)
	}

	protoProjects := make([]*taskv1.Project, len(projects))
	for i, p := range projects {
		protoProjects[i] = convertEntProjectToProto(p)
	}

	return &taskv1.ListProjectsResponse{Projects: protoProjects}, nil
}

// CreateTask creates a new task in todo
func (s *TaskService) CreateTask(ctx context.Context, req *taskv1.CreateTaskRequest) (*taskv1.CreateTaskResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}
	if req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	projectID, err := uuid.Parse(req.ProjectId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid project ID format")
	}
	if _, err := s.client.Project.Query().Where(project.ID(projectID), project.OwnerID(ownerID)).Only(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "project not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to load project: %v", err)
	}

	input := &repository.TaskInput{
		ProjectID:                 projectID,
		Name:                      req.Name,
		Description:               req.Description,
		Status:                    string(task.StatusTodo),
		Priority:                  convertPriorityToString(req.Priority),
		Category:                  req.Category,
		SubTaskCompletionRequired: req.SubTaskCompletionRequired,
		DueTime:                   req.DueTime,
	}

	if req.ParentTaskId != "" {
		parentID, err := uuid.Parse(req.ParentTaskId)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid parent task ID format")
		}
		parent, err := s.repo.GetByID(ctx, ownerID, parentID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, status.Error(codes.NotFound, "parent task not found")
			}
			return nil, status.Errorf(codes.Internal, "failed to load parent task: %v", err)
		}
		if parent.ProjectID != projectID {
			return nil, status.Error(codes.InvalidArgument, "parent task belongs to a different project")
		}
		input.ParentTaskID = &parentID
	}

	deps, err := s.validateDependencies(ctx, ownerID, uuid.Nil, req.DependencyTaskIds)
	if err != nil {
		return nil, err
	}
	input.Dependencies = deps

	if req.DueDate != nil {
		dueDate := req.DueDate.AsTime()
		input.DueDate = &dueDate
	}

	sortOrder, err := s.repo.NextSortOrder(ctx, ownerID, projectID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to compute sort order: %v", err)
	}
	input.SortOrder = sortOrder

	t, err := s.repo.Create(ctx, ownerID, input)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to create task: %v", err)
	}

	return &taskv1.CreateTaskResponse{
		Task: convertEntTaskToProto(t),
	}, nil
}

// GetTask retrieves a task by ID
func (s *TaskService) GetTask(ctx context.Context, req *taskv1.GetTaskRequest) (*taskv1.GetTaskResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}

	t, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get task: %v", err)
	}

	return &taskv1.GetTaskResponse{
		Task: convertEntTaskToProto(t),
	}, nil
}

// ListTasks lists tasks, optionally filtered by project and status
func (s *TaskService) ListTasks(ctx context.Context, req *taskv1.ListTasksRequest) (*taskv1.ListTasksResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	filter := repository.ListFilter{}

	if req.ProjectId != "" {
		projectID, err := uuid.Parse(req.ProjectId)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid project ID format")
		}
		filter.ProjectID = &projectID
	}

	if req.Status != taskv1.TaskStatus_TASK_STATUS_UNSPECIFIED {
		entStatus, ok := convertProtoToStatus(req.Status)
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "unknown task status")
		}
		str := string(entStatus)
		filter.Status = &str
	}

	tasks, err := s.repo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list tasks: %v", err)
	}

	protoTasks := make([]*taskv1.Task, len(tasks))
	for i, t := range tasks {
		protoTasks[i] = convertEntTaskToProto(t)
	}

	return &taskv1.ListTasksResponse{Tasks: protoTasks}, nil
}

// UpdateTask updates a task's descriptive fields. Status is deliberately
// excluded here: every status change goes through UpdateTaskStatus.
func (s *TaskService) UpdateTask(ctx context.Context, req *taskv1.UpdateTaskRequest) (*taskv1.UpdateTaskResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}

	input := &repository.TaskUpdateInput{}
	if req.Name != "" {
		input.Name = &req.Name
	}
	if req.Description != "" {
		input.Description = &req.Description
	}
	if req.Priority != taskv1.Priority_PRIORITY_UNSPECIFIED {
		priority := convertPriorityToString(req.Priority)
		input.Priority = &priority
	}
	if req.Category != "" {
		input.Category = &req.Category
	}
	if req.DueDate != nil {
		dueDate := req.DueDate.AsTime()
		input.DueDate = &dueDate
	}
	if req.DueTime != "" {
		input.DueTime = &req.DueTime
	}

	t, err := s.repo.Update(ctx, ownerID, id, input)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to update task: %v", err)
	}

	return &taskv1.UpdateTaskResponse{
		Task: convertEntTaskToProto(t),
	}, nil
}

// UpdateTaskStatus attempts a status transition through the engine. Gated
// transitions fail with FailedPrecondition naming the blocking tasks.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, req *taskv1.UpdateTaskStatusRequest) (*taskv1.UpdateTaskStatusResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}
	requested, ok := convertProtoToStatus(req.Status)
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "unknown task status")
	}

	t, rejection, err := s.guard.Attempt(ctx, ownerID, id, requested)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to update task status: %v", err)
	}
	if rejection != nil {
		return nil, status.Error(codes.FailedPrecondition, rejection.Message())
	}

	return &taskv1.UpdateTaskStatusResponse{
		Task: convertEntTaskToProto(t),
	}, nil
}

// SetTaskDependencies replaces a task's dependency list
func (s *TaskService) SetTaskDependencies(ctx context.Context, req *taskv1.SetTaskDependenciesRequest) (*taskv1.SetTaskDependenciesResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}

	deps, err := s.validateDependencies(ctx, ownerID, id, req.DependencyTaskIds)
	if err != nil {
		return nil, err
	}

	t, err := s.repo.SetDependencies(ctx, ownerID, id, deps)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to set dependencies: %v", err)
	}

	return &taskv1.SetTaskDependenciesResponse{
		Task: convertEntTaskToProto(t),
	}, nil
}

// DeleteTask deletes a task and strips it from other tasks' dependency lists
func (s *TaskService) DeleteTask(ctx context.Context, req *taskv1.DeleteTaskRequest) (*emptypb.Empty, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid task ID format")
	}

	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to delete task: %v", err)
	}

	return &emptypb.Empty{}, nil
}

// validateDependencies parses and checks a dependency id list: ids must be
// well-formed, distinct from taskID, and resolve to tasks the owner can
// see. Pass uuid.Nil as taskID when the task does not exist yet.
func (s *TaskService) validateDependencies(ctx context.Context, ownerID, taskID uuid.UUID, ids []string) ([]uuid.UUID, error) {
	deps := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		depID, err := uuid.Parse(raw)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid dependency ID format: %s", raw)
		}
		if taskID != uuid.Nil && depID == taskID {
			return nil, status.Error(codes.InvalidArgument, "a task cannot depend on itself")
		}
		if containsDep(deps, depID) {
			continue
		}
		if _, err := s.repo.GetByID(ctx, ownerID, depID); err != nil {
			if ent.IsNotFound(err) {
				return nil, status.Errorf(codes.InvalidArgument, "dependency task %s does not exist", depID)
			}
			return nil, status.Errorf(codes.Internal, "failed to resolve dependency: %v", err)
		}
		deps = append(deps, depID)
	}
	return deps, nil
}

func containsDep(ids []uuid.UUID, id uuid.UUID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
