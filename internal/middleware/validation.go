// internal/middleware/validation.go
package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	boardv1 "github.com/tanercay/goalgrid/api/proto/board/v1/generated"
	recurringv1 "github.com/tanercay/goalgrid/api/proto/recurring/v1/generated"
	taskv1 "github.com/tanercay/goalgrid/api/proto/task/v1/generated"
	"github.com/tanercay/goalgrid/pkg/recurrence"
)

// ValidationConfig holds validation configuration
type ValidationConfig struct {
	MaxNameLength        int
	MaxDescriptionLength int
	MaxCategoryLength    int
	MaxDependencies      int
	MaxReorderBatch      int
}

// DefaultValidationConfig returns default validation configuration
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		MaxNameLength:        200,
		MaxDescriptionLength: 5000,
		MaxCategoryLength:    100,
		MaxDependencies:      50,
		MaxReorderBatch:      500,
	}
}

// ValidationInterceptor rejects malformed requests at the boundary, so the
// engine below it only ever sees values from the closed enum sets.
type ValidationInterceptor struct {
	config *ValidationConfig
}

// NewValidationInterceptor creates a new validation interceptor
func NewValidationInterceptor(config *ValidationConfig) *ValidationInterceptor {
	if config == nil {
		config = DefaultValidationConfig()
	}
	return &ValidationInterceptor{
		config: config,
	}
}

// Unary returns a unary server interceptor for request validation
func (v *ValidationInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if err := v.validateRequest(req); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// validateRequest validates different request types
func (v *ValidationInterceptor) validateRequest(req interface{}) error {
	switch r := req.(type) {
	case *taskv1.CreateProjectRequest:
		return v.validateCreateProjectRequest(r)
	case *taskv1.CreateTaskRequest:
		return v.validateCreateTaskRequest(r)
	case *taskv1.UpdateTaskRequest:
		return v.validateUpdateTaskRequest(r)
	case *taskv1.UpdateTaskStatusRequest:
		return v.validateUpdateTaskStatusRequest(r)
	case *taskv1.SetTaskDependenciesRequest:
		return v.validateSetTaskDependenciesRequest(r)
	case *boardv1.MoveTaskRequest:
		return v.validateMoveTaskRequest(r)
	case *boardv1.ReorderTasksRequest:
		return v.validateReorderTasksRequest(r)
	case *recurringv1.CreateTemplateRequest:
		return v.validateTemplatePattern(r.RecurrencePattern, true)
	case *recurringv1.UpdateTemplateRequest:
		return v.validateTemplatePattern(r.RecurrencePattern, false)
	default:
		return nil
	}
}

func (v *ValidationInterceptor) validateCreateProjectRequest(req *taskv1.CreateProjectRequest) error {
	if req.Name == "" {
		return status.Error(codes.InvalidArgument, "name is required")
	}
	if len(req.Name) > v.config.MaxNameLength {
		return status.Errorf(codes.InvalidArgument, "name exceeds %d characters", v.config.MaxNameLength)
	}
	if len(req.Description) > v.config.MaxDescriptionLength {
		return status.Errorf(codes.InvalidArgument, "description exceeds %d characters", v.config.MaxDescriptionLength)
	}
	return nil
}

func (v *ValidationInterceptor) validateCreateTaskRequest(req *taskv1.CreateTaskRequest) error {
	if req.ProjectId == "" {
		return status.Error(codes.InvalidArgument, "project_id is required")
	}
	if req.Name == "" {
		return status.Error(codes.InvalidArgument, "name is required")
	}
	if len(req.Name) > v.config.MaxNameLength {
		return status.Errorf(codes.InvalidArgument, "name exceeds %d characters", v.config.MaxNameLength)
	}
	if len(req.Description) > v.config.MaxDescriptionLength {
		return status.Errorf(codes.InvalidArgument, "description exceeds %d characters", v.config.MaxDescriptionLength)
	}
	if len(req.Category) > v.config.MaxCategoryLength {
		return status.Errorf(codes.InvalidArgument, "category exceeds %d characters", v.config.MaxCategoryLength)
	}
	if len(req.DependencyTaskIds) > v.config.MaxDependencies {
		return status.Errorf(codes.InvalidArgument, "at most %d dependencies allowed", v.config.MaxDependencies)
	}
	return nil
}

func (v *ValidationInterceptor) validateUpdateTaskRequest(req *taskv1.UpdateTaskRequest) error {
	if req.Id == "" {
		return status.Error(codes.InvalidArgument, "id is required")
	}
	if len(req.Name) > v.config.MaxNameLength {
		return status.Errorf(codes.InvalidArgument, "name exceeds %d characters", v.config.MaxNameLength)
	}
	if len(req.Description) > v.config.MaxDescriptionLength {
		return status.Errorf(codes.InvalidArgument, "description exceeds %d characters", v.config.MaxDescriptionLength)
	}
	return nil
}

func (v *ValidationInterceptor) validateUpdateTaskStatusRequest(req *taskv1.UpdateTaskStatusRequest) error {
	if req.Id == "" {
		return status.Error(codes.InvalidArgument, "id is required")
	}
	// Closed enum: anything outside the four states is rejected here, not
	// deep inside the transition guard.
	switch req.Status {
	case taskv1.TaskStatus_TASK_STATUS_TODO,
		taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS,
		taskv1.TaskStatus_TASK_STATUS_REVIEW,
		taskv1.TaskStatus_TASK_STATUS_COMPLETED:
		return nil
	default:
		return status.Error(codes.InvalidArgument, "status must be one of todo, in_progress, review, completed")
	}
}

func (v *ValidationInterceptor) validateSetTaskDependenciesRequest(req *taskv1.SetTaskDependenciesRequest) error {
	if req.Id == "" {
		return status.Error(codes.InvalidArgument, "id is required")
	}
	if len(req.DependencyTaskIds) > v.config.MaxDependencies {
		return status.Errorf(codes.InvalidArgument, "at most %d dependencies allowed", v.config.MaxDependencies)
	}
	return nil
}

func (v *ValidationInterceptor) validateMoveTaskRequest(req *boardv1.MoveTaskRequest) error {
	if req.TaskId == "" {
		return status.Error(codes.InvalidArgument, "task_id is required")
	}
	if req.TargetColumn == boardv1.KanbanColumn_KANBAN_COLUMN_UNSPECIFIED {
		return status.Error(codes.InvalidArgument, "target_column is required")
	}
	if req.TargetPosition < 0 {
		return status.Error(codes.InvalidArgument, "target_position must not be negative")
	}
	return nil
}

func (v *ValidationInterceptor) validateReorderTasksRequest(req *boardv1.ReorderTasksRequest) error {
	if req.ProjectId == "" {
		return status.Error(codes.InvalidArgument, "project_id is required")
	}
	if len(req.OrderedTaskIds) == 0 {
		return status.Error(codes.InvalidArgument, "ordered_task_ids is required")
	}
	if len(req.OrderedTaskIds) > v.config.MaxReorderBatch {
		return status.Errorf(codes.InvalidArgument, "at most %d tasks per reorder", v.config.MaxReorderBatch)
	}
	return nil
}

func (v *ValidationInterceptor) validateTemplatePattern(p *taskv1.RecurrencePattern, required bool) error {
	if p == nil {
		if required {
			return status.Error(codes.InvalidArgument, "recurrence_pattern is required")
		}
		return nil
	}
	if err := patternFromProto(p).Validate(); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return nil
}

// patternFromProto builds the value object checked by pkg/recurrence.
func patternFromProto(p *taskv1.RecurrencePattern) *recurrence.Pattern {
	pattern := &recurrence.Pattern{
		Type:     recurrence.Type(p.Type),
		Interval: int(p.Interval),
		Weekdays: p.Weekdays,
	}
	if p.MonthDay > 0 {
		day := int(p.MonthDay)
		pattern.MonthDay = &day
	}
	if p.EndDate != nil {
		end := p.EndDate.AsTime()
		pattern.EndDate = &end
	}
	if p.MaxInstances > 0 {
		m := int(p.MaxInstances)
		pattern.MaxInstances = &m
	}
	return pattern
}
