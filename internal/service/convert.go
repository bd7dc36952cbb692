// internal/service/convert.go
package service

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	taskv1 "github.com/tanercay/goalgrid/api/proto/task/v1/generated"
	ent "github.com/tanercay/goalgrid/ent/generated"
	"github.com/tanercay/goalgrid/ent/generated/task"
	"github.com/tanercay/goalgrid/pkg/recurrence"
)

// Proto <-> ent conversion helpers shared by the gRPC services.

func convertEntTaskToProto(t *ent.Task) *taskv1.Task {
	proto := &taskv1.Task{
		Id:                        t.ID.String(),
		OwnerId:                   t.OwnerID.String(),
		ProjectId:                 t.ProjectID.String(),
		Name:                      t.Name,
		Description:               t.Description,
		Status:                    convertStatusToProto(t.Status),
		Priority:                  convertStringToPriority(string(t.Priority)),
		Category:                  t.Category,
		SubTaskCompletionRequired: t.SubTaskCompletionRequired,
		KanbanColumn:              string(t.KanbanColumn),
		DueTime:                   t.DueTime,
		SortOrder:                 int32(t.SortOrder),
		Completed:                 t.Completed,
		CreatedAt:                 timestamppb.New(t.CreatedAt),
		UpdatedAt:                 timestamppb.New(t.UpdatedAt),
	}

	for _, dep := range t.Dependencies {
		proto.DependencyTaskIds = append(proto.DependencyTaskIds, dep.String())
	}

	if t.ParentTaskID != nil {
		proto.ParentTaskId = t.ParentTaskID.String()
	}
	if t.TemplateID != nil {
		proto.TemplateId = t.TemplateID.String()
	}
	if t.DueDate != nil {
		proto.DueDate = timestamppb.New(*t.DueDate)
	}
	if t.CompletedAt != nil {
		proto.CompletedAt = timestamppb.New(*t.CompletedAt)
	}

	// Legacy rows carry only the old recurrence string; normalize so
	// clients always observe the structured form.
	if pattern := recurrence.Normalize(t.RecurrencePattern, t.Recurrence, t.RecurrenceInterval); pattern != nil {
		proto.RecurrencePattern = convertPatternToProto(pattern)
	}

	return proto
}

func convertEntProjectToProto(p *ent.Project) *taskv1.Project {
	proto := &taskv1.Project{
		Id:          p.ID.String(),
		OwnerId:     p.OwnerID.String(),
		Name:        p.Name,
		Description: p.Description,
		Archived:    p.Archived,
		SortOrder:   int32(p.SortOrder),
		CreatedAt:   timestamppb.New(p.CreatedAt),
		UpdatedAt:   timestamppb.New(p.UpdatedAt),
	}
	if p.AreaID != nil {
		proto.AreaId = p.AreaID.String()
	}
	return proto
}

func convertPatternToProto(p *recurrence.Pattern) *taskv1.RecurrencePattern {
	if p == nil {
		return nil
	}
	proto := &taskv1.RecurrencePattern{
		Type:     string(p.Type),
		Interval: int32(p.Interval),
		Weekdays: p.Weekdays,
	}
	if p.MonthDay != nil {
		proto.MonthDay = int32(*p.MonthDay)
	}
	if p.EndDate != nil {
		proto.EndDate = timestamppb.New(*p.EndDate)
	}
	if p.MaxInstances != nil {
		proto.MaxInstances = int32(*p.MaxInstances)
	}
	return proto
}

func convertProtoToPattern(p *taskv1.RecurrencePattern) *recurrence.Pattern {
	if p == nil {
		return nil
	}
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
		max := int(p.MaxInstances)
		pattern.MaxInstances = &max
	}
	return pattern
}

func convertStatusToProto(s task.Status) taskv1.TaskStatus {
	switch s {
	case task.StatusTodo:
		return taskv1.TaskStatus_TASK_STATUS_TODO
	case task.StatusInProgress:
		return taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS
	case task.StatusReview:
		return taskv1.TaskStatus_TASK_STATUS_REVIEW
	case task.StatusCompleted:
		return taskv1.TaskStatus_TASK_STATUS_COMPLETED
	default:
		return taskv1.TaskStatus_TASK_STATUS_UNSPECIFIED
	}
}

// convertProtoToStatus rejects anything outside the closed status set; the
// bool mirrors the comma-ok idiom so callers map false to InvalidArgument.
func convertProtoToStatus(s taskv1.TaskStatus) (task.Status, bool) {
	switch s {
	case taskv1.TaskStatus_TASK_STATUS_TODO:
		return task.StatusTodo, true
	case taskv1.TaskStatus_TASK_STATUS_IN_PROGRESS:
		return task.StatusInProgress, true
	case taskv1.TaskStatus_TASK_STATUS_REVIEW:
		return task.StatusReview, true
	case taskv1.TaskStatus_TASK_STATUS_COMPLETED:
		return task.StatusCompleted, true
	default:
		return "", false
	}
}

func convertPriorityToString(p taskv1.Priority) string {
	switch p {
	case taskv1.Priority_PRIORITY_LOW:
		return "low"
	case taskv1.Priority_PRIORITY_HIGH:
		return "high"
	default:
		return "medium"
	}
}

func convertStringToPriority(p string) taskv1.Priority {
	switch p {
	case "low":
		return taskv1.Priority_PRIORITY_LOW
	case "medium":
		return taskv1.Priority_PRIORITY_MEDIUM
	case "high":
		return taskv1.Priority_PRIORITY_HIGH
	default:
		return taskv1.Priority_PRIORITY_UNSPECIFIED
	}
}
