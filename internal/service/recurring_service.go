// internal/service/recurring_service.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	recurringv1 "github.com/tanercay/goalgrid/api/proto/recurring/v1/generated"
	taskv1 "github.com/tanercay/goalgrid/api/proto/task/v1/generated"
	ent "github.com/tanercay/goalgrid/ent/generated"
	"github.com/tanercay/goalgrid/ent/generated/task"
	"github.com/tanercay/goalgrid/internal/middleware"
	"github.com/tanercay/goalgrid/internal/repository"
	"github.com/tanercay/goalgrid/pkg/recurrence"
)

// RecurringService implements the recurring.v1.RecurringService gRPC API
// and the scheduled generation pass behind it.
type RecurringService struct {
	recurringv1.UnimplementedRecurringServiceServer
	templates *repository.EntTemplateRepository
	tasks     *repository.EntTaskRepository
	events    *EventService
}

// NewRecurringService creates a new recurring task service
func NewRecurringService(templates *repository.EntTemplateRepository, tasks *repository.EntTaskRepository, events *EventService) *RecurringService {
	return &RecurringService{
		templates: templates,
		tasks:     tasks,
		events:    events,
	}
}

// CreateTemplate creates a new recurring task template
func (s *RecurringService) CreateTemplate(ctx context.Context, req *recurringv1.CreateTemplateRequest) (*recurringv1.CreateTemplateResponse, error) {
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

	pattern := convertProtoToPattern(req.RecurrencePattern)
	if pattern == nil {
		return nil, status.Error(codes.InvalidArgument, "recurrence pattern is required")
	}
	if err := pattern.Validate(); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid recurrence pattern: %v", err)
	}

	tmpl, err := s.templates.Create(ctx, ownerID, &repository.TemplateInput{
		ProjectID:         projectID,
		Name:              req.Name,
		Description:       req.Description,
		Priority:          convertPriorityToString(req.Priority),
		Category:          req.Category,
		DueTime:           req.DueTime,
		RecurrencePattern: pattern,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to create template: %v", err)
	}

	return &recurringv1.CreateTemplateResponse{
		Template: convertEntTemplateToProto(tmpl),
	}, nil
}

// GetTemplate retrieves a template by ID
func (s *RecurringService) GetTemplate(ctx context.Context, req *recurringv1.GetTemplateRequest) (*recurringv1.GetTemplateResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid template ID format")
	}

	tmpl, err := s.templates.GetByID(ctx, ownerID, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "template not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get template: %v", err)
	}

	return &recurringv1.GetTemplateResponse{
		Template: convertEntTemplateToProto(tmpl),
	}, nil
}

// ListTemplates lists the owner's templates
func (s *RecurringService) ListTemplates(ctx context.Context, req *recurringv1.ListTemplatesRequest) (*recurringv1.ListTemplatesResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	tmpls, err := s.templates.List(ctx, ownerID, req.IncludeInactive)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list templates: %v", err)
	}

	protoTmpls := make([]*recurringv1.RecurringTaskTemplate, len(tmpls))
	for i, tmpl := range tmpls {
		protoTmpls[i] = convertEntTemplateToProto(tmpl)
	}

	return &recurringv1.ListTemplatesResponse{Templates: protoTmpls}, nil
}

// UpdateTemplate updates a template's fields
func (s *RecurringService) UpdateTemplate(ctx context.Context, req *recurringv1.UpdateTemplateRequest) (*recurringv1.UpdateTemplateResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid template ID format")
	}

	input := &repository.TemplateUpdateInput{}
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
	if req.DueTime != "" {
		input.DueTime = &req.DueTime
	}
	if req.RecurrencePattern != nil {
		pattern := convertProtoToPattern(req.RecurrencePattern)
		if err := pattern.Validate(); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid recurrence pattern: %v", err)
		}
		input.RecurrencePattern = pattern
	}

	tmpl, err := s.templates.Update(ctx, ownerID, id, input)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "template not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to update template: %v", err)
	}

	return &recurringv1.UpdateTemplateResponse{
		Template: convertEntTemplateToProto(tmpl),
	}, nil
}

// SetTemplateActive toggles a template's active flag
func (s *RecurringService) SetTemplateActive(ctx context.Context, req *recurringv1.SetTemplateActiveRequest) (*recurringv1.SetTemplateActiveResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid template ID format")
	}

	tmpl, err := s.templates.SetActive(ctx, ownerID, id, req.IsActive)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "template not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to update template: %v", err)
	}

	return &recurringv1.SetTemplateActiveResponse{
		Template: convertEntTemplateToProto(tmpl),
	}, nil
}

// DeleteTemplate deletes a template. Generated task instances survive.
func (s *RecurringService) DeleteTemplate(ctx context.Context, req *recurringv1.DeleteTemplateRequest) (*emptypb.Empty, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid template ID format")
	}

	if err := s.templates.Delete(ctx, ownerID, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "template not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to delete template: %v", err)
	}

	return &emptypb.Empty{}, nil
}

// GenerateInstances runs the generation algorithm for one template on
// demand, using the same rules as the scheduled pass.
func (s *RecurringService) GenerateInstances(ctx context.Context, req *recurringv1.GenerateInstancesRequest) (*recurringv1.GenerateInstancesResponse, error) {
	ownerID, err := middleware.OwnerIDFromContext(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "owner is required")
	}

	id, err := uuid.Parse(req.TemplateId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid template ID format")
	}

	asOf := time.Now()
	if req.AsOfDate != nil {
		asOf = req.AsOfDate.AsTime()
	}

	tmpl, err := s.templates.GetByID(ctx, ownerID, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "template not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to get template: %v", err)
	}

	generated, err := s.generateForTemplate(ctx, tmpl, asOf)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to generate instances: %v", err)
	}

	resp := &recurringv1.GenerateInstancesResponse{}
	for _, t := range generated {
		resp.Tasks = append(resp.Tasks, convertEntTaskToProto(t))
	}
	return resp, nil
}

// GenerationPass runs the generation algorithm over every active template.
// Template failures are isolated: one bad template logs and the pass moves
// on.
func (s *RecurringService) GenerationPass(ctx context.Context, asOf time.Time) int {
	tmpls, err := s.templates.ListActive(ctx)
	if err != nil {
		log.Printf("⚠️ Generation pass failed to list templates: %v", err)
		return 0
	}

	generated := 0
	for _, tmpl := range tmpls {
		instances, err := s.generateForTemplate(ctx, tmpl, asOf)
		if err != nil {
			log.Printf("⚠️ Generation failed for template %s: %v", tmpl.ID, err)
			continue
		}
		generated += len(instances)
	}

	if generated > 0 {
		log.Printf("🔄 Generation pass created %d task(s)", generated)
	}
	return generated
}

// generateForTemplate materializes at most one task instance for the
// template on the given date.
func (s *RecurringService) generateForTemplate(ctx context.Context, tmpl *ent.RecurringTaskTemplate, asOf time.Time) ([]*ent.Task, error) {
	due, err := s.shouldGenerate(ctx, tmpl, asOf)
	if err != nil || !due {
		return nil, err
	}

	sortOrder, err := s.tasks.NextSortOrder(ctx, tmpl.OwnerID, tmpl.ProjectID)
	if err != nil {
		return nil, err
	}

	asOfDate := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
	instance, err := s.tasks.Create(ctx, tmpl.OwnerID, &repository.TaskInput{
		ProjectID:   tmpl.ProjectID,
		Name:        tmpl.Name,
		Description: tmpl.Description,
		Status:      string(task.StatusTodo),
		Priority:    string(tmpl.Priority),
		Category:    tmpl.Category,
		DueDate:     &asOfDate,
		DueTime:     tmpl.DueTime,
		TemplateID:  &tmpl.ID,
		SortOrder:   sortOrder,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.templates.MarkGenerated(ctx, tmpl.OwnerID, tmpl.ID, asOfDate); err != nil {
		return nil, err
	}

	s.events.LogInstanceGenerated(ctx, tmpl.OwnerID, instance, tmpl.ID)

	return []*ent.Task{instance}, nil
}

// shouldGenerate evaluates the generation guards in order: active flag,
// end date, instance cap, same-day idempotence, then the pattern math.
func (s *RecurringService) shouldGenerate(ctx context.Context, tmpl *ent.RecurringTaskTemplate, asOf time.Time) (bool, error) {
	if !tmpl.IsActive {
		return false, nil
	}

	pattern := tmpl.RecurrencePattern
	if pattern == nil {
		return false, nil
	}

	// The end date is inclusive: only calendar days strictly after it stop
	// generation, so a mid-day pass on the end date itself still runs.
	if pattern.EndDate != nil {
		end := *pattern.EndDate
		asOfDay := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
		endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, asOf.Location())
		if asOfDay.After(endDay) {
			return false, nil
		}
	}

	if pattern.MaxInstances != nil {
		count, err := s.tasks.CountByTemplate(ctx, tmpl.OwnerID, tmpl.ID)
		if err != nil {
			return false, err
		}
		if count >= *pattern.MaxInstances {
			return false, nil
		}
	}

	if tmpl.LastGeneratedDate != nil && sameDate(*tmpl.LastGeneratedDate, asOf) {
		return false, nil
	}

	return recurrence.DueOn(pattern, tmpl.CreatedAt, tmpl.LastGeneratedDate, asOf), nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func convertEntTemplateToProto(tmpl *ent.RecurringTaskTemplate) *recurringv1.RecurringTaskTemplate {
	proto := &recurringv1.RecurringTaskTemplate{
		Id:                tmpl.ID.String(),
		OwnerId:           tmpl.OwnerID.String(),
		ProjectId:         tmpl.ProjectID.String(),
		Name:              tmpl.Name,
		Description:       tmpl.Description,
		Priority:          convertStringToPriority(string(tmpl.Priority)),
		Category:          tmpl.Category,
		DueTime:           tmpl.DueTime,
		RecurrencePattern: convertPatternToProto(tmpl.RecurrencePattern),
		IsActive:          tmpl.IsActive,
		CreatedAt:         timestamppb.New(tmpl.CreatedAt),
		UpdatedAt:         timestamppb.New(tmpl.UpdatedAt),
	}
	if tmpl.LastGeneratedDate != nil {
		proto.LastGeneratedDate = timestamppb.New(*tmpl.LastGeneratedDate)
	}
	return proto
}
