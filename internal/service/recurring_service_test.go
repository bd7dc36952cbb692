// internal/service/recurring_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	recurringv1 "github.com/tanercay/goalgrid/api/proto/recurring/v1/generated"
	taskv1 "github.com/tanercay/goalgrid/api/proto/task/v1/generated"
	ent "github.com/tanercay/goalgrid/ent/generated"
	"github.com/tanercay/goalgrid/ent/generated/task"
	"github.com/tanercay/goalgrid/internal/repository"
	"github.com/tanercay/goalgrid/pkg/recurrence"
)

func setupRecurringService(t *testing.T) (*engineFixture, *RecurringService) {
	fx := setupEngine(t)
	svc := NewRecurringService(fx.tmplRepo, fx.taskRepo, fx.events)
	return fx, svc
}

func dailyPattern(interval int) *recurrence.Pattern {
	return &recurrence.Pattern{Type: recurrence.TypeDaily, Interval: interval}
}

func createDailyTemplate(t *testing.T, fx *engineFixture, ownerID, projectID uuid.UUID, name string, pattern *recurrence.Pattern) *ent.RecurringTaskTemplate {
	tmpl, err := fx.tmplRepo.Create(context.Background(), ownerID, &repository.TemplateInput{
		ProjectID:         projectID,
		Name:              name,
		Priority:          "high",
		Category:          "health",
		DueTime:           "07:30",
		RecurrencePattern: pattern,
	})
	require.NoError(t, err)
	return tmpl
}

func TestCreateTemplate_ValidatesPattern(t *testing.T) {
	fx, svc := setupRecurringService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Recurring")
	ctx := ownerContext(ownerID)

	_, err := svc.CreateTemplate(ctx, &recurringv1.CreateTemplateRequest{
		ProjectId: project.ID.String(),
		Name:      "Broken",
		RecurrencePattern: &taskv1.RecurrencePattern{
			Type:     "weekly",
			Interval: 1,
			Weekdays: []string{"funday"},
		},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.CreateTemplate(ctx, &recurringv1.CreateTemplateRequest{
		ProjectId: project.ID.String(),
		Name:      "No pattern",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGenerateInstances_MaterializesTask(t *testing.T) {
	fx, svc := setupRecurringService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Recurring")
	ctx := ownerContext(ownerID)

	tmpl := createDailyTemplate(t, fx, ownerID, project.ID, "Morning run", dailyPattern(1))

	asOf := time.Now()
	resp, err := svc.GenerateInstances(ctx, &recurringv1.GenerateInstancesRequest{
		TemplateId: tmpl.ID.String(),
		AsOfDate:   timestamppb.New(asOf),
	})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1)

	generated := resp.Tasks[0]
	assert.Equal(t, "Morning run", generated.Name)
	assert.Equal(t, taskv1.TaskStatus_TASK_STATUS_TODO, generated.Status)
	assert.Equal(t, taskv1.Priority_PRIORITY_HIGH, generated.Priority)
	assert.Equal(t, "health", generated.Category)
	assert.Equal(t, "07:30", generated.DueTime)
	assert.Equal(t, tmpl.ID.String(), generated.TemplateId)
	assert.Empty(t, generated.DependencyTaskIds)
	require.NotNil(t, generated.DueDate)

	// Template remembers the generation date.
	reloaded, err := fx.tmplRepo.GetByID(ctx, ownerID, tmpl.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.LastGeneratedDate)
}

func TestGenerateInstances_IdempotentPerDay(t *testing.T) {
	fx, svc := setupRecurringService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Recurring")
	ctx := ownerContext(ownerID)

	tmpl := createDailyTemplate(t, fx, ownerID, project.ID, "Daily", dailyPattern(1))

	req := &recurringv1.GenerateInstancesRequest{
		TemplateId: tmpl.ID.String(),
		AsOfDate:   timestamppb.New(time.Now()),
	}
	first, err := svc.GenerateInstances(ctx, req)
	require.NoError(t, err)
	require.Len(t, first.Tasks, 1)

	second, err := svc.GenerateInstances(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, second.Tasks)
}

func TestGenerateInstances_InactiveTemplateSkipped(t *testing.T) {
	fx, svc := setupRecurringService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Recurring")
	ctx := ownerContext(ownerID)

	tmpl := createDailyTemplate(t, fx, ownerID, project.ID, "Paused", dailyPattern(1))
	_, err := fx.tmplRepo.SetActive(ctx, ownerID, tmpl.ID, false)
	require.NoError(t, err)

	resp, err := svc.GenerateInstances(ctx, &recurringv1.GenerateInstancesRequest{
		TemplateId: tmpl.ID.String(),
		AsOfDate:   timestamppb.New(time.Now()),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Tasks)
}

func TestGenerateInstances_EndDatePassedSkips(t *testing.T) {
	fx, svc := setupRecurringService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Recurring")
	ctx := ownerContext(ownerID)

	yesterday := time.Now().AddDate(0, 0, -1)
	pattern := dailyPattern(1)
	pattern.EndDate = &yesterday
	tmpl := createDailyTemplate(t, fx, ownerID, project.ID, "Expired", pattern)

	resp, err := svc.GenerateInstances(ctx, &recurringv1.GenerateInstancesRequest{
		TemplateId: tmpl.ID.String(),
		AsOfDate:   timestamppb.New(time.Now()),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Tasks)
}

func TestGenerateInstances_EndDateItselfStillGenerates(t *testing.T) {
	fx, svc := setupRecurringService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Recurring")
	ctx := ownerContext(ownerID)

	// End date at midnight today; a pass later the same day must still run.
	now := time.Now()
	endDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	pattern := dailyPattern(1)
	pattern.EndDate = &endDate
	tmpl := createDailyTemplate(t, fx, ownerID, project.ID, "Last day", pattern)

	resp, err := svc.GenerateInstances(ctx, &recurringv1.GenerateInstancesRequest{
		TemplateId: tmpl.ID.String(),
		AsOfDate:   timestamppb.New(endDate.Add(14 * time.Hour)),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Tasks, 1)
}

func TestGenerateInstances_MaxInstancesCap(t *testing.T) {
	fx, svc := setupRecurringService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Recurring")
	ctx := ownerContext(ownerID)

	max := 1
	pattern := dailyPattern(1)
	pattern.MaxInstances = &max
	tmpl := createDailyTemplate(t, fx, ownerID, project.ID, "Capped", pattern)

	first, err := svc.GenerateInstances(ctx, &recurringv1.GenerateInstancesRequest{
		TemplateId: tmpl.ID.String(),
		AsOfDate:   timestamppb.New(time.Now()),
	})
	require.NoError(t, err)
	require.Len(t, first.Tasks, 1)

	// A later date is due by the pattern, but the cap blocks it.
	second, err := svc.GenerateInstances(ctx, &recurringv1.GenerateInstancesRequest{
		TemplateId: tmpl.ID.String(),
		AsOfDate:   timestamppb.New(time.Now().AddDate(0, 0, 1)),
	})
	require.NoError(t, err)
	assert.Empty(t, second.Tasks)
}

func TestGenerateInstances_AppendsAtEndOfProject(t *testing.T) {
	fx, svc := setupRecurringService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Recurring")
	ctx := ownerContext(ownerID)

	createTestTask(t, fx.client, ownerID, project.ID, "Existing", withSortOrder(5))
	tmpl := createDailyTemplate(t, fx, ownerID, project.ID, "Daily", dailyPattern(1))

	resp, err := svc.GenerateInstances(ctx, &recurringv1.GenerateInstancesRequest{
		TemplateId: tmpl.ID.String(),
		AsOfDate:   timestamppb.New(time.Now()),
	})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, int32(6), resp.Tasks[0].SortOrder)
}

func TestGenerationPass_IsolatesTemplates(t *testing.T) {
	fx, svc := setupRecurringService(t)
	ownerA := uuid.New()
	ownerB := uuid.New()
	projectA := createTestProject(t, fx.client, ownerA, "A")
	projectB := createTestProject(t, fx.client, ownerB, "B")

	createDailyTemplate(t, fx, ownerA, projectA.ID, "A daily", dailyPattern(1))
	createDailyTemplate(t, fx, ownerB, projectB.ID, "B daily", dailyPattern(1))

	generated := svc.GenerationPass(context.Background(), time.Now())
	assert.Equal(t, 2, generated)

	tasksA, err := fx.taskRepo.ListByProject(context.Background(), ownerA, projectA.ID)
	require.NoError(t, err)
	require.Len(t, tasksA, 1)
	assert.Equal(t, task.StatusTodo, tasksA[0].Status)
}

func TestDeleteTemplate_KeepsGeneratedInstances(t *testing.T) {
	fx, svc := setupRecurringService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Recurring")
	ctx := ownerContext(ownerID)

	tmpl := createDailyTemplate(t, fx, ownerID, project.ID, "Daily", dailyPattern(1))
	resp, err := svc.GenerateInstances(ctx, &recurringv1.GenerateInstancesRequest{
		TemplateId: tmpl.ID.String(),
		AsOfDate:   timestamppb.New(time.Now()),
	})
	require.NoError(t, err)
	require.Len(t, resp.Tasks, 1)

	_, err = svc.DeleteTemplate(ctx, &recurringv1.DeleteTemplateRequest{Id: tmpl.ID.String()})
	require.NoError(t, err)

	tasks, err := fx.taskRepo.ListByProject(ctx, ownerID, project.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestListTemplates_ExcludesInactiveByDefault(t *testing.T) {
	fx, svc := setupRecurringService(t)
	ownerID := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Recurring")
	ctx := ownerContext(ownerID)

	active := createDailyTemplate(t, fx, ownerID, project.ID, "Active", dailyPattern(1))
	paused := createDailyTemplate(t, fx, ownerID, project.ID, "Paused", dailyPattern(1))
	_, err := fx.tmplRepo.SetActive(ctx, ownerID, paused.ID, false)
	require.NoError(t, err)

	resp, err := svc.ListTemplates(ctx, &recurringv1.ListTemplatesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Templates, 1)
	assert.Equal(t, active.ID.String(), resp.Templates[0].Id)

	all, err := svc.ListTemplates(ctx, &recurringv1.ListTemplatesRequest{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all.Templates, 2)
}
