// internal/service/event_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanercay/goalgrid/ent/generated/taskevent"
	"github.com/tanercay/goalgrid/pkg/events"
)

// captureDispatcher records dispatched notifications for assertions.
type captureDispatcher struct {
	dispatched []events.TaskUnblocked
}

func (d *captureDispatcher) DispatchTaskUnblocked(_ context.Context, event events.TaskUnblocked) error {
	d.dispatched = append(d.dispatched, event)
	return nil
}

// brokenDispatcher fails every delivery.
type brokenDispatcher struct{}

func (d *brokenDispatcher) DispatchTaskUnblocked(context.Context, events.TaskUnblocked) error {
	return errors.New("notification backend unavailable")
}

func TestLogTaskUnblocked_ForwardsToDispatcher(t *testing.T) {
	client := setupTestDB(t)
	t.Cleanup(func() { client.Close() })

	dispatcher := &captureDispatcher{}
	eventService := NewEventService(client, dispatcher)

	ownerID := uuid.New()
	project := createTestProject(t, client, ownerID, "Launch")
	unblocker := createTestTask(t, client, ownerID, project.ID, "Write docs")
	blocked := createTestTask(t, client, ownerID, project.ID, "Publish docs",
		withDependencies(unblocker.ID))

	ctx := ownerContext(ownerID)
	eventService.LogTaskUnblocked(ctx, ownerID, blocked, unblocker)

	require.Len(t, dispatcher.dispatched, 1)
	assert.Equal(t, blocked.ID, dispatcher.dispatched[0].TaskID)
	assert.Equal(t, "Publish docs", dispatcher.dispatched[0].TaskName)
	assert.Equal(t, unblocker.ID, dispatcher.dispatched[0].UnblockingTaskID)
	assert.Equal(t, "Write docs", dispatcher.dispatched[0].UnblockingTaskName)

	// The same event is also persisted for the feed.
	count, err := client.TaskEvent.Query().
		Where(taskevent.EventTypeEQ(taskevent.EventTypeTaskUnblocked)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestListEvents_NewestFirstScopedAndLimited(t *testing.T) {
	fx := setupEngine(t)

	ownerID := uuid.New()
	otherOwner := uuid.New()
	project := createTestProject(t, fx.client, ownerID, "Launch")
	taskA := createTestTask(t, fx.client, ownerID, project.ID, "Ship it")

	now := time.Now()
	for i, eventType := range []taskevent.EventType{
		taskevent.EventTypeTaskAutoCompleted,
		taskevent.EventTypeTaskAutoReverted,
		taskevent.EventTypeTaskUnblocked,
	} {
		_, err := fx.client.TaskEvent.Create().
			SetOwnerID(ownerID).
			SetEventType(eventType).
			SetTaskID(taskA.ID).
			SetDescription(string(eventType)).
			SetCreatedAt(now.Add(time.Duration(i) * time.Minute)).
			Save(context.Background())
		require.NoError(t, err)
	}

	otherProject := createTestProject(t, fx.client, otherOwner, "Side quest")
	taskB := createTestTask(t, fx.client, otherOwner, otherProject.ID, "Theirs")
	_, err := fx.client.TaskEvent.Create().
		SetOwnerID(otherOwner).
		SetEventType(taskevent.EventTypeTaskUnblocked).
		SetTaskID(taskB.ID).
		SetDescription("foreign event").
		Save(context.Background())
	require.NoError(t, err)

	ctx := ownerContext(ownerID)

	listed, err := fx.events.ListEvents(ctx, ownerID, 2)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, taskevent.EventTypeTaskUnblocked, listed[0].EventType)
	assert.Equal(t, taskevent.EventTypeTaskAutoReverted, listed[1].EventType)

	// Zero limit falls back to the default and never leaks other owners.
	all, err := fx.events.ListEvents(ctx, ownerID, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, evt := range all {
		assert.Equal(t, ownerID, evt.OwnerID)
	}
}
