package cron

import (
	"context"
	"errors"
	"testing"

	"camerastore/models"
	"camerastore/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct {
	PublishFunc func(ctx context.Context, routingKey string, payload any) error
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	return m.PublishFunc(ctx, routingKey, payload)
}

func (m *mockPublisher) Close() {}

type mockDeleter struct {
	DeleteImageFunc func(ctx context.Context, publicID string) error
}

func (m *mockDeleter) DeleteImage(ctx context.Context, publicID string) error {
	return m.DeleteImageFunc(ctx, publicID)
}

func TestHandleBookingEvent_PublishesUnderEventName(t *testing.T) {
	var gotKey string
	var gotPayload tasks.BookingEventPayload
	pub := &mockPublisher{PublishFunc: func(ctx context.Context, routingKey string, payload any) error {
		gotKey = routingKey
		gotPayload = payload.(tasks.BookingEventPayload)
		return nil
	}}

	task, _, err := tasks.NewBookingEventTask(tasks.BookingEventPayload{
		Event:     tasks.EventBookingStatusChanged,
		BookingID: "b1",
		Status:    models.StatusApproved,
	})
	require.NoError(t, err)

	err = HandleBookingEvent(pub)(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, tasks.EventBookingStatusChanged, gotKey)
	assert.Equal(t, "b1", gotPayload.BookingID)
	assert.Equal(t, models.StatusApproved, gotPayload.Status)
}

func TestHandleBookingEvent_PublishErrorRetries(t *testing.T) {
	pub := &mockPublisher{PublishFunc: func(ctx context.Context, routingKey string, payload any) error {
		return errors.New("broker down")
	}}
	task, _, err := tasks.NewBookingEventTask(tasks.BookingEventPayload{Event: tasks.EventBookingDeleted, BookingID: "b1"})
	require.NoError(t, err)

	err = HandleBookingEvent(pub)(context.Background(), task)
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleBookingEvent_BadPayloadSkipsRetry(t *testing.T) {
	pub := &mockPublisher{PublishFunc: func(ctx context.Context, routingKey string, payload any) error {
		t.Fatal("publish should not be called")
		return nil
	}}

	err := HandleBookingEvent(pub)(context.Background(), asynq.NewTask(tasks.TypeBookingEvent, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	err = HandleBookingEvent(pub)(context.Background(), asynq.NewTask(tasks.TypeBookingEvent, []byte(`{"event":""}`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleImageDestroy(t *testing.T) {
	var deleted string
	del := &mockDeleter{DeleteImageFunc: func(ctx context.Context, publicID string) error {
		deleted = publicID
		return nil
	}}
	task, _, err := tasks.NewImageDestroyTask("camerastore/products/abc", 0)
	require.NoError(t, err)

	require.NoError(t, HandleImageDestroy(del)(context.Background(), task))
	assert.Equal(t, "camerastore/products/abc", deleted)

	err = HandleImageDestroy(del)(context.Background(), asynq.NewTask(tasks.TypeImageDestroy, []byte(`{}`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
