package notification

import (
	"context"
	"fmt"
	"time"

	"camerastore/models"
	"camerastore/services/tasks"
	"camerastore/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultCleanupDelay is how long an orphaned image waits before deletion.
const DefaultCleanupDelay = 10 * time.Minute

func NewDefaultNotificationService(queue TaskEnqueuer) *DefaultNotificationService {
	return &DefaultNotificationService{
		queue:        queue,
		cleanupDelay: DefaultCleanupDelay,
		now:          time.Now,
	}
}

func (s *DefaultNotificationService) BookingSubmitted(ctx context.Context, b models.Booking) error {
	return s.enqueueBookingEvent(ctx, tasks.BookingEventPayload{
		Event:      tasks.EventBookingSubmitted,
		BookingID:  b.ID,
		Status:     b.Status,
		FullName:   b.FullName,
		Email:      b.Email,
		CameraName: b.CameraName,
		Date:       b.Date,
		Time:       b.Time,
	})
}

func (s *DefaultNotificationService) BookingStatusChanged(ctx context.Context, bookingID string, status models.BookingStatus) error {
	return s.enqueueBookingEvent(ctx, tasks.BookingEventPayload{
		Event:     tasks.EventBookingStatusChanged,
		BookingID: bookingID,
		Status:    status,
	})
}

func (s *DefaultNotificationService) BookingDeleted(ctx context.Context, bookingID string) error {
	return s.enqueueBookingEvent(ctx, tasks.BookingEventPayload{
		Event:     tasks.EventBookingDeleted,
		BookingID: bookingID,
	})
}

// ScheduleImageDeletion queues removal of an uploaded asset that no product references.
func (s *DefaultNotificationService) ScheduleImageDeletion(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	task, opts, err := tasks.NewImageDestroyTask(publicID, s.cleanupDelay)
	if err != nil {
		return fmt.Errorf("failed to build image cleanup task: %w", err)
	}
	return s.enqueue(ctx, task, opts)
}

func (s *DefaultNotificationService) enqueueBookingEvent(ctx context.Context, p tasks.BookingEventPayload) error {
	p.OccurredAt = s.now().UTC()
	task, opts, err := tasks.NewBookingEventTask(p)
	if err != nil {
		return fmt.Errorf("failed to build booking event task: %w", err)
	}
	return s.enqueue(ctx, task, opts)
}

func (s *DefaultNotificationService) enqueue(ctx context.Context, task *asynq.Task, opts []asynq.Option) error {
	if s.queue == nil {
		utils.GetLogger().Debug("task queue disabled, dropping task", zap.String("type", task.Type()))
		return nil
	}
	info, err := s.queue.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", task.Type(), err)
	}
	utils.GetLogger().Debug("task enqueued", zap.String("type", task.Type()), zap.String("id", info.ID))
	return nil
}
