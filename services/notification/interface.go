package notification

import (
	"context"
	"time"

	"camerastore/models"

	"github.com/hibiken/asynq"
)

// TaskEnqueuer is the part of *asynq.Client the service needs.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// NotificationService queues booking events and image housekeeping.
type NotificationService interface {
	BookingSubmitted(ctx context.Context, booking models.Booking) error
	BookingStatusChanged(ctx context.Context, bookingID string, status models.BookingStatus) error
	BookingDeleted(ctx context.Context, bookingID string) error
	ScheduleImageDeletion(ctx context.Context, publicID string) error
}

// DefaultNotificationService is the production implementation.
// A nil queue turns every call into a logged no-op.
type DefaultNotificationService struct {
	queue        TaskEnqueuer
	cleanupDelay time.Duration
	now          func() time.Time
}

// EventPublisher fans booking events out to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close()
}
