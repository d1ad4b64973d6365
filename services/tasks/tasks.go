package tasks

import (
	"encoding/json"
	"time"

	"camerastore/models"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingEvent = "booking:event"
	TypeImageDestroy = "image:destroy"
)

// Booking lifecycle events, also used as RabbitMQ routing keys.
const (
	EventBookingSubmitted     = "booking.submitted"
	EventBookingStatusChanged = "booking.status_changed"
	EventBookingDeleted       = "booking.deleted"
)

// BookingEventPayload is carried by TypeBookingEvent tasks.
type BookingEventPayload struct {
	Event      string               `json:"event"`
	BookingID  string               `json:"bookingId"`
	Status     models.BookingStatus `json:"status,omitempty"`
	FullName   string               `json:"fullName,omitempty"`
	Email      string               `json:"email,omitempty"`
	CameraName string               `json:"cameraName,omitempty"`
	Date       string               `json:"date,omitempty"`
	Time       string               `json:"time,omitempty"`
	OccurredAt time.Time            `json:"occurredAt"`
}

// ImageDestroyPayload names an uploaded asset that no document references.
type ImageDestroyPayload struct {
	PublicID string `json:"publicId"`
}

func NewBookingEventTask(payload BookingEventPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingEvent, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}

// NewImageDestroyTask schedules the delete delay from now.
func NewImageDestroyTask(publicID string, delay time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ImageDestroyPayload{PublicID: publicID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeImageDestroy, b)
	opts := []asynq.Option{asynq.ProcessIn(delay), asynq.MaxRetry(10)}

	return task, opts, nil
}
