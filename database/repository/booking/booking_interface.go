package bookingRepo

import (
	"context"

	"camerastore/models"
)

// ListCriteria is a single status filter plus a single sort key.
type ListCriteria struct {
	Status    models.BookingStatus // empty means every status
	SortField string
	SortDesc  bool
}

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking; the creation timestamp is assigned here.
	Create(ctx context.Context, booking *models.Booking) error
	// List runs the filtered and sorted query in the store.
	List(ctx context.Context, criteria ListCriteria) ([]models.Booking, error)
	// GetAll retrieves every booking in store order.
	GetAll(ctx context.Context) ([]models.Booking, error)
	// UpdateStatus overwrites the status field only.
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
	// Delete removes a booking by its ID.
	Delete(ctx context.Context, id string) error
}
