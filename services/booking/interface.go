package booking

import (
	"context"

	bookingRepo "camerastore/database/repository/booking"
	"camerastore/models"

	"github.com/go-playground/validator/v10"
)

// ProductCatalog resolves the camera a booking refers to.
type ProductCatalog interface {
	GetProduct(ctx context.Context, id string) (*models.CatalogItem, error)
}

// EventNotifier receives booking lifecycle events.
type EventNotifier interface {
	BookingSubmitted(ctx context.Context, booking models.Booking) error
	BookingStatusChanged(ctx context.Context, bookingID string, status models.BookingStatus) error
	BookingDeleted(ctx context.Context, bookingID string) error
}

type BookingService interface {
	// Public booking page
	Form(ctx context.Context, cameraID string) (*FormView, error)
	Submit(ctx context.Context, form models.BookingForm) (*SubmitResult, error)

	// Admin management
	List(ctx context.Context, filter ListFilter) ([]models.Booking, error)
	SetStatus(ctx context.Context, id string, status models.BookingStatus) error
	Delete(ctx context.Context, id string) error
}

// FormView prefills the public booking page.
type FormView struct {
	Form      models.BookingForm  `json:"form"`
	TimeSlots []string            `json:"timeSlots"`
	Product   *models.CatalogItem `json:"product,omitempty"`
}

// SubmitResult is the stored booking plus the form to show next.
type SubmitResult struct {
	Booking *models.Booking    `json:"booking"`
	Form    models.BookingForm `json:"form"`
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Catalog  ProductCatalog
	Notifier EventNotifier
	validate *validator.Validate
}

func NewBookingService(repo bookingRepo.BookingRepository, catalog ProductCatalog, notifier EventNotifier) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:     repo,
		Catalog:  catalog,
		Notifier: notifier,
		validate: validator.New(),
	}
}
