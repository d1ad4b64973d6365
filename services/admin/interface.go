package admin

import (
	"context"

	"camerastore/models"
)

type UserSource interface {
	GetAll(ctx context.Context) ([]models.User, error)
}

type ProductSource interface {
	GetAll(ctx context.Context) ([]models.Product, error)
}

type BookingSource interface {
	GetAll(ctx context.Context) ([]models.Booking, error)
}

type AdminService interface {
	Dashboard(ctx context.Context) *models.Dashboard
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Users    UserSource
	Products ProductSource
	Bookings BookingSource
}

func NewAdminService(users UserSource, products ProductSource, bookings BookingSource) *DefaultAdminService {
	return &DefaultAdminService{Users: users, Products: products, Bookings: bookings}
}
