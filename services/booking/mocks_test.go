package booking

import (
	"context"

	bookingRepo "camerastore/database/repository/booking"
	"camerastore/models"
)

type mockBookingRepo struct {
	createFn       func(ctx context.Context, b *models.Booking) error
	listFn         func(ctx context.Context, c bookingRepo.ListCriteria) ([]models.Booking, error)
	updateStatusFn func(ctx context.Context, id string, status models.BookingStatus) error
	deleteFn       func(ctx context.Context, id string) error

	created []models.Booking
	updates int
}

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	if m.createFn != nil {
		if err := m.createFn(ctx, b); err != nil {
			return err
		}
	}
	b.ID = "bk-1"
	m.created = append(m.created, *b)
	return nil
}
func (m *mockBookingRepo) List(ctx context.Context, c bookingRepo.ListCriteria) ([]models.Booking, error) {
	return m.listFn(ctx, c)
}
func (m *mockBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	m.updates++
	return m.updateStatusFn(ctx, id, status)
}
func (m *mockBookingRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockCatalog struct {
	getFn func(ctx context.Context, id string) (*models.CatalogItem, error)
}

func (m *mockCatalog) GetProduct(ctx context.Context, id string) (*models.CatalogItem, error) {
	return m.getFn(ctx, id)
}

type mockNotifier struct {
	events []string
}

func (m *mockNotifier) BookingSubmitted(ctx context.Context, b models.Booking) error {
	m.events = append(m.events, "submitted:"+b.ID)
	return nil
}
func (m *mockNotifier) BookingStatusChanged(ctx context.Context, id string, status models.BookingStatus) error {
	m.events = append(m.events, "status:"+id+":"+string(status))
	return nil
}
func (m *mockNotifier) BookingDeleted(ctx context.Context, id string) error {
	m.events = append(m.events, "deleted:"+id)
	return nil
}
