package booking

import (
	"context"
	"testing"

	"camerastore/database"
	bookingRepo "camerastore/database/repository/booking"
	"camerastore/models"
	"camerastore/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPassesCriteriaToStore(t *testing.T) {
	var got bookingRepo.ListCriteria
	repo := &mockBookingRepo{listFn: func(ctx context.Context, c bookingRepo.ListCriteria) ([]models.Booking, error) {
		got = c
		return []models.Booking{{ID: "1", FullName: "Avi Cohen"}, {ID: "2", FullName: "Dana"}}, nil
	}}
	svc := NewBookingService(repo, nil, nil)

	list, err := svc.List(context.Background(), ListFilter{
		Status: "approved",
		Sort:   SortState{Field: SortFullName, Dir: SortAsc},
		Query:  "avi",
	})
	require.NoError(t, err)
	assert.Equal(t, bookingRepo.ListCriteria{Status: models.StatusApproved, SortField: "fullName", SortDesc: false}, got)
	require.Len(t, list, 1)
	assert.Equal(t, "1", list[0].ID)
}

func TestListAllUsesDefaultSort(t *testing.T) {
	var got bookingRepo.ListCriteria
	repo := &mockBookingRepo{listFn: func(ctx context.Context, c bookingRepo.ListCriteria) ([]models.Booking, error) {
		got = c
		return nil, nil
	}}
	svc := NewBookingService(repo, nil, nil)

	_, err := svc.List(context.Background(), ListFilter{Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, bookingRepo.ListCriteria{SortField: "createdAt", SortDesc: true}, got)
}

func TestListRejectsUnknownValues(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := NewBookingService(repo, nil, nil)

	_, err := svc.List(context.Background(), ListFilter{Status: "rejected"})
	_, ok := utils.AsValidationError(err)
	assert.True(t, ok)

	_, err = svc.List(context.Background(), ListFilter{Sort: SortState{Field: "email", Dir: SortAsc}})
	_, ok = utils.AsValidationError(err)
	assert.True(t, ok)
}

func TestSetStatusIsIdempotent(t *testing.T) {
	current := map[string]models.BookingStatus{"b1": models.StatusPending}
	repo := &mockBookingRepo{updateStatusFn: func(ctx context.Context, id string, st models.BookingStatus) error {
		if _, ok := current[id]; !ok {
			return database.ErrNotFound
		}
		current[id] = st
		return nil
	}}
	notifier := &mockNotifier{}
	svc := NewBookingService(repo, nil, notifier)

	require.NoError(t, svc.SetStatus(context.Background(), "b1", models.StatusApproved))
	require.NoError(t, svc.SetStatus(context.Background(), "b1", models.StatusApproved))
	assert.Equal(t, models.StatusApproved, current["b1"])
	assert.Equal(t, []string{"status:b1:approved", "status:b1:approved"}, notifier.events)

	assert.ErrorIs(t, svc.SetStatus(context.Background(), "b9", models.StatusCompleted), ErrBookingNotFound)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := NewBookingService(repo, nil, nil)

	for _, st := range []models.BookingStatus{"rejected", "", "APPROVED"} {
		err := svc.SetStatus(context.Background(), "b1", st)
		_, ok := utils.AsValidationError(err)
		assert.True(t, ok, "status %q", st)
	}
	assert.Zero(t, repo.updates)
}

func TestDeleteBooking(t *testing.T) {
	repo := &mockBookingRepo{deleteFn: func(ctx context.Context, id string) error {
		if id == "b1" {
			return nil
		}
		return database.ErrNotFound
	}}
	notifier := &mockNotifier{}
	svc := NewBookingService(repo, nil, notifier)

	require.NoError(t, svc.Delete(context.Background(), "b1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "b2"), ErrBookingNotFound)
	assert.Equal(t, []string{"deleted:b1"}, notifier.events)
}
