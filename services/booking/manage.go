package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"camerastore/database"
	bookingRepo "camerastore/database/repository/booking"
	"camerastore/models"
	"camerastore/utils"

	"go.uber.org/zap"
)

// List runs the status filter and sort in the store, then applies the text search.
func (s *DefaultBookingService) List(ctx context.Context, filter ListFilter) ([]models.Booking, error) {
	criteria := bookingRepo.ListCriteria{}

	status := strings.TrimSpace(filter.Status)
	if status != "" && status != "all" {
		st := models.BookingStatus(status)
		if !st.Valid() {
			return nil, utils.NewValidationError("unknown status", "status")
		}
		criteria.Status = st
	}

	sortState := filter.Sort
	if sortState.Field == "" {
		sortState = DefaultSort
	}
	if !ValidSortField(sortState.Field) {
		return nil, utils.NewValidationError("unknown sort field", "sort")
	}
	if sortState.Dir != SortAsc && sortState.Dir != SortDesc {
		return nil, utils.NewValidationError("sort direction must be asc or desc", "dir")
	}
	criteria.SortField = sortState.Field
	criteria.SortDesc = sortState.Dir == SortDesc

	bookings, err := s.Repo.List(ctx, criteria)
	if err != nil {
		utils.GetLogger().Error("failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return Search(bookings, strings.TrimSpace(filter.Query)), nil
}

// SetStatus overwrites the status. Setting the current status again is a no-op write.
func (s *DefaultBookingService) SetStatus(ctx context.Context, id string, status models.BookingStatus) error {
	if !status.Valid() {
		return utils.NewValidationError("status must be pending, approved, completed or cancelled", "status")
	}
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrBookingNotFound
		}
		utils.GetLogger().Error("failed to update booking status", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	if s.Notifier != nil {
		if err := s.Notifier.BookingStatusChanged(context.WithoutCancel(ctx), id, status); err != nil {
			utils.GetLogger().Warn("failed to queue status event", zap.String("bookingId", id), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrBookingNotFound
		}
		utils.GetLogger().Error("failed to delete booking", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	if s.Notifier != nil {
		if err := s.Notifier.BookingDeleted(context.WithoutCancel(ctx), id); err != nil {
			utils.GetLogger().Warn("failed to queue delete event", zap.String("bookingId", id), zap.Error(err))
		}
	}
	return nil
}
