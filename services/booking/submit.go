package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"camerastore/models"
	"camerastore/services/product"
	"camerastore/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Form returns an empty booking form, prefilled from the camera when one is given.
func (s *DefaultBookingService) Form(ctx context.Context, cameraID string) (*FormView, error) {
	view := &FormView{
		Form:      models.BookingForm{CameraCount: "1"},
		TimeSlots: models.TimeSlots,
	}
	if cameraID == "" {
		return view, nil
	}
	item, err := s.lookupCamera(ctx, cameraID)
	if err != nil {
		return nil, err
	}
	view.Product = item
	view.Form.CameraID = item.ID
	view.Form.CameraName = item.Name
	view.Form.ImageURL = item.ImageURL
	return view, nil
}

// Submit stores a new pending booking. There is no duplicate guard, two
// identical submits make two bookings.
func (s *DefaultBookingService) Submit(ctx context.Context, form models.BookingForm) (*SubmitResult, error) {
	form = trimForm(form)
	if err := s.validateForm(form); err != nil {
		return nil, err
	}

	b := models.Booking{
		FullName:        form.FullName,
		Email:           form.Email,
		Phone:           form.Phone,
		Date:            form.Date,
		Time:            form.Time,
		Location:        form.Location,
		CameraCount:     NormalizeCameraCount(form.CameraCount),
		IncludeAssembly: form.IncludeAssembly,
		Comments:        form.Comments,
		CameraID:        form.CameraID,
		Status:          models.StatusPending,
	}

	if form.CameraID != "" {
		item, err := s.lookupCamera(ctx, form.CameraID)
		if err != nil {
			return nil, err
		}
		b.CameraName = item.Name
		b.ImageURL = item.ImageURL
		form.CameraName = item.Name
		form.ImageURL = item.ImageURL
	}

	if err := s.Repo.Create(ctx, &b); err != nil {
		utils.GetLogger().Error("failed to store booking", zap.String("email", b.Email), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	if s.Notifier != nil {
		if err := s.Notifier.BookingSubmitted(context.WithoutCancel(ctx), b); err != nil {
			utils.GetLogger().Warn("failed to queue booking event", zap.String("bookingId", b.ID), zap.Error(err))
		}
	}

	return &SubmitResult{Booking: &b, Form: form.Reset()}, nil
}

func (s *DefaultBookingService) lookupCamera(ctx context.Context, id string) (*models.CatalogItem, error) {
	item, err := s.Catalog.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return nil, ErrCameraNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return item, nil
}

func (s *DefaultBookingService) validateForm(f models.BookingForm) error {
	var missing, invalid []string
	required := []struct{ field, value string }{
		{"fullName", f.FullName},
		{"email", f.Email},
		{"phone", f.Phone},
		{"date", f.Date},
		{"time", f.Time},
		{"location", f.Location},
	}
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.field)
		}
	}

	if f.Email != "" && s.validate.Var(f.Email, "email") != nil {
		invalid = append(invalid, "email")
	}
	if f.Date != "" {
		if _, err := time.Parse(dateLayout, f.Date); err != nil {
			invalid = append(invalid, "date")
		}
	}
	if f.Time != "" && !isTimeSlot(f.Time) {
		invalid = append(invalid, "time")
	}

	if len(missing) > 0 {
		return utils.NewValidationError("required fields are missing", append(missing, invalid...)...)
	}
	if len(invalid) > 0 {
		return utils.NewValidationError("invalid booking fields", invalid...)
	}
	return nil
}

func isTimeSlot(t string) bool {
	for _, slot := range models.TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// NormalizeCameraCount maps anything outside "1".."10" to "1".
func NormalizeCameraCount(v string) string {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 || n > 10 {
		return "1"
	}
	return strconv.Itoa(n)
}

func trimForm(f models.BookingForm) models.BookingForm {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Date = strings.TrimSpace(f.Date)
	f.Time = strings.TrimSpace(f.Time)
	f.Location = strings.TrimSpace(f.Location)
	f.CameraID = strings.TrimSpace(f.CameraID)
	return f
}
