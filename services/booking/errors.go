package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrCameraNotFound  = errors.New("camera not found")
	ErrStoreFailure    = errors.New("booking store failure")
)
