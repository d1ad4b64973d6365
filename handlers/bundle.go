// File: camerastore/handlers/bundle.go
package handlers

import (
	"camerastore/services/session"
)

// HandlerBundle groups all endpoint handlers and the session gate they sit behind.
type HandlerBundle struct {
	Sessions session.SessionManager

	Products *ProductHandler
	Bookings *BookingHandler
	Users    *UserHandler
	Admin    *AdminHandler
	Storage  *StorageHandler
}
