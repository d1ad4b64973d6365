// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis session keys.
const AuthCachePrefix = "session:"

// Navigation targets and delays mirrored from the storefront views.
const (
	LoginPath     = "/login"
	HomePath      = "/"
	DashboardPath = "/managerAdmin"

	AdminRedirectDelay  = 2 * time.Second
	PublicRedirectDelay = 5 * time.Second
)

// Redirect builds a RedirectHint for the given path and delay.
func Redirect(to string, after time.Duration) RedirectHint {
	return RedirectHint{To: to, AfterMs: int(after / time.Millisecond)}
}
