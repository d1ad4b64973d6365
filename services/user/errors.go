package user

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserExists         = errors.New("a user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrStoreFailure       = errors.New("user store failure")
)

// DeleteForbiddenError explains why a user delete was refused.
type DeleteForbiddenError struct {
	Reason string
}

func (e DeleteForbiddenError) Error() string {
	return "user cannot be deleted: " + e.Reason
}
