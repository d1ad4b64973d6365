package userRepo

import (
	"context"

	"camerastore/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetAll retrieves all users without password hashes.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by email, including the password hash.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// EmailExists reports whether any user already uses email.
	EmailExists(ctx context.Context, email string) (bool, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id string) error
}
