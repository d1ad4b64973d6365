package user

import (
	"context"

	userRepo "camerastore/database/repository/user"
	"camerastore/models"
	"camerastore/services/session"

	"github.com/go-playground/validator/v10"
)

type UserService interface {
	// Authentication
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Logout(ctx context.Context, token string) error

	// User Management
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, input models.UserInput) (*models.User, error)
	CreateAdmin(ctx context.Context, input models.UserInput) (*models.User, error)
	DeleteUser(ctx context.Context, current *models.Session, id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions session.SessionManager
	validate *validator.Validate
	hashCost int
}
