package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"camerastore/database"
	userRepo "camerastore/database/repository/user"
	"camerastore/models"
	"camerastore/services/session"
	"camerastore/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func NewUserService(repo userRepo.UserRepository, sessions session.SessionManager) *DefaultUserService {
	return &DefaultUserService{
		Repo:     repo,
		Sessions: sessions,
		validate: validator.New(),
		hashCost: bcrypt.DefaultCost,
	}
}

func (s *DefaultUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return u, nil
}

func (s *DefaultUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		utils.GetLogger().Error("ListUsers: failed to fetch users", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return users, nil
}

// CreateUser adds an account with role user.
func (s *DefaultUserService) CreateUser(ctx context.Context, input models.UserInput) (*models.User, error) {
	return s.create(ctx, input, models.RoleUser)
}

// CreateAdmin adds an account with role admin. Only the seeding tool calls it.
func (s *DefaultUserService) CreateAdmin(ctx context.Context, input models.UserInput) (*models.User, error) {
	return s.create(ctx, input, models.RoleAdmin)
}

func (s *DefaultUserService) create(ctx context.Context, input models.UserInput, role string) (*models.User, error) {
	input.Email = normalizeEmail(input.Email)
	input.FullName = strings.TrimSpace(input.FullName)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	exists, err := s.Repo.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		PhoneNumber:  input.PhoneNumber,
		Role:         role,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrUserExists
		}
		utils.GetLogger().Error("CreateUser: failed to insert user", zap.String("email", u.Email), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *DefaultUserService) validateInput(in models.UserInput) error {
	var missing []string
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if in.FullName == "" {
		missing = append(missing, "fullName")
	}
	if in.PhoneNumber == "" {
		missing = append(missing, "phoneNumber")
	}
	if len(missing) > 0 {
		return utils.NewValidationError("required fields are missing", missing...)
	}
	if s.validate.Var(in.Email, "email") != nil {
		return utils.NewValidationError("invalid email", "email")
	}
	return nil
}

// DeleteUser removes an account unless it is the caller's own or an admin.
// Refusals never reach the store's delete.
func (s *DefaultUserService) DeleteUser(ctx context.Context, current *models.Session, id string) error {
	if current != nil && current.UserID == id {
		return DeleteForbiddenError{Reason: "cannot delete the signed-in account"}
	}

	target, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if target.Role == models.RoleAdmin {
		return DeleteForbiddenError{Reason: "admin accounts cannot be deleted"}
	}
	if current != nil && strings.EqualFold(target.Email, current.Email) {
		return DeleteForbiddenError{Reason: "cannot delete the signed-in account"}
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrUserNotFound
		}
		utils.GetLogger().Error("DeleteUser: failed to delete user", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return nil
}
