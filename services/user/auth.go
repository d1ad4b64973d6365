package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"camerastore/database"
	"camerastore/models"
	"camerastore/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login verifies the password and opens a server-side session.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	userRec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		utils.GetLogger().Error("Login: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, sess, err := s.Sessions.Issue(ctx, *userRec)
	if err != nil {
		utils.GetLogger().Error("Login: failed to issue session", zap.String("userId", userRec.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	userRec.PasswordHash = ""
	return &models.LoginResponse{Token: token, ExpiresAt: sess.ExpiresAt, User: *userRec}, nil
}

// Logout drops the session behind token.
func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Revoke(ctx, token)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
