package session

import (
	"context"
	"errors"
	"time"

	"camerastore/models"
)

var (
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrInvalidToken    = errors.New("invalid session token")
)

// Store keeps session records keyed by token hash.
type Store interface {
	Save(ctx context.Context, key string, s models.Session, ttl time.Duration) error
	Get(ctx context.Context, key string) (*models.Session, error)
	Delete(ctx context.Context, key string) error
}

// SessionManager issues, resolves and revokes bearer sessions.
type SessionManager interface {
	Issue(ctx context.Context, user models.User) (string, *models.Session, error)
	Resolve(ctx context.Context, token string) (*models.Session, error)
	Revoke(ctx context.Context, token string) error
}
