package session

import (
	"context"
	"fmt"
	"time"

	"camerastore/models"
	"camerastore/utils"
)

// Manager signs bearer JWTs and keeps the matching record in a Store.
// A token is only honored while its record exists.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue creates a session for user and returns its bearer token.
func (m *Manager) Issue(ctx context.Context, user models.User) (string, *models.Session, error) {
	token, err := utils.GenerateToken(m.secret, user.ID, user.Email, user.Role, m.ttl)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	now := m.now().UTC()
	s := models.Session{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, utils.HashToken(token), s, m.ttl); err != nil {
		return "", nil, err
	}
	return token, &s, nil
}

// Resolve returns the live session for token.
func (m *Manager) Resolve(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	claims, err := utils.ExtractClaims(m.secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	s, err := m.store.Get(ctx, utils.HashToken(token))
	if err != nil {
		return nil, err
	}
	if s.UserID != claims.Subject {
		return nil, ErrInvalidToken
	}
	return s, nil
}

// Revoke deletes the record behind token. Unknown tokens are not an error.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, utils.HashToken(token))
}
