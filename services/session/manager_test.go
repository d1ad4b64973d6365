package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"camerastore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu     sync.Mutex
	data   map[string]models.Session
	ttls   map[string]time.Duration
	getErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string]models.Session{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStore) Save(ctx context.Context, key string, s models.Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = s
	m.ttls[key] = ttl
	return nil
}

func (m *memoryStore) Get(ctx context.Context, key string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	s, ok := m.data[key]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

func (m *memoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

var admin = models.User{ID: "u1", Email: "admin@example.com", Role: models.RoleAdmin}

func TestIssueAndResolve(t *testing.T) {
	store := newMemoryStore()
	m := NewManager(store, "test-secret", time.Hour)

	token, issued, err := m.Issue(context.Background(), admin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "u1", issued.UserID)
	assert.Equal(t, time.Hour, issued.ExpiresAt.Sub(issued.CreatedAt))

	for key, ttl := range store.ttls {
		assert.NotEqual(t, token, key, "raw token must not be used as key")
		assert.Equal(t, time.Hour, ttl)
	}

	s, err := m.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, s.Email)
	assert.Equal(t, models.RoleAdmin, s.Role)
}

func TestResolveRejectsForeignSignature(t *testing.T) {
	store := newMemoryStore()
	other := NewManager(store, "other-secret", time.Hour)
	token, _, err := other.Issue(context.Background(), admin)
	require.NoError(t, err)

	m := NewManager(store, "test-secret", time.Hour)
	_, err = m.Resolve(context.Background(), token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestResolveAfterRevoke(t *testing.T) {
	m := NewManager(newMemoryStore(), "test-secret", time.Hour)
	token, _, err := m.Issue(context.Background(), admin)
	require.NoError(t, err)

	require.NoError(t, m.Revoke(context.Background(), token))
	_, err = m.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// revoking twice is fine
	assert.NoError(t, m.Revoke(context.Background(), token))
}

func TestResolveEmptyToken(t *testing.T) {
	m := NewManager(newMemoryStore(), "test-secret", time.Hour)
	_, err := m.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = m.Resolve(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveStoreFailureIsNotAuthError(t *testing.T) {
	store := newMemoryStore()
	m := NewManager(store, "test-secret", time.Hour)

	token, _, err := m.Issue(context.Background(), admin)
	require.NoError(t, err)

	store.getErr = errors.New("failed to load session: connection refused")
	_, err = m.Resolve(context.Background(), token)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidToken))
	assert.False(t, errors.Is(err, ErrSessionNotFound))
}
