package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"camerastore/database"
	"camerastore/models"
	"camerastore/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	users   map[string]models.User
	deletes []string
	getErr  error
}

func newMockUserRepo(users ...models.User) *mockUserRepo {
	m := &mockUserRepo{users: map[string]models.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range m.users {
		u.PasswordHash = ""
		out = append(out, u)
	}
	return out, nil
}
func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	u, ok := m.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &u, nil
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, database.ErrNotFound
}
func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}
func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	u.ID = "u-new"
	m.users[u.ID] = *u
	return nil
}
func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	m.deletes = append(m.deletes, id)
	if _, ok := m.users[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

type mockSessions struct {
	issueFn func(ctx context.Context, u models.User) (string, *models.Session, error)
	revoked []string
}

func (m *mockSessions) Issue(ctx context.Context, u models.User) (string, *models.Session, error) {
	if m.issueFn != nil {
		return m.issueFn(ctx, u)
	}
	return "tok-" + u.ID, &models.Session{UserID: u.ID, ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}, nil
}
func (m *mockSessions) Resolve(ctx context.Context, token string) (*models.Session, error) {
	return nil, errors.New("not used")
}
func (m *mockSessions) Revoke(ctx context.Context, token string) error {
	m.revoked = append(m.revoked, token)
	return nil
}

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newTestService(repo *mockUserRepo, sessions *mockSessions) *DefaultUserService {
	s := NewUserService(repo, sessions)
	s.hashCost = bcrypt.MinCost
	return s
}

var adminSession = &models.Session{UserID: "admin-1", Email: "boss@shop.co.il", Role: models.RoleAdmin}

func TestLogin(t *testing.T) {
	repo := newMockUserRepo(models.User{ID: "admin-1", Email: "boss@shop.co.il", PasswordHash: hashed(t, "s3cret"), Role: models.RoleAdmin})
	svc := newTestService(repo, &mockSessions{})

	resp, err := svc.Login(context.Background(), " Boss@Shop.co.il ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok-admin-1", resp.Token)
	assert.Empty(t, resp.User.PasswordHash)

	_, err = svc.Login(context.Background(), "boss@shop.co.il", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), "nobody@shop.co.il", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	sessions := &mockSessions{}
	svc := newTestService(newMockUserRepo(), sessions)

	require.NoError(t, svc.Logout(context.Background(), "tok-1"))
	assert.Equal(t, []string{"tok-1"}, sessions.revoked)
}

func TestCreateUser(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestService(repo, &mockSessions{})

	u, err := svc.CreateUser(context.Background(), models.UserInput{
		Email: "Staff@Shop.co.il", Password: "pw123456", FullName: "Staff Member", PhoneNumber: "050-0000000",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.Equal(t, "staff@shop.co.il", u.Email)
	assert.Empty(t, u.PasswordHash)

	stored := repo.users["u-new"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw123456")))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newMockUserRepo(models.User{ID: "u1", Email: "staff@shop.co.il"})
	svc := newTestService(repo, &mockSessions{})

	_, err := svc.CreateUser(context.Background(), models.UserInput{
		Email: "staff@shop.co.il", Password: "x", FullName: "Dup", PhoneNumber: "1",
	})
	assert.ErrorIs(t, err, ErrUserExists)
	assert.Len(t, repo.users, 1)
}

func TestCreateUserValidation(t *testing.T) {
	svc := newTestService(newMockUserRepo(), &mockSessions{})

	_, err := svc.CreateUser(context.Background(), models.UserInput{Email: "a@b.co"})
	ve, ok := utils.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"password", "fullName", "phoneNumber"}, ve.Fields)

	_, err = svc.CreateUser(context.Background(), models.UserInput{Email: "nope", Password: "x", FullName: "y", PhoneNumber: "z"})
	ve, ok = utils.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"email"}, ve.Fields)
}

func TestCreateAdminRole(t *testing.T) {
	svc := newTestService(newMockUserRepo(), &mockSessions{})

	u, err := svc.CreateAdmin(context.Background(), models.UserInput{
		Email: "root@shop.co.il", Password: "pw", FullName: "Root", PhoneNumber: "1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)
}

func TestCreateAdminRequiresContactFields(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestService(repo, &mockSessions{})

	_, err := svc.CreateAdmin(context.Background(), models.UserInput{
		Email: "root@shop.co.il", Password: "pw",
	})
	ve, ok := utils.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"fullName", "phoneNumber"}, ve.Fields)
	assert.Empty(t, repo.users)
}

func TestDeleteUserGuards(t *testing.T) {
	repo := newMockUserRepo(
		models.User{ID: "admin-1", Email: "boss@shop.co.il", Role: models.RoleAdmin},
		models.User{ID: "admin-2", Email: "other@shop.co.il", Role: models.RoleAdmin},
		models.User{ID: "u1", Email: "staff@shop.co.il", Role: models.RoleUser},
	)
	svc := newTestService(repo, &mockSessions{})

	var forbidden DeleteForbiddenError
	err := svc.DeleteUser(context.Background(), adminSession, "admin-1")
	assert.ErrorAs(t, err, &forbidden, "own account")

	err = svc.DeleteUser(context.Background(), adminSession, "admin-2")
	assert.ErrorAs(t, err, &forbidden, "admin role")

	assert.Empty(t, repo.deletes, "refusals must not reach the store delete")

	require.NoError(t, svc.DeleteUser(context.Background(), adminSession, "u1"))
	assert.Equal(t, []string{"u1"}, repo.deletes)

	err = svc.DeleteUser(context.Background(), adminSession, "u1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUserOwnAccountByEmail(t *testing.T) {
	repo := newMockUserRepo(models.User{ID: "u1", Email: "me@shop.co.il", Role: models.RoleUser})
	svc := newTestService(repo, &mockSessions{})

	err := svc.DeleteUser(context.Background(), &models.Session{UserID: "legacy", Email: "ME@shop.co.il"}, "u1")
	assert.ErrorAs(t, err, &DeleteForbiddenError{})
	assert.Empty(t, repo.deletes)
}

func TestGetUserStoreFailure(t *testing.T) {
	repo := newMockUserRepo()
	repo.getErr = errors.New("boom")
	svc := newTestService(repo, &mockSessions{})

	_, err := svc.GetUser(context.Background(), "x")
	assert.ErrorIs(t, err, ErrStoreFailure)
}
