package service

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"bookstore-api/dto"
	"bookstore-api/model"
	"bookstore-api/repository"
	"bookstore-api/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test Setup
// ============================================================================

type fakeUserRepo struct {
	byUsername map[string]*model.User
	createErr  error
	created    []*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.byUsername[user.Username] = user
	r.created = append(r.created, user)
	return nil
}

func (r *fakeUserRepo) GetByID(id uuid.UUID) (*model.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByUsername(username string) (*model.User, error) {
	if u, ok := r.byUsername[username]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Update(user *model.User) error { return nil }
func (r *fakeUserRepo) Delete(id uuid.UUID) error     { return nil }

type fakeRoleRepo struct {
	roles map[string]*model.Role
}

func newFakeRoleRepo(names ...string) *fakeRoleRepo {
	r := &fakeRoleRepo{roles: make(map[string]*model.Role)}
	for _, n := range names {
		r.roles[n] = &model.Role{ID: uuid.New(), Name: n}
	}
	return r
}

func (r *fakeRoleRepo) GetByName(name string) (*model.Role, error) {
	if role, ok := r.roles[name]; ok {
		return role, nil
	}
	return nil, repository.ErrNotFound
}

func newTestService(t *testing.T, users *fakeUserRepo, roles *fakeRoleRepo, logOut io.Writer) (*AuthService, *util.TokenIssuer) {
	t.Helper()
	tokens, err := util.NewTokenIssuer("test-secret-long-enough", "bookstore-api", 5*time.Minute)
	require.NoError(t, err)
	if logOut == nil {
		logOut = io.Discard
	}
	return NewAuthService(users, roles, tokens, nil, util.NewLoggerTo(logOut)), tokens
}

func seedUser(t *testing.T, users *fakeUserRepo, username, password string, roleNames ...string) *model.User {
	t.Helper()
	hashed, err := util.HashPassword(password)
	require.NoError(t, err)
	u := &model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@bookstore.local",
		PasswordHash: hashed,
	}
	for _, n := range roleNames {
		u.Roles = append(u.Roles, model.Role{ID: uuid.New(), Name: n})
	}
	users.byUsername[username] = u
	return u
}

// ============================================================================
// Credential Verification
// ============================================================================

func TestVerifyCredentials(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newTestService(t, users, newFakeRoleRepo("Customer"), nil)
	seedUser(t, users, "alice", "correct", "Administrator")

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "correct credentials", username: "alice", password: "correct"},
		{name: "wrong password", username: "alice", password: "wrong", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "mallory", password: "anything", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.VerifyCredentials(tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, user.Username)
		})
	}
}

func TestVerifyCredentialsUniformRejection(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newTestService(t, users, newFakeRoleRepo("Customer"), nil)
	seedUser(t, users, "alice", "correct")

	_, errWrongPassword := svc.VerifyCredentials("alice", "wrong")
	_, errUnknownUser := svc.VerifyCredentials("mallory", "wrong")

	// No information leak: both failures yield the identical outcome.
	assert.Equal(t, errWrongPassword, errUnknownUser)
}

func TestVerifyCredentialsLogsAttemptNotPassword(t *testing.T) {
	users := newFakeUserRepo()
	var buf bytes.Buffer
	svc, _ := newTestService(t, users, newFakeRoleRepo("Customer"), &buf)
	seedUser(t, users, "alice", "hunter2-secret")

	_, _ = svc.VerifyCredentials("alice", "hunter2-secret")
	_, _ = svc.VerifyCredentials("alice", "wrong-guess")

	logged := buf.String()
	assert.Contains(t, logged, "alice")
	assert.NotContains(t, logged, "hunter2-secret")
	assert.NotContains(t, logged, "wrong-guess")
}

// ============================================================================
// Login
// ============================================================================

func TestLoginIssuesTokenWithRoles(t *testing.T) {
	users := newFakeUserRepo()
	svc, tokens := newTestService(t, users, newFakeRoleRepo("Customer"), nil)
	user := seedUser(t, users, "alice", "correct", "Administrator", "Customer")

	res, err := svc.Login(&dto.LoginRequest{Username: "alice", Password: "correct"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	claims, err := tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Subject)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.ElementsMatch(t, []string{"Administrator", "Customer"}, claims.Roles)
}

func TestLoginRejected(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newTestService(t, users, newFakeRoleRepo("Customer"), nil)
	seedUser(t, users, "alice", "correct")

	res, err := svc.Login(&dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, res)
}

// ============================================================================
// Registration
// ============================================================================

func TestRegisterAssignsDefaultRole(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newTestService(t, users, newFakeRoleRepo("Administrator", "Customer"), nil)

	res, err := svc.Register(&dto.RegisterRequest{
		Username: "bob",
		Email:    "bob@bookstore.local",
		Password: "longenoughpw",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", res.Username)

	created := users.byUsername["bob"]
	require.NotNil(t, created)
	assert.Equal(t, []string{"Customer"}, created.RoleNames())
	assert.NoError(t, util.ComparePassword(created.PasswordHash, "longenoughpw"))
	assert.NotEqual(t, "longenoughpw", created.PasswordHash)
}

func TestRegisterDuplicate(t *testing.T) {
	users := newFakeUserRepo()
	users.createErr = errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`)
	svc, _ := newTestService(t, users, newFakeRoleRepo("Customer"), nil)

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "bob",
		Email:    "bob@bookstore.local",
		Password: "longenoughpw",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterMissingDefaultRole(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newTestService(t, users, newFakeRoleRepo(), nil)

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "bob",
		Email:    "bob@bookstore.local",
		Password: "longenoughpw",
	})
	assert.Error(t, err)
	assert.Empty(t, users.created)
}
