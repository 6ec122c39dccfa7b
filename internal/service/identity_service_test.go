package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/task-tracker/internal/config"
	"github.com/spec-kit/task-tracker/internal/domain"
)

// fakeUserRepo is an in-memory UserRepository enforcing username uniqueness
// the way the database constraint does.
type fakeUserRepo struct {
	seq   int
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return domain.ErrDuplicateUsername
		}
	}
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for id, existing := range f.users {
		if id != user.ID && existing.Username == user.Username {
			return domain.ErrDuplicateUsername
		}
	}
	user.UpdatedAt = time.Now()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// fakeRevoker records revoked token ids.
type fakeRevoker struct {
	revoked map[string]bool
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revoked: make(map[string]bool)}
}

func (f *fakeRevoker) Revoke(_ context.Context, jti string, _ time.Duration) error {
	f.revoked[jti] = true
	return nil
}

func (f *fakeRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	return f.revoked[jti], nil
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 5,
			BcryptCost:            bcrypt.MinCost,
		},
	}
}

func newIdentityService(repo *fakeUserRepo, revoker *fakeRevoker) *IdentityService {
	deps := IdentityDependencies{UserRepo: repo}
	if revoker != nil {
		deps.Revoker = revoker
	}
	return NewIdentityService(testConfig(), deps)
}

func TestRegisterStoresDigestNotPlaintext(t *testing.T) {
	svc := newIdentityService(newFakeUserRepo(), nil)

	user, err := svc.Register(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	found, err := svc.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", found.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte("s3cret")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newIdentityService(newFakeUserRepo(), nil)

	_, err := svc.Register(context.Background(), "alice", "one")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "alice", "two")
	require.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestLogin(t *testing.T) {
	svc := newIdentityService(newFakeUserRepo(), nil)
	_, err := svc.Register(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	user, token, exp, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, "alice", claims.Username)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newIdentityService(newFakeUserRepo(), nil)
	_, err := svc.Register(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, _, err = svc.Login(context.Background(), "nobody", "s3cret")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	revoker := newFakeRevoker()
	svc := newIdentityService(newFakeUserRepo(), revoker)
	_, err := svc.Register(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	_, token, _, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims))
	assert.True(t, revoker.revoked[claims.ID])
}

func TestUpdatePasswordReplacesDigest(t *testing.T) {
	svc := newIdentityService(newFakeUserRepo(), nil)
	user, err := svc.Register(context.Background(), "alice", "old-pass")
	require.NoError(t, err)
	oldHash := user.PasswordHash

	require.NoError(t, svc.UpdatePassword(context.Background(), "alice", "new-pass"))

	found, err := svc.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, found.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte("new-pass")))
}

func TestUpdatePasswordUnknownUser(t *testing.T) {
	svc := newIdentityService(newFakeUserRepo(), nil)

	err := svc.UpdatePassword(context.Background(), "ghost", "whatever")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateUsernameTakenLeavesBothUnchanged(t *testing.T) {
	svc := newIdentityService(newFakeUserRepo(), nil)
	_, err := svc.Register(context.Background(), "alice", "a")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "bob", "b")
	require.NoError(t, err)

	err = svc.UpdateUsername(context.Background(), "alice", "bob", nil)
	require.ErrorIs(t, err, domain.ErrDuplicateUsername)

	_, err = svc.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	_, err = svc.FindByUsername(context.Background(), "bob")
	require.NoError(t, err)
}

func TestUpdateUsernameMovesLookup(t *testing.T) {
	svc := newIdentityService(newFakeUserRepo(), nil)
	registered, err := svc.Register(context.Background(), "alice", "a")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateUsername(context.Background(), "alice", "alicia", nil))

	_, err = svc.FindByUsername(context.Background(), "alice")
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	renamed, err := svc.FindByUsername(context.Background(), "alicia")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, renamed.ID)
}

func TestUpdateUsernameUnknownUser(t *testing.T) {
	svc := newIdentityService(newFakeUserRepo(), nil)

	err := svc.UpdateUsername(context.Background(), "ghost", "anything", nil)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateUsernameRevokesPresentedToken(t *testing.T) {
	revoker := newFakeRevoker()
	svc := newIdentityService(newFakeUserRepo(), revoker)
	_, err := svc.Register(context.Background(), "alice", "a")
	require.NoError(t, err)

	_, token, _, err := svc.Login(context.Background(), "alice", "a")
	require.NoError(t, err)
	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateUsername(context.Background(), "alice", "alicia", claims))
	assert.True(t, revoker.revoked[claims.ID])
}
