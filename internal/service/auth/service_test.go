package auth

import (
	"context"
	"testing"
	"time"

	"github.com/atlashr/attendance-backend-go/internal/domain/auth"
	"github.com/atlashr/attendance-backend-go/internal/domain/user"
	"github.com/atlashr/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	byEmail map[string]user.User
	byID    map[string]user.User
}

func (f *fakeUserRepository) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepository) List(ctx context.Context) ([]user.User, error)              { return nil, nil }
func (f *fakeUserRepository) Update(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepository) Delete(ctx context.Context, id string) error                { return nil }

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

type fakeRefreshTokenRepository struct {
	byHash map[string]auth.RefreshToken
}

func newFakeRefreshTokenRepository() *fakeRefreshTokenRepository {
	return &fakeRefreshTokenRepository{byHash: make(map[string]auth.RefreshToken)}
}

func (f *fakeRefreshTokenRepository) Store(ctx context.Context, token auth.RefreshToken) error {
	f.byHash[token.TokenHash] = token
	return nil
}

func (f *fakeRefreshTokenRepository) GetByHash(ctx context.Context, tokenHash string) (auth.RefreshToken, error) {
	t, ok := f.byHash[tokenHash]
	if !ok {
		return auth.RefreshToken{}, auth.ErrInvalidToken
	}
	return t, nil
}

func (f *fakeRefreshTokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	if t, ok := f.byHash[tokenHash]; ok {
		t.Revoked = true
		f.byHash[tokenHash] = t
	}
	return nil
}

func (f *fakeRefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID string) error {
	for hash, t := range f.byHash {
		if t.UserID == userID {
			t.Revoked = true
			f.byHash[hash] = t
		}
	}
	return nil
}

func testUser(t *testing.T, password string) user.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)
	roleID := int64(1)
	return user.User{
		ID:           "user-1",
		Email:        "member@example.com",
		PasswordHash: &hashed,
		RoleID:       &roleID,
	}
}

func newTestAuthService(t *testing.T, u user.User) (auth.AuthService, *fakeRefreshTokenRepository) {
	users := &fakeUserRepository{
		byEmail: map[string]user.User{u.Email: u},
		byID:    map[string]user.User{u.ID: u},
	}
	tokens := newFakeRefreshTokenRepository()
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	return NewAuthService(users, tokens, jwtService), tokens
}

func TestLogin(t *testing.T) {
	u := testUser(t, "password123")
	svc, tokens := newTestAuthService(t, u)
	ctx := context.Background()

	resp, err := svc.Login(ctx, auth.LoginRequest{
		Email:    u.Email,
		Password: "password123",
	}, auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "go-test"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// The refresh session is persisted hashed, with the request metadata.
	require.Len(t, tokens.byHash, 1)
	for hash, stored := range tokens.byHash {
		assert.NotEqual(t, resp.RefreshToken, hash)
		assert.Equal(t, u.ID, stored.UserID)
		require.NotNil(t, stored.IPAddress)
		assert.Equal(t, "127.0.0.1", *stored.IPAddress)
		assert.True(t, stored.ExpiresAt.After(time.Now()))
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	u := testUser(t, "password123")
	svc, _ := newTestAuthService(t, u)
	ctx := context.Background()

	_, err := svc.Login(ctx, auth.LoginRequest{Email: u.Email, Password: "wrong"}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	// Unknown email yields the same error as a wrong password.
	_, err = svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "password123"}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	u := testUser(t, "password123")
	svc, _ := newTestAuthService(t, u)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: u.Email, Password: "password123"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	resp, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	u := testUser(t, "password123")
	svc, _ := newTestAuthService(t, u)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: u.Email, Password: "password123"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	u := testUser(t, "password123")
	svc, _ := newTestAuthService(t, u)
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: u.Email, Password: "password123"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
