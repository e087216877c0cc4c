package service

import (
	"context"
	"errors"
	"testing"

	"github.com/forumapi-dev/forumapi/internal/domain"
	internal_errors "github.com/forumapi-dev/forumapi/internal/errors"
	"github.com/forumapi-dev/forumapi/internal/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()
	payload := domain.Payload{"username": "dicoding", "password": "secret"}

	t.Run("success persists refresh token", func(t *testing.T) {
		users := &MockUserRepository{getPasswordByUsernameFunc: func(string) (string, error) { return hashed(t, "secret"), nil }}
		tokens := &MockAuthenticationRepository{}
		access := &MockJwt{newTokenFunc: func(c jwt.Claims) (string, error) { return "access-" + c.UserId, nil }}
		refresh := &MockJwt{newTokenFunc: func(c jwt.Claims) (string, error) { return "refresh-" + c.UserId, nil }}
		svc := NewAuth(users, tokens, access, refresh)

		auth, err := svc.Login(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, "access-user-123", auth.AccessToken())
		assert.Equal(t, "refresh-user-123", auth.RefreshToken())
		assert.Equal(t, []string{"refresh-user-123"}, tokens.addedTokens)
	})

	t.Run("unknown username", func(t *testing.T) {
		users := &MockUserRepository{getPasswordByUsernameFunc: func(string) (string, error) {
			return "", &internal_errors.NotFoundError{Message: "user not found"}
		}}
		svc := NewAuth(users, &MockAuthenticationRepository{}, &MockJwt{}, &MockJwt{})
		_, err := svc.Login(ctx, payload)
		assert.True(t, internal_errors.Is[*internal_errors.InvariantError](err))
	})

	t.Run("wrong password", func(t *testing.T) {
		users := &MockUserRepository{getPasswordByUsernameFunc: func(string) (string, error) { return hashed(t, "other"), nil }}
		tokens := &MockAuthenticationRepository{}
		svc := NewAuth(users, tokens, &MockJwt{}, &MockJwt{})
		_, err := svc.Login(ctx, payload)
		assert.True(t, internal_errors.Is[*internal_errors.AuthenticationError](err))
		assert.Empty(t, tokens.addedTokens)
	})

	t.Run("password of wrong type", func(t *testing.T) {
		svc := NewAuth(&MockUserRepository{}, &MockAuthenticationRepository{}, &MockJwt{}, &MockJwt{})
		_, err := svc.Login(ctx, domain.Payload{"username": "dicoding", "password": 42.0})
		assert.True(t, internal_errors.Is[*internal_errors.TypeMismatchError](err))
	})
}

func TestAuthRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := NewAuth(&MockUserRepository{}, &MockAuthenticationRepository{}, &MockJwt{}, &MockJwt{})
		token, err := svc.Refresh(ctx, "refresh-token")
		require.NoError(t, err)
		assert.Equal(t, "token-user-123", token)
	})

	t.Run("bad signature", func(t *testing.T) {
		refresh := &MockJwt{decodeTokenFunc: func(string) (jwt.Claims, error) {
			return jwt.Claims{}, &internal_errors.AuthenticationError{Message: "Invalid token"}
		}}
		svc := NewAuth(&MockUserRepository{}, &MockAuthenticationRepository{}, &MockJwt{}, refresh)
		_, err := svc.Refresh(ctx, "garbage")
		var inv *internal_errors.InvariantError
		require.ErrorAs(t, err, &inv)
		assert.Equal(t, "refresh token tidak valid", inv.Message)
	})

	t.Run("revoked", func(t *testing.T) {
		tokens := &MockAuthenticationRepository{checkAvailabilityTokenFunc: func(string) error {
			return &internal_errors.InvariantError{Message: "refresh token tidak ditemukan di database"}
		}}
		svc := NewAuth(&MockUserRepository{}, tokens, &MockJwt{}, &MockJwt{})
		_, err := svc.Refresh(ctx, "refresh-token")
		assert.True(t, internal_errors.Is[*internal_errors.InvariantError](err))
	})
}

func TestAuthLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes token", func(t *testing.T) {
		tokens := &MockAuthenticationRepository{}
		svc := NewAuth(&MockUserRepository{}, tokens, &MockJwt{}, &MockJwt{})
		require.NoError(t, svc.Logout(ctx, "refresh-token"))
		assert.Equal(t, []string{"refresh-token"}, tokens.deletedTokens)
	})

	t.Run("unknown token", func(t *testing.T) {
		tokens := &MockAuthenticationRepository{checkAvailabilityTokenFunc: func(string) error {
			return errors.New("lookup failed")
		}}
		svc := NewAuth(&MockUserRepository{}, tokens, &MockJwt{}, &MockJwt{})
		require.Error(t, svc.Logout(ctx, "refresh-token"))
		assert.Empty(t, tokens.deletedTokens)
	})
}
