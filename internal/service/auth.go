package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/forumapi-dev/forumapi/internal/domain"
	"github.com/forumapi-dev/forumapi/internal/errors"
	"github.com/forumapi-dev/forumapi/internal/jwt"
	"github.com/forumapi-dev/forumapi/internal/logger"
)

type AuthService interface {
	Login(ctx context.Context, payload domain.Payload) (domain.NewAuth, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type Auth struct {
	users   UserRepository
	tokens  AuthenticationRepository
	access  jwt.JwtService
	refresh jwt.JwtService
}

func NewAuth(users UserRepository, tokens AuthenticationRepository, access, refresh jwt.JwtService) *Auth {
	return &Auth{users: users, tokens: tokens, access: access, refresh: refresh}
}

// Login checks the credentials and returns a fresh access/refresh pair. The
// refresh token is persisted so it can later be revoked.
func (a *Auth) Login(ctx context.Context, payload domain.Payload) (domain.NewAuth, error) {
	login, err := domain.NewUserLogin(payload)
	if err != nil {
		return domain.NewAuth{}, err
	}

	passHash, err := a.users.GetPasswordByUsername(ctx, login.Username())
	if err != nil {
		if errors.Is[*errors.NotFoundError](err) {
			return domain.NewAuth{}, &errors.InvariantError{Message: "username tidak ditemukan"}
		}
		return domain.NewAuth{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(passHash), []byte(login.Password())); err != nil {
		return domain.NewAuth{}, &errors.AuthenticationError{Message: "kredensial yang Anda masukkan salah"}
	}

	id, err := a.users.GetIdByUsername(ctx, login.Username())
	if err != nil {
		return domain.NewAuth{}, err
	}

	claims := jwt.Claims{UserId: id, Username: login.Username()}
	accessToken, err := a.access.NewToken(claims)
	if err != nil {
		logger.Log.Error("failed to create access token", "user_id", id, "error", err)
		return domain.NewAuth{}, err
	}
	refreshToken, err := a.refresh.NewToken(claims)
	if err != nil {
		logger.Log.Error("failed to create refresh token", "user_id", id, "error", err)
		return domain.NewAuth{}, err
	}
	if err := a.tokens.AddToken(ctx, refreshToken); err != nil {
		return domain.NewAuth{}, err
	}

	return domain.NewNewAuth(domain.Payload{"accessToken": accessToken, "refreshToken": refreshToken})
}

// Refresh issues a new access token for a valid, not revoked refresh token.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := a.refresh.DecodeToken(refreshToken)
	if err != nil {
		return "", &errors.InvariantError{Message: "refresh token tidak valid"}
	}
	if err := a.tokens.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return "", err
	}
	return a.access.NewToken(claims)
}

func (a *Auth) Logout(ctx context.Context, refreshToken string) error {
	if err := a.tokens.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return err
	}
	return a.tokens.DeleteToken(ctx, refreshToken)
}
