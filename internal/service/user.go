package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/forumapi-dev/forumapi/internal/domain"
	"github.com/forumapi-dev/forumapi/internal/logger"
)

type UserService interface {
	Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error)
}

type User struct {
	users      UserRepository
	bcryptCost int
}

func NewUser(users UserRepository) *User {
	return &User{users: users, bcryptCost: bcrypt.DefaultCost}
}

func (u *User) Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error) {
	cmd, err := domain.NewRegisterUser(payload)
	if err != nil {
		return domain.RegisteredUser{}, err
	}
	if err := u.users.VerifyAvailableUsername(ctx, cmd.Username()); err != nil {
		return domain.RegisteredUser{}, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), u.bcryptCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.RegisteredUser{}, err
	}
	return u.users.AddUser(ctx, cmd.WithPassword(string(passHash)))
}
