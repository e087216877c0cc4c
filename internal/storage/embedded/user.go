package embedded

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/forumapi-dev/forumapi/internal/domain"
	internal_errors "github.com/forumapi-dev/forumapi/internal/errors"
	"github.com/forumapi-dev/forumapi/internal/idgen"
)

func (s *Storage) VerifyAvailableUsername(ctx context.Context, username string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&user{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return &internal_errors.InvariantError{Message: "username tidak tersedia"}
	}
	return nil
}

func (s *Storage) AddUser(ctx context.Context, u domain.RegisterUser) (domain.RegisteredUser, error) {
	row := user{
		ID:       idgen.Prefixed(s.ids, "user"),
		Username: u.Username(),
		Password: u.Password(),
		Fullname: u.Fullname(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.RegisteredUser{}, &internal_errors.InvariantError{Message: "username tidak tersedia"}
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return domain.NewRegisteredUser(domain.Payload{"id": row.ID, "username": row.Username, "fullname": row.Fullname})
}

func (s *Storage) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	row, err := s.userByName(ctx, username)
	return row.Password, err
}

func (s *Storage) GetIdByUsername(ctx context.Context, username string) (string, error) {
	row, err := s.userByName(ctx, username)
	return row.ID, err
}

func (s *Storage) userByName(ctx context.Context, username string) (user, error) {
	var row user
	err := s.db.WithContext(ctx).Where("username = ?", username).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user{}, &internal_errors.NotFoundError{Message: "username tidak ditemukan"}
		}
		return user{}, fmt.Errorf("failed to get user: %w", err)
	}
	return row, nil
}

func (s *Storage) AddToken(ctx context.Context, token string) error {
	if err := s.db.WithContext(ctx).Create(&authentication{Token: token}).Error; err != nil {
		return fmt.Errorf("failed to insert token: %w", err)
	}
	return nil
}

func (s *Storage) CheckAvailabilityToken(ctx context.Context, token string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&authentication{}).Where("token = ?", token).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check token: %w", err)
	}
	if count == 0 {
		return &internal_errors.InvariantError{Message: "refresh token tidak ditemukan di database"}
	}
	return nil
}

func (s *Storage) DeleteToken(ctx context.Context, token string) error {
	if err := s.db.WithContext(ctx).Where("token = ?", token).Delete(&authentication{}).Error; err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
