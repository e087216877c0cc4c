package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/forumapi-dev/forumapi/internal/domain"
	internal_errors "github.com/forumapi-dev/forumapi/internal/errors"
	"github.com/forumapi-dev/forumapi/internal/idgen"
)

func (s *Storage) VerifyAvailableUsername(ctx context.Context, username string) error {
	var taken bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)", username,
	).Scan(&taken)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return &internal_errors.InvariantError{Message: "username tidak tersedia"}
	}
	return nil
}

func (s *Storage) AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
	id := idgen.Prefixed(s.ids, "user")
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, username, password, fullname) VALUES ($1, $2, $3, $4)",
		id, user.Username(), user.Password(), user.Fullname(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.RegisteredUser{}, &internal_errors.InvariantError{Message: "username tidak tersedia"}
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return domain.NewRegisteredUser(domain.Payload{"id": id, "username": user.Username(), "fullname": user.Fullname()})
}

func (s *Storage) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	return s.userColumn(ctx, "password", username)
}

func (s *Storage) GetIdByUsername(ctx context.Context, username string) (string, error) {
	return s.userColumn(ctx, "id", username)
}

// column is always a literal from this file
func (s *Storage) userColumn(ctx context.Context, column, username string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM users WHERE username = $1", column), username,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &internal_errors.NotFoundError{Message: "username tidak ditemukan"}
		}
		return "", fmt.Errorf("failed to get user %s: %w", column, err)
	}
	return value, nil
}
