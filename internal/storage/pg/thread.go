package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/forumapi-dev/forumapi/internal/domain"
	internal_errors "github.com/forumapi-dev/forumapi/internal/errors"
	"github.com/forumapi-dev/forumapi/internal/idgen"
)

func (s *Storage) AddThread(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error) {
	id := idgen.Prefixed(s.ids, "thread")
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO threads (id, title, body, owner) VALUES ($1, $2, $3, $4)",
		id, thread.Title(), thread.Body(), thread.Owner(),
	)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return domain.NewAddedThread(domain.Payload{"id": id, "title": thread.Title(), "owner": thread.Owner()})
}

func (s *Storage) VerifyThreadAvailability(ctx context.Context, threadId string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM threads WHERE id = $1)", threadId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
	}
	return nil
}

func (s *Storage) GetThreadById(ctx context.Context, threadId string) (domain.ThreadRecord, error) {
	var (
		thread    domain.ThreadRecord
		createdAt time.Time
	)
	err := s.db.QueryRowContext(ctx, `
        SELECT t.id, t.title, t.body, t.created_at, u.username
        FROM threads t
        JOIN users u ON u.id = t.owner
        WHERE t.id = $1
    `, threadId).Scan(&thread.Id, &thread.Title, &thread.Body, &createdAt, &thread.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRecord{}, &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		}
		return domain.ThreadRecord{}, fmt.Errorf("failed to get thread: %w", err)
	}
	thread.Date = formatDate(createdAt)
	return thread, nil
}
