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

func (s *Storage) AddThread(ctx context.Context, t domain.AddThread) (domain.AddedThread, error) {
	row := thread{
		ID:    idgen.Prefixed(s.ids, "thread"),
		Title: t.Title(),
		Body:  t.Body(),
		Owner: t.Owner(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return domain.NewAddedThread(domain.Payload{"id": row.ID, "title": row.Title, "owner": row.Owner})
}

func (s *Storage) VerifyThreadAvailability(ctx context.Context, threadId string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&thread{}).Where("id = ?", threadId).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if count == 0 {
		return &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
	}
	return nil
}

func (s *Storage) GetThreadById(ctx context.Context, threadId string) (domain.ThreadRecord, error) {
	var row threadRow
	err := s.db.WithContext(ctx).
		Table("threads t").
		Select("t.id, t.title, t.body, t.created_at, u.username").
		Joins("JOIN users u ON u.id = t.owner").
		Where("t.id = ?", threadId).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ThreadRecord{}, &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		}
		return domain.ThreadRecord{}, fmt.Errorf("failed to get thread: %w", err)
	}
	return domain.ThreadRecord{
		Id:       row.ID,
		Title:    row.Title,
		Body:     row.Body,
		Date:     formatDate(row.CreatedAt),
		Username: row.Username,
	}, nil
}
