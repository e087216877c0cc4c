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

func (s *Storage) AddComment(ctx context.Context, c domain.AddComment) (domain.AddedComment, error) {
	row := comment{
		ID:       idgen.Prefixed(s.ids, "comment"),
		ThreadID: c.ThreadId(),
		Owner:    c.Owner(),
		Content:  c.Content(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return domain.NewAddedComment(domain.Payload{"id": row.ID, "content": row.Content, "owner": row.Owner})
}

func (s *Storage) VerifyCommentAvailability(ctx context.Context, commentId, threadId string) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&comment{}).
		Where("id = ? AND thread_id = ? AND is_deleted = ?", commentId, threadId, false).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if count == 0 {
		return &internal_errors.NotFoundError{Message: "komentar tidak ditemukan"}
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, commentId, owner string) error {
	var row comment
	err := s.db.WithContext(ctx).Select("owner").Where("id = ?", commentId).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &internal_errors.NotFoundError{Message: "komentar tidak ditemukan"}
		}
		return fmt.Errorf("failed to get comment owner: %w", err)
	}
	if row.Owner != owner {
		return &internal_errors.AuthorizationError{Message: "anda tidak berhak mengakses resource ini"}
	}
	return nil
}

func (s *Storage) DeleteComment(ctx context.Context, commentId string) error {
	result := s.db.WithContext(ctx).Model(&comment{}).Where("id = ?", commentId).Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &internal_errors.NotFoundError{Message: "komentar tidak ditemukan"}
	}
	return nil
}

func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId string) ([]domain.CommentRecord, error) {
	var rows []entryRow
	err := s.db.WithContext(ctx).
		Table("comments c").
		Select("c.id, u.username, c.created_at, c.content, c.is_deleted").
		Joins("JOIN users u ON u.id = c.owner").
		Where("c.thread_id = ?", threadId).
		Order("c.seq ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	comments := make([]domain.CommentRecord, 0, len(rows))
	for _, r := range rows {
		comments = append(comments, domain.CommentRecord{
			Id:       r.ID,
			Username: r.Username,
			Date:     formatDate(r.CreatedAt),
			Content:  domain.StoredContentOf(r.Content, r.IsDeleted),
		})
	}
	return comments, nil
}
