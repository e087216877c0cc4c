package embedded

import (
	"context"
	"fmt"

	"github.com/forumapi-dev/forumapi/internal/domain"
	internal_errors "github.com/forumapi-dev/forumapi/internal/errors"
	"github.com/forumapi-dev/forumapi/internal/idgen"
)

func (s *Storage) VerifyLikeExists(ctx context.Context, l domain.Like) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&like{}).
		Where("comment_id = ? AND owner = ?", l.CommentId, l.Owner).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

// AddLike relies on the likes_comment_owner_key index to reject duplicates.
func (s *Storage) AddLike(ctx context.Context, l domain.Like) error {
	row := like{ID: idgen.Prefixed(s.ids, "like"), CommentID: l.CommentId, Owner: l.Owner}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to insert like: %w", internal_errors.ErrLikeConflict)
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *Storage) DeleteLike(ctx context.Context, l domain.Like) error {
	err := s.db.WithContext(ctx).
		Where("comment_id = ? AND owner = ?", l.CommentId, l.Owner).
		Delete(&like{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (s *Storage) GetLikeCountByCommentId(ctx context.Context, commentId string) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&like{}).Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return int(count), nil
}
