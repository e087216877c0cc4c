package pg

import (
	"context"
	"fmt"

	"github.com/forumapi-dev/forumapi/internal/domain"
	internal_errors "github.com/forumapi-dev/forumapi/internal/errors"
	"github.com/forumapi-dev/forumapi/internal/idgen"
)

func (s *Storage) VerifyLikeExists(ctx context.Context, like domain.Like) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM likes WHERE comment_id = $1 AND owner = $2)",
		like.CommentId, like.Owner,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return exists, nil
}

// AddLike relies on likes_comment_owner_key; a concurrent duplicate insert
// comes back as ErrLikeConflict.
func (s *Storage) AddLike(ctx context.Context, like domain.Like) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO likes (id, comment_id, owner) VALUES ($1, $2, $3)",
		idgen.Prefixed(s.ids, "like"), like.CommentId, like.Owner,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to insert like: %w", internal_errors.ErrLikeConflict)
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *Storage) DeleteLike(ctx context.Context, like domain.Like) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM likes WHERE comment_id = $1 AND owner = $2",
		like.CommentId, like.Owner,
	)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (s *Storage) GetLikeCountByCommentId(ctx context.Context, commentId string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM likes WHERE comment_id = $1", commentId).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
