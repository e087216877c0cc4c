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

func (s *Storage) AddComment(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error) {
	id := idgen.Prefixed(s.ids, "comment")
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO comments (id, thread_id, owner, content) VALUES ($1, $2, $3, $4)",
		id, comment.ThreadId(), comment.Owner(), comment.Content(),
	)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return domain.NewAddedComment(domain.Payload{"id": id, "content": comment.Content(), "owner": comment.Owner()})
}

func (s *Storage) VerifyCommentAvailability(ctx context.Context, commentId, threadId string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM comments
            WHERE id = $1 AND thread_id = $2 AND NOT is_deleted
        )`, commentId, threadId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if !exists {
		return &internal_errors.NotFoundError{Message: "komentar tidak ditemukan"}
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, commentId, owner string) error {
	var actual string
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM comments WHERE id = $1", commentId).Scan(&actual)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "komentar tidak ditemukan"}
		}
		return fmt.Errorf("failed to get comment owner: %w", err)
	}
	if actual != owner {
		return &internal_errors.AuthorizationError{Message: "anda tidak berhak mengakses resource ini"}
	}
	return nil
}

func (s *Storage) DeleteComment(ctx context.Context, commentId string) error {
	result, err := s.db.ExecContext(ctx, "UPDATE comments SET is_deleted = TRUE WHERE id = $1", commentId)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &internal_errors.NotFoundError{Message: "komentar tidak ditemukan"}
	}
	return nil
}

func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId string) ([]domain.CommentRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT c.id, u.username, c.created_at, c.content, c.is_deleted
        FROM comments c
        JOIN users u ON u.id = c.owner
        WHERE c.thread_id = $1
        ORDER BY c.seq ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.CommentRecord{}
	for rows.Next() {
		var (
			c         domain.CommentRecord
			createdAt time.Time
			content   string
			isDeleted bool
		)
		if err := rows.Scan(&c.Id, &c.Username, &createdAt, &content, &isDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.Date = formatDate(createdAt)
		c.Content = domain.StoredContentOf(content, isDeleted)
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}
