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

func (s *Storage) AddReply(ctx context.Context, reply domain.AddReply) (domain.AddedReply, error) {
	id := idgen.Prefixed(s.ids, "reply")
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO replies (id, comment_id, owner, content) VALUES ($1, $2, $3, $4)",
		id, reply.CommentId(), reply.Owner(), reply.Content(),
	)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return domain.NewAddedReply(domain.Payload{"id": id, "content": reply.Content(), "owner": reply.Owner()})
}

func (s *Storage) VerifyReplyAvailability(ctx context.Context, replyId, commentId string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM replies
            WHERE id = $1 AND comment_id = $2 AND NOT is_deleted
        )`, replyId, commentId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check reply: %w", err)
	}
	if !exists {
		return &internal_errors.NotFoundError{Message: "balasan tidak ditemukan"}
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, replyId, owner string) error {
	var actual string
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM replies WHERE id = $1", replyId).Scan(&actual)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "balasan tidak ditemukan"}
		}
		return fmt.Errorf("failed to get reply owner: %w", err)
	}
	if actual != owner {
		return &internal_errors.AuthorizationError{Message: "anda tidak berhak mengakses resource ini"}
	}
	return nil
}

func (s *Storage) DeleteReply(ctx context.Context, replyId string) error {
	result, err := s.db.ExecContext(ctx, "UPDATE replies SET is_deleted = TRUE WHERE id = $1", replyId)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &internal_errors.NotFoundError{Message: "balasan tidak ditemukan"}
	}
	return nil
}

func (s *Storage) GetRepliesByCommentId(ctx context.Context, commentId string) ([]domain.ReplyRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT r.id, u.username, r.created_at, r.content, r.is_deleted
        FROM replies r
        JOIN users u ON u.id = r.owner
        WHERE r.comment_id = $1
        ORDER BY r.seq ASC
    `, commentId)
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	defer rows.Close()

	replies := []domain.ReplyRecord{}
	for rows.Next() {
		var (
			r         domain.ReplyRecord
			createdAt time.Time
			content   string
			isDeleted bool
		)
		if err := rows.Scan(&r.Id, &r.Username, &createdAt, &content, &isDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		r.Date = formatDate(createdAt)
		r.Content = domain.StoredContentOf(content, isDeleted)
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate replies: %w", err)
	}
	return replies, nil
}
