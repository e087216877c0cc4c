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

func (s *Storage) AddReply(ctx context.Context, r domain.AddReply) (domain.AddedReply, error) {
	row := reply{
		ID:        idgen.Prefixed(s.ids, "reply"),
		CommentID: r.CommentId(),
		Owner:     r.Owner(),
		Content:   r.Content(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return domain.NewAddedReply(domain.Payload{"id": row.ID, "content": row.Content, "owner": row.Owner})
}

func (s *Storage) VerifyReplyAvailability(ctx context.Context, replyId, commentId string) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&reply{}).
		Where("id = ? AND comment_id = ? AND is_deleted = ?", replyId, commentId, false).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check reply: %w", err)
	}
	if count == 0 {
		return &internal_errors.NotFoundError{Message: "balasan tidak ditemukan"}
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, replyId, owner string) error {
	var row reply
	err := s.db.WithContext(ctx).Select("owner").Where("id = ?", replyId).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &internal_errors.NotFoundError{Message: "balasan tidak ditemukan"}
		}
		return fmt.Errorf("failed to get reply owner: %w", err)
	}
	if row.Owner != owner {
		return &internal_errors.AuthorizationError{Message: "anda tidak berhak mengakses resource ini"}
	}
	return nil
}

func (s *Storage) DeleteReply(ctx context.Context, replyId string) error {
	result := s.db.WithContext(ctx).Model(&reply{}).Where("id = ?", replyId).Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reply: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &internal_errors.NotFoundError{Message: "balasan tidak ditemukan"}
	}
	return nil
}

func (s *Storage) GetRepliesByCommentId(ctx context.Context, commentId string) ([]domain.ReplyRecord, error) {
	var rows []entryRow
	err := s.db.WithContext(ctx).
		Table("replies r").
		Select("r.id, u.username, r.created_at, r.content, r.is_deleted").
		Joins("JOIN users u ON u.id = r.owner").
		Where("r.comment_id = ?", commentId).
		Order("r.seq ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}

	replies := make([]domain.ReplyRecord, 0, len(rows))
	for _, r := range rows {
		replies = append(replies, domain.ReplyRecord{
			Id:       r.ID,
			Username: r.Username,
			Date:     formatDate(r.CreatedAt),
			Content:  domain.StoredContentOf(r.Content, r.IsDeleted),
		})
	}
	return replies, nil
}
