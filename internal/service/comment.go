package service

import (
	"context"

	"github.com/forumapi-dev/forumapi/internal/domain"
)

type CommentService interface {
	Create(ctx context.Context, payload domain.Payload) (domain.AddedComment, error)
	Delete(ctx context.Context, threadId, commentId, owner string) error
}

type Comment struct {
	threads   ThreadRepository
	comments  CommentRepository
	sanitizer Sanitizer
}

func NewComment(threads ThreadRepository, comments CommentRepository, sanitizer Sanitizer) *Comment {
	return &Comment{threads: threads, comments: comments, sanitizer: sanitizer}
}

func (c *Comment) Create(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	cmd, err := domain.NewAddComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err := c.threads.VerifyThreadAvailability(ctx, cmd.ThreadId()); err != nil {
		return domain.AddedComment{}, err
	}
	content, err := c.sanitizer.Clean("content", cmd.Content())
	if err != nil {
		return domain.AddedComment{}, err
	}
	return c.comments.AddComment(ctx, cmd.WithContent(content))
}

// Delete soft-deletes a comment owned by owner.
func (c *Comment) Delete(ctx context.Context, threadId, commentId, owner string) error {
	if err := c.threads.VerifyThreadAvailability(ctx, threadId); err != nil {
		return err
	}
	if err := c.comments.VerifyCommentAvailability(ctx, commentId, threadId); err != nil {
		return err
	}
	if err := c.comments.VerifyCommentOwner(ctx, commentId, owner); err != nil {
		return err
	}
	return c.comments.DeleteComment(ctx, commentId)
}
