package service

import (
	"context"

	"github.com/forumapi-dev/forumapi/internal/domain"
)

type ReplyService interface {
	Create(ctx context.Context, payload domain.Payload) (domain.AddedReply, error)
	Delete(ctx context.Context, threadId, commentId, replyId, owner string) error
}

type Reply struct {
	threads   ThreadRepository
	comments  CommentRepository
	replies   ReplyRepository
	sanitizer Sanitizer
}

func NewReply(threads ThreadRepository, comments CommentRepository, replies ReplyRepository, sanitizer Sanitizer) *Reply {
	return &Reply{threads: threads, comments: comments, replies: replies, sanitizer: sanitizer}
}

func (r *Reply) Create(ctx context.Context, payload domain.Payload) (domain.AddedReply, error) {
	cmd, err := domain.NewAddReply(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}
	if err := r.threads.VerifyThreadAvailability(ctx, cmd.ThreadId()); err != nil {
		return domain.AddedReply{}, err
	}
	if err := r.comments.VerifyCommentAvailability(ctx, cmd.CommentId(), cmd.ThreadId()); err != nil {
		return domain.AddedReply{}, err
	}
	content, err := r.sanitizer.Clean("content", cmd.Content())
	if err != nil {
		return domain.AddedReply{}, err
	}
	return r.replies.AddReply(ctx, cmd.WithContent(content))
}

// Delete soft-deletes a reply owned by owner.
func (r *Reply) Delete(ctx context.Context, threadId, commentId, replyId, owner string) error {
	if err := r.threads.VerifyThreadAvailability(ctx, threadId); err != nil {
		return err
	}
	if err := r.comments.VerifyCommentAvailability(ctx, commentId, threadId); err != nil {
		return err
	}
	if err := r.replies.VerifyReplyAvailability(ctx, replyId, commentId); err != nil {
		return err
	}
	if err := r.replies.VerifyReplyOwner(ctx, replyId, owner); err != nil {
		return err
	}
	return r.replies.DeleteReply(ctx, replyId)
}
