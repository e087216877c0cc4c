package service

import (
	"context"

	"github.com/forumapi-dev/forumapi/internal/domain"
	"github.com/forumapi-dev/forumapi/internal/metrics"
)

type LikeService interface {
	Toggle(ctx context.Context, threadId, commentId, owner string) error
}

type Like struct {
	threads  ThreadRepository
	comments CommentRepository
	likes    LikeRepository
}

func NewLike(threads ThreadRepository, comments CommentRepository, likes LikeRepository) *Like {
	return &Like{threads: threads, comments: comments, likes: likes}
}

// Toggle likes the comment for owner, or unlikes it if already liked.
// Existence is always read from storage; a concurrent duplicate add is
// rejected by the (comment, owner) unique constraint.
func (l *Like) Toggle(ctx context.Context, threadId, commentId, owner string) error {
	if err := l.threads.VerifyThreadAvailability(ctx, threadId); err != nil {
		return err
	}
	if err := l.comments.VerifyCommentAvailability(ctx, commentId, threadId); err != nil {
		return err
	}

	like := domain.Like{CommentId: commentId, Owner: owner}
	liked, err := l.likes.VerifyLikeExists(ctx, like)
	if err != nil {
		return err
	}

	if liked {
		if err := l.likes.DeleteLike(ctx, like); err != nil {
			return err
		}
		metrics.LikeToggled(metrics.LikeRemoved)
		return nil
	}
	if err := l.likes.AddLike(ctx, like); err != nil {
		return err
	}
	metrics.LikeToggled(metrics.LikeAdded)
	return nil
}
