package service

import (
	"context"

	"github.com/forumapi-dev/forumapi/internal/domain"
)

// Repository contracts. Implementations live in internal/storage/pg and
// internal/storage/embedded; both report absence with *errors.NotFoundError
// and foreign ownership with *errors.AuthorizationError.

type ThreadRepository interface {
	AddThread(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error)
	VerifyThreadAvailability(ctx context.Context, threadId string) error
	GetThreadById(ctx context.Context, threadId string) (domain.ThreadRecord, error)
}

type CommentRepository interface {
	AddComment(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error)
	// VerifyCommentAvailability fails unless the comment exists in threadId
	// and is not soft-deleted.
	VerifyCommentAvailability(ctx context.Context, commentId, threadId string) error
	VerifyCommentOwner(ctx context.Context, commentId, owner string) error
	DeleteComment(ctx context.Context, commentId string) error
	// GetCommentsByThreadId returns comments in creation order.
	GetCommentsByThreadId(ctx context.Context, threadId string) ([]domain.CommentRecord, error)
}

type ReplyRepository interface {
	AddReply(ctx context.Context, reply domain.AddReply) (domain.AddedReply, error)
	VerifyReplyAvailability(ctx context.Context, replyId, commentId string) error
	VerifyReplyOwner(ctx context.Context, replyId, owner string) error
	DeleteReply(ctx context.Context, replyId string) error
	// GetRepliesByCommentId returns replies in creation order.
	GetRepliesByCommentId(ctx context.Context, commentId string) ([]domain.ReplyRecord, error)
}

type LikeRepository interface {
	VerifyLikeExists(ctx context.Context, like domain.Like) (bool, error)
	// AddLike fails with errors.ErrLikeConflict if the pair already exists.
	AddLike(ctx context.Context, like domain.Like) error
	// DeleteLike of a missing pair is a no-op.
	DeleteLike(ctx context.Context, like domain.Like) error
	GetLikeCountByCommentId(ctx context.Context, commentId string) (int, error)
}

type UserRepository interface {
	// VerifyAvailableUsername fails with *errors.InvariantError when taken.
	VerifyAvailableUsername(ctx context.Context, username string) error
	AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error)
	GetPasswordByUsername(ctx context.Context, username string) (string, error)
	GetIdByUsername(ctx context.Context, username string) (string, error)
}

type AuthenticationRepository interface {
	AddToken(ctx context.Context, token string) error
	// CheckAvailabilityToken fails with *errors.InvariantError for unknown tokens.
	CheckAvailabilityToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context, token string) error
}

// Sanitizer cleans user written text before it is stored.
type Sanitizer interface {
	Clean(field, text string) (string, error)
}
