package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/forumapi-dev/forumapi/internal/domain"
	"github.com/forumapi-dev/forumapi/internal/logger"
	"github.com/forumapi-dev/forumapi/internal/metrics"
)

type ThreadService interface {
	Create(ctx context.Context, payload domain.Payload) (domain.AddedThread, error)
	GetDetail(ctx context.Context, threadId string) (domain.ThreadDetail, error)
}

type Thread struct {
	threads     ThreadRepository
	comments    CommentRepository
	replies     ReplyRepository
	likes       LikeRepository
	sanitizer   Sanitizer
	concurrency int
}

// NewThread wires the thread service. concurrency caps the number of comments
// whose replies and likes are fetched at the same time; values < 1 mean one.
func NewThread(threads ThreadRepository, comments CommentRepository, replies ReplyRepository, likes LikeRepository, sanitizer Sanitizer, concurrency int) *Thread {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Thread{
		threads:     threads,
		comments:    comments,
		replies:     replies,
		likes:       likes,
		sanitizer:   sanitizer,
		concurrency: concurrency,
	}
}

func (t *Thread) Create(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	cmd, err := domain.NewAddThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}
	title, err := t.sanitizer.Clean("title", cmd.Title())
	if err != nil {
		return domain.AddedThread{}, err
	}
	body, err := t.sanitizer.Clean("body", cmd.Body())
	if err != nil {
		return domain.AddedThread{}, err
	}
	return t.threads.AddThread(ctx, cmd.WithTitle(title).WithBody(body))
}

// GetDetail assembles the thread with its comments, replies and like counts.
// Comments are fanned out concurrently but keep the order storage returned
// them in. Any failed fetch fails the whole view.
func (t *Thread) GetDetail(ctx context.Context, threadId string) (detail domain.ThreadDetail, err error) {
	start := time.Now()
	defer func() { metrics.ObserveAggregation(start, err) }()

	if err := t.threads.VerifyThreadAvailability(ctx, threadId); err != nil {
		return domain.ThreadDetail{}, err
	}

	thread, err := t.threads.GetThreadById(ctx, threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	comments, err := t.comments.GetCommentsByThreadId(ctx, threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	details := make([]domain.CommentDetail, len(comments))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(t.concurrency)
	for i, comment := range comments {
		eg.Go(func() error {
			d, err := t.commentDetail(egCtx, comment)
			if err != nil {
				return err
			}
			details[i] = d
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logger.With("aggregation").Error("thread aggregation failed", "thread_id", threadId, "error", err)
		return domain.ThreadDetail{}, err
	}

	return domain.NewThreadDetail(domain.Payload{
		"id":       thread.Id,
		"title":    thread.Title,
		"body":     thread.Body,
		"date":     thread.Date,
		"username": thread.Username,
		"comments": details,
	})
}

func (t *Thread) commentDetail(ctx context.Context, comment domain.CommentRecord) (domain.CommentDetail, error) {
	replies, err := t.replies.GetRepliesByCommentId(ctx, comment.Id)
	if err != nil {
		return domain.CommentDetail{}, err
	}
	likeCount, err := t.likes.GetLikeCountByCommentId(ctx, comment.Id)
	if err != nil {
		return domain.CommentDetail{}, err
	}

	replyDetails := make([]domain.ReplyDetail, 0, len(replies))
	for _, reply := range replies {
		rd, err := domain.NewReplyDetail(domain.Payload{
			"id":       reply.Id,
			"username": reply.Username,
			"date":     reply.Date,
			"content":  reply.Content.Reveal(domain.ReplyContent),
		})
		if err != nil {
			return domain.CommentDetail{}, err
		}
		replyDetails = append(replyDetails, rd)
	}

	return domain.NewCommentDetail(domain.Payload{
		"id":        comment.Id,
		"username":  comment.Username,
		"date":      comment.Date,
		"content":   comment.Content.Reveal(domain.CommentContent),
		"likeCount": likeCount,
		"replies":   replyDetails,
	})
}
