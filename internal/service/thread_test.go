package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/forumapi-dev/forumapi/internal/domain"
	internal_errors "github.com/forumapi-dev/forumapi/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type threadFixture struct {
	threads  *MockThreadRepository
	comments *MockCommentRepository
	replies  *MockReplyRepository
	likes    *MockLikeRepository
	service  *Thread
}

func newThreadFixture(concurrency int) *threadFixture {
	f := &threadFixture{
		threads:  &MockThreadRepository{},
		comments: &MockCommentRepository{},
		replies:  &MockReplyRepository{},
		likes:    &MockLikeRepository{},
	}
	f.service = NewThread(f.threads, f.comments, f.replies, f.likes, &MockSanitizer{}, concurrency)
	return f
}

func TestThreadGetDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound short-circuits every fetch", func(t *testing.T) {
		f := newThreadFixture(4)
		f.threads.verifyThreadAvailabilityFunc = func(threadId string) error {
			return &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		}

		_, err := f.service.GetDetail(ctx, "thread-xxx")

		require.Error(t, err)
		assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](err))
		assert.False(t, f.threads.getThreadByIdCalled)
		assert.False(t, f.comments.getCommentsCalled)
		assert.Zero(t, f.replies.getRepliesCalls)
		assert.Zero(t, f.likes.countCalls)
	})

	t.Run("zero comments yields empty list", func(t *testing.T) {
		f := newThreadFixture(4)

		detail, err := f.service.GetDetail(ctx, "thread-123")

		require.NoError(t, err)
		assert.Equal(t, "thread-123", detail.Id())
		assert.Equal(t, "sebuah thread", detail.Title())
		assert.NotNil(t, detail.Comments())
		assert.Empty(t, detail.Comments())
	})

	t.Run("redaction and independent like counts", func(t *testing.T) {
		f := newThreadFixture(4)
		f.comments.getCommentsByThreadIdFunc = func(threadId string) ([]domain.CommentRecord, error) {
			return []domain.CommentRecord{
				{Id: "comment-1", Username: "johndoe", Date: "2021-08-08T07:22:33.555Z", Content: domain.StoredContentOf("sebuah comment", false)},
				{Id: "comment-2", Username: "dicoding", Date: "2021-08-08T07:26:21.338Z", Content: domain.StoredContentOf("rahasia", true)},
			}, nil
		}
		f.replies.getRepliesByCommentIdFunc = func(ctx context.Context, commentId string) ([]domain.ReplyRecord, error) {
			if commentId != "comment-1" {
				return nil, nil
			}
			return []domain.ReplyRecord{
				{Id: "reply-1", Username: "johndoe", Date: "2021-08-08T07:59:48.766Z", Content: domain.StoredContentOf("balasan lama", true)},
				{Id: "reply-2", Username: "dicoding", Date: "2021-08-08T08:07:01.522Z", Content: domain.StoredContentOf("sebuah balasan", false)},
			}, nil
		}
		f.likes.getLikeCountByCommentIdFunc = func(commentId string) (int, error) {
			if commentId == "comment-1" {
				return 2, nil
			}
			return 0, nil
		}

		detail, err := f.service.GetDetail(ctx, "thread-123")
		require.NoError(t, err)

		comments := detail.Comments()
		require.Len(t, comments, 2)

		assert.Equal(t, "sebuah comment", comments[0].Content())
		assert.Equal(t, 2, comments[0].LikeCount())
		require.Len(t, comments[0].Replies(), 2)
		assert.Equal(t, "**balasan telah dihapus**", comments[0].Replies()[0].Content())
		assert.Equal(t, "sebuah balasan", comments[0].Replies()[1].Content())

		assert.Equal(t, "**komentar telah dihapus**", comments[1].Content())
		assert.Equal(t, 0, comments[1].LikeCount())
		assert.NotNil(t, comments[1].Replies())
		assert.Empty(t, comments[1].Replies())

		assert.Equal(t, 2, f.likes.countCalls)
	})

	t.Run("output order follows fetch order, not completion order", func(t *testing.T) {
		f := newThreadFixture(4)
		f.comments.getCommentsByThreadIdFunc = func(threadId string) ([]domain.CommentRecord, error) {
			return []domain.CommentRecord{
				{Id: "comment-1", Username: "a", Date: "d1", Content: domain.StoredContentOf("first", false)},
				{Id: "comment-2", Username: "b", Date: "d2", Content: domain.StoredContentOf("second", false)},
				{Id: "comment-3", Username: "c", Date: "d3", Content: domain.StoredContentOf("third", false)},
			}, nil
		}
		// comment-1 finishes last
		f.replies.getRepliesByCommentIdFunc = func(ctx context.Context, commentId string) ([]domain.ReplyRecord, error) {
			switch commentId {
			case "comment-1":
				time.Sleep(60 * time.Millisecond)
			case "comment-2":
				time.Sleep(20 * time.Millisecond)
			}
			return nil, nil
		}

		detail, err := f.service.GetDetail(ctx, "thread-123")
		require.NoError(t, err)

		ids := make([]string, 0, 3)
		for _, c := range detail.Comments() {
			ids = append(ids, c.Id())
		}
		assert.Equal(t, []string{"comment-1", "comment-2", "comment-3"}, ids)
	})

	t.Run("reply fetch failure aborts the whole view", func(t *testing.T) {
		f := newThreadFixture(4)
		f.comments.getCommentsByThreadIdFunc = func(threadId string) ([]domain.CommentRecord, error) {
			return []domain.CommentRecord{
				{Id: "comment-1", Username: "a", Date: "d", Content: domain.StoredContentOf("x", false)},
				{Id: "comment-2", Username: "b", Date: "d", Content: domain.StoredContentOf("y", false)},
			}, nil
		}
		dbErr := errors.New("connection reset")
		f.replies.getRepliesByCommentIdFunc = func(ctx context.Context, commentId string) ([]domain.ReplyRecord, error) {
			if commentId == "comment-2" {
				return nil, dbErr
			}
			return nil, nil
		}

		detail, err := f.service.GetDetail(ctx, "thread-123")
		require.ErrorIs(t, err, dbErr)
		assert.Empty(t, detail.Id())
	})

	t.Run("like count error is propagated, never zero", func(t *testing.T) {
		f := newThreadFixture(4)
		f.comments.getCommentsByThreadIdFunc = func(threadId string) ([]domain.CommentRecord, error) {
			return []domain.CommentRecord{{Id: "comment-1", Username: "a", Date: "d", Content: domain.StoredContentOf("x", false)}}, nil
		}
		countErr := errors.New("count failed")
		f.likes.getLikeCountByCommentIdFunc = func(commentId string) (int, error) {
			return 0, countErr
		}

		_, err := f.service.GetDetail(ctx, "thread-123")
		require.ErrorIs(t, err, countErr)
	})

	t.Run("comment fetch failure", func(t *testing.T) {
		f := newThreadFixture(4)
		f.comments.getCommentsByThreadIdFunc = func(threadId string) ([]domain.CommentRecord, error) {
			return nil, errors.New("query failed")
		}

		_, err := f.service.GetDetail(ctx, "thread-123")
		require.Error(t, err)
		assert.Zero(t, f.replies.getRepliesCalls)
	})

	t.Run("concurrency is bounded", func(t *testing.T) {
		f := newThreadFixture(2)
		records := make([]domain.CommentRecord, 8)
		for i := range records {
			records[i] = domain.CommentRecord{Id: "comment-" + string(rune('a'+i)), Username: "u", Date: "d", Content: domain.StoredContentOf("c", false)}
		}
		f.comments.getCommentsByThreadIdFunc = func(threadId string) ([]domain.CommentRecord, error) {
			return records, nil
		}

		var inFlight, peak atomic.Int32
		f.replies.getRepliesByCommentIdFunc = func(ctx context.Context, commentId string) ([]domain.ReplyRecord, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return nil, nil
		}

		detail, err := f.service.GetDetail(ctx, "thread-123")
		require.NoError(t, err)
		assert.Len(t, detail.Comments(), 8)
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})
}

func TestThreadCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newThreadFixture(1)
		var stored domain.AddThread
		f.threads.addThreadFunc = func(thread domain.AddThread) (domain.AddedThread, error) {
			stored = thread
			return domain.NewAddedThread(domain.Payload{"id": "thread-123", "title": thread.Title(), "owner": thread.Owner()})
		}

		added, err := f.service.Create(ctx, domain.Payload{"title": "sebuah thread", "body": "isi", "owner": "user-123"})
		require.NoError(t, err)
		assert.Equal(t, "thread-123", added.Id())
		assert.Equal(t, "user-123", added.Owner())
		assert.Equal(t, "isi", stored.Body())
	})

	t.Run("missing body", func(t *testing.T) {
		f := newThreadFixture(1)
		_, err := f.service.Create(ctx, domain.Payload{"title": "t", "owner": "user-123"})
		assert.True(t, internal_errors.Is[*internal_errors.MissingFieldError](err))
	})

	t.Run("sanitizer rejects empty body", func(t *testing.T) {
		f := newThreadFixture(1)
		f.service.sanitizer = &MockSanitizer{cleanFunc: func(field, text string) (string, error) {
			if field == "body" {
				return "", &internal_errors.InvariantError{Message: "body tidak boleh kosong"}
			}
			return text, nil
		}}
		_, err := f.service.Create(ctx, domain.Payload{"title": "t", "body": "<script></script>", "owner": "user-123"})
		assert.True(t, internal_errors.Is[*internal_errors.InvariantError](err))
	})
}
