package handler

import (
	"context"
	"sync"

	"github.com/forumapi-dev/forumapi/internal/domain"
)

type MockUserService struct {
	MockRegister func(payload domain.Payload) (domain.RegisteredUser, error)
}

func (m *MockUserService) Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error) {
	if m.MockRegister != nil {
		return m.MockRegister(payload)
	}
	return domain.NewRegisteredUser(domain.Payload{"id": "user-123", "username": payload["username"], "fullname": payload["fullname"]})
}

type MockAuthService struct {
	MockLogin   func(payload domain.Payload) (domain.NewAuth, error)
	MockRefresh func(refreshToken string) (string, error)
	MockLogout  func(refreshToken string) error
}

func (m *MockAuthService) Login(ctx context.Context, payload domain.Payload) (domain.NewAuth, error) {
	if m.MockLogin != nil {
		return m.MockLogin(payload)
	}
	return domain.NewNewAuth(domain.Payload{"accessToken": "access", "refreshToken": "refresh"})
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if m.MockRefresh != nil {
		return m.MockRefresh(refreshToken)
	}
	return "new-access", nil
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	if m.MockLogout != nil {
		return m.MockLogout(refreshToken)
	}
	return nil
}

type MockThreadService struct {
	MockCreate    func(payload domain.Payload) (domain.AddedThread, error)
	MockGetDetail func(threadId string) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload)
	}
	return domain.NewAddedThread(domain.Payload{"id": "thread-123", "title": payload["title"], "owner": payload["owner"]})
}

func (m *MockThreadService) GetDetail(ctx context.Context, threadId string) (domain.ThreadDetail, error) {
	if m.MockGetDetail != nil {
		return m.MockGetDetail(threadId)
	}
	return domain.NewThreadDetail(domain.Payload{
		"id": threadId, "title": "sebuah thread", "body": "sebuah body thread",
		"date": "2021-08-08T07:19:09.775Z", "username": "dicoding",
	})
}

type MockCommentService struct {
	MockCreate func(payload domain.Payload) (domain.AddedComment, error)
	MockDelete func(threadId, commentId, owner string) error
}

func (m *MockCommentService) Create(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload)
	}
	return domain.NewAddedComment(domain.Payload{"id": "comment-123", "content": payload["content"], "owner": payload["owner"]})
}

func (m *MockCommentService) Delete(ctx context.Context, threadId, commentId, owner string) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, owner)
	}
	return nil
}

type MockReplyService struct {
	MockCreate func(payload domain.Payload) (domain.AddedReply, error)
	MockDelete func(threadId, commentId, replyId, owner string) error
}

func (m *MockReplyService) Create(ctx context.Context, payload domain.Payload) (domain.AddedReply, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload)
	}
	return domain.NewAddedReply(domain.Payload{"id": "reply-123", "content": payload["content"], "owner": payload["owner"]})
}

func (m *MockReplyService) Delete(ctx context.Context, threadId, commentId, replyId, owner string) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, replyId, owner)
	}
	return nil
}

type MockLikeService struct {
	mu         sync.Mutex
	calls      [][3]string
	MockToggle func(threadId, commentId, owner string) error
}

func (m *MockLikeService) Toggle(ctx context.Context, threadId, commentId, owner string) error {
	m.mu.Lock()
	m.calls = append(m.calls, [3]string{threadId, commentId, owner})
	m.mu.Unlock()
	if m.MockToggle != nil {
		return m.MockToggle(threadId, commentId, owner)
	}
	return nil
}

type MockHealth struct {
	err error
}

func (m *MockHealth) Ping(ctx context.Context) error { return m.err }
func (m *MockHealth) Driver() string                  { return "sqlite" }
