package service

import (
	"context"
	"sync"

	"github.com/forumapi-dev/forumapi/internal/domain"
	"github.com/forumapi-dev/forumapi/internal/jwt"
)

// --- Mocks ---

// MockThreadRepository mocks the ThreadRepository interface.
type MockThreadRepository struct {
	addThreadFunc                func(thread domain.AddThread) (domain.AddedThread, error)
	verifyThreadAvailabilityFunc func(threadId string) error
	getThreadByIdFunc            func(threadId string) (domain.ThreadRecord, error)

	mu                  sync.Mutex
	getThreadByIdCalled bool
}

func (m *MockThreadRepository) AddThread(ctx context.Context, thread domain.AddThread) (domain.AddedThread, error) {
	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread)
	}
	return domain.NewAddedThread(domain.Payload{"id": "thread-123", "title": thread.Title(), "owner": thread.Owner()})
}

func (m *MockThreadRepository) VerifyThreadAvailability(ctx context.Context, threadId string) error {
	if m.verifyThreadAvailabilityFunc != nil {
		return m.verifyThreadAvailabilityFunc(threadId)
	}
	return nil
}

func (m *MockThreadRepository) GetThreadById(ctx context.Context, threadId string) (domain.ThreadRecord, error) {
	m.mu.Lock()
	m.getThreadByIdCalled = true
	m.mu.Unlock()

	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(threadId)
	}
	return domain.ThreadRecord{
		Id:       threadId,
		Title:    "sebuah thread",
		Body:     "sebuah body thread",
		Date:     "2021-08-08T07:19:09.775Z",
		Username: "dicoding",
	}, nil
}

// MockCommentRepository mocks the CommentRepository interface.
type MockCommentRepository struct {
	addCommentFunc                func(comment domain.AddComment) (domain.AddedComment, error)
	verifyCommentAvailabilityFunc func(commentId, threadId string) error
	verifyCommentOwnerFunc        func(commentId, owner string) error
	deleteCommentFunc             func(commentId string) error
	getCommentsByThreadIdFunc     func(threadId string) ([]domain.CommentRecord, error)

	mu                    sync.Mutex
	getCommentsCalled     bool
	deleteCommentCalled   bool
	deleteCommentIdArg    string
	verifyAvailabilityArg string
}

func (m *MockCommentRepository) AddComment(ctx context.Context, comment domain.AddComment) (domain.AddedComment, error) {
	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment)
	}
	return domain.NewAddedComment(domain.Payload{"id": "comment-123", "content": comment.Content(), "owner": comment.Owner()})
}

func (m *MockCommentRepository) VerifyCommentAvailability(ctx context.Context, commentId, threadId string) error {
	m.mu.Lock()
	m.verifyAvailabilityArg = commentId
	m.mu.Unlock()

	if m.verifyCommentAvailabilityFunc != nil {
		return m.verifyCommentAvailabilityFunc(commentId, threadId)
	}
	return nil
}

func (m *MockCommentRepository) VerifyCommentOwner(ctx context.Context, commentId, owner string) error {
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(commentId, owner)
	}
	return nil
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, commentId string) error {
	m.mu.Lock()
	m.deleteCommentCalled = true
	m.deleteCommentIdArg = commentId
	m.mu.Unlock()

	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(commentId)
	}
	return nil
}

func (m *MockCommentRepository) GetCommentsByThreadId(ctx context.Context, threadId string) ([]domain.CommentRecord, error) {
	m.mu.Lock()
	m.getCommentsCalled = true
	m.mu.Unlock()

	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return nil, nil
}

// MockReplyRepository mocks the ReplyRepository interface.
type MockReplyRepository struct {
	addReplyFunc                func(reply domain.AddReply) (domain.AddedReply, error)
	verifyReplyAvailabilityFunc func(replyId, commentId string) error
	verifyReplyOwnerFunc        func(replyId, owner string) error
	deleteReplyFunc             func(replyId string) error
	getRepliesByCommentIdFunc   func(ctx context.Context, commentId string) ([]domain.ReplyRecord, error)

	mu                sync.Mutex
	getRepliesCalls   int
	deleteReplyCalled bool
}

func (m *MockReplyRepository) AddReply(ctx context.Context, reply domain.AddReply) (domain.AddedReply, error) {
	if m.addReplyFunc != nil {
		return m.addReplyFunc(reply)
	}
	return domain.NewAddedReply(domain.Payload{"id": "reply-123", "content": reply.Content(), "owner": reply.Owner()})
}

func (m *MockReplyRepository) VerifyReplyAvailability(ctx context.Context, replyId, commentId string) error {
	if m.verifyReplyAvailabilityFunc != nil {
		return m.verifyReplyAvailabilityFunc(replyId, commentId)
	}
	return nil
}

func (m *MockReplyRepository) VerifyReplyOwner(ctx context.Context, replyId, owner string) error {
	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(replyId, owner)
	}
	return nil
}

func (m *MockReplyRepository) DeleteReply(ctx context.Context, replyId string) error {
	m.mu.Lock()
	m.deleteReplyCalled = true
	m.mu.Unlock()

	if m.deleteReplyFunc != nil {
		return m.deleteReplyFunc(replyId)
	}
	return nil
}

func (m *MockReplyRepository) GetRepliesByCommentId(ctx context.Context, commentId string) ([]domain.ReplyRecord, error) {
	m.mu.Lock()
	m.getRepliesCalls++
	m.mu.Unlock()

	if m.getRepliesByCommentIdFunc != nil {
		return m.getRepliesByCommentIdFunc(ctx, commentId)
	}
	return nil, nil
}

// MockLikeRepository mocks the LikeRepository interface.
type MockLikeRepository struct {
	verifyLikeExistsFunc        func(like domain.Like) (bool, error)
	addLikeFunc                 func(like domain.Like) error
	deleteLikeFunc              func(like domain.Like) error
	getLikeCountByCommentIdFunc func(commentId string) (int, error)

	mu              sync.Mutex
	addLikeCalls    int
	deleteLikeCalls int
	countCalls      int
	lastAction      string
}

func (m *MockLikeRepository) VerifyLikeExists(ctx context.Context, like domain.Like) (bool, error) {
	if m.verifyLikeExistsFunc != nil {
		return m.verifyLikeExistsFunc(like)
	}
	return false, nil
}

func (m *MockLikeRepository) AddLike(ctx context.Context, like domain.Like) error {
	m.mu.Lock()
	m.addLikeCalls++
	m.lastAction = "add"
	m.mu.Unlock()

	if m.addLikeFunc != nil {
		return m.addLikeFunc(like)
	}
	return nil
}

func (m *MockLikeRepository) DeleteLike(ctx context.Context, like domain.Like) error {
	m.mu.Lock()
	m.deleteLikeCalls++
	m.lastAction = "delete"
	m.mu.Unlock()

	if m.deleteLikeFunc != nil {
		return m.deleteLikeFunc(like)
	}
	return nil
}

func (m *MockLikeRepository) GetLikeCountByCommentId(ctx context.Context, commentId string) (int, error) {
	m.mu.Lock()
	m.countCalls++
	m.mu.Unlock()

	if m.getLikeCountByCommentIdFunc != nil {
		return m.getLikeCountByCommentIdFunc(commentId)
	}
	return 0, nil
}

// MockUserRepository mocks the UserRepository interface.
type MockUserRepository struct {
	verifyAvailableUsernameFunc func(username string) error
	addUserFunc                 func(user domain.RegisterUser) (domain.RegisteredUser, error)
	getPasswordByUsernameFunc   func(username string) (string, error)
	getIdByUsernameFunc         func(username string) (string, error)
}

func (m *MockUserRepository) VerifyAvailableUsername(ctx context.Context, username string) error {
	if m.verifyAvailableUsernameFunc != nil {
		return m.verifyAvailableUsernameFunc(username)
	}
	return nil
}

func (m *MockUserRepository) AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
	if m.addUserFunc != nil {
		return m.addUserFunc(user)
	}
	return domain.NewRegisteredUser(domain.Payload{"id": "user-123", "username": user.Username(), "fullname": user.Fullname()})
}

func (m *MockUserRepository) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	if m.getPasswordByUsernameFunc != nil {
		return m.getPasswordByUsernameFunc(username)
	}
	return "", nil
}

func (m *MockUserRepository) GetIdByUsername(ctx context.Context, username string) (string, error) {
	if m.getIdByUsernameFunc != nil {
		return m.getIdByUsernameFunc(username)
	}
	return "user-123", nil
}

// MockAuthenticationRepository mocks the AuthenticationRepository interface.
type MockAuthenticationRepository struct {
	addTokenFunc               func(token string) error
	checkAvailabilityTokenFunc func(token string) error
	deleteTokenFunc            func(token string) error

	addedTokens   []string
	deletedTokens []string
}

func (m *MockAuthenticationRepository) AddToken(ctx context.Context, token string) error {
	m.addedTokens = append(m.addedTokens, token)
	if m.addTokenFunc != nil {
		return m.addTokenFunc(token)
	}
	return nil
}

func (m *MockAuthenticationRepository) CheckAvailabilityToken(ctx context.Context, token string) error {
	if m.checkAvailabilityTokenFunc != nil {
		return m.checkAvailabilityTokenFunc(token)
	}
	return nil
}

func (m *MockAuthenticationRepository) DeleteToken(ctx context.Context, token string) error {
	m.deletedTokens = append(m.deletedTokens, token)
	if m.deleteTokenFunc != nil {
		return m.deleteTokenFunc(token)
	}
	return nil
}

// MockSanitizer passes text through unless cleanFunc is set.
type MockSanitizer struct {
	cleanFunc func(field, text string) (string, error)
}

func (m *MockSanitizer) Clean(field, text string) (string, error) {
	if m.cleanFunc != nil {
		return m.cleanFunc(field, text)
	}
	return text, nil
}

// MockJwt mocks jwt.JwtService.
type MockJwt struct {
	newTokenFunc    func(claims jwt.Claims) (string, error)
	decodeTokenFunc func(token string) (jwt.Claims, error)
}

func (m *MockJwt) NewToken(claims jwt.Claims) (string, error) {
	if m.newTokenFunc != nil {
		return m.newTokenFunc(claims)
	}
	return "token-" + claims.UserId, nil
}

func (m *MockJwt) DecodeToken(token string) (jwt.Claims, error) {
	if m.decodeTokenFunc != nil {
		return m.decodeTokenFunc(token)
	}
	return jwt.Claims{UserId: "user-123", Username: "dicoding"}, nil
}
