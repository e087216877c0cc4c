package handler

import (
	"context"
	"net/http"

	"github.com/forumapi-dev/forumapi/internal/domain"
	"github.com/forumapi-dev/forumapi/internal/service"
	"github.com/forumapi-dev/forumapi/internal/utils"
)

const maxBodySize = 1 << 20

// HealthChecker is satisfied by both storage drivers.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Driver() string
}

type Handler struct {
	users    service.UserService
	auth     service.AuthService
	threads  service.ThreadService
	comments service.CommentService
	replies  service.ReplyService
	likes    service.LikeService
	health   HealthChecker
}

func New(
	users service.UserService,
	auth service.AuthService,
	threads service.ThreadService,
	comments service.CommentService,
	replies service.ReplyService,
	likes service.LikeService,
	health HealthChecker,
) *Handler {
	return &Handler{
		users:    users,
		auth:     auth,
		threads:  threads,
		comments: comments,
		replies:  replies,
		likes:    likes,
		health:   health,
	}
}

// readPayload decodes the JSON body of r, capped at maxBodySize.
func readPayload(w http.ResponseWriter, r *http.Request) (domain.Payload, error) {
	return utils.DecodePayload(http.MaxBytesReader(w, r.Body, maxBodySize))
}
