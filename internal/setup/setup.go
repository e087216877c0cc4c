package setup

import (
	"context"
	"fmt"

	"github.com/forumapi-dev/forumapi/internal/config"
	"github.com/forumapi-dev/forumapi/internal/content"
	"github.com/forumapi-dev/forumapi/internal/handler"
	"github.com/forumapi-dev/forumapi/internal/idgen"
	"github.com/forumapi-dev/forumapi/internal/jwt"
	mw "github.com/forumapi-dev/forumapi/internal/middleware"
	"github.com/forumapi-dev/forumapi/internal/middleware/ratelimiter"
	"github.com/forumapi-dev/forumapi/internal/service"
	"github.com/forumapi-dev/forumapi/internal/storage/embedded"
	"github.com/forumapi-dev/forumapi/internal/storage/pg"
)

// Storage is everything a driver has to provide.
type Storage interface {
	service.ThreadRepository
	service.CommentRepository
	service.ReplyRepository
	service.LikeRepository
	service.UserRepository
	service.AuthenticationRepository
	Ping(ctx context.Context) error
	Driver() string
	Cleanup() error
}

var (
	_ Storage = (*pg.Storage)(nil)
	_ Storage = (*embedded.Storage)(nil)
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	ThreadsLimiter *ratelimiter.UserRateLimiter // nil when disabled
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}
	return Wire(cfg, storage), nil
}

// Wire builds services and transport on top of an already opened storage.
func Wire(cfg *config.Config, storage Storage) *Dependencies {
	accessJwt := jwt.New(cfg.AccessTokenKey(), cfg.AccessTokenTTL())
	refreshJwt := jwt.New(cfg.RefreshTokenKey(), 0)
	sanitizer := content.New()

	users := service.NewUser(storage)
	auth := service.NewAuth(storage, storage, accessJwt, refreshJwt)
	threads := service.NewThread(storage, storage, storage, storage, sanitizer, cfg.Public.AggregationConcurrency)
	comments := service.NewComment(storage, storage, sanitizer)
	replies := service.NewReply(storage, storage, storage, sanitizer)
	likes := service.NewLike(storage, storage, storage)

	h := handler.New(users, auth, threads, comments, replies, likes, storage)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: mw.NewAuth(accessJwt),
		ThreadsLimiter: ratelimiter.PerWindow(cfg.Public.ThreadsRateLimit, cfg.Public.ThreadsRateWindow),
	}
}

func openStorage(cfg *config.Config) (Storage, error) {
	ids := idgen.UUID
	switch cfg.Public.Storage.Driver {
	case config.DriverPostgres:
		storage, err := pg.New(cfg, ids)
		if err != nil {
			return nil, err
		}
		return storage, nil
	case config.DriverSqlite:
		storage, err := embedded.New(cfg, ids)
		if err != nil {
			return nil, err
		}
		return storage, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Public.Storage.Driver)
	}
}
