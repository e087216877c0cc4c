// Package pg implements the forum repositories on PostgreSQL.
package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/forumapi-dev/forumapi/internal/config"
	"github.com/forumapi-dev/forumapi/internal/domain"
	"github.com/forumapi-dev/forumapi/internal/idgen"
	"github.com/forumapi-dev/forumapi/internal/logger"
)

const uniqueViolation = "23505"

// ConnectionConfig holds database connection pool settings.
type ConnectionConfig struct {
	MaxOpenConns    int           // Maximum number of open connections to the database
	MaxIdleConns    int           // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration // Maximum amount of time a connection may be reused
	ConnMaxIdleTime time.Duration // Maximum amount of time a connection may be idle
}

// DefaultConnectionConfig returns sensible defaults for an API server. The
// thread aggregation fans out per comment, so the pool is sized above the
// default aggregation concurrency.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 1 * time.Minute,
	}
}

type Storage struct {
	db  *sql.DB
	ids idgen.Generator
}

// New connects to the configured database.
func New(cfg *config.Config, ids idgen.Generator) (*Storage, error) {
	logger.Log.Info("connecting to postgres", "host", cfg.Public.Pg.Host, "dbname", cfg.Public.Pg.Dbname)
	db, err := Connect(cfg, DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("connected to postgres")

	storage := &Storage{db: db, ids: ids}
	if err := storage.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return storage, nil
}

// Connect establishes and verifies a connection to the PostgreSQL database.
func Connect(cfg *config.Config, connCfg ConnectionConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Public.Pg.Host, cfg.Public.Pg.Port,
		cfg.Public.Pg.User, cfg.PgPassword(),
		cfg.Public.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(connCfg.MaxOpenConns)
	db.SetMaxIdleConns(connCfg.MaxIdleConns)
	db.SetConnMaxLifetime(connCfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(connCfg.ConnMaxIdleTime)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Driver() string {
	return config.DriverPostgres
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func formatDate(t time.Time) string {
	return t.UTC().Format(domain.DateLayout)
}
