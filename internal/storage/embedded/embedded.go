// Package embedded implements the forum repositories on an embedded SQLite
// database through gorm. It backs local runs and needs no external server.
package embedded

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/forumapi-dev/forumapi/internal/config"
	"github.com/forumapi-dev/forumapi/internal/domain"
	"github.com/forumapi-dev/forumapi/internal/idgen"
	"github.com/forumapi-dev/forumapi/internal/logger"
)

type Storage struct {
	db  *gorm.DB
	ids idgen.Generator
}

// New opens the SQLite file named in the config.
func New(cfg *config.Config, ids idgen.Generator) (*Storage, error) {
	return Open(cfg.Public.Storage.SqlitePath, ids)
}

// Open opens (creating if needed) the database at path and migrates the schema.
func Open(path string, ids idgen.Generator) (*Storage, error) {
	logger.Log.Info("opening sqlite database", "path", path)
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(4)
	sqlDB.SetMaxOpenConns(8)

	if err := db.AutoMigrate(&user{}, &authentication{}, &thread{}, &comment{}, &reply{}, &like{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}
	return &Storage{db: db, ids: ids}, nil
}

func (s *Storage) Driver() string {
	return config.DriverSqlite
}

func (s *Storage) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func formatDate(t time.Time) string {
	return t.UTC().Format(domain.DateLayout)
}
