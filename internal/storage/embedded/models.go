package embedded

import "time"

type user struct {
	ID       string `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Fullname string `gorm:"not null"`
}

func (user) TableName() string { return "users" }

type authentication struct {
	Token string `gorm:"primaryKey"`
}

func (authentication) TableName() string { return "authentications" }

type thread struct {
	ID        string `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Body      string `gorm:"not null"`
	Owner     string `gorm:"not null;index"`
	CreatedAt time.Time
}

func (thread) TableName() string { return "threads" }

// Seq keeps insertion order; ID is the public identifier.
type comment struct {
	Seq       uint   `gorm:"primaryKey;autoIncrement"`
	ID        string `gorm:"uniqueIndex;not null"`
	ThreadID  string `gorm:"not null;index"`
	Owner     string `gorm:"not null"`
	Content   string `gorm:"not null"`
	IsDeleted bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

func (comment) TableName() string { return "comments" }

type reply struct {
	Seq       uint   `gorm:"primaryKey;autoIncrement"`
	ID        string `gorm:"uniqueIndex;not null"`
	CommentID string `gorm:"not null;index"`
	Owner     string `gorm:"not null"`
	Content   string `gorm:"not null"`
	IsDeleted bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

func (reply) TableName() string { return "replies" }

type like struct {
	ID        string `gorm:"primaryKey"`
	CommentID string `gorm:"not null;uniqueIndex:likes_comment_owner_key"`
	Owner     string `gorm:"not null;uniqueIndex:likes_comment_owner_key"`
	CreatedAt time.Time
}

func (like) TableName() string { return "likes" }

// entryRow is the joined shape of a comment or reply with its author.
type entryRow struct {
	ID        string
	Username  string
	CreatedAt time.Time
	Content   string
	IsDeleted bool
}

type threadRow struct {
	ID        string
	Title     string
	Body      string
	Username  string
	CreatedAt time.Time
}
