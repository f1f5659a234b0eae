// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxCommentLength is the maximum comment body length in bytes.
const MaxCommentLength = 400

// Comment represents a comment on a post. A comment with ReplyID set is a
// reply to another comment on the same post and carries IsReply=true;
// top-level comments have ReplyID nil and IsReply=false. Comments are
// immutable after creation and are removed together with their post.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	PostID    uint           `gorm:"not null;index" json:"post_id"`
	ReplyID   *uint          `gorm:"index" json:"reply_id,omitempty"`
	IsReply   bool           `gorm:"not null;default:false" json:"is_reply"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Replies   []Comment      `gorm:"foreignKey:ReplyID" json:"replies,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
