// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a post in the Mingle application. The slug is derived
// from the first 30 characters of the body and recomputed on every update,
// so a stored slug always reflects the body it was saved with.
type Post struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Body      string `gorm:"type:text;not null" json:"body"`
	Slug      string `gorm:"not null;index" json:"slug"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID" json:"user"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CanLike indicates whether the current requesting user may still like
	// this post (computed; false for anonymous viewers)
	CanLike   bool           `gorm:"->" json:"can_like"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
