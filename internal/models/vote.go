package models

import "time"

// Vote represents a user's like on a post. At most one vote per
// (user, post) pair by application convention: the duplicate check happens
// in the service layer, not as a database constraint. There is no unlike
// operation, so votes are never deleted on their own.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}
