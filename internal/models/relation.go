// Package models contains data structures for the application's domain models.
package models

import "time"

// Relation is a directed follow edge: FromUser follows ToUser.
//
// Uniqueness of (from_user_id, to_user_id) is enforced by an existence
// check in the service layer rather than a database constraint, matching
// the documented at-most-one-edge convention. Concurrent duplicate follow
// requests can therefore race; see DESIGN.md.
type Relation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FromUserID uint      `gorm:"not null;index" json:"from_user_id"`
	ToUserID   uint      `gorm:"not null;index" json:"to_user_id"`
	CreatedAt  time.Time `json:"created_at"`

	FromUser User `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
	ToUser   User `gorm:"foreignKey:ToUserID" json:"to_user,omitempty"`
}

// TableName specifies the table name for GORM
func (Relation) TableName() string {
	return "relations"
}
