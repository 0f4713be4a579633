package models

import (
	"time"
)

// Comment belongs to exactly one news item and one author; the author never
// changes after creation. CreatedAt orders comments on the news page and may
// be updated directly in test setups to simulate older comments.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	NewsID    uint      `gorm:"not null;index" json:"news_id"`
	News      News      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"news"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAuthor reports whether u may edit or delete the comment. Identity is
// compared by ID, never by username; an anonymous (nil) user is never the
// author.
func (c *Comment) IsAuthor(u *User) bool {
	return u != nil && u.ID == c.UserID
}
