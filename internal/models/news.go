package models

import (
	"time"

	"gorm.io/gorm"
)

// News is a published article. Items are immutable once created; Date drives
// the front page ordering and defaults to the moment of creation.
type News struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Text      string    `gorm:"type:text" json:"text"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.Date.IsZero() {
		n.Date = time.Now()
	}
	return nil
}
