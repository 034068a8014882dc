package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a content item owned by one profile.
type Post struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title" binding:"required"`
	Caption       string    `gorm:"type:text" json:"caption"`
	ImageURL      string    `gorm:"size:1024;not null" json:"imageUrl" binding:"required"`
	DateCreated   time.Time `gorm:"not null" json:"dateCreated"`
	UserProfileID int       `gorm:"index;not null" json:"userProfileId" binding:"required"`
	Comments      []Comment `json:"comments"`
}

func (Post) TableName() string { return "Post" }

// BeforeCreate fills DateCreated when the client did not provide one.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.DateCreated.IsZero() {
		p.DateCreated = time.Now()
	}
	return nil
}
