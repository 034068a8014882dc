package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProfile represents a user account. Posts is only populated by the nested read.
type UserProfile struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name" binding:"required"`
	Email       string    `gorm:"size:255;not null" json:"email" binding:"required"`
	ImageURL    string    `gorm:"size:1024" json:"imageUrl"`
	Bio         string    `gorm:"type:text" json:"bio"`
	DateCreated time.Time `gorm:"not null" json:"dateCreated"`
	Posts       []Post    `json:"posts"`
	Comments    []Comment `gorm:"foreignKey:UserProfileID" json:"-"`
}

// TableName keeps the singular table name used by the raw join queries.
func (UserProfile) TableName() string { return "UserProfile" }

// BeforeCreate fills DateCreated when the client did not provide one.
func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.DateCreated.IsZero() {
		p.DateCreated = time.Now()
	}
	return nil
}
