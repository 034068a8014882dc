package models

// Comment is a remark on a post. UserProfileID is the author, not the post owner.
type Comment struct {
	ID            int    `gorm:"primaryKey" json:"id"`
	Message       string `gorm:"type:text;not null" json:"message" binding:"required"`
	PostID        int    `gorm:"index;not null" json:"postId" binding:"required"`
	UserProfileID int    `gorm:"index;not null" json:"userProfileId" binding:"required"`
}

func (Comment) TableName() string { return "Comment" }
