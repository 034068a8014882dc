package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/gifter/models"
	"github.com/cppla/gifter/utils"
)

// StatsController reports row counts per table.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns the number of profiles, posts and comments.
func (s *StatsController) GetStats(ctx *gin.Context) {
	var profileCount, postCount, commentCount int64
	db := s.db.WithContext(ctx.Request.Context())

	if err := db.Model(&models.UserProfile{}).Count(&profileCount).Error; err != nil {
		storeFailure(ctx, 50040, "failed to count profiles", err)
		return
	}
	if err := db.Model(&models.Post{}).Count(&postCount).Error; err != nil {
		storeFailure(ctx, 50041, "failed to count posts", err)
		return
	}
	if err := db.Model(&models.Comment{}).Count(&commentCount).Error; err != nil {
		storeFailure(ctx, 50042, "failed to count comments", err)
		return
	}

	utils.Success(ctx, gin.H{
		"profile_count": profileCount,
		"post_count":    postCount,
		"comment_count": commentCount,
	})
}
