package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cppla/gifter/models"
)

// SQLCommentRepository stores comments through gorm.
type SQLCommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *SQLCommentRepository {
	return &SQLCommentRepository{db: db}
}

func (r *SQLCommentRepository) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get comment %d: %w", id, err)
	}
	return &comment, nil
}

// GetByPostID lists the comments of a post in insertion order.
func (r *SQLCommentRepository) GetByPostID(ctx context.Context, postID int) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("id ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments of post %d: %w", postID, err)
	}
	return comments, nil
}

func (r *SQLCommentRepository) Add(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("add comment: %w", err)
	}
	return nil
}

func (r *SQLCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]interface{}{
			"message":         comment.Message,
			"post_id":         comment.PostID,
			"user_profile_id": comment.UserProfileID,
		}).Error
	if err != nil {
		return fmt.Errorf("update comment %d: %w", comment.ID, err)
	}
	return nil
}

func (r *SQLCommentRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	return nil
}
