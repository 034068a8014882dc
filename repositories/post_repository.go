package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cppla/gifter/models"
)

const postGraphSelect = `
SELECT p.id AS post_id, p.title, p.caption, p.image_url AS post_image_url,
       p.date_created AS post_date_created, p.user_profile_id AS post_user_profile_id,
       c.id AS comment_id, c.message, c.user_profile_id AS comment_user_profile_id
FROM Post p
LEFT JOIN Comment c ON c.post_id = p.id`

// SQLPostRepository stores posts through gorm.
type SQLPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a post repository on top of db.
func NewPostRepository(db *gorm.DB) *SQLPostRepository {
	return &SQLPostRepository{db: db}
}

// GetAll returns every post without comments, oldest first.
func (r *SQLPostRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	if err := r.db.WithContext(ctx).Order("date_created ASC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// GetAllWithComments returns every post with its comments, oldest post first.
func (r *SQLPostRepository) GetAllWithComments(ctx context.Context) ([]models.Post, error) {
	var rows []PostGraphRow
	q := postGraphSelect + "\nORDER BY p.date_created ASC, p.id ASC"
	if err := r.db.WithContext(ctx).Raw(q).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list posts with comments: %w", err)
	}
	return ReconstructPosts(rows), nil
}

func (r *SQLPostRepository) GetByID(ctx context.Context, id int) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return &post, nil
}

func (r *SQLPostRepository) GetByIDWithComments(ctx context.Context, id int) (*models.Post, error) {
	var rows []PostGraphRow
	if err := r.db.WithContext(ctx).Raw(postGraphSelect+"\nWHERE p.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("get post %d with comments: %w", id, err)
	}
	posts := ReconstructPosts(rows)
	if len(posts) == 0 {
		return nil, ErrNotFound
	}
	return &posts[0], nil
}

// Add inserts the post and writes the generated id back into it.
func (r *SQLPostRepository) Add(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error; err != nil {
		return fmt.Errorf("add post: %w", err)
	}
	return nil
}

// Update overwrites every scalar column of the row with post.ID.
func (r *SQLPostRepository) Update(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title":           post.Title,
			"caption":         post.Caption,
			"image_url":       post.ImageURL,
			"date_created":    post.DateCreated,
			"user_profile_id": post.UserProfileID,
		}).Error
	if err != nil {
		return fmt.Errorf("update post %d: %w", post.ID, err)
	}
	return nil
}

func (r *SQLPostRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}
