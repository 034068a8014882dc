package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cppla/gifter/models"
)

// profileGraphQuery returns one row per (profile, post, comment) for a single
// profile. Rows carry NULL post columns for a profile without posts and NULL
// comment columns for a post without comments.
const profileGraphQuery = `
SELECT up.id AS profile_id, up.name, up.email, up.image_url AS profile_image_url,
       up.bio, up.date_created AS profile_date_created,
       p.id AS post_id, p.title, p.caption, p.image_url AS post_image_url,
       p.date_created AS post_date_created, p.user_profile_id AS post_user_profile_id,
       c.id AS comment_id, c.message, c.user_profile_id AS comment_user_profile_id
FROM UserProfile up
LEFT JOIN Post p ON p.user_profile_id = up.id
LEFT JOIN Comment c ON c.post_id = p.id
WHERE up.id = ?`

// SQLUserProfileRepository stores profiles through gorm.
type SQLUserProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository creates a profile repository on top of db.
func NewUserProfileRepository(db *gorm.DB) *SQLUserProfileRepository {
	return &SQLUserProfileRepository{db: db}
}

// GetAll returns every profile without posts, oldest first.
func (r *SQLUserProfileRepository) GetAll(ctx context.Context) ([]models.UserProfile, error) {
	profiles := []models.UserProfile{}
	if err := r.db.WithContext(ctx).Order("date_created ASC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// GetByID returns the profile without posts, or ErrNotFound.
func (r *SQLUserProfileRepository) GetByID(ctx context.Context, id int) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile %d: %w", id, err)
	}
	return &profile, nil
}

// GetByIDWithPosts returns the profile with its posts and their comments in one query.
func (r *SQLUserProfileRepository) GetByIDWithPosts(ctx context.Context, id int) (*models.UserProfile, error) {
	var rows []ProfileGraphRow
	if err := r.db.WithContext(ctx).Raw(profileGraphQuery, id).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("get profile %d with posts: %w", id, err)
	}
	profile, ok := ReconstructProfile(rows)
	if !ok {
		return nil, ErrNotFound
	}
	return profile, nil
}

// Add inserts the profile and writes the generated id back into it.
func (r *SQLUserProfileRepository) Add(ctx context.Context, profile *models.UserProfile) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(profile).Error; err != nil {
		return fmt.Errorf("add profile: %w", err)
	}
	return nil
}

// Update overwrites every scalar column of the row with profile.ID.
// An unknown id is not an error.
func (r *SQLUserProfileRepository) Update(ctx context.Context, profile *models.UserProfile) error {
	err := r.db.WithContext(ctx).Model(&models.UserProfile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"name":         profile.Name,
			"email":        profile.Email,
			"image_url":    profile.ImageURL,
			"bio":          profile.Bio,
			"date_created": profile.DateCreated,
		}).Error
	if err != nil {
		return fmt.Errorf("update profile %d: %w", profile.ID, err)
	}
	return nil
}

// Delete removes the profile. Rows still referencing it make the store reject
// the delete and that error is returned as is.
func (r *SQLUserProfileRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).Delete(&models.UserProfile{}, id).Error; err != nil {
		return fmt.Errorf("delete profile %d: %w", id, err)
	}
	return nil
}
