// Package repositories maps the UserProfile, Post and Comment tables to entities.
// Nested reads go through a single LEFT JOIN whose rows are folded by the
// reconstructors in rowgraph.go.
package repositories

import (
	"context"
	"errors"

	"github.com/cppla/gifter/models"
)

// ErrNotFound is returned by single-entity reads when no row matches.
var ErrNotFound = errors.New("record not found")

// UserProfileRepository is the data access contract for profiles.
type UserProfileRepository interface {
	GetAll(ctx context.Context) ([]models.UserProfile, error)
	GetByID(ctx context.Context, id int) (*models.UserProfile, error)
	GetByIDWithPosts(ctx context.Context, id int) (*models.UserProfile, error)
	Add(ctx context.Context, profile *models.UserProfile) error
	Update(ctx context.Context, profile *models.UserProfile) error
	Delete(ctx context.Context, id int) error
}

// PostRepository is the data access contract for posts.
type PostRepository interface {
	GetAll(ctx context.Context) ([]models.Post, error)
	GetAllWithComments(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int) (*models.Post, error)
	GetByIDWithComments(ctx context.Context, id int) (*models.Post, error)
	Add(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int) error
}

// CommentRepository is the data access contract for comments.
type CommentRepository interface {
	GetByID(ctx context.Context, id int) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID int) ([]models.Comment, error)
	Add(ctx context.Context, comment *models.Comment) error
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id int) error
}
