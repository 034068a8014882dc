package repositories

import (
	"time"

	"github.com/cppla/gifter/models"
)

// ProfileGraphRow is one row of UserProfile LEFT JOIN Post LEFT JOIN Comment.
// Post and comment columns are nil when the join found no partner.
type ProfileGraphRow struct {
	ProfileID          int       `gorm:"column:profile_id"`
	Name               string    `gorm:"column:name"`
	Email              string    `gorm:"column:email"`
	ProfileImageURL    string    `gorm:"column:profile_image_url"`
	Bio                string    `gorm:"column:bio"`
	ProfileDateCreated time.Time `gorm:"column:profile_date_created"`

	PostColumns
	CommentColumns
}

// PostGraphRow is one row of Post LEFT JOIN Comment.
type PostGraphRow struct {
	PostColumns
	CommentColumns
}

// PostColumns holds the nullable post side of a joined row.
type PostColumns struct {
	PostID            *int       `gorm:"column:post_id"`
	Title             *string    `gorm:"column:title"`
	Caption           *string    `gorm:"column:caption"`
	PostImageURL      *string    `gorm:"column:post_image_url"`
	PostDateCreated   *time.Time `gorm:"column:post_date_created"`
	PostUserProfileID *int       `gorm:"column:post_user_profile_id"`
}

// CommentColumns holds the nullable comment side of a joined row.
type CommentColumns struct {
	CommentID            *int    `gorm:"column:comment_id"`
	Message              *string `gorm:"column:message"`
	CommentUserProfileID *int    `gorm:"column:comment_user_profile_id"`
}

// ReconstructProfile folds joined rows for a single profile into one aggregate.
// Profile columns are taken from the first row. It reports false for an empty
// row set. A comment column without its post column is not supported.
func ReconstructProfile(rows []ProfileGraphRow) (*models.UserProfile, bool) {
	if len(rows) == 0 {
		return nil, false
	}

	first := rows[0]
	profile := &models.UserProfile{
		ID:          first.ProfileID,
		Name:        first.Name,
		Email:       first.Email,
		ImageURL:    first.ProfileImageURL,
		Bio:         first.Bio,
		DateCreated: first.ProfileDateCreated,
	}

	g := newPostGraph()
	for _, row := range rows {
		g.fold(row.PostColumns, row.CommentColumns)
	}
	profile.Posts = g.posts
	return profile, true
}

// ReconstructPosts folds Post LEFT JOIN Comment rows into posts in first-seen order.
func ReconstructPosts(rows []PostGraphRow) []models.Post {
	g := newPostGraph()
	for _, row := range rows {
		g.fold(row.PostColumns, row.CommentColumns)
	}
	return g.posts
}

// postGraph accumulates posts in first-seen order; index maps post id to slice position.
type postGraph struct {
	posts []models.Post
	index map[int]int
}

func newPostGraph() *postGraph {
	return &postGraph{posts: []models.Post{}, index: map[int]int{}}
}

// fold merges one joined row. A post is created on first sight of its id;
// every non-null comment is appended, never deduplicated.
func (g *postGraph) fold(p PostColumns, c CommentColumns) {
	if p.PostID == nil {
		return
	}

	idx, ok := g.index[*p.PostID]
	if !ok {
		g.posts = append(g.posts, newPost(p))
		idx = len(g.posts) - 1
		g.index[*p.PostID] = idx
	}

	if c.CommentID != nil {
		g.posts[idx].Comments = append(g.posts[idx].Comments, models.Comment{
			ID:            *c.CommentID,
			Message:       deref(c.Message),
			PostID:        *p.PostID,
			UserProfileID: deref(c.CommentUserProfileID),
		})
	}
}

func newPost(p PostColumns) models.Post {
	return models.Post{
		ID:            *p.PostID,
		Title:         deref(p.Title),
		Caption:       deref(p.Caption),
		ImageURL:      deref(p.PostImageURL),
		DateCreated:   deref(p.PostDateCreated),
		UserProfileID: deref(p.PostUserProfileID),
		Comments:      []models.Comment{},
	}
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
