package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cppla/gifter/config"
	"github.com/cppla/gifter/models"
)

// newTestDB opens a migrated SQLite file with foreign keys enforced.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDatabase(config.AppConfig{
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "test.db"),
		LogLevel:   "silent",
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedProfile(t *testing.T, repo *SQLUserProfileRepository, name string, created time.Time) *models.UserProfile {
	t.Helper()
	p := &models.UserProfile{
		Name:        name,
		Email:       name + "@example.com",
		ImageURL:    "https://img/" + name + ".png",
		Bio:         "bio of " + name,
		DateCreated: created,
	}
	require.NoError(t, repo.Add(context.Background(), p))
	return p
}

func seedPost(t *testing.T, repo *SQLPostRepository, owner int, title string, created time.Time) *models.Post {
	t.Helper()
	p := &models.Post{
		Title:         title,
		Caption:       "caption " + title,
		ImageURL:      "https://img/" + title + ".png",
		DateCreated:   created,
		UserProfileID: owner,
	}
	require.NoError(t, repo.Add(context.Background(), p))
	return p
}

func seedComment(t *testing.T, repo *SQLCommentRepository, postID, author int, msg string) *models.Comment {
	t.Helper()
	c := &models.Comment{Message: msg, PostID: postID, UserProfileID: author}
	require.NoError(t, repo.Add(context.Background(), c))
	return c
}
