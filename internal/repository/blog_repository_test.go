package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blogit/internal/model"
)

func newTestRepo(t *testing.T) *BlogRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Blog{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewBlogRepository(db)
}

func seedBlog(t *testing.T, repo *BlogRepository, ownerID uint) *model.Blog {
	t.Helper()
	blog := &model.Blog{
		Title:            "t",
		Synopsis:         "s",
		Content:          "c",
		FeaturedImageURL: "i",
		UserID:           ownerID,
	}
	require.NoError(t, repo.Create(blog))
	return blog
}

func TestMarkTrashed_ConditionalFlip(t *testing.T) {
	repo := newTestRepo(t)
	blog := seedBlog(t, repo, 1)

	flipped, err := repo.MarkTrashed(blog.ID, 1)
	require.NoError(t, err)
	assert.True(t, flipped)

	// The second flip matches no row: the state guard is part of the same
	// statement, so a concurrent duplicate cannot also succeed.
	flipped, err = repo.MarkTrashed(blog.ID, 1)
	require.NoError(t, err)
	assert.False(t, flipped)
}

func TestMarkTrashed_OwnerScoped(t *testing.T) {
	repo := newTestRepo(t)
	blog := seedBlog(t, repo, 1)

	flipped, err := repo.MarkTrashed(blog.ID, 2)
	require.NoError(t, err)
	assert.False(t, flipped)

	got, err := repo.GetActiveByIDAndOwner(blog.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Trashed)
}

func TestMarkRestored_ConditionalFlip(t *testing.T) {
	repo := newTestRepo(t)
	blog := seedBlog(t, repo, 1)

	flipped, err := repo.MarkRestored(blog.ID, 1)
	require.NoError(t, err)
	assert.False(t, flipped, "active blog has no trashed row to restore")

	_, err = repo.MarkTrashed(blog.ID, 1)
	require.NoError(t, err)

	flipped, err = repo.MarkRestored(blog.ID, 1)
	require.NoError(t, err)
	assert.True(t, flipped)
}

func TestDelete_RemovesRow(t *testing.T) {
	repo := newTestRepo(t)
	blog := seedBlog(t, repo, 1)

	deleted, err := repo.Delete(blog.ID, 2)
	require.NoError(t, err)
	assert.False(t, deleted, "wrong owner must not delete")

	deleted, err = repo.Delete(blog.ID, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := repo.GetByIDAndOwner(blog.ID, 1)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = repo.Delete(blog.ID, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetActiveByIDAndOwner_HidesTrashed(t *testing.T) {
	repo := newTestRepo(t)
	blog := seedBlog(t, repo, 1)

	_, err := repo.MarkTrashed(blog.ID, 1)
	require.NoError(t, err)

	got, err := repo.GetActiveByIDAndOwner(blog.ID, 1)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetByIDAndOwner(blog.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Trashed)
}
