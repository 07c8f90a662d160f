package app

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blogit/internal/model"
	"blogit/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	// A single connection keeps every statement on the same in-memory
	// database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.User{}, &model.Blog{}, &model.AuditEvent{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newBlogService(t *testing.T) (*BlogService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewBlogService(repository.NewBlogRepository(db), nil, nil), db
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", testTokenTTL), db
}

func mustCreateBlog(t *testing.T, s *BlogService, ownerID uint, title string) *model.Blog {
	t.Helper()
	blog, err := s.Create(CreateBlogInput{
		OwnerID:          ownerID,
		Title:            title,
		Synopsis:         "a synopsis",
		Content:          "some content",
		FeaturedImageURL: "https://img.example.com/cover.png",
	})
	if err != nil {
		t.Fatalf("create blog failed: %v", err)
	}
	return blog
}
