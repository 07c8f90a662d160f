package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blogit/internal/model"
)

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(blog *model.Blog) error {
	if err := r.db.Create(blog).Error; err != nil {
		return fmt.Errorf("create blog failed: %w", err)
	}
	return nil
}

func (r *BlogRepository) ListActiveByOwner(ownerID uint) ([]model.Blog, error) {
	var blogs []model.Blog
	err := r.db.
		Where("user_id = ? AND trashed = ?", ownerID, false).
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, fmt.Errorf("list active blogs failed: %w", err)
	}
	return blogs, nil
}

func (r *BlogRepository) ListTrashedByOwner(ownerID uint) ([]model.Blog, error) {
	var blogs []model.Blog
	err := r.db.
		Where("user_id = ? AND trashed = ?", ownerID, true).
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, fmt.Errorf("list trashed blogs failed: %w", err)
	}
	return blogs, nil
}

// GetActiveByIDAndOwner returns nil when the blog is absent, trashed, or
// owned by someone else. Those cases are indistinguishable to the caller.
func (r *BlogRepository) GetActiveByIDAndOwner(blogID, ownerID uint) (*model.Blog, error) {
	var blog model.Blog
	err := r.db.
		Where("id = ? AND user_id = ? AND trashed = ?", blogID, ownerID, false).
		First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blog failed: %w", err)
	}
	return &blog, nil
}

// GetByIDAndOwner fetches regardless of the trashed flag. Used to
// disambiguate "not found" from "wrong state" after a conditional update
// matched no rows.
func (r *BlogRepository) GetByIDAndOwner(blogID, ownerID uint) (*model.Blog, error) {
	var blog model.Blog
	if err := r.db.Where("id = ? AND user_id = ?", blogID, ownerID).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blog failed: %w", err)
	}
	return &blog, nil
}

// UpdateFields applies a partial update scoped to (id, owner). It does not
// filter on the trashed flag: trashed blogs stay editable.
func (r *BlogRepository) UpdateFields(blogID, ownerID uint, fields map[string]interface{}) error {
	err := r.db.Model(&model.Blog{}).
		Where("id = ? AND user_id = ?", blogID, ownerID).
		Updates(fields).Error
	if err != nil {
		return fmt.Errorf("update blog failed: %w", err)
	}
	return nil
}

// MarkTrashed flips ACTIVE to TRASHED in a single conditional statement.
// Returns false when no active row matched, so two concurrent calls cannot
// both report success.
func (r *BlogRepository) MarkTrashed(blogID, ownerID uint) (bool, error) {
	result := r.db.Model(&model.Blog{}).
		Where("id = ? AND user_id = ? AND trashed = ?", blogID, ownerID, false).
		Update("trashed", true)
	if result.Error != nil {
		return false, fmt.Errorf("trash blog failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// MarkRestored flips TRASHED back to ACTIVE, with the same single-statement
// guarantee as MarkTrashed.
func (r *BlogRepository) MarkRestored(blogID, ownerID uint) (bool, error) {
	result := r.db.Model(&model.Blog{}).
		Where("id = ? AND user_id = ? AND trashed = ?", blogID, ownerID, true).
		Update("trashed", false)
	if result.Error != nil {
		return false, fmt.Errorf("restore blog failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Delete removes the row permanently. Returns false when nothing matched.
func (r *BlogRepository) Delete(blogID, ownerID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", blogID, ownerID).Delete(&model.Blog{})
	if result.Error != nil {
		return false, fmt.Errorf("delete blog failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
