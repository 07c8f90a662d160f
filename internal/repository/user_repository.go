package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"blogit/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

// GetByUsername returns a non-deleted user, or nil when none matches.
func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ? AND is_deleted = ?", username, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by username failed: %w", err)
	}
	return &user, nil
}

// GetByEmail returns a non-deleted user, or nil when none matches.
func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by email failed: %w", err)
	}
	return &user, nil
}

// GetByIdentifier looks up a non-deleted user whose username or email equals
// the login identifier. Email addresses are stored lowercased, so the email
// side compares the lowercased identifier.
func (r *UserRepository) GetByIdentifier(identifier string) (*model.User, error) {
	var user model.User
	err := r.db.
		Where("(username = ? OR email = ?) AND is_deleted = ?", identifier, strings.ToLower(identifier), false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by identifier failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id failed: %w", err)
	}
	return &user, nil
}

// UpdateFields applies a partial update. The caller builds the field map;
// empty maps are rejected upstream.
func (r *UserRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("update user failed: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdatePasswordHash(id uint, hash string) error {
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Update("password_hash", hash).Error; err != nil {
		return fmt.Errorf("update password failed: %w", err)
	}
	return nil
}

// SoftDelete flags the account as deleted. The row is kept.
func (r *UserRepository) SoftDelete(id uint) error {
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Update("is_deleted", true).Error; err != nil {
		return fmt.Errorf("soft delete user failed: %w", err)
	}
	return nil
}
