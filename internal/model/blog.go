package model

import "time"

// Blog is a post owned by exactly one user. UserID is immutable after
// creation. Trashed marks the soft-deleted state; a purge removes the row
// entirely, so there is no terminal flag to persist.
type Blog struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	Synopsis         string    `gorm:"size:512;not null" json:"synopsis"`
	Content          string    `gorm:"type:text;not null" json:"content"`
	FeaturedImageURL string    `gorm:"size:512;not null" json:"featured_image_url"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	Trashed          bool      `gorm:"not null;default:false" json:"trashed"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
