package model

import "time"

// User is a registered account. Accounts are never hard-deleted: IsDeleted
// marks the account unusable while keeping the row. Username and email
// uniqueness is enforced among non-deleted accounts by the auth service, so
// the columns carry plain indexes rather than unique ones.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:64;not null" json:"first_name"`
	LastName     string    `gorm:"size:64;not null" json:"last_name"`
	Username     string    `gorm:"size:64;not null;index" json:"username"`
	Email        string    `gorm:"size:128;not null;index" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsDeleted    bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt    time.Time `json:"date_joined"`
	UpdatedAt    time.Time `json:"last_updated"`
}
