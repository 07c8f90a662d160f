package model

import "time"

// Lifecycle actions recorded in the audit trail.
const (
	ActionCreated   = "created"
	ActionTrashed   = "trashed"
	ActionRecovered = "recovered"
	ActionPurged    = "purged"
)

// AuditEvent records a blog lifecycle transition. Rows are written
// asynchronously by the audit worker and are never read on a request path.
type AuditEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlogID    uint      `gorm:"not null;index" json:"blog_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Action    string    `gorm:"size:16;not null;index" json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
