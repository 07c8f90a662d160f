package repository

import (
	"fmt"

	"gorm.io/gorm"

	"blogit/internal/model"
)

type AuditEventRepository struct {
	db *gorm.DB
}

func NewAuditEventRepository(db *gorm.DB) *AuditEventRepository {
	return &AuditEventRepository{db: db}
}

func (r *AuditEventRepository) Create(event *model.AuditEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("create audit event failed: %w", err)
	}
	return nil
}

func (r *AuditEventRepository) ListByBlogID(blogID uint) ([]model.AuditEvent, error) {
	var events []model.AuditEvent
	if err := r.db.Where("blog_id = ?", blogID).Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list audit events failed: %w", err)
	}
	return events, nil
}
