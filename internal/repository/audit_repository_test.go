package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blogit/internal/model"
)

func TestAuditEvents_RoundTrip(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.AuditEvent{}))

	repo := NewAuditEventRepository(db)
	base := time.Now().Add(-time.Minute)
	for i, action := range []string{model.ActionCreated, model.ActionTrashed, model.ActionPurged} {
		require.NoError(t, repo.Create(&model.AuditEvent{
			BlogID:    7,
			UserID:    1,
			Action:    action,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, repo.Create(&model.AuditEvent{BlogID: 8, UserID: 1, Action: model.ActionCreated}))

	events, err := repo.ListByBlogID(7)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, model.ActionCreated, events[0].Action)
	assert.Equal(t, model.ActionTrashed, events[1].Action)
	assert.Equal(t, model.ActionPurged, events[2].Action)
}
