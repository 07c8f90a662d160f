package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"blogit/internal/model"
)

// BlogListCache holds each owner's active blog list for a short TTL. Every
// state-changing blog operation invalidates the owner's entry before the
// request returns, so the relational store stays the source of truth.
type BlogListCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewBlogListCache(client *redisv9.Client, ttl time.Duration) *BlogListCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &BlogListCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *BlogListCache) GetActive(ctx context.Context, ownerID uint) ([]model.Blog, bool, error) {
	raw, err := c.client.Get(ctx, c.key(ownerID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get blog list failed: %w", err)
	}

	var blogs []model.Blog
	if err := json.Unmarshal([]byte(raw), &blogs); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached blog list failed: %w", err)
	}
	return blogs, true, nil
}

func (c *BlogListCache) SetActive(ctx context.Context, ownerID uint, blogs []model.Blog) error {
	payload, err := json.Marshal(blogs)
	if err != nil {
		return fmt.Errorf("marshal blog list cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.key(ownerID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set blog list failed: %w", err)
	}
	return nil
}

func (c *BlogListCache) Invalidate(ctx context.Context, ownerID uint) error {
	if err := c.client.Del(ctx, c.key(ownerID)).Err(); err != nil {
		return fmt.Errorf("redis delete blog list failed: %w", err)
	}
	return nil
}

func (c *BlogListCache) key(ownerID uint) string {
	return fmt.Sprintf("blogs:active:%d", ownerID)
}
