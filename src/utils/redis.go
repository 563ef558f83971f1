package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	DB "leadform-backend/src/database"
	"leadform-backend/src/models"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

const formCacheTTL = 5 * time.Minute

// ensureClient returns the shared Redis client managed by the database
// package. If Redis was not initialized this returns nil and callers fall
// back to Mongo.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

func formCacheKey(formID string) string {
	return fmt.Sprintf("form:%s", formID)
}

// CacheForm stores a form definition for the respondent hot path.
// No-op when Redis is not available (development mode).
func CacheForm(form *models.Form) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	raw, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("failed to marshal form for cache: %v", err)
	}
	if err := client.Set(Ctx, formCacheKey(form.ID.Hex()), raw, formCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache form: %v", err)
	}
	return nil
}

// GetCachedForm returns the cached form, or nil on a miss or when Redis is
// not available.
func GetCachedForm(formID string) (*models.Form, error) {
	client := ensureClient()
	if client == nil {
		return nil, nil
	}

	raw, err := client.Get(Ctx, formCacheKey(formID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, fmt.Errorf("failed to read form cache: %v", err)
	}

	var form models.Form
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		return nil, fmt.Errorf("failed to decode cached form: %v", err)
	}
	return &form, nil
}

// InvalidateForm drops the cached copy after an authoring update.
func InvalidateForm(formID string) error {
	client := ensureClient()
	if client == nil {
		return nil
	}
	if err := client.Del(Ctx, formCacheKey(formID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate form cache: %v", err)
	}
	return nil
}
