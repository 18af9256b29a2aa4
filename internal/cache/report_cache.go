// Package cache holds the Redis-backed read caches.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"ailiteracy/internal/model"
)

// ReportCache caches final reports for the reports endpoint
type ReportCache interface {
	Set(ctx context.Context, sessionID string, report *model.Report) error
	Get(ctx context.Context, sessionID string) (*model.Report, error)
}

type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a report cache with a 24h TTL
func NewReportCache(client *redis.Client) ReportCache {
	return &reportCache{client: client, ttl: 24 * time.Hour}
}

func (c *reportCache) Set(ctx context.Context, sessionID string, report *model.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "report:"+sessionID, data, c.ttl).Err()
}

// Get returns the cached report, or nil on a miss
func (c *reportCache) Get(ctx context.Context, sessionID string) (*model.Report, error) {
	data, err := c.client.Get(ctx, "report:"+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var report model.Report
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}
