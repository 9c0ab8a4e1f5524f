package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"classroom-planner-service/internal/core/domain"
	ports "classroom-planner-service/internal/core/ports/output"
)

type summaryCache struct {
	client *redis.Client
}

// NewSummaryCache wraps a redis client as a coverage-summary cache.
func NewSummaryCache(client *redis.Client) ports.SummaryCache {
	return &summaryCache{client: client}
}

func (c *summaryCache) Get(ctx context.Context, key string) (*domain.CoverageSummary, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}
	var summary domain.CoverageSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("unmarshal cached summary: %w", err)
	}
	return &summary, nil
}

func (c *summaryCache) Set(ctx context.Context, key string, summary *domain.CoverageSummary, ttl time.Duration) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}
