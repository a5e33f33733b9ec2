// Package rediscache decorates an EventRepository with a read-through cache
// for the full-collection List query. Cache failures always degrade to the
// underlying repository; the cache is never the source of truth.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"eventhub/internal/domain"
)

const (
	listKey = "events:all"

	// listTTL bounds staleness if an invalidation is ever lost.
	listTTL = 5 * time.Minute
)

type eventCache struct {
	inner  domain.EventRepository
	client *redis.Client
	logger *slog.Logger
}

// NewEventCache wraps inner with a Redis-backed cache on List. Every mutation
// drops the cached collection before reaching the underlying repository, so
// a subsequent List refills from the store's ordering.
func NewEventCache(inner domain.EventRepository, client *redis.Client, logger *slog.Logger) domain.EventRepository {
	return &eventCache{
		inner:  inner,
		client: client,
		logger: logger,
	}
}

func (c *eventCache) List(ctx context.Context) ([]*domain.Event, error) {
	data, err := c.client.Get(ctx, listKey).Bytes()
	if err == nil {
		var events []*domain.Event
		if err := json.Unmarshal(data, &events); err == nil {
			return events, nil
		}
		// A value we cannot decode is dropped; the store remains authoritative.
		c.client.Del(ctx, listKey)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("event cache read failed", "err", err)
	}

	events, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(events); err == nil {
		if err := c.client.Set(ctx, listKey, data, listTTL).Err(); err != nil {
			c.logger.Warn("event cache write failed", "err", err)
		}
	}
	return events, nil
}

func (c *eventCache) Create(ctx context.Context, e *domain.Event) error {
	c.invalidate(ctx)
	return c.inner.Create(ctx, e)
}

func (c *eventCache) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return c.inner.GetByID(ctx, id)
}

func (c *eventCache) Update(ctx context.Context, e *domain.Event) error {
	c.invalidate(ctx)
	return c.inner.Update(ctx, e)
}

func (c *eventCache) Delete(ctx context.Context, id string) error {
	c.invalidate(ctx)
	return c.inner.Delete(ctx, id)
}

func (c *eventCache) invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, listKey).Err(); err != nil {
		c.logger.Warn("event cache invalidation failed", "err", err)
	}
}
