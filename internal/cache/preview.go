// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// preview.go provides a Valkey-backed cache of rendered poster previews.
// A preview is pure function of the poster record, so the cached HTML can
// live until the record changes; a TTL bounds staleness anyway in case an
// invalidation is lost. Cache failures are logged and degrade to a miss;
// the cache is never a correctness dependency.
package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// previewKeyPrefix namespaces preview keys in Valkey.
	previewKeyPrefix = "preview:"

	// DefaultPreviewTTL is how long a rendered preview stays cached.
	DefaultPreviewTTL = 5 * time.Minute
)

// PreviewCache stores rendered preview HTML per poster ID in Valkey.
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache creates a preview cache backed by the given Valkey client.
func NewPreviewCache(client *redis.Client, ttl time.Duration) *PreviewCache {
	if ttl == 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewCache{client: client, ttl: ttl}
}

// Get retrieves cached HTML for a poster. The second return reports a hit.
func (pc *PreviewCache) Get(ctx context.Context, posterID int64) ([]byte, bool) {
	val, err := pc.client.Get(ctx, previewKey(posterID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("preview cache get error", "poster_id", posterID, "error", err)
		return nil, false
	}
	slog.Debug("preview cache hit", "poster_id", posterID)
	return val, true
}

// Set stores rendered HTML for a poster with the configured TTL.
func (pc *PreviewCache) Set(ctx context.Context, posterID int64, html []byte) {
	if err := pc.client.Set(ctx, previewKey(posterID), html, pc.ttl).Err(); err != nil {
		slog.Warn("preview cache set error", "poster_id", posterID, "error", err)
	}
}

// Invalidate removes a poster's cached preview. Called on every write to
// the poster, including data-only patches and deletion.
func (pc *PreviewCache) Invalidate(ctx context.Context, posterID int64) {
	if err := pc.client.Del(ctx, previewKey(posterID)).Err(); err != nil {
		slog.Warn("preview cache invalidate error", "poster_id", posterID, "error", err)
	}
	slog.Debug("preview cache invalidated", "poster_id", posterID)
}

// InvalidateAll removes every cached preview by scanning for the prefix.
// Runs at startup because previews cached by a previous build may not
// match what the current templates render.
func (pc *PreviewCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, previewKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("preview cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("preview cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("preview cache fully cleared", "deleted", deleted)
	}
}

func previewKey(posterID int64) string {
	return previewKeyPrefix + strconv.FormatInt(posterID, 10)
}
