package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg/dataset"
)

const resultKeyPrefix = "errata:search:"

// ResultCache keeps recent search pages in Redis so repeated queries skip the
// in-memory scan. A nil client disables caching; every method becomes a no-op
// miss, which keeps single-node deployments redis-free.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewResultCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ResultCache {
	return &ResultCache{
		client: client,
		ttl:    defaultDuration(ttl, 30*time.Second),
		logger: logger,
	}
}

// Key builds a deterministic cache key for a query. The text is lowered so
// "Card" and "card" share an entry, matching the case-insensitive match.
func Key(q dataset.Query) string {
	return fmt.Sprintf("%s%s|%d|%s|%s", resultKeyPrefix, strings.ToLower(q.Text), q.Page, q.API, q.Severity)
}

func (rc *ResultCache) Get(ctx context.Context, key string) (dataset.Result, bool) {
	if rc.client == nil {
		return dataset.Result{}, false
	}
	raw, err := rc.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			rc.logger.Warn("result cache read failed", zap.String("key", key), zap.Error(err))
		}
		return dataset.Result{}, false
	}
	var res dataset.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		rc.logger.Warn("result cache entry corrupt", zap.String("key", key), zap.Error(err))
		return dataset.Result{}, false
	}
	return res, true
}

func (rc *ResultCache) Set(ctx context.Context, key string, res dataset.Result) {
	if rc.client == nil {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		rc.logger.Warn("result cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := rc.client.Set(ctx, key, raw, rc.ttl).Err(); err != nil {
		rc.logger.Warn("result cache write failed", zap.String("key", key), zap.Error(err))
	}
}
