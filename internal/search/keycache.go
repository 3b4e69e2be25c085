package search

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/devkabir/moviq/internal/catalog"
	"github.com/devkabir/moviq/internal/platform/constants"
)

// CachedCatalogSource decorates a CatalogSource with a short-TTL Redis cache
// over the distinct-key list, the one catalog-sized read the fuzzy stage
// performs on every fallback.
//
// The cache is read-through and failure-transparent: any Redis problem falls
// back to the underlying store. Freshly ingested titles become
// fuzzy-matchable after at most the TTL.
type CachedCatalogSource struct {
	CatalogSource
	client *redis.Client
	logger *slog.Logger
}

func NewCachedCatalogSource(source CatalogSource, client *redis.Client, logger *slog.Logger) *CachedCatalogSource {
	return &CachedCatalogSource{
		CatalogSource: source,
		client:        client,
		logger:        logger,
	}
}

// DistinctKeys serves the key list from Redis when fresh, refilling from the
// underlying store otherwise.
func (cache *CachedCatalogSource) DistinctKeys(context context.Context) ([]catalog.KeyRef, error) {
	cached, err := cache.client.Get(context, constants.RedisKeyCatalogKeys).Bytes()
	if err == nil {
		var keys []catalog.KeyRef
		if jsonErr := json.Unmarshal(cached, &keys); jsonErr == nil {
			return keys, nil
		}
		// Corrupt payload: fall through to the store and overwrite.
	} else if !errors.Is(err, redis.Nil) {
		cache.logger.Warn("catalog_key_cache_read_failed", slog.Any("error", err))
	}

	keys, err := cache.CatalogSource.DistinctKeys(context)
	if err != nil {
		return nil, err
	}

	if payload, jsonErr := json.Marshal(keys); jsonErr == nil {
		if setErr := cache.client.Set(context, constants.RedisKeyCatalogKeys, payload, constants.CatalogKeysTTL).Err(); setErr != nil {
			cache.logger.Warn("catalog_key_cache_write_failed", slog.Any("error", setErr))
		}
	}

	return keys, nil
}
