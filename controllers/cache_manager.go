package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Rune905/Beauty-Bloom/models"
	"github.com/Rune905/Beauty-Bloom/services"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	productCachePrefix     = "product:detail:"
	productListCachePrefix = "products:v:"
	cacheVersionKey        = "products:version"

	defaultCacheTTL = 10 * time.Minute
)

// CacheManager caches catalog reads in Redis. List keys embed a version
// number; any product write bumps the version, which orphans every cached
// list at once. A nil client disables caching entirely.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(client *redis.Client) *CacheManager {
	return &CacheManager{redis: client, ttl: defaultCacheTTL}
}

func (cm *CacheManager) enabled() bool {
	return cm != nil && cm.redis != nil
}

// GetProductList returns a cached list response, if any.
func (cm *CacheManager) GetProductList(ctx context.Context, params services.ListParams) (map[string]interface{}, bool) {
	if !cm.enabled() {
		return nil, false
	}

	version, err := cm.getCacheVersion(ctx)
	if err != nil {
		return nil, false
	}

	cached, err := cm.redis.Get(ctx, cm.listKey(version, params)).Result()
	if err != nil {
		return nil, false
	}

	var response map[string]interface{}
	if err := json.Unmarshal([]byte(cached), &response); err != nil {
		zap.L().Warn("failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}
	return response, true
}

// SetProductListAsync caches a list response off the request path.
func (cm *CacheManager) SetProductListAsync(params services.ListParams, response map[string]interface{}) {
	if !cm.enabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(ctx)
		if err != nil {
			return
		}

		payload, err := json.Marshal(response)
		if err != nil {
			zap.L().Warn("failed to marshal product list for cache", zap.Error(err))
			return
		}

		if err := cm.redis.Set(ctx, cm.listKey(version, params), payload, cm.ttl).Err(); err != nil {
			zap.L().Warn("failed to cache product list", zap.Error(err))
		}
	}()
}

// GetProduct returns a cached product detail row.
func (cm *CacheManager) GetProduct(ctx context.Context, id uint) (*models.ProductRow, bool) {
	if !cm.enabled() {
		return nil, false
	}

	cached, err := cm.redis.Get(ctx, fmt.Sprintf("%s%d", productCachePrefix, id)).Result()
	if err != nil {
		return nil, false
	}

	var row models.ProductRow
	if err := json.Unmarshal([]byte(cached), &row); err != nil {
		return nil, false
	}
	return &row, true
}

// SetProductAsync caches a product detail row off the request path.
func (cm *CacheManager) SetProductAsync(row *models.ProductRow) {
	if !cm.enabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		payload, err := json.Marshal(row)
		if err != nil {
			return
		}
		key := fmt.Sprintf("%s%d", productCachePrefix, row.ID)
		if err := cm.redis.Set(ctx, key, payload, cm.ttl).Err(); err != nil {
			zap.L().Warn("failed to cache product", zap.Error(err), zap.Uint("product_id", row.ID))
		}
	}()
}

// InvalidateProduct drops the product's detail entry and bumps the list
// version so cached lists stop being served.
func (cm *CacheManager) InvalidateProduct(ctx context.Context, id uint) {
	if !cm.enabled() {
		return
	}

	if err := cm.redis.Incr(ctx, cacheVersionKey).Err(); err != nil {
		zap.L().Error("failed to bump product cache version", zap.Error(err))
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		key := fmt.Sprintf("%s%d", productCachePrefix, id)
		if err := cm.redis.Del(bgCtx, key).Err(); err != nil {
			zap.L().Warn("failed to delete product cache", zap.Error(err), zap.Uint("product_id", id))
		}
	}()
}

func (cm *CacheManager) getCacheVersion(ctx context.Context) (int64, error) {
	version, err := cm.redis.Get(ctx, cacheVersionKey).Int64()
	if err == redis.Nil {
		if err := cm.redis.Set(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return version, nil
}

func (cm *CacheManager) listKey(version int64, params services.ListParams) string {
	return fmt.Sprintf("%s%d:l:%d:o:%d:c:%d:s:%s",
		productListCachePrefix, version, params.Limit, params.Offset, params.CategoryID, params.Search)
}
