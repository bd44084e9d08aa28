package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
)

// ResourceCacheRepository caches per-user category and link listings in Redis.
// A nil client turns every call into a miss or a no-op. Redis failures are
// logged and reported as misses so the database stays the source of truth.
type ResourceCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewResourceCacheRepository creates a cache with the given entry lifetime.
func NewResourceCacheRepository(client *redis.Client, expiration time.Duration) *ResourceCacheRepository {
	return &ResourceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// errStaleVersion aborts a write whose listing was read before an invalidation.
var errStaleVersion = errors.New("cache version changed")

func categoriesKey(userID uuid.UUID) string {
	return "categories:" + userID.String()
}

func linksKey(userID uuid.UUID) string {
	return "links:" + userID.String()
}

// versionKey counts invalidations of a listing key. It has no expiry so a
// writer holding an old version can never match a reset counter.
func versionKey(key string) string {
	return "version:" + key
}

// GetCategories returns the cached category list and whether it was found.
// The version must be passed to SetCategories when the list is filled from
// the database after a miss.
func (r *ResourceCacheRepository) GetCategories(ctx context.Context, userID uuid.UUID) ([]models.CategoryDB, int64, bool) {
	var categories []models.CategoryDB
	version, ok := r.get(ctx, categoriesKey(userID), "", &categories)
	return categories, version, ok
}

// SetCategories stores the category list unless the categories were
// invalidated after version was read.
func (r *ResourceCacheRepository) SetCategories(ctx context.Context, userID uuid.UUID, version int64, categories []models.CategoryDB) {
	r.set(ctx, categoriesKey(userID), "", version, categories, len(categories))
}

// GetLinks returns the cached link list for a filter and whether it was found.
func (r *ResourceCacheRepository) GetLinks(ctx context.Context, userID uuid.UUID, filter string) ([]models.LinkDB, int64, bool) {
	var links []models.LinkDB
	version, ok := r.get(ctx, linksKey(userID), filter, &links)
	return links, version, ok
}

// SetLinks stores the link list for a filter unless the links were
// invalidated after version was read. Every filter of a user shares one
// hash, so a single delete drops all of them.
func (r *ResourceCacheRepository) SetLinks(ctx context.Context, userID uuid.UUID, filter string, version int64, links []models.LinkDB) {
	r.set(ctx, linksKey(userID), filter, version, links, len(links))
}

// InvalidateCategories drops the cached category list.
func (r *ResourceCacheRepository) InvalidateCategories(ctx context.Context, userID uuid.UUID) {
	r.invalidate(ctx, categoriesKey(userID))
}

// InvalidateLinks drops every cached link list of the user.
func (r *ResourceCacheRepository) InvalidateLinks(ctx context.Context, userID uuid.UUID) {
	r.invalidate(ctx, linksKey(userID))
}

// get reads a listing and the version of its key in one round trip. An
// unreadable version is reported as -1, which no later write can match.
func (r *ResourceCacheRepository) get(ctx context.Context, key, field string, dest any) (int64, bool) {
	if r == nil || r.client == nil {
		return -1, false
	}
	op := "get"
	if field != "" {
		op = "hget"
	}

	pipe := r.client.Pipeline()
	var dataCmd *redis.StringCmd
	if field == "" {
		dataCmd = pipe.Get(ctx, key)
	} else {
		dataCmd = pipe.HGet(ctx, key, field)
	}
	versionCmd := pipe.Get(ctx, versionKey(key))
	_, _ = pipe.Exec(ctx)

	version, err := versionCmd.Int64()
	if errors.Is(err, redis.Nil) {
		version, err = 0, nil
	}
	if err != nil {
		logCache(op, key, field, false, err)
		return -1, false
	}

	val, err := dataCmd.Bytes()
	if err == nil {
		err = json.Unmarshal(val, dest)
	}
	if err != nil {
		logCache(op, key, field, false, err)
		return version, false
	}

	logCache(op, key, field, true, nil)
	return version, true
}

// set writes a listing inside a WATCH on the version key, so an invalidation
// that lands between the version check and the write aborts it.
func (r *ResourceCacheRepository) set(ctx context.Context, key, field string, version int64, value any, size int) {
	if r == nil || r.client == nil {
		return
	}
	op := "set"
	if field != "" {
		op = "hset"
	}

	data, err := json.Marshal(value)
	if err != nil {
		logCache(op, key, field, size, err)
		return
	}

	vkey := versionKey(key)
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vkey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleVersion
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if field == "" {
				pipe.Set(ctx, key, data, r.exp)
				return nil
			}
			pipe.HSet(ctx, key, field, data)
			pipe.Expire(ctx, key, r.exp)
			return nil
		})
		return err
	}, vkey)

	if errors.Is(err, errStaleVersion) || errors.Is(err, redis.TxFailedErr) {
		logCache(op, key, field, "skipped stale", nil)
		return
	}
	logCache(op, key, field, size, err)
}

func (r *ResourceCacheRepository) invalidate(ctx context.Context, key string) {
	if r == nil || r.client == nil {
		return
	}
	pipe := r.client.TxPipeline()
	pipe.Incr(ctx, versionKey(key))
	pipe.Del(ctx, key)
	_, err := pipe.Exec(ctx)
	logCache("del", key, "", nil, err)
}

func logCache(op, key, field string, result any, err error) {
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Log.Warnw("cache",
			"op", op,
			"key", key,
			"field", field,
			"error", err,
		)
		return
	}
	logger.Log.Debugw("cache",
		"op", op,
		"key", key,
		"field", field,
		"result", result,
	)
}
