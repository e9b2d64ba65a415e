package course

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const CourseKeyPrefix = "courses:"

func GetCourseKey(id uuid.UUID) string {
	return CourseKeyPrefix + id.String()
}

func GetCourseSetKey(ids []uuid.UUID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return CourseKeyPrefix + "set:" + strings.Join(parts, ",")
}

// cachedRepository is a read-through Redis cache in front of Repository.
// The catalog changes rarely, so entries simply expire after ttl.
type cachedRepository struct {
	inner  Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewCachedRepository(inner Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Repository {
	if rdb == nil {
		return inner
	}
	l := zap.L().Named("course.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("course.cache")
	}
	return &cachedRepository{
		inner:  inner,
		rdb:    rdb,
		ttl:    ttl,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (r *cachedRepository) FindByID(ctx context.Context, id uuid.UUID) (*Course, error) {
	key := GetCourseKey(id)

	var cached Course
	if r.get(ctx, key, &cached) {
		return &cached, nil
	}

	v, err, _ := r.sf.Do(key, func() (any, error) {
		c, err := r.inner.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		r.set(ctx, key, c)
		return c, nil
	})
	if err != nil {
		return nil, err
	}

	c := *v.(*Course)
	return &c, nil
}

func (r *cachedRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Course, error) {
	key := GetCourseSetKey(ids)

	var cached []Course
	if r.get(ctx, key, &cached) {
		return cached, nil
	}

	v, err, _ := r.sf.Do(key, func() (any, error) {
		courses, err := r.inner.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		r.set(ctx, key, courses)
		return courses, nil
	})
	if err != nil {
		return nil, err
	}

	// callers sharing a singleflight result must not share the backing array
	shared := v.([]Course)
	out := make([]Course, len(shared))
	copy(out, shared)
	return out, nil
}

func (r *cachedRepository) get(ctx context.Context, key string, dst any) bool {
	raw, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("course cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		r.logger.Warn("course cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *cachedRepository) set(ctx context.Context, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		r.logger.Warn("course cache write failed", zap.String("key", key), zap.Error(err))
	}
}
