package cache

import (
	"context"
	"delivery-dispatch-service/internal/domain"
	"delivery-dispatch-service/internal/platform/obs"
	"delivery-dispatch-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisPlanStore keeps plans in Redis as JSON strings that expire after TTL.
// A zero TTL keeps plans until they are evicted.
type RedisPlanStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPlanStore(rdb *redis.Client, ttl time.Duration) *RedisPlanStore {
	return &RedisPlanStore{rdb: rdb, ttl: ttl}
}

// NewRedisPlanStoreFromURL connects to the Redis server at url.
func NewRedisPlanStoreFromURL(url string, ttl time.Duration) (*RedisPlanStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis plan store: parse url: %w", err)
	}
	return NewRedisPlanStore(redis.NewClient(opt), ttl), nil
}

func (s *RedisPlanStore) key(id string) string { return "plan:" + id }

func (s *RedisPlanStore) SavePlan(ctx context.Context, plan domain.Plan) (err error) {
	defer obs.Time(ctx, "plan.redis.SavePlan")(&err)

	if strings.TrimSpace(plan.ID) == "" {
		return errors.New("save plan: id must not be empty")
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("save plan %q: marshal: %w", plan.ID, err)
	}

	if err := s.rdb.Set(ctx, s.key(plan.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save plan %q: redis set: %w", plan.ID, err)
	}

	return nil
}

func (s *RedisPlanStore) GetPlan(ctx context.Context, id string) (_ domain.Plan, err error) {
	defer obs.Time(ctx, "plan.redis.GetPlan")(&err)

	payload, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Plan{}, fmt.Errorf("get plan %q: %w", id, ports.ErrPlanNotFound)
	}
	if err != nil {
		return domain.Plan{}, fmt.Errorf("get plan %q: redis get: %w", id, err)
	}

	var plan domain.Plan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return domain.Plan{}, fmt.Errorf("get plan %q: decode payload: %w", id, err)
	}

	return plan, nil
}

// Ping checks the Redis connection.
func (s *RedisPlanStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisPlanStore) Close() error { return s.rdb.Close() }
