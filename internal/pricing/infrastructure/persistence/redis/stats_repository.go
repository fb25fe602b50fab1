package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/domain"
)

type StatsRedisRepository struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// NewStatsRedisRepository 创建基于 Redis 的看板读模型仓储
func NewStatsRedisRepository(client redis.UniversalClient) *StatsRedisRepository {
	return &StatsRedisRepository{
		client: client,
		key:    "pricing:dashboard:stats",
		ttl:    5 * time.Minute,
	}
}

func (r *StatsRedisRepository) Get(ctx context.Context) (*domain.DashboardStats, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dashboard stats from redis: %w", err)
	}
	var stats domain.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard stats: %w", err)
	}
	return &stats, nil
}

func (r *StatsRedisRepository) Save(ctx context.Context, stats *domain.DashboardStats) error {
	if stats == nil {
		return nil
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard stats: %w", err)
	}
	return r.client.Set(ctx, r.key, data, r.ttl).Err()
}
