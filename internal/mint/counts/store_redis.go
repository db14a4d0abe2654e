package counts

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"mintgate/pkg/domain"
)

const mintedCountKeyPrefix = "mint:count:"

// RedisStore shares per-address issuance totals across instances. Counters
// carry no TTL; issuance history never expires.
type RedisStore struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, addr domain.Address) (uint64, error) {
	val, err := s.client.Get(ctx, mintedCountKeyPrefix+addr.String()).Uint64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get minted count: %w", err)
	}
	return val, nil
}

func (s *RedisStore) Add(ctx context.Context, addr domain.Address, n uint64) error {
	if err := s.client.IncrBy(ctx, mintedCountKeyPrefix+addr.String(), int64(n)).Err(); err != nil {
		return fmt.Errorf("increment minted count: %w", err)
	}
	return nil
}
