// Package hidden хранит оверлей скрытых пользователей в Redis.
// Множество лежит под фиксированным ключом и не имеет срока жизни.
package hidden

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/trial-tracker/internal/analytics/hidden"
)

// Key ключ Redis, под которым хранится множество скрытых пользователей.
const Key = "trial_tracker:hidden_users"

// RedisStore реализация hidden.Store на основе Redis SET.
type RedisStore struct {
	db  *redis.Client
	key string
}

// NewRedisStore создаёт хранилище оверлея.
func NewRedisStore(db *redis.Client) *RedisStore {
	return &RedisStore{db: db, key: Key}
}

// Members загружает текущее множество скрытых пользователей.
func (s *RedisStore) Members(ctx context.Context) (*hidden.Set, error) {
	const op = "storage.hidden.Members"
	ids, err := s.db.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return hidden.NewSet(ids...), nil
}

// Add скрывает пользователя.
func (s *RedisStore) Add(ctx context.Context, id string) error {
	const op = "storage.hidden.Add"
	if err := s.db.SAdd(ctx, s.key, id).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Clear удаляет все скрытые идентификаторы.
func (s *RedisStore) Clear(ctx context.Context) error {
	const op = "storage.hidden.Clear"
	if err := s.db.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

var _ hidden.Store = (*RedisStore)(nil)
