package kv_ser

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore 基于Redis的底座实现
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore 创建Redis底座，prefix为空时使用默认前缀
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = Prefix
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) key(key string) string {
	return s.prefix + key
}

// Get 读取键值，键不存在时ok为false
func (s *RedisStore) Get(key string) (string, bool, error) {
	val, err := s.rdb.Get(context.Background(), s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set 写入键值，不设置过期时间
func (s *RedisStore) Set(key string, value string) error {
	return s.rdb.Set(context.Background(), s.key(key), value, 0).Err()
}

// Remove 删除键，键不存在时也视为成功
func (s *RedisStore) Remove(key string) error {
	return s.rdb.Del(context.Background(), s.key(key)).Err()
}
