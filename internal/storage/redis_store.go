package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisStore keeps values as plain redis strings under a key prefix.
type RedisStore struct {
	rdb    *goredis.Client
	prefix string
}

func NewRedisStore(rdb *goredis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (store *RedisStore) key(key string) string {
	return store.prefix + key
}

func (store *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := store.rdb.Get(ctx, store.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("rdb.Get(%s) > %w", store.key(key), err)
	}
	return value, nil
}

func (store *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := store.rdb.Set(ctx, store.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("rdb.Set(%s) > %w", store.key(key), err)
	}
	return nil
}

func (store *RedisStore) Delete(ctx context.Context, key string) error {
	if err := store.rdb.Del(ctx, store.key(key)).Err(); err != nil {
		return fmt.Errorf("rdb.Del(%s) > %w", store.key(key), err)
	}
	return nil
}

func (store *RedisStore) Close() error {
	return store.rdb.Close()
}

func dialRedis(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("rdb.Ping(%s) > %w", addr, err)
	}
	return rdb, nil
}
