package rediskv

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"github.com/pathshala/admin/core"
)

type store struct {
	client *redis.Client
	prefix string
}

var _ core.KVStore = (*store)(nil)

// Open connects to redis at addr and pings it.
// Every key is namespaced with prefix.
func Open(ctx context.Context, addr, prefix string) (core.KVStore, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errors.Wrapf(err, "pinging redis at %s", addr)
	}
	return New(client, prefix), client, nil
}

func New(client *redis.Client, prefix string) core.KVStore {
	return &store{client: client, prefix: prefix}
}

func (s *store) key(k string) string {
	return s.prefix + k
}

func (s *store) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return "", core.ErrKeyNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "redis GET %s", key)
	}
	return val, nil
}

func (s *store) Set(ctx context.Context, key, value string) error {
	return errors.Wrapf(s.client.Set(ctx, s.key(key), value, 0).Err(), "redis SET %s", key)
}

func (s *store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, 0, len(keys))
	for _, k := range keys {
		prefixed = append(prefixed, s.key(k))
	}
	return errors.Wrap(s.client.Del(ctx, prefixed...).Err(), "redis DEL")
}
