package kv

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/pathshala/admin/core"
	"github.com/pathshala/admin/storage/kv/file"
	"github.com/pathshala/admin/storage/kv/inmem"
	"github.com/pathshala/admin/storage/kv/redis"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the durable store selected by conf.Storage.Driver.
// The returned io.Closer must be closed when done.
func Open(ctx context.Context, conf *core.Config) (core.KVStore, io.Closer, error) {
	switch conf.Storage.Driver {
	case "", "file":
		store, err := filekv.Open(conf.Storage.Path)
		return store, nopCloser{}, err
	case "redis":
		store, client, err := rediskv.Open(ctx, conf.Storage.RedisAddr, conf.Storage.RedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		return store, client, nil
	case "memory":
		return inmemkv.Open(), nopCloser{}, nil
	default:
		return nil, nil, errors.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
}
