package inmemkv

import (
	"context"
	"sync"

	"github.com/pathshala/admin/core"
)

type store struct {
	sync.RWMutex
	table map[string]string
}

var _ core.KVStore = (*store)(nil)

func Open() core.KVStore {
	return &store{table: make(map[string]string)}
}

func (s *store) Get(_ context.Context, key string) (string, error) {
	s.RLock()
	defer s.RUnlock()

	val, ok := s.table[key]
	if !ok {
		return "", core.ErrKeyNotFound
	}
	return val, nil
}

func (s *store) Set(_ context.Context, key, value string) error {
	s.Lock()
	defer s.Unlock()

	s.table[key] = value
	return nil
}

func (s *store) Delete(_ context.Context, keys ...string) error {
	s.Lock()
	defer s.Unlock()

	for _, key := range keys {
		delete(s.table, key)
	}
	return nil
}
