package filekv

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/pathshala/admin/core"
)

// store keeps every key in a single JSON object on disk.
// The file is re-read on every access so that two processes share the same state.
type store struct {
	mu   sync.Mutex
	path string
}

var _ core.KVStore = (*store)(nil)

func Open(path string) (core.KVStore, error) {
	if path == "" {
		return nil, errors.New("storage path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.Wrap(err, "creating storage directory")
	}
	return &store{path: path}, nil
}

func (s *store) load() (map[string]string, error) {
	table := make(map[string]string)
	data, err := ioutil.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return nil, errors.Wrap(err, "reading storage file")
	}
	if len(data) == 0 {
		return table, nil
	}
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, errors.Wrap(err, "decoding storage file")
	}
	return table, nil
}

// save writes to a temp file first so a crash never leaves a truncated file behind.
func (s *store) save(table map[string]string) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding storage file")
	}
	tmp := s.path + ".tmp"
	if err := ioutil.WriteFile(tmp, data, 0600); err != nil {
		return errors.Wrap(err, "writing storage file")
	}
	return errors.Wrap(os.Rename(tmp, s.path), "replacing storage file")
}

func (s *store) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load()
	if err != nil {
		return "", err
	}
	val, ok := table[key]
	if !ok {
		return "", core.ErrKeyNotFound
	}
	return val, nil
}

func (s *store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load()
	if err != nil {
		return err
	}
	table[key] = value
	return s.save(table)
}

func (s *store) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load()
	if err != nil {
		return err
	}
	var changed bool
	for _, key := range keys {
		if _, ok := table[key]; ok {
			delete(table, key)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.save(table)
}
