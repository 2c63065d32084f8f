package filekv

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pathshala/admin/core"
	"github.com/pathshala/admin/tests"
)

func TestStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.json")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	testutil.CheckKVStore(t, store)
}

func TestStore_sharedFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "storage.json")

	first, _ := Open(path)
	second, _ := Open(path)

	assert.NoError(t, first.Set(ctx, core.KeyToken, "abc"))
	val, err := second.Get(ctx, core.KeyToken)
	assert.NoError(t, err)
	assert.Equal(t, "abc", val)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestStore_corruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := ioutil.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	store, _ := Open(path)
	_, err := store.Get(context.Background(), core.KeyToken)
	assert.Error(t, err)
	assert.NotEqual(t, core.ErrKeyNotFound, err)
}

func TestOpen_noPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
