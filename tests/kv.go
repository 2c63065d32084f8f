package testutil

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/pathshala/admin/core"
)

// CheckKVStore runs the behaviour every core.KVStore must share against store.
func CheckKVStore(t *testing.T, store core.KVStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.Equal(t, core.ErrKeyNotFound, errors.Cause(err))
	})

	t.Run("set then get", func(t *testing.T) {
		if err := store.Set(ctx, core.KeyToken, "tok-1"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		val, err := store.Get(ctx, core.KeyToken)
		assert.NoError(t, err)
		assert.Equal(t, "tok-1", val)
	})

	t.Run("overwrite", func(t *testing.T) {
		_ = store.Set(ctx, core.KeyRole, "admin")
		_ = store.Set(ctx, core.KeyRole, "supervisor")
		val, err := store.Get(ctx, core.KeyRole)
		assert.NoError(t, err)
		assert.Equal(t, "supervisor", val)
	})

	t.Run("delete", func(t *testing.T) {
		_ = store.Set(ctx, core.KeyLanguage, "en")
		if err := store.Delete(ctx, core.KeyToken, core.KeyRole, "never-set"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		for _, key := range []string{core.KeyToken, core.KeyRole} {
			_, err := store.Get(ctx, key)
			assert.Equal(t, core.ErrKeyNotFound, errors.Cause(err), key)
		}
		val, err := store.Get(ctx, core.KeyLanguage)
		assert.NoError(t, err)
		assert.Equal(t, "en", val)
	})

	t.Run("delete nothing", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx))
	})
}
