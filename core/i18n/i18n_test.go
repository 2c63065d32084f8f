package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pathshala/admin/core"
	"github.com/pathshala/admin/storage/kv/inmem"
)

func newLocalizer(t *testing.T, fallback Language) (*Localizer, core.KVStore) {
	t.Helper()
	store := inmemkv.Open()
	l, err := New(store, fallback)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return l, store
}

func TestTablesHaveSameKeys(t *testing.T) {
	for key := range table[English] {
		_, ok := table[Hindi][key]
		assert.True(t, ok, "%q missing in hindi", key)
	}
	for key := range table[Hindi] {
		_, ok := table[English][key]
		assert.True(t, ok, "%q missing in english", key)
	}
}

func TestLocalizer_T(t *testing.T) {
	l, _ := newLocalizer(t, "")
	ctx := context.Background()

	assert.Equal(t, Hindi, l.Language())
	assert.Equal(t, "डैशबोर्ड", l.T("dashboard"))

	if err := l.SetLanguage(ctx, English); err != nil {
		t.Fatalf("SetLanguage() error = %v", err)
	}
	tests := []struct {
		key  string
		want string
	}{
		{key: "dashboard", want: "Dashboard"},
		{key: "totalStudents", want: "Total Students"},
		{key: "noSuchKey", want: "noSuchKey"},
		{key: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, l.T(tt.key))
		})
	}
}

func TestLocalizer_persistence(t *testing.T) {
	ctx := context.Background()
	l, store := newLocalizer(t, Hindi)

	assert.NoError(t, l.SetLanguage(ctx, English))
	val, err := store.Get(ctx, core.KeyLanguage)
	assert.NoError(t, err)
	assert.Equal(t, "en", val)

	// a fresh localizer on the same storage picks the selection up
	other, err := New(store, Hindi)
	if err != nil {
		t.Fatal(err)
	}
	assert.NoError(t, other.Load(ctx))
	assert.Equal(t, English, other.Language())
}

func TestLocalizer_Load(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   Language
	}{
		{name: "nothing stored", want: Hindi},
		{name: "english", stored: "en", want: English},
		{name: "untrimmed", stored: " HI ", want: Hindi},
		{name: "unknown", stored: "fr", want: Hindi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			l, store := newLocalizer(t, Hindi)
			if tt.stored != "" {
				_ = store.Set(ctx, core.KeyLanguage, tt.stored)
			}
			assert.NoError(t, l.Load(ctx))
			assert.Equal(t, tt.want, l.Language())
		})
	}
}

func TestLocalizer_SetLanguage_invalid(t *testing.T) {
	ctx := context.Background()
	l, store := newLocalizer(t, English)

	err := l.SetLanguage(ctx, Language("fr"))
	assert.True(t, core.IsValidationError(err))
	assert.Equal(t, English, l.Language())
	_, err = store.Get(ctx, core.KeyLanguage)
	assert.Equal(t, core.ErrKeyNotFound, err)
}

func TestNew_invalidFallback(t *testing.T) {
	_, err := New(inmemkv.Open(), Language("de"))
	assert.Error(t, err)
}

func TestLocalizer_FmtCount(t *testing.T) {
	l, _ := newLocalizer(t, English)
	assert.Equal(t, "1,234", l.FmtCount(1234))
	assert.Equal(t, "0", l.FmtCount(0))
}
