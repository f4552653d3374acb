package kv_ser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 底座契约：缺失的键不是错误，Set覆盖写，Remove幂等
func runStoreContract(t *testing.T, store Store) {
	t.Helper()

	_, ok, err := store.Get("user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("user", `{"id":1}`))
	val, ok, err := store.Get("user")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":1}`, val)

	require.NoError(t, store.Set("user", `{"id":2}`))
	val, _, _ = store.Get("user")
	assert.Equal(t, `{"id":2}`, val)

	require.NoError(t, store.Remove("user"))
	_, ok, err = store.Get("user")
	require.NoError(t, err)
	assert.False(t, ok)

	// 删除不存在的键也视为成功
	require.NoError(t, store.Remove("user"))
}

func TestMemoryStoreContract(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestSqliteStoreContract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	store, err := NewSqliteStore(path, "")
	require.NoError(t, err)
	runStoreContract(t, store)
}

func TestSqliteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	store, err := NewSqliteStore(path, "")
	require.NoError(t, err)
	require.NoError(t, store.Set("employees", `[]`))

	// 重新打开后数据仍在
	reopened, err := NewSqliteStore(path, "")
	require.NoError(t, err)
	val, ok, err := reopened.Get("employees")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, val)
}

func TestPrefixIsolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	a, err := NewSqliteStore(path, "a:")
	require.NoError(t, err)
	b, err := NewSqliteStore(path, "b:")
	require.NoError(t, err)

	require.NoError(t, a.Set("user", "alpha"))
	_, ok, err := b.Get("user")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFixedKeys(t *testing.T) {
	assert.ElementsMatch(t, []string{"user", "employees", "positions", "departments"}, Keys())
}
