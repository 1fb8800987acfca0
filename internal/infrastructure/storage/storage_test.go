package storage

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"petverse/internal/ports/output"
)

// SetupTestDB initializes a temporary in-memory Badger instance.
func SetupTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// exerciseStore checks the localStorage contract every backend must honor.
func exerciseStore(t *testing.T, store output.KeyValueStore) {
	t.Helper()
	req := require.New(t)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "petpal_user")
	req.NoError(err)
	req.False(ok)

	req.NoError(store.Set(ctx, "petpal_user", "Asha"))
	v, ok, err := store.Get(ctx, "petpal_user")
	req.NoError(err)
	req.True(ok)
	req.Equal("Asha", v)

	req.NoError(store.Set(ctx, "petpal_user", "Ravi"))
	v, _, _ = store.Get(ctx, "petpal_user")
	req.Equal("Ravi", v)

	req.NoError(store.Set(ctx, "preferred_language", ""))
	v, ok, err = store.Get(ctx, "preferred_language")
	req.NoError(err)
	req.True(ok)
	req.Empty(v)

	req.NoError(store.Remove(ctx, "petpal_user"))
	_, ok, err = store.Get(ctx, "petpal_user")
	req.NoError(err)
	req.False(ok)

	// removing an absent key is not an error
	req.NoError(store.Remove(ctx, "petpal_user"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestBadgerStore(t *testing.T) {
	exerciseStore(t, NewBadgerStore(SetupTestDB(t), "default"))
}

func TestScoped(t *testing.T) {
	exerciseStore(t, Scoped(NewMemoryStore(), "profile"))
}

func TestScopesAreIsolated(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := SetupTestDB(t)
	shared := NewMemoryStore()

	pairs := [][2]output.KeyValueStore{
		{NewBadgerStore(db, "alice"), NewBadgerStore(db, "bob")},
		{Scoped(shared, "alice"), Scoped(shared, "bob")},
	}
	for _, p := range pairs {
		alice, bob := p[0], p[1]
		req.NoError(alice.Set(ctx, "petpal_user", "Alice"))

		_, ok, err := bob.Get(ctx, "petpal_user")
		req.NoError(err)
		req.False(ok)

		req.NoError(bob.Remove(ctx, "petpal_user"))
		v, ok, _ := alice.Get(ctx, "petpal_user")
		req.True(ok)
		req.Equal("Alice", v)
	}
}

func TestOpenBadger_PersistsAcrossReopen(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	db, err := OpenBadger(dir)
	req.NoError(err)
	req.NoError(NewBadgerStore(db, "default").Set(ctx, "preferred_language", "kn"))
	req.NoError(db.Close())

	db, err = OpenBadger(dir)
	req.NoError(err)
	defer db.Close()
	v, ok, err := NewBadgerStore(db, "default").Get(ctx, "preferred_language")
	req.NoError(err)
	req.True(ok)
	req.Equal("kn", v)
}
