package storage

import (
	"context"

	"petverse/internal/ports/output"
)

// Scoped prefixes every key with scope, giving each user of a shared store
// its own namespace.
func Scoped(store output.KeyValueStore, scope string) output.KeyValueStore {
	return scoped{store: store, prefix: scope + "/"}
}

type scoped struct {
	store  output.KeyValueStore
	prefix string
}

func (s scoped) Get(ctx context.Context, key string) (string, bool, error) {
	return s.store.Get(ctx, s.prefix+key)
}

func (s scoped) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.prefix+key, value)
}

func (s scoped) Remove(ctx context.Context, key string) error {
	return s.store.Remove(ctx, s.prefix+key)
}
