package inmemory

import (
	"context"
	"sync"

	"github.com/kolenov/partred/pkg/caller"
	"github.com/kolenov/partred/pkg/tracer"
)

type Store[V any] struct {
	mu   sync.RWMutex
	data map[itemKey]V
}

func New[V any]() *Store[V] {
	return &Store[V]{
		data: make(map[itemKey]V, 1000),
	}
}

func (st *Store[V]) Merge(ctx context.Context, bucket string, key string, val V, combine func(V, V) V) {
	ctx, span := tracer.Start(ctx, caller.Name())
	defer span.End()

	st.mu.Lock()
	defer st.mu.Unlock()

	ik := itemKey{bucket: bucket, key: key}
	if cur, ok := st.data[ik]; ok {
		val = combine(cur, val)
	}
	st.data[ik] = val
}

func (st *Store[V]) Get(ctx context.Context, bucket string, key string) (V, bool) {
	ctx, span := tracer.Start(ctx, caller.Name())
	defer span.End()

	st.mu.RLock()
	defer st.mu.RUnlock()

	val, ok := st.data[itemKey{bucket: bucket, key: key}]
	return val, ok
}

func (st *Store[V]) Keys(ctx context.Context, bucket string) []string {
	ctx, span := tracer.Start(ctx, caller.Name())
	defer span.End()

	st.mu.RLock()
	defer st.mu.RUnlock()

	var keys []string
	for k := range st.data {
		if k.bucket == bucket {
			keys = append(keys, k.key)
		}
	}

	return keys
}

type itemKey struct {
	bucket string
	key    string
}
