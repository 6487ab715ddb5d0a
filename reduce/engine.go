package reduce

import (
	"context"
	"fmt"

	"github.com/kolenov/partred/reduce/store"
	"github.com/kolenov/partred/reduce/store/inmemory"
	"github.com/spaolacci/murmur3"
)

// Engine splits input records across partitions by key, combines locally
// within each partition and merges the partials into one global mapping.
type Engine[V any] struct {
	combine     CombineFunc[V]
	partitions  int
	partitionFn PartitionFunc
	store       store.Store[V]
}

type Option[V any] func(*Engine[V])

// WithStore makes partition workers keep their partials in st instead of a
// fresh in-memory store. The store must be empty at the start of a run.
func WithStore[V any](st store.Store[V]) Option[V] {
	return func(e *Engine[V]) {
		e.store = st
	}
}

// WithPartitionFunc overrides the default murmur3 hash partitioner.
func WithPartitionFunc[V any](fn PartitionFunc) Option[V] {
	return func(e *Engine[V]) {
		e.partitionFn = fn
	}
}

func New[V any](combine CombineFunc[V], partitions int, opts ...Option[V]) *Engine[V] {
	if partitions < 1 {
		partitions = 1
	}

	e := &Engine[V]{
		combine:    combine,
		partitions: partitions,
		partitionFn: func(key string, partitions int) int {
			return int(murmur3.Sum64([]byte(key)) % uint64(partitions))
		},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run consumes records from in until it closes, then returns the merged
// mapping. Each record goes to the partition picked by the partition
// function, every partition combines its share independently, and the
// partials are merged with the same combine once all partitions drained
// their input. The result map is unordered; see SortedByValue for display.
func (e *Engine[V]) Run(ctx context.Context, in <-chan KeyVal[V]) (map[string]V, error) {
	st := e.store
	if st == nil {
		st = inmemory.New[V]()
	}

	inTrans := newTransport[KeyVal[V]](1, e.partitions)
	outTrans := newTransport[KeyVal[V]](e.partitions, 1)

	for id := range e.partitions {
		forkWorker(ctx, st, e.combine, id, inTrans, outTrans)
	}

	go func() {
		defer inTrans.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case kv, open := <-in:
				if !open {
					return
				}

				GlobalStats.RecordsIn.Add(1)
				inTrans.Send(ctx, e.partitionFn(kv.Key, e.partitions), kv)
			}
		}
	}()

	// merge phase: workers start flushing only after the input transport
	// closed, so every partial below is final
	result := make(map[string]V)
	for {
		kv, open := outTrans.Recv(ctx, 0)
		if !open {
			break
		}

		if cur, ok := result[kv.Key]; ok {
			kv.Val = e.combine(cur, kv.Val)
		}
		result[kv.Key] = kv.Val
		GlobalStats.Merged.Add(1)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("reduce: %w", err)
	}

	return result, nil
}

// Reduce runs a one-off partitioned reduction over an already materialized
// record slice. Combine must be associative and commutative, otherwise the
// result depends on the partition count.
func Reduce[V any](ctx context.Context, records []KeyVal[V], combine CombineFunc[V], partitions int) (map[string]V, error) {
	in := make(chan KeyVal[V])
	go func() {
		defer close(in)
		for _, kv := range records {
			select {
			case <-ctx.Done():
				return
			case in <- kv:
			}
		}
	}()

	return New(combine, partitions).Run(ctx, in)
}
