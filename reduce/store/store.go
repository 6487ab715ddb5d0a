package store

import "context"

// Store holds partition-local partial aggregates while the input is being
// consumed. A bucket corresponds to one partition worker, so workers never
// touch each other's entries.
type Store[V any] interface {
	// Merge folds val into the value already held for (bucket, key) using
	// combine, or stores val as-is when the key was not seen yet.
	Merge(ctx context.Context, bucket string, key string, val V, combine func(V, V) V)

	// Get returns the current value for (bucket, key).
	Get(ctx context.Context, bucket string, key string) (V, bool)

	// Keys returns all keys seen in a bucket, in no particular order.
	Keys(ctx context.Context, bucket string) []string
}
