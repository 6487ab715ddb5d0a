package reduce

import "sync/atomic"

// KeyVal is a single input record. Keys are opaque tokens; the same key may
// appear any number of times across the input.
type KeyVal[V any] struct {
	Key string
	Val V
}

// CombineFunc folds two values for the same key into one.
//
// It must be associative and commutative: local combining runs per partition
// and the partials are merged in whatever order the partitions finish, so a
// combine that depends on ordering produces partition-count-dependent results.
// That is a caller contract violation, not a detected error.
type CombineFunc[V any] func(a, b V) V

// PartitionFunc maps a key to a partition index in [0, partitions).
type PartitionFunc func(key string, partitions int) int

// RoundRobin returns a stateful partitioner that ignores keys and deals
// records out cyclically, like positional splitting of line input. A key may
// then land in several partitions; the merge phase still folds such keys
// into one entry.
func RoundRobin() PartitionFunc {
	var n atomic.Uint64
	return func(_ string, partitions int) int {
		return int((n.Add(1) - 1) % uint64(partitions))
	}
}
