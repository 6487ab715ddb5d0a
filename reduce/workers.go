package reduce

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/kolenov/partred/reduce/store"
)

func forkWorker[V any](ctx context.Context, st store.Store[V], combine CombineFunc[V], id int, in, out transport[KeyVal[V]]) {
	w := &worker[V]{
		id:      id,
		combine: combine,
		store:   st,
		in:      in,
		out:     out,
	}

	go w.run(ctx)
}

type worker[V any] struct {
	id      int
	combine CombineFunc[V]

	store store.Store[V]
	in    transport[KeyVal[V]]
	out   transport[KeyVal[V]]
}

func (w *worker[V]) run(ctx context.Context) {
	defer w.out.Close()

	bucket := strconv.Itoa(w.id)

	for {
		kv, open := w.in.Recv(ctx, w.id)
		if !open {
			// input is drained, move on to the flush phase
			slog.Debug("worker: transport closed, flushing partials", "id", w.id)
			break
		}

		slog.Debug("worker: combining record", "id", w.id, "key", kv.Key)
		w.store.Merge(ctx, bucket, kv.Key, kv.Val, w.combine)
	}

	for _, key := range w.store.Keys(ctx, bucket) {
		val, ok := w.store.Get(ctx, bucket, key)
		if !ok {
			continue
		}

		GlobalStats.Partials.Add(1)
		w.out.Send(ctx, 0, KeyVal[V]{Key: key, Val: val})
	}

	slog.Debug("worker: done", "id", w.id)
}
