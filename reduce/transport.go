package reduce

import (
	"context"
	"log"
	"sync"

	"github.com/kolenov/partred/pkg/caller"
	"github.com/kolenov/partred/pkg/tracer"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type transport[T any] interface {
	// Recv receives the data sent to specified id. Blocks until someone
	// calls Send with corresponding id, or until all senders called Close.
	Recv(ctx context.Context, id int) (T, bool)

	// Send sends the data to specified id. Blocks until the receiver with
	// corresponding id picks it up.
	Send(ctx context.Context, id int, data T)

	// Close is called by a sender after it sent all its data. Every sender
	// must call it exactly once and must not use the transport afterwards.
	Close()
}

type chanTransport[T any] struct {
	senders *sync.WaitGroup
	peers   []chan T
}

// newTransport creates a transport with the given number of senders and
// receiver peers. Receiver channels close after every sender called Close.
func newTransport[T any](senders, receivers int) transport[T] {
	peers := make([]chan T, receivers)
	for i := range peers {
		peers[i] = make(chan T, 1)
	}

	wg := &sync.WaitGroup{}
	wg.Add(senders)

	go func() {
		wg.Wait()
		for _, ch := range peers {
			close(ch)
		}
	}()

	return &chanTransport[T]{
		senders: wg,
		peers:   peers,
	}
}

func (t *chanTransport[T]) Recv(ctx context.Context, id int) (data T, open bool) {
	ctx, span := tracer.Start(ctx, caller.Name(), trace.WithAttributes(attribute.Int("id", id)))
	defer span.End()

	if id < 0 || id >= len(t.peers) {
		log.Panicf("recv: no peer for id %d", id)
	}

	select {
	case <-ctx.Done():
		return data, false
	case data, open = <-t.peers[id]:
		return data, open
	}
}

func (t *chanTransport[T]) Send(ctx context.Context, id int, data T) {
	ctx, span := tracer.Start(ctx, caller.Name(), trace.WithAttributes(attribute.Int("id", id)))
	defer span.End()

	if id < 0 || id >= len(t.peers) {
		log.Panicf("send: no peer for id %d", id)
	}

	select {
	case <-ctx.Done():
	case t.peers[id] <- data:
	}
}

func (t *chanTransport[T]) Close() {
	t.senders.Done()
}
