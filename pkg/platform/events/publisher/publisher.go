// Package publisher fans domain events out to a store. The default mode is
// synchronous so event ordering matches the order of the triggering calls;
// an optional bounded async buffer decouples slow sinks from the hot path.
package publisher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	events "mintgate/pkg/platform/events"
)

type Publisher struct {
	store  events.Store
	logger *slog.Logger

	buffer chan events.Event
	wg     sync.WaitGroup

	closeOnce sync.Once
}

type Option func(*Publisher)

// WithAsyncBuffer switches the publisher to asynchronous mode with the given
// buffer capacity. When the buffer is full, Emit falls back to a synchronous
// write rather than dropping the event.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		if size > 0 {
			p.buffer = make(chan events.Event, size)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(store events.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}

	if p.buffer != nil {
		p.wg.Add(1)
		go p.drain()
	}

	return p
}

// Emit records one event. Timestamps are stamped here so callers don't have
// to remember to.
func (p *Publisher) Emit(ctx context.Context, event events.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if p.buffer != nil {
		select {
		case p.buffer <- event:
			return nil
		default:
			// Full buffer: degrade to a synchronous write instead of losing
			// the event.
		}
	}

	return p.store.Append(ctx, event)
}

// List exposes the underlying store's events, mainly for tests and admin
// inspection endpoints.
func (p *Publisher) List(ctx context.Context) ([]events.Event, error) {
	return p.store.List(ctx)
}

// Close stops the async worker, flushing anything still buffered.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() {
		if p.buffer != nil {
			close(p.buffer)
			p.wg.Wait()
		}
	})
}

func (p *Publisher) drain() {
	defer p.wg.Done()
	for event := range p.buffer {
		if err := p.store.Append(context.Background(), event); err != nil && p.logger != nil {
			p.logger.Warn("failed to append event", "event", event.Name, "error", err)
		}
	}
}
