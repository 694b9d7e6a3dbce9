package audit

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const writeTimeout = 5 * time.Second

// Writer persists a single event.
type Writer interface {
	WriteEvent(ctx context.Context, e Event) error
}

// Dispatcher is a Sink that hands events to a Writer on a background goroutine.
// When the queue is full the event is dropped and counted.
type Dispatcher struct {
	writer Writer
	queue  chan Event
	done   chan struct{}

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

func NewDispatcher(w Writer, size int) *Dispatcher {
	if size <= 0 {
		size = 1
	}

	d := &Dispatcher{
		writer: w,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.run()

	return d
}

func (d *Dispatcher) Record(_ context.Context, e Event) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(e, "dispatcher closed")
		return
	}

	select {
	case d.queue <- e:
	default:
		d.drop(e, "queue full")
	}
}

// Dropped returns the number of events discarded so far.
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// Close stops accepting events and waits for queued ones to be written or for ctx to expire.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) drop(e Event, reason string) {
	d.dropped.Add(1)
	slog.Warn("dropping audit event", "reason", reason, "type", e.Type, "entity_id", e.EntityID)
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for e := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := d.writer.WriteEvent(ctx, e); err != nil {
			slog.Error("failed to write audit event", "error", err, "type", e.Type, "entity_id", e.EntityID)
		}
		cancel()
	}
}
