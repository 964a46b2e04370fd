package persist

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/storefront/internal/logger"
	"github.com/alexisbeaulieu97/storefront/internal/state"
)

// Persister writes the persisted slices to storage after every transition
// that changes them. Transitions only enqueue; a single writer goroutine
// drains the queue and always writes the latest snapshot.
type Persister struct {
	storage Storage
	log     *logger.Logger
	sub     state.Subscription

	mu       sync.Mutex
	last     Snapshot
	pending  []byte
	enqueued uint64
	written  uint64
	progress chan struct{}
	closed   bool

	kick chan struct{}
	stop chan struct{}
	done chan struct{}
}

// NewPersister attaches a persister to store. The store's current state is
// taken as already persisted, so attach after rehydrating.
func NewPersister(store *state.Store, storage Storage, log *logger.Logger) *Persister {
	p := &Persister{
		storage:  storage,
		log:      log,
		last:     Project(store.State()),
		progress: make(chan struct{}),
		kick:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	go p.run()
	p.sub = store.Subscribe(p.observe)
	return p
}

func (p *Persister) observe(_, next state.State, action state.Action) {
	projection := Project(next)

	p.mu.Lock()
	if p.closed || projection.Equal(p.last) {
		p.mu.Unlock()
		return
	}

	data, err := Encode(next)
	if err != nil {
		p.mu.Unlock()
		p.log.With("action", action.Type()).Error(err, "failed to encode snapshot")
		return
	}

	p.last = projection
	p.pending = data
	p.enqueued++
	p.mu.Unlock()

	select {
	case p.kick <- struct{}{}:
	default:
	}
}

func (p *Persister) run() {
	defer close(p.done)

	for {
		select {
		case <-p.kick:
			p.drain()
		case <-p.stop:
			p.drain()
			return
		}
	}
}

func (p *Persister) drain() {
	p.mu.Lock()
	data := p.pending
	seq := p.enqueued
	p.pending = nil
	p.mu.Unlock()

	if data != nil {
		if err := p.storage.Write(context.Background(), RootKey, data); err != nil {
			p.log.With("key", RootKey).Error(err, "failed to persist snapshot")
		}
	}

	p.mu.Lock()
	if seq > p.written {
		p.written = seq
		close(p.progress)
		p.progress = make(chan struct{})
	}
	p.mu.Unlock()
}

// Flush blocks until every snapshot enqueued before the call has been
// handed to storage, or ctx is done.
func (p *Persister) Flush(ctx context.Context) error {
	p.mu.Lock()
	target := p.enqueued
	p.mu.Unlock()

	for {
		p.mu.Lock()
		if p.written >= target {
			p.mu.Unlock()
			return nil
		}
		progress := p.progress
		p.mu.Unlock()

		select {
		case <-progress:
		case <-p.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close detaches from the store, writes anything still queued and stops the
// writer goroutine.
func (p *Persister) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	p.sub.Unsubscribe()
	close(p.stop)

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Purge waits for queued writes and then removes the stored snapshot.
func (p *Persister) Purge(ctx context.Context) error {
	if err := p.Flush(ctx); err != nil {
		return err
	}
	return p.storage.Remove(ctx, RootKey)
}
