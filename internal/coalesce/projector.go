// Package coalesce provides a trailing-edge rate limiter over a
// single-slot mailbox, used to bound the delivery rate of high-frequency
// value streams such as pointer movement.
package coalesce

import (
	"sync"
	"time"
)

// Projector coalesces submitted values and delivers the most recent one to
// a consumer at most once per interval. Intermediate values are overwritten,
// never queued: the consumer always eventually sees the latest value, and
// memory use is constant regardless of submission rate.
//
// Delivery runs on a single-flight loop that starts with the first
// undelivered submission and parks itself once the mailbox is empty. There
// is no cancellation primitive; an idle Projector holds no goroutine.
type Projector[T any] struct {
	interval time.Duration
	deliver  func(T)

	mu      sync.Mutex
	latest  T
	pending bool
	running bool
}

// NewProjector creates a projector delivering to the given consumer at most
// once per interval.
func NewProjector[T any](interval time.Duration, deliver func(T)) *Projector[T] {
	return &Projector[T]{
		interval: interval,
		deliver:  deliver,
	}
}

// Submit stores a value, overwriting any value not yet delivered, and
// starts the delivery loop if it is not already running. Submit never
// blocks on the consumer.
func (p *Projector[T]) Submit(v T) {
	p.mu.Lock()
	p.latest = v
	p.pending = true
	start := !p.running
	if start {
		p.running = true
	}
	p.mu.Unlock()

	if start {
		go p.loop()
	}
}

// loop delivers pending values, sleeping one interval between deliveries,
// and terminates when no submission arrived during the last interval.
func (p *Projector[T]) loop() {
	for {
		p.mu.Lock()
		if !p.pending {
			p.running = false
			p.mu.Unlock()
			return
		}
		v := p.latest
		p.pending = false
		p.mu.Unlock()

		p.deliver(v)
		time.Sleep(p.interval)
	}
}
