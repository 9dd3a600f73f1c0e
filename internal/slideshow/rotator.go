// Package slideshow implements the auto-advance timer behind gallery
// slideshows and the testimonial carousel. The timer is owned by the Rotator
// instance: every manual navigation cancels the pending tick and restarts the
// interval, and Stop guarantees no advance callback runs afterwards.
package slideshow

import (
	"sync"
	"time"
)

// DefaultInterval matches the gallery slideshow cadence; carousels may pass
// their own interval to New.
const DefaultInterval = 5 * time.Second

// Rotator cycles an index over count slides. Methods are safe for concurrent
// use; the advance callback is invoked without the internal lock held.
type Rotator struct {
	mu        sync.Mutex
	count     int
	index     int
	interval  time.Duration
	timer     *time.Timer
	running   bool
	stopped   bool
	inflight  sync.WaitGroup
	onAdvance func(index int)
}

// New creates a stopped rotator over count slides. onAdvance may be nil.
func New(count int, interval time.Duration, onAdvance func(index int)) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Rotator{count: count, interval: interval, onAdvance: onAdvance}
}

// Start begins auto-advancing from the current index. Starting an already
// running or stopped rotator is a no-op.
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running || r.stopped || r.count == 0 {
		return
	}
	r.running = true
	r.schedule()
}

// Stop cancels the pending tick permanently and waits for a callback that is
// already being delivered to finish. It is idempotent, and once it returns
// the advance callback will not be invoked again. Stop must not be called
// from inside the callback.
func (r *Rotator) Stop() {
	r.mu.Lock()
	r.stopped = true
	r.running = false
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.mu.Unlock()

	r.inflight.Wait()
}

// Next advances manually and restarts the interval, mirroring a user tapping
// through: the pending automatic tick is cancelled first.
func (r *Rotator) Next() int {
	return r.step(1)
}

// Prev steps backwards and restarts the interval.
func (r *Rotator) Prev() int {
	return r.step(-1)
}

// Index returns the current slide index.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

func (r *Rotator) step(delta int) int {
	r.mu.Lock()
	if r.count == 0 || r.stopped {
		idx := r.index
		r.mu.Unlock()
		return idx
	}
	if r.timer != nil {
		r.timer.Stop()
	}
	r.index = (r.index + delta + r.count) % r.count
	idx := r.index
	cb := r.onAdvance
	if r.running {
		r.schedule()
	}
	// registered under the lock so Stop cannot return mid-delivery
	r.inflight.Add(1)
	r.mu.Unlock()

	if cb != nil {
		cb(idx)
	}
	r.inflight.Done()
	return idx
}

// schedule arms the next tick. Callers must hold r.mu.
func (r *Rotator) schedule() {
	r.timer = time.AfterFunc(r.interval, r.tick)
}

func (r *Rotator) tick() {
	r.mu.Lock()
	if r.stopped || !r.running {
		r.mu.Unlock()
		return
	}
	r.index = (r.index + 1) % r.count
	idx := r.index
	cb := r.onAdvance
	r.schedule()
	r.inflight.Add(1)
	r.mu.Unlock()

	if cb != nil {
		cb(idx)
	}
	r.inflight.Done()
}
