// Package correlate matches outgoing requests to the replies that come back
// for them. The protocol carries no request identifier: Live answers on the
// same address a request was sent to, and within one address it answers in
// request order. Each address therefore gets a FIFO queue of pending waits,
// and the oldest wait is resolved by the next reply on that address.
package correlate

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/scgolang/osc"
)

// DefaultTimeout is used by Wait and Await when no timeout is given.
const DefaultTimeout = 5 * time.Second

var (
	// ErrTimeout is returned when no reply arrives within the wait budget.
	// Timeouts are routine: Live simply never answers addresses it does not
	// implement.
	ErrTimeout = errors.New("timed out waiting for reply")

	// ErrCancelled is returned to waiters dropped by CancelAll, so callers
	// in flight during a disconnect observe a cancellation rather than a
	// timeout.
	ErrCancelled = errors.New("wait cancelled")
)

// Wait is one pending expectation of a reply on an address.
type Wait struct {
	address string
	created time.Time

	mu       sync.Mutex
	resolved bool
	results  chan osc.Arguments // buffered, at most one delivery
	cancel   chan struct{}
}

// Address returns the address the wait was registered for.
func (w *Wait) Address() string { return w.address }

// Results delivers the matched reply arguments, at most once.
func (w *Wait) Results() <-chan osc.Arguments { return w.results }

// Cancelled is closed when the correlator cancels the wait.
func (w *Wait) Cancelled() <-chan struct{} { return w.cancel }

// resolve delivers args to the waiter. It reports false when the wait was
// already resolved or cancelled, which callers treat as a warning condition.
func (w *Wait) resolve(args osc.Arguments) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.resolved {
		return false
	}
	w.resolved = true
	w.results <- args
	return true
}

func (w *Wait) markCancelled() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.resolved {
		return
	}
	w.resolved = true
	close(w.cancel)
}

// Correlator owns the per-address FIFO queues. All queue mutations happen
// under one mutex; the mutex is never held across a blocking wait.
type Correlator struct {
	mu     sync.Mutex
	queues map[string][]*Wait
}

// New returns an empty correlator.
func New() *Correlator {
	return &Correlator{queues: make(map[string][]*Wait)}
}

// Expect appends a pending wait to the address's queue and returns its handle
// immediately. Safe for any number of concurrent callers.
func (c *Correlator) Expect(address string) *Wait {
	w := &Wait{
		address: address,
		created: time.Now(),
		results: make(chan osc.Arguments, 1),
		cancel:  make(chan struct{}),
	}
	c.mu.Lock()
	c.queues[address] = append(c.queues[address], w)
	c.mu.Unlock()
	return w
}

// Handle resolves the oldest pending wait for address with args. It reports
// whether a waiter was matched; an unmatched reply is not an error, since
// unsolicited and stale messages are expected on this protocol.
func (c *Correlator) Handle(address string, args osc.Arguments) bool {
	c.mu.Lock()
	q := c.queues[address]
	if len(q) == 0 {
		c.mu.Unlock()
		return false
	}
	w := q[0]
	if len(q) == 1 {
		delete(c.queues, address)
	} else {
		c.queues[address] = q[1:]
	}
	c.mu.Unlock()
	return w.resolve(args)
}

// Evict removes a wait from its queue if it is still pending. Timeout and
// failed-send cleanup paths must call this so abandoned waiters never
// accumulate and later replies never match a stale wait.
func (c *Correlator) Evict(w *Wait) {
	c.mu.Lock()
	defer c.mu.Unlock()
	q := c.queues[w.address]
	for i, p := range q {
		if p != w {
			continue
		}
		q = append(q[:i:i], q[i+1:]...)
		if len(q) == 0 {
			delete(c.queues, w.address)
		} else {
			c.queues[w.address] = q
		}
		return
	}
}

// Await blocks on a wait previously registered with Expect until it resolves,
// the timeout elapses, the context is done, or the correlator cancels it.
// On every non-resolution path the wait is evicted from its queue before
// returning. A timeout <= 0 means DefaultTimeout.
func (c *Correlator) Await(ctx context.Context, w *Wait, timeout time.Duration) (osc.Arguments, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case args := <-w.results:
		return args, nil
	case <-w.cancel:
		return nil, errors.Wrapf(ErrCancelled, "awaiting %s", w.address)
	case <-timer.C:
		c.Evict(w)
		return nil, errors.Wrapf(ErrTimeout, "no reply to %s within %s", w.address, timeout)
	case <-ctx.Done():
		c.Evict(w)
		return nil, errors.Wrapf(ctx.Err(), "awaiting %s", w.address)
	}
}

// Wait is the Expect+Await combinator for callers that hold no other state
// between registering and blocking.
func (c *Correlator) Wait(ctx context.Context, address string, timeout time.Duration) (osc.Arguments, error) {
	return c.Await(ctx, c.Expect(address), timeout)
}

// CancelAll drains every queue and cancels every outstanding waiter. Used on
// disconnect so in-flight callers get a definitive answer instead of hanging
// until their timeouts.
func (c *Correlator) CancelAll() {
	c.mu.Lock()
	drained := c.queues
	c.queues = make(map[string][]*Wait)
	c.mu.Unlock()

	for _, q := range drained {
		for _, w := range q {
			w.markCancelled()
		}
	}
}

// Pending reports the number of outstanding waits for address.
func (c *Correlator) Pending(address string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queues[address])
}
