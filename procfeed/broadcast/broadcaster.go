package broadcast

import (
	"fmt"
	"sync"

	"github.com/Gthulhu/procfeed/pkg/util"
	"github.com/Gthulhu/procfeed/procfeed/domain"
	"go.uber.org/atomic"
)

// LagError reports that a subscriber fell behind and Missed entries were
// discarded from its buffer.
type LagError struct {
	Missed uint64
}

func (e *LagError) Error() string {
	return fmt.Sprintf("subscriber lagged, %d entries missed", e.Missed)
}

// Broadcaster is a multicast of process entries with one bounded buffer per
// subscriber.
type Broadcaster struct {
	mu         sync.Mutex
	closed     bool
	subs       *util.GenericMap[string, *Subscription]
	bufferSize int

	published *atomic.Uint64
	dropped   *atomic.Uint64
}

// New creates a broadcaster whose subscribers buffer up to bufferSize entries.
func New(bufferSize int) *Broadcaster {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Broadcaster{
		subs:       util.NewGenericMap[string, *Subscription](),
		bufferSize: bufferSize,
		published:  atomic.NewUint64(0),
		dropped:    atomic.NewUint64(0),
	}
}

// Subscribe attaches a subscriber that receives entries published from now on.
func (b *Broadcaster) Subscribe() (*Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, domain.ErrBroadcasterClosed
	}
	sub := newSubscription(b, b.bufferSize)
	b.subs.Store(sub.id, sub)
	return sub, nil
}

// Publish hands entry to every attached subscriber and returns how many
// received it. It never blocks on a subscriber.
func (b *Broadcaster) Publish(entry domain.ProcessEntry) int {
	b.published.Inc()
	delivered := 0
	b.subs.Range(func(_ string, sub *Subscription) bool {
		ok, evicted := sub.push(entry)
		if evicted {
			b.dropped.Inc()
		}
		if ok {
			delivered++
		}
		return true
	})
	return delivered
}

// Len returns the number of attached subscribers.
func (b *Broadcaster) Len() int {
	return b.subs.Len()
}

// Published returns the number of Publish calls so far.
func (b *Broadcaster) Published() uint64 {
	return b.published.Load()
}

// Dropped returns the number of entries discarded across all subscribers.
func (b *Broadcaster) Dropped() uint64 {
	return b.dropped.Load()
}

// Close detaches and closes every subscriber. Later Subscribe calls fail.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	b.subs.Range(func(_ string, sub *Subscription) bool {
		sub.Close()
		return true
	})
}

func (b *Broadcaster) detach(id string) {
	b.subs.Delete(id)
}
