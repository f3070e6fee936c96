package broadcast

import (
	"context"
	"sync"

	"github.com/Gthulhu/procfeed/procfeed/domain"
	"github.com/rs/xid"
	"go.uber.org/atomic"
)

// Subscription is one subscriber's cursor into the feed. Next must not be
// called concurrently from more than one goroutine.
type Subscription struct {
	id    string
	owner *Broadcaster

	mu     sync.Mutex
	buf    *ring[domain.ProcessEntry]
	missed uint64
	closed bool

	notify    chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	dropped *atomic.Uint64
}

func newSubscription(owner *Broadcaster, size int) *Subscription {
	return &Subscription{
		id:      xid.New().String(),
		owner:   owner,
		buf:     newRing[domain.ProcessEntry](size),
		notify:  make(chan struct{}, 1),
		done:    make(chan struct{}),
		dropped: atomic.NewUint64(0),
	}
}

func (s *Subscription) ID() string {
	return s.id
}

// push buffers entry. ok is false once the subscription is closed; evicted
// reports that the oldest buffered entry was discarded to make room.
func (s *Subscription) push(entry domain.ProcessEntry) (ok bool, evicted bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false, false
	}
	evicted = s.buf.push(entry)
	if evicted {
		s.missed++
	}
	s.mu.Unlock()

	if evicted {
		s.dropped.Inc()
	}
	select {
	case s.notify <- struct{}{}:
	default:
	}
	return true, evicted
}

// Next returns the next buffered entry, waiting until one is published, the
// subscription is closed or ctx is done. A pending gap is reported first as a
// *LagError; the call after it resumes with the oldest retained entry.
func (s *Subscription) Next(ctx context.Context) (domain.ProcessEntry, error) {
	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return domain.ProcessEntry{}, domain.ErrSubscriptionClosed
		}
		if s.missed > 0 {
			missed := s.missed
			s.missed = 0
			s.mu.Unlock()
			return domain.ProcessEntry{}, &LagError{Missed: missed}
		}
		if entry, ok := s.buf.pop(); ok {
			s.mu.Unlock()
			return entry, nil
		}
		s.mu.Unlock()

		select {
		case <-s.notify:
		case <-s.done:
		case <-ctx.Done():
			return domain.ProcessEntry{}, ctx.Err()
		}
	}
}

// Buffered returns the number of entries waiting to be read.
func (s *Subscription) Buffered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.len()
}

// Dropped returns how many entries this subscriber lost to overflow.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}

// Done is closed when the subscription is closed.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Close detaches the subscription and releases its buffer. It is safe to call
// more than once.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.owner.detach(s.id)
		s.mu.Lock()
		s.closed = true
		s.buf.reset()
		s.missed = 0
		s.mu.Unlock()
		close(s.done)
	})
}
