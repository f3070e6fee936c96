package broadcast

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Gthulhu/procfeed/procfeed/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(pid uint32) domain.ProcessEntry {
	return domain.ProcessEntry{PID: pid, Name: "proc", OwnerName: "root"}
}

func nextWithin(t *testing.T, sub *Subscription) (domain.ProcessEntry, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return sub.Next(ctx)
}

func TestFanOutDeliversToEverySubscriberOnce(t *testing.T) {
	b := New(8)
	s1, err := b.Subscribe()
	require.NoError(t, err)
	s2, err := b.Subscribe()
	require.NoError(t, err)

	e := testEntry(1)
	assert.Equal(t, 2, b.Publish(e))

	for _, sub := range []*Subscription{s1, s2} {
		got, err := nextWithin(t, sub)
		require.NoError(t, err)
		assert.Equal(t, e, got)
		assert.Equal(t, 0, sub.Buffered())
	}
}

func TestDetachedSubscriberDoesNotAffectOthers(t *testing.T) {
	b := New(8)
	s1, err := b.Subscribe()
	require.NoError(t, err)
	s2, err := b.Subscribe()
	require.NoError(t, err)

	s1.Close()
	assert.Equal(t, 1, b.Len())

	e := testEntry(2)
	assert.Equal(t, 1, b.Publish(e))

	got, err := nextWithin(t, s2)
	require.NoError(t, err)
	assert.Equal(t, e, got)

	_, err = nextWithin(t, s1)
	assert.ErrorIs(t, err, domain.ErrSubscriptionClosed)
}

func TestNoReplayOfHistory(t *testing.T) {
	b := New(8)
	b.Publish(testEntry(1))

	sub, err := b.Subscribe()
	require.NoError(t, err)
	b.Publish(testEntry(2))

	got, err := nextWithin(t, sub)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), got.PID)
	assert.Equal(t, 0, sub.Buffered())
}

func TestSlowSubscriberObservesGap(t *testing.T) {
	const size = 4
	b := New(size)
	slow, err := b.Subscribe()
	require.NoError(t, err)
	fast, err := b.Subscribe()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := uint32(0); i < 10; i++ {
			b.Publish(testEntry(i))
			got, err := nextWithin(t, fast)
			assert.NoError(t, err)
			assert.Equal(t, i, got.PID)
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher stalled on a slow subscriber")
	}

	assert.Equal(t, size, slow.Buffered())
	assert.Equal(t, uint64(6), slow.Dropped())
	assert.Equal(t, uint64(6), b.Dropped())
	assert.Equal(t, uint64(10), b.Published())

	_, err = nextWithin(t, slow)
	var lag *LagError
	require.True(t, errors.As(err, &lag))
	assert.Equal(t, uint64(6), lag.Missed)

	for want := uint32(6); want < 10; want++ {
		got, err := nextWithin(t, slow)
		require.NoError(t, err)
		assert.Equal(t, want, got.PID)
	}
}

func TestNextWaitsForPublish(t *testing.T) {
	b := New(2)
	sub, err := b.Subscribe()
	require.NoError(t, err)

	result := make(chan domain.ProcessEntry, 1)
	go func() {
		got, err := nextWithin(t, sub)
		if err == nil {
			result <- got
		}
	}()

	b.Publish(testEntry(42))
	select {
	case got := <-result:
		assert.Equal(t, uint32(42), got.PID)
	case <-time.After(time.Second):
		t.Fatal("subscriber was not woken by publish")
	}
}

func TestNextHonoursContext(t *testing.T) {
	b := New(2)
	sub, err := b.Subscribe()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sub.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCloseUnblocksNext(t *testing.T) {
	b := New(2)
	sub, err := b.Subscribe()
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() {
		_, err := nextWithin(t, sub)
		errCh <- err
	}()
	sub.Close()
	sub.Close()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, domain.ErrSubscriptionClosed)
	case <-time.After(time.Second):
		t.Fatal("close did not unblock Next")
	}
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Publish(testEntry(1)))
}

func TestBroadcasterCloseClosesAll(t *testing.T) {
	b := New(2)
	s1, err := b.Subscribe()
	require.NoError(t, err)
	s2, err := b.Subscribe()
	require.NoError(t, err)

	b.Close()

	for _, sub := range []*Subscription{s1, s2} {
		select {
		case <-sub.Done():
		default:
			t.Fatalf("subscription %s still open", sub.ID())
		}
	}
	assert.Equal(t, 0, b.Len())

	_, err = b.Subscribe()
	assert.ErrorIs(t, err, domain.ErrBroadcasterClosed)
}

func TestConcurrentPublishAndSubscribe(t *testing.T) {
	b := New(16)
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				b.Publish(testEntry(uint32(p*100 + i)))
			}
		}(p)
	}
	for s := 0; s < 8; s++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub, err := b.Subscribe()
			if !assert.NoError(t, err) {
				return
			}
			defer sub.Close()
			assert.LessOrEqual(t, sub.Buffered(), 16)
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(400), b.Published())
	assert.Equal(t, 0, b.Len())
}
