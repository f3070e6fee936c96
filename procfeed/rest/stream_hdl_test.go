package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Gthulhu/procfeed/config"
	"github.com/Gthulhu/procfeed/pkg/errs"
	"github.com/Gthulhu/procfeed/procfeed/broadcast"
	"github.com/Gthulhu/procfeed/procfeed/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type step struct {
	entry domain.ProcessEntry
	err   error
}

type scriptedSubscription struct {
	steps  []step
	closed bool
}

func (s *scriptedSubscription) ID() string { return "scripted" }

func (s *scriptedSubscription) Next(ctx context.Context) (domain.ProcessEntry, error) {
	if len(s.steps) == 0 {
		return domain.ProcessEntry{}, domain.ErrSubscriptionClosed
	}
	next := s.steps[0]
	s.steps = s.steps[1:]
	return next.entry, next.err
}

func (s *scriptedSubscription) Close() { s.closed = true }

type stubService struct {
	domain.Service
	sub    domain.Subscription
	subErr error
}

func (s *stubService) Subscribe(ctx context.Context) (domain.Subscription, error) {
	return s.sub, s.subErr
}

func newStubHandler(t *testing.T, svc domain.Service) *Handler {
	h, err := NewHandler(Params{
		Svc:       svc,
		StreamCfg: config.StreamConfig{KeepAlive: time.Second},
		Gatherer:  prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	return h
}

func TestStreamFramesEntriesAndLag(t *testing.T) {
	sub := &scriptedSubscription{steps: []step{
		{entry: domain.ProcessEntry{PID: 10, Name: "a", OwnerName: "root"}},
		{err: &broadcast.LagError{Missed: 3}},
		{entry: domain.ProcessEntry{PID: 11, Name: "b", OwnerName: "root"}},
	}}
	h := newStubHandler(t, &stubService{sub: sub})

	rec := httptest.NewRecorder()
	h.StreamProcesses(rec, httptest.NewRequest(http.MethodGet, "/data", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	body := rec.Body.String()
	assert.Regexp(t, `^data: \{"pid":10,"name":"a","uid":[^,]+,"username":"root"\}\n\n`+
		`event: lagged\ndata: \{"missed":3\}\n\n`+
		`data: \{"pid":11,"name":"b","uid":[^,]+,"username":"root"\}\n\n$`, body)
	assert.True(t, sub.closed, "subscription must be released when the stream ends")
}

func TestStreamSubscribeRejected(t *testing.T) {
	h := newStubHandler(t, &stubService{subErr: domain.ErrBroadcasterClosed})

	rec := httptest.NewRecorder()
	h.StreamProcesses(rec, httptest.NewRequest(http.MethodGet, "/data", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Change feed is shutting down"}`, rec.Body.String())
}

func TestStreamStopsOnClientDisconnect(t *testing.T) {
	b := broadcast.New(4)
	sub, err := b.Subscribe()
	require.NoError(t, err)
	h := newStubHandler(t, &stubService{sub: sub})

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/data", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.StreamProcesses(rec, req)
	}()

	require.Eventually(t, func() bool { return b.Len() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream handler did not return after disconnect")
	}
	assert.Equal(t, 0, b.Len(), "subscriber must be detached after disconnect")
}

func TestParseSearchQuery(t *testing.T) {
	q, err := parseSearchQuery(url.Values{})
	require.NoError(t, err)
	assert.Nil(t, q.PID)
	assert.Nil(t, q.OwnerName)

	q, err = parseSearchQuery(url.Values{"pid": {"42"}, "username": {""}})
	require.NoError(t, err)
	require.NotNil(t, q.PID)
	assert.Equal(t, uint32(42), *q.PID)
	require.NotNil(t, q.OwnerName)
	assert.Equal(t, "", *q.OwnerName)

	_, err = parseSearchQuery(url.Values{"pid": {"x"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
}
