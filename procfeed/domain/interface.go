package domain

import (
	"context"
	"time"
)

// ProcessSource enumerates the processes currently running on the host.
// Entries whose owner cannot be resolved are omitted, not reported as errors.
type ProcessSource interface {
	ListProcesses(ctx context.Context) (Snapshot, error)
}

// RefreshResult summarizes one successful refresh.
type RefreshResult struct {
	Total int
	New   int
}

// Stats is a point-in-time view of the service state.
type Stats struct {
	Processes     int
	Subscribers   int
	LastRefreshAt time.Time
}

// Service defines the interface for the service layer
type Service interface {
	// Refresh acquires a new snapshot, publishes newly observed entries and installs the snapshot
	Refresh(ctx context.Context) (RefreshResult, error)
	// Processes returns a copy of the current snapshot
	Processes(ctx context.Context) Snapshot
	// Search filters the current snapshot
	Search(ctx context.Context, query SearchQuery) Snapshot
	// Subscribe attaches a new subscriber to the change feed
	Subscribe(ctx context.Context) (Subscription, error)
	// Stats reports snapshot size and subscriber count
	Stats(ctx context.Context) Stats
}

// Subscription is a live feed of newly observed entries.
type Subscription interface {
	ID() string
	// Next blocks until an entry is available. A gap in delivery is reported
	// once as a non-nil error that unwraps to a lag error; the following call
	// resumes with the oldest retained entry.
	Next(ctx context.Context) (ProcessEntry, error)
	Close()
}
