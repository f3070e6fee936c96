package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Gthulhu/procfeed/pkg/logger"
	"github.com/Gthulhu/procfeed/procfeed/broadcast"
	"github.com/Gthulhu/procfeed/procfeed/domain"
	"github.com/Gthulhu/procfeed/procfeed/snapshot"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type Params struct {
	fx.In
	Source      domain.ProcessSource
	Store       *snapshot.Store
	Broadcaster *broadcast.Broadcaster
	Registerer  prometheus.Registerer
}

func NewService(params Params) (*Service, error) {
	svc := &Service{
		source:      params.Source,
		store:       params.Store,
		broadcaster: params.Broadcaster,
	}
	svc.metricCollector = NewMetricCollector(svc.store, svc.broadcaster)
	if params.Registerer != nil {
		if err := params.Registerer.Register(svc.metricCollector); err != nil {
			return nil, fmt.Errorf("failed to register metric collector: %v", err)
		}
	}
	return svc, nil
}

type Service struct {
	source          domain.ProcessSource
	store           *snapshot.Store
	broadcaster     *broadcast.Broadcaster
	metricCollector *MetricCollector

	// refreshMu serializes Refresh so two concurrent triggers never diff
	// against the same stale snapshot and publish the same transition twice.
	// It is never held by readers.
	refreshMu sync.Mutex
}

// Refresh reads the stored snapshot, acquires a new one from the source,
// publishes every newly observed entry in order and installs the new snapshot.
// On source failure nothing is published and the store is untouched.
func (svc *Service) Refresh(ctx context.Context) (domain.RefreshResult, error) {
	svc.refreshMu.Lock()
	defer svc.refreshMu.Unlock()

	prev := svc.store.Read()

	next, err := svc.source.ListProcesses(ctx)
	if err != nil {
		svc.metricCollector.RefreshFailed()
		return domain.RefreshResult{}, fmt.Errorf("%w: %w", domain.ErrSourceFailed, err)
	}

	added := snapshot.Diff(prev, next)
	for _, entry := range added {
		svc.broadcaster.Publish(entry)
	}
	svc.store.Replace(next)
	svc.metricCollector.RefreshSucceeded()

	logger.Logger(ctx).Info().Msgf("refreshed list (%d processes, %d new)", len(next), len(added))
	return domain.RefreshResult{Total: len(next), New: len(added)}, nil
}

// Processes returns a copy of the current snapshot
func (svc *Service) Processes(ctx context.Context) domain.Snapshot {
	return svc.store.Read()
}

// Search filters a copy of the current snapshot
func (svc *Service) Search(ctx context.Context, query domain.SearchQuery) domain.Snapshot {
	return snapshot.Search(svc.store.Read(), query)
}

// Subscribe attaches a new subscriber to the change feed
func (svc *Service) Subscribe(ctx context.Context) (domain.Subscription, error) {
	sub, err := svc.broadcaster.Subscribe()
	if err != nil {
		return nil, err
	}
	logger.Logger(ctx).Debug().Str("subscription_id", sub.ID()).Msgf("subscriber attached (%d total)", svc.broadcaster.Len())
	return sub, nil
}

func (svc *Service) Stats(ctx context.Context) domain.Stats {
	return domain.Stats{
		Processes:     svc.store.Len(),
		Subscribers:   svc.broadcaster.Len(),
		LastRefreshAt: svc.store.UpdatedAt(),
	}
}
