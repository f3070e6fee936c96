package app

import (
	"github.com/Gthulhu/procfeed/config"
	"github.com/Gthulhu/procfeed/procfeed/broadcast"
	"github.com/Gthulhu/procfeed/procfeed/domain"
	"github.com/Gthulhu/procfeed/procfeed/rest"
	"github.com/Gthulhu/procfeed/procfeed/service"
	"github.com/Gthulhu/procfeed/procfeed/snapshot"
	"github.com/Gthulhu/procfeed/procfeed/source"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

func ConfigModule(configName string, configPath string) (fx.Option, error) {
	cfg, err := config.InitConfig(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		fx.Provide(func() config.ProcFeedConfig {
			return cfg
		}),
		fx.Provide(func(procFeedCfg config.ProcFeedConfig) config.ServerConfig {
			return procFeedCfg.Server
		}),
		fx.Provide(func(procFeedCfg config.ProcFeedConfig) config.SourceConfig {
			return procFeedCfg.Source
		}),
		fx.Provide(func(procFeedCfg config.ProcFeedConfig) config.BroadcastConfig {
			return procFeedCfg.Broadcast
		}),
		fx.Provide(func(procFeedCfg config.ProcFeedConfig) config.StreamConfig {
			return procFeedCfg.Stream
		}),
		fx.Provide(func(procFeedCfg config.ProcFeedConfig) config.RefreshConfig {
			return procFeedCfg.Refresh
		}),
	), nil
}

// CoreModule provides the snapshot store, the change broadcaster and the metrics registry
func CoreModule() fx.Option {
	return fx.Options(
		fx.Provide(snapshot.NewStore),
		fx.Provide(func(cfg config.BroadcastConfig) *broadcast.Broadcaster {
			return broadcast.New(cfg.BufferSize)
		}),
		fx.Provide(NewMetricsRegistry),
		fx.Provide(func(reg *prometheus.Registry) prometheus.Registerer { return reg }),
		fx.Provide(func(reg *prometheus.Registry) prometheus.Gatherer { return reg }),
	)
}

// NewMetricsRegistry returns a registry carrying the Go runtime and process collectors
func NewMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// SourceModule creates an Fx module that provides the process source, return domain.ProcessSource
func SourceModule(configName string, configPath string) (fx.Option, error) {
	configModule, err := ConfigModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		configModule,
		fx.Provide(source.New),
	), nil
}

// ServiceModule creates an Fx module that provides the service layer, return domain.Service
func ServiceModule(configName string, configPath string) (fx.Option, error) {
	sourceModule, err := SourceModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		sourceModule,
		CoreModule(),
		fx.Provide(fx.Annotate(service.NewService, fx.As(fx.Self()), fx.As(new(domain.Service)))),
	), nil
}

// HandlerModule creates an Fx module that provides the REST handler, return *rest.Handler
func HandlerModule(configName string, configPath string) (fx.Option, error) {
	serviceModule, err := ServiceModule(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		serviceModule,
		fx.Provide(rest.NewHandler),
	), nil
}
