package app

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/Gthulhu/procfeed/config"
	"github.com/Gthulhu/procfeed/pkg/logger"
	"github.com/Gthulhu/procfeed/procfeed/broadcast"
	"github.com/Gthulhu/procfeed/procfeed/rest"
	"github.com/Gthulhu/procfeed/procfeed/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

func NewRestApp(configName string, configDirPath string) (*fx.App, error) {
	handlerModule, err := HandlerModule(configName, configDirPath)
	if err != nil {
		return nil, err
	}

	app := fx.New(
		handlerModule,
		fx.Invoke(StartRestApp),
		fx.Invoke(StartRefresher),
	)
	return app, nil
}

// StartRestApp serves the REST API. On stop the broadcaster is closed first so
// open /data streams end and the server can drain.
func StartRestApp(lc fx.Lifecycle, cfg config.ServerConfig, handler *rest.Handler, broadcaster *broadcast.Broadcaster) error {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	handler.SetupRoutes(engine)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			serverHost := cfg.Host
			if serverHost == "" {
				serverHost = "127.0.0.1:8080"
			}
			go func() {
				logger.Logger(ctx).Info().Msgf("starting rest server on %s", serverHost)
				if err := engine.Start(serverHost); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Logger(ctx).Fatal().Err(err).Msgf("start rest server fail on %s", serverHost)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Logger(ctx).Info().Msg("shutting down rest server")
			broadcaster.Close()
			return engine.Shutdown(ctx)
		},
	})

	return nil
}

// StartRefresher performs the optional initial refresh and runs the periodic
// refresher when refresh.interval is positive.
func StartRefresher(lc fx.Lifecycle, cfg config.RefreshConfig, svc *service.Service) error {
	var (
		cancel context.CancelFunc
		wg     sync.WaitGroup
	)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.OnStart {
				if _, err := svc.Refresh(ctx); err != nil {
					logger.Logger(ctx).Warn().Err(err).Msg("initial refresh failed")
				}
			}
			if cfg.Interval <= 0 {
				return nil
			}
			var bgCtx context.Context
			bgCtx, cancel = context.WithCancel(context.Background())
			wg.Add(1)
			go func() {
				defer wg.Done()
				svc.RunPeriodicRefresh(bgCtx, cfg.Interval)
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancel == nil {
				return nil
			}
			cancel()
			wg.Wait()
			return nil
		},
	})

	return nil
}
