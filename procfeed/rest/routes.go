package rest

import (
	"net/http"

	docs "github.com/Gthulhu/procfeed/docs/procfeed"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func (h *Handler) SetupRoutes(engine *echo.Echo) {
	engine.GET("/health", h.echoHandler(h.HealthCheck))
	engine.GET("/version", h.echoHandler(h.Version))
	engine.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{})))
	docs.SwaggerInfo.BasePath = "/"
	engine.GET("/swagger/*", echoSwagger.WrapHandler)

	logMiddleware := echo.WrapMiddleware(LoggerMiddleware)
	engine.POST("/acquire_process_list", h.echoHandler(h.AcquireProcessList), logMiddleware)
	engine.GET("/processes", h.echoHandler(h.ListProcesses), logMiddleware)
	engine.GET("/search", h.echoHandler(h.SearchProcesses), logMiddleware)
	engine.GET("/data", h.echoHandler(h.StreamProcesses), logMiddleware)

	api := engine.Group("/api", logMiddleware)
	// v1 routes
	{
		apiV1 := api.Group("/v1")
		apiV1.POST("/processes/refresh", h.echoHandler(h.AcquireProcessList))
		apiV1.GET("/processes", h.echoHandler(h.ListProcesses))
		apiV1.GET("/processes/search", h.echoHandler(h.SearchProcesses))
		apiV1.GET("/processes/stream", h.echoHandler(h.StreamProcesses))
	}
}

func (h *Handler) echoHandler(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return echo.WrapHandler(http.HandlerFunc(handlerFunc))
}
