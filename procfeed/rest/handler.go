package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Gthulhu/procfeed/config"
	"github.com/Gthulhu/procfeed/pkg/errs"
	"github.com/Gthulhu/procfeed/pkg/logger"
	"github.com/Gthulhu/procfeed/pkg/util"
	"github.com/Gthulhu/procfeed/procfeed/domain"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

const (
	serviceName    = "ProcFeed API Server"
	serviceVersion = "1.0.0"
)

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuccessResponse represents the success response structure
type SuccessResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type Params struct {
	fx.In
	Svc       domain.Service
	StreamCfg config.StreamConfig
	Gatherer  prometheus.Gatherer
}

func NewHandler(params Params) (*Handler, error) {
	keepAlive := params.StreamCfg.KeepAlive
	if keepAlive <= 0 {
		keepAlive = defaultKeepAlive
	}
	return &Handler{
		Svc:       params.Svc,
		Gatherer:  params.Gatherer,
		keepAlive: keepAlive,
		machineID: util.GetMachineID(),
	}, nil
}

type Handler struct {
	Svc       domain.Service
	Gatherer  prometheus.Gatherer
	keepAlive time.Duration
	machineID string
}

func (h *Handler) JSONResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) ErrorResponse(ctx context.Context, w http.ResponseWriter, status int, errMsg string, err error) {
	if err != nil {
		logger.Logger(ctx).Warn().Err(err).Int("status_code", status).Msg(errMsg)
	}
	resp := ErrorResponse{
		Success: false,
		Error:   errMsg,
	}
	h.JSONResponse(ctx, w, status, resp)
}

// HandleError maps a service error to its HTTP status.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, err error) {
	if httpErr, ok := errs.IsHTTPStatusError(err); ok {
		h.ErrorResponse(ctx, w, httpErr.StatusCode, httpErr.Message, err)
		return
	}
	switch {
	case errors.Is(err, domain.ErrBroadcasterClosed):
		h.ErrorResponse(ctx, w, http.StatusServiceUnavailable, "Change feed is shutting down", err)
	case errors.Is(err, domain.ErrSourceFailed):
		h.ErrorResponse(ctx, w, http.StatusInternalServerError, "Failed to acquire process list", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.ErrorResponse(ctx, w, http.StatusServiceUnavailable, "Request canceled", err)
	default:
		h.ErrorResponse(ctx, w, http.StatusInternalServerError, "Internal server error", err)
	}
}

func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message":    serviceName,
		"version":    serviceVersion,
		"machine_id": h.machineID,
		"endpoints":  "/acquire_process_list (POST), /processes (GET), /search (GET), /data (GET, SSE), /metrics (GET), /health (GET), /swagger/ (Docs)",
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	stats := h.Svc.Stats(r.Context())
	lastRefresh := ""
	if !stats.LastRefreshAt.IsZero() {
		lastRefresh = stats.LastRefreshAt.UTC().Format(time.RFC3339)
	}
	response := map[string]any{
		"status":          "healthy",
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
		"service":         serviceName,
		"processes":       stats.Processes,
		"subscribers":     stats.Subscribers,
		"last_refresh_at": lastRefresh,
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}
